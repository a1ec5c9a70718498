// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the window system, the global accelerator table and the
// settings store so the use cases stay independent of GTK, Chrome or viper.
package port

import (
	"context"
	"errors"

	"github.com/bnema/tabcast/internal/domain/entity"
)

var (
	// ErrWindowNotFound is returned when no top-level window carries a label.
	ErrWindowNotFound = errors.New("window not found")
	// ErrSurfaceNotFound is returned when no embedded surface carries a label.
	ErrSurfaceNotFound = errors.New("surface not found")
)

// Well-known top-level window labels.
const (
	MainWindowLabel  = "main"
	QuickWindowLabel = "quick"
)

// Events emitted to top-level windows.
const (
	// EventSend carries a SendPayload to the main window.
	EventSend = "ai-send"
	// EventQuickFocus asks the quick window to focus its entry.
	EventQuickFocus = "quick-focus"
	// EventOpenSettings switches the main window to its settings tab.
	EventOpenSettings = "open-settings"
)

// SendPayload is the payload of EventSend.
type SendPayload struct {
	Prompt string `json:"prompt"`
}

// Window is a top-level host window.
type Window interface {
	Label() string
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
	Focus(ctx context.Context) error
	IsVisible(ctx context.Context) (bool, error)
	IsFocused(ctx context.Context) (bool, error)
	// Emit delivers an event to listeners attached to this window.
	Emit(ctx context.Context, event string, payload any) error
}

// Surface is an embedded web view layered inside the main window.
// Geometry is in pixels relative to the parent window.
type Surface interface {
	Label() string
	SetPosition(ctx context.Context, x, y int) error
	SetSize(ctx context.Context, width, height int) error
	SetAutoResize(ctx context.Context, enabled bool) error
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
	Focus(ctx context.Context) error
	Close(ctx context.Context) error
}

// SurfaceSpec describes a surface to create. New surfaces start hidden.
type SurfaceSpec struct {
	Label  string
	URL    string
	Bounds entity.Bounds
}

// WindowHost locates top-level windows.
type WindowHost interface {
	// Window returns ErrWindowNotFound when no window carries label.
	Window(ctx context.Context, label string) (Window, error)
	// ShowQuickWindow creates the quick window if needed, shows it and
	// gives it focus.
	ShowQuickWindow(ctx context.Context) error
}

// SurfaceHost manages embedded surfaces.
type SurfaceHost interface {
	// Surface returns ErrSurfaceNotFound when no live surface carries label.
	Surface(ctx context.Context, label string) (Surface, error)
	// Surfaces lists every live surface, including ones tabcast did not create.
	Surfaces(ctx context.Context) ([]Surface, error)
	CreateSurface(ctx context.Context, parent Window, spec SurfaceSpec) (Surface, error)
	// EvalScript runs script inside the document of the labelled surface.
	// It returns once the script was handed over, not when it finished.
	EvalScript(ctx context.Context, label, script string) error
}

// Host is the full window system consumed by the core.
type Host interface {
	WindowHost
	SurfaceHost
}

// EventListener receives events emitted to a window.
type EventListener func(ctx context.Context, payload any)

// EventSource lets the UI layer subscribe to window events.
type EventSource interface {
	// Listen registers fn for event on the labelled window and returns a
	// function removing it.
	Listen(window, event string, fn EventListener) (unlisten func())
}
