// Package gtkhost is the GTK4 window system: a main window whose stage is
// covered by one WebKit view per tool, and the undecorated quick window.
//
// Every GTK call runs on the main thread. Methods of Host may be called from
// any goroutine; they marshal through glib.IdleAdd and wait. UI callbacks are
// started on their own goroutine so they can call back into the Host.
package gtkhost

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/infrastructure/events"
	"github.com/bnema/tabcast/internal/logging"
)

const applicationID = "io.github.bnema.tabcast"

// ErrNotRunning is returned by window lookups before the application
// activated.
var ErrNotRunning = errors.New("gtk application not running")

// Options configure the host.
type Options struct {
	MainWidth      int
	MainHeight     int
	QuickWidth     int
	QuickHeight    int
	StartVisible   bool
	EnableDevTools bool
	// DataDir and CacheDir back the persistent WebKit network session.
	// Empty means the WebKit default session.
	DataDir  string
	CacheDir string
	// ConfigFile is shown on the settings page.
	ConfigFile string
}

// Callbacks connect the windows to the controllers. Each runs on its own
// goroutine. Nil callbacks are skipped.
type Callbacks struct {
	OnReady       func(ctx context.Context)
	OnBounds      func(ctx context.Context, seq uint64, bounds entity.Bounds)
	OnSelectTab   func(ctx context.Context, id string)
	OnSetHotkey   func(ctx context.Context, hotkey string)
	OnQuickSubmit func(ctx context.Context, text string) QuickReply
	OnQuickBlur   func(ctx context.Context, text string)
	OnDismiss     func(ctx context.Context)
}

// QuickReply is applied to the quick entry after a submit.
type QuickReply struct {
	Clear   bool
	Message string
}

// Host implements port.Host on GTK4 and WebKitGTK 6.
type Host struct {
	ctx  context.Context
	opts Options
	bus  *events.Bus

	app     *gtk.Application
	session *webkit.NetworkSession

	mu       sync.RWMutex
	cb       Callbacks
	main     *mainWindow
	quick    *quickWindow
	surfaces map[string]*surface
	unlisten func()
}

var _ port.Host = (*Host)(nil)

// New creates the host. Run starts it.
func New(ctx context.Context, opts Options, bus *events.Bus) *Host {
	return &Host{
		ctx:      logging.WithComponent(ctx, "gtkhost"),
		opts:     opts,
		bus:      bus,
		surfaces: make(map[string]*surface),
	}
}

// SetCallbacks replaces the UI callbacks.
func (h *Host) SetCallbacks(cb Callbacks) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb = cb
}

func (h *Host) callbacks() Callbacks {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cb
}

// Run blocks in the GTK main loop until ctx is done or the application
// quits. It must be called from the main goroutine.
func (h *Host) Run(ctx context.Context) error {
	log := logging.FromContext(h.ctx)

	h.app = gtk.NewApplication(applicationID, gio.ApplicationNonUnique)
	h.app.ConnectActivate(func() { h.activate() })

	stop := context.AfterFunc(ctx, func() {
		post(func() { h.app.Quit() })
	})
	defer stop()

	log.Debug().Msg("starting gtk main loop")
	if code := h.app.Run([]string{os.Args[0]}); code != 0 {
		return fmt.Errorf("gtk application exited with status %d", code)
	}
	h.teardown()
	return nil
}

func (h *Host) activate() {
	log := logging.FromContext(h.ctx)

	if h.opts.DataDir != "" && h.session == nil {
		// The first network session created becomes the default one.
		h.session = webkit.NewNetworkSession(h.opts.DataDir, h.opts.CacheDir)
		if h.session != nil && h.session.IsEphemeral() {
			log.Warn().Msg("webkit network session is ephemeral, logins will not persist")
		}
	}

	main := newMainWindow(h)
	h.mu.Lock()
	h.main = main
	h.mu.Unlock()

	h.app.Hold()
	if h.opts.StartVisible {
		main.win.Present()
	}

	h.unlisten = h.bus.Listen(port.QuickWindowLabel, port.EventQuickFocus, func(context.Context, any) {
		post(func() {
			if q := h.quickWindow(); q != nil {
				q.focusEntry()
			}
		})
	})

	log.Info().Bool("visible", h.opts.StartVisible).Msg("main window ready")
	h.spawn(func(cb Callbacks) {
		if cb.OnReady != nil {
			cb.OnReady(h.ctx)
		}
	})
}

func (h *Host) teardown() {
	if h.unlisten != nil {
		h.unlisten()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.surfaces = make(map[string]*surface)
	h.main = nil
	h.quick = nil
}

// spawn runs fn with the current callbacks off the main thread.
func (h *Host) spawn(fn func(cb Callbacks)) {
	cb := h.callbacks()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.FromContext(h.ctx).Error().Interface("panic", r).Msg("ui callback panicked")
			}
		}()
		fn(cb)
	}()
}

// Quit stops the main loop.
func (h *Host) Quit() {
	if h.app == nil {
		return
	}
	post(func() {
		h.app.Release()
		h.app.Quit()
	})
}

func (h *Host) mainWindow() *mainWindow {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.main
}

func (h *Host) quickWindow() *quickWindow {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.quick
}

// Window returns the main or quick window.
func (h *Host) Window(_ context.Context, label string) (port.Window, error) {
	switch label {
	case port.MainWindowLabel:
		if m := h.mainWindow(); m != nil {
			return m.handle, nil
		}
	case port.QuickWindowLabel:
		if q := h.quickWindow(); q != nil {
			return q.handle, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", port.ErrWindowNotFound, label)
}

// ShowQuickWindow creates the quick window on first use, then presents it
// and focuses its entry.
func (h *Host) ShowQuickWindow(ctx context.Context) error {
	return invoke(ctx, func() error {
		if h.app == nil {
			return ErrNotRunning
		}
		h.mu.Lock()
		if h.quick == nil {
			h.quick = newQuickWindow(h)
		}
		q := h.quick
		h.mu.Unlock()

		q.present()
		return nil
	})
}

// Surface returns the live surface carrying label.
func (h *Host) Surface(_ context.Context, label string) (port.Surface, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if s, ok := h.surfaces[label]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", port.ErrSurfaceNotFound, label)
}

// Surfaces lists live surfaces ordered by label.
func (h *Host) Surfaces(context.Context) ([]port.Surface, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	labels := make([]string, 0, len(h.surfaces))
	for label := range h.surfaces {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	out := make([]port.Surface, 0, len(labels))
	for _, label := range labels {
		out = append(out, h.surfaces[label])
	}
	return out, nil
}

// CreateSurface adds a hidden web view on the stage of the main window.
func (h *Host) CreateSurface(ctx context.Context, parent port.Window, spec port.SurfaceSpec) (port.Surface, error) {
	if parent == nil || parent.Label() != port.MainWindowLabel {
		return nil, fmt.Errorf("surfaces can only be placed on the main window")
	}
	return query(ctx, func() (*surface, error) {
		main := h.mainWindow()
		if main == nil {
			return nil, fmt.Errorf("%w: %s", port.ErrWindowNotFound, port.MainWindowLabel)
		}

		h.mu.Lock()
		defer h.mu.Unlock()
		if _, dup := h.surfaces[spec.Label]; dup {
			return nil, fmt.Errorf("surface %s already exists", spec.Label)
		}
		s := newSurface(h, main, spec)
		h.surfaces[spec.Label] = s
		return s, nil
	})
}

// EvalScript runs script in the page of the labelled surface. Script
// errors are logged when WebKit reports them.
func (h *Host) EvalScript(ctx context.Context, label, script string) error {
	h.mu.RLock()
	s, ok := h.surfaces[label]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", port.ErrSurfaceNotFound, label)
	}
	return invoke(ctx, func() error {
		return s.eval(script)
	})
}

func (h *Host) removeSurface(label string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.surfaces, label)
}

// autoResizing returns the surfaces that follow the stage.
func (h *Host) autoResizing() []*surface {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []*surface
	for _, s := range h.surfaces {
		if s.autoResize {
			out = append(out, s)
		}
	}
	return out
}
