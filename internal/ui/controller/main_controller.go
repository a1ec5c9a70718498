// Package controller drives the main window around the surface orchestrator:
// which tab is active, where the stage is, and what happens to prompts that
// arrive before the stage was laid out.
package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/application/usecase"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
)

// SettingsTab is the active tab value meaning "no tool view".
const SettingsTab = "settings"

// NoticeLevel grades a user-facing notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// Notice is a message for the user.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// State is what the tab strip renders.
type State struct {
	Tools  []entity.Tool
	Active string
	Hotkey string
}

// View renders controller state. Implementations must not call back into
// the controller synchronously.
type View interface {
	Render(ctx context.Context, state State)
	Notify(ctx context.Context, notice Notice)
}

// HotkeyApplier is the hotkey coordinator as seen by the controller.
type HotkeyApplier interface {
	Apply(ctx context.Context, hotkey string) error
	Current() string
}

// Deps are the collaborators of a MainController. View may be nil.
type Deps struct {
	Settings     port.SettingsStore
	Orchestrator *usecase.SurfaceOrchestrator
	Dispatch     *usecase.DispatchUseCase
	Hotkeys      HotkeyApplier
	View         View
}

// MainController owns the main window state.
type MainController struct {
	deps Deps

	mu        sync.Mutex
	settings  entity.Settings
	active    string
	bounds    entity.Bounds
	boundsSeq uint64
	laidOut   bool
	pending   string
	unlisten  []func()
}

// New creates a controller seeded from the settings store. The first
// enabled tool starts active.
func New(deps Deps) *MainController {
	settings := deps.Settings.Settings()
	return &MainController{
		deps:     deps,
		settings: settings,
		active:   firstEnabled(settings.Tools),
	}
}

// Start applies the configured hotkey and subscribes to the main window
// events. Stop undoes the subscriptions.
func (c *MainController) Start(ctx context.Context, events port.EventSource) {
	c.mu.Lock()
	hotkey := c.settings.Hotkey
	c.unlisten = append(c.unlisten,
		events.Listen(port.MainWindowLabel, port.EventSend, func(ctx context.Context, payload any) {
			prompt, ok := promptOf(payload)
			if !ok {
				logging.FromContext(ctx).Warn().Type("payload", payload).Msg("ignoring malformed send event")
				return
			}
			_, _ = c.HandleSend(ctx, prompt)
		}),
		events.Listen(port.MainWindowLabel, port.EventOpenSettings, func(ctx context.Context, _ any) {
			_ = c.OpenSettings(ctx)
		}),
	)
	c.mu.Unlock()

	c.applyHotkey(ctx, hotkey)
	c.render(ctx)
}

// Stop removes the event subscriptions.
func (c *MainController) Stop() {
	c.mu.Lock()
	unlisten := c.unlisten
	c.unlisten = nil
	c.mu.Unlock()

	for _, fn := range unlisten {
		fn()
	}
}

// Active returns the active tab.
func (c *MainController) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Pending returns the prompt waiting for the first layout, if any.
func (c *MainController) Pending() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Settings returns the settings the controller currently works with.
func (c *MainController) Settings() entity.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.Clone()
}

// SetBounds records the stage rectangle and lays the surfaces out in it.
// A prompt that arrived before the first layout is delivered now.
func (c *MainController) SetBounds(ctx context.Context, bounds entity.Bounds) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setBoundsLocked(ctx, bounds)
}

// ApplyBounds is SetBounds for rectangles the host numbers in frame order.
// A rectangle with a sequence at or below the last applied one is stale and
// dropped.
func (c *MainController) ApplyBounds(ctx context.Context, seq uint64, bounds entity.Bounds) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.boundsSeq {
		logging.FromContext(ctx).Trace().Uint64("seq", seq).Uint64("applied", c.boundsSeq).Msg("stale stage bounds dropped")
		return nil
	}
	c.boundsSeq = seq
	return c.setBoundsLocked(ctx, bounds)
}

func (c *MainController) setBoundsLocked(ctx context.Context, bounds entity.Bounds) error {
	c.bounds = bounds.Clamp()
	c.laidOut = true
	if err := c.layoutLocked(ctx); err != nil {
		return err
	}

	if c.pending == "" {
		return nil
	}
	prompt := c.pending
	c.pending = ""
	_, err := c.sendLocked(ctx, prompt)
	return err
}

// SelectTab switches the visible surface. SettingsTab hides every surface.
func (c *MainController) SelectTab(ctx context.Context, id string) error {
	c.mu.Lock()
	if id != SettingsTab {
		if _, ok := entity.FindTool(c.settings.EnabledTools(), id); !ok {
			c.mu.Unlock()
			return usecase.ErrNoEnabledTools
		}
	}
	if id == c.active {
		c.mu.Unlock()
		return nil
	}
	c.active = id
	err := c.layoutLocked(ctx)
	c.mu.Unlock()

	c.render(ctx)
	return err
}

// OpenSettings switches to the settings tab.
func (c *MainController) OpenSettings(ctx context.Context) error {
	return c.SelectTab(ctx, SettingsTab)
}

// ApplySettings takes a new settings snapshot: the active tab is re-resolved,
// surfaces are reconciled and the hotkey is re-applied.
func (c *MainController) ApplySettings(ctx context.Context, settings entity.Settings) error {
	c.mu.Lock()
	c.settings = settings.Clone()
	enabled := c.settings.EnabledTools()
	if c.active != SettingsTab {
		if _, ok := entity.FindTool(enabled, c.active); !ok {
			c.active = firstEnabled(enabled)
		}
	}
	err := c.layoutLocked(ctx)
	c.mu.Unlock()

	c.applyHotkey(ctx, settings.Hotkey)
	c.render(ctx)
	return err
}

// SetHotkey applies hotkey and, once registered, persists it.
func (c *MainController) SetHotkey(ctx context.Context, hotkey string) error {
	hotkey = entity.NormalizeHotkey(hotkey)
	if err := c.deps.Hotkeys.Apply(ctx, hotkey); err != nil {
		c.notify(ctx, NoticeError, "Hotkey registration failed: "+err.Error())
		return err
	}

	c.mu.Lock()
	c.settings.Hotkey = hotkey
	settings := c.settings.Clone()
	c.mu.Unlock()

	if err := c.deps.Settings.SaveSettings(ctx, settings); err != nil {
		c.notify(ctx, NoticeError, "Saving settings failed: "+err.Error())
		return err
	}
	c.notify(ctx, NoticeInfo, "Hotkey updated")
	c.render(ctx)
	return nil
}

// HandleSend delivers prompt to every enabled tool and shows the first one.
// Before the first layout the prompt is kept and sent by SetBounds.
func (c *MainController) HandleSend(ctx context.Context, prompt string) (usecase.Report, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, usecase.ErrEmptyPrompt
	}

	c.mu.Lock()
	enabled := c.settings.EnabledTools()
	if len(enabled) == 0 {
		c.mu.Unlock()
		c.notify(ctx, NoticeWarning, "No enabled tools. Enable one in the settings first.")
		return nil, usecase.ErrNoEnabledTools
	}
	c.active = enabled[0].ID
	if !c.laidOut {
		c.pending = prompt
		c.mu.Unlock()
		logging.FromContext(ctx).Debug().Msg("stage not laid out yet, prompt kept pending")
		c.render(ctx)
		return nil, nil
	}

	if err := c.layoutLocked(ctx); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	report, err := c.sendLocked(ctx, prompt)
	c.mu.Unlock()

	c.render(ctx)
	return report, err
}

// layoutLocked mirrors the active tab onto the surfaces: ensure, then
// activate or hide, then resync geometry.
func (c *MainController) layoutLocked(ctx context.Context) error {
	if !c.laidOut {
		return nil
	}
	tools := c.settings.EnabledTools()
	o := c.deps.Orchestrator

	if _, err := o.Ensure(ctx, tools, c.bounds); err != nil {
		return err
	}
	if c.active == SettingsTab {
		o.HideAll(ctx, tools)
	} else if _, err := o.Activate(ctx, c.active, tools, c.bounds); err != nil {
		return err
	}
	o.Sync(ctx, tools, c.bounds)
	return nil
}

func (c *MainController) sendLocked(ctx context.Context, prompt string) (usecase.Report, error) {
	report, err := c.deps.Dispatch.SendToAll(ctx, prompt, c.settings.Tools, c.bounds)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to send prompt")
		return nil, err
	}
	logging.FromContext(ctx).Info().
		Int("targets", len(report)).
		Int("failed", len(report.Failed())).
		Msg("prompt dispatched")
	return report, nil
}

func (c *MainController) applyHotkey(ctx context.Context, hotkey string) {
	if err := c.deps.Hotkeys.Apply(ctx, hotkey); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("hotkey", hotkey).Msg("failed to apply hotkey")
		c.notify(ctx, NoticeError, "Hotkey registration failed, check its format or permissions")
	}
}

func (c *MainController) render(ctx context.Context) {
	if c.deps.View == nil {
		return
	}
	c.mu.Lock()
	state := State{
		Tools:  c.settings.EnabledTools(),
		Active: c.active,
		Hotkey: c.deps.Hotkeys.Current(),
	}
	c.mu.Unlock()
	c.deps.View.Render(ctx, state)
}

func (c *MainController) notify(ctx context.Context, level NoticeLevel, msg string) {
	if c.deps.View == nil {
		return
	}
	c.deps.View.Notify(ctx, Notice{Level: level, Message: msg})
}

func firstEnabled(tools []entity.Tool) string {
	enabled := entity.EnabledTools(tools)
	if len(enabled) == 0 {
		return SettingsTab
	}
	return enabled[0].ID
}

func promptOf(payload any) (string, bool) {
	switch p := payload.(type) {
	case port.SendPayload:
		return p.Prompt, true
	case *port.SendPayload:
		if p == nil {
			return "", false
		}
		return p.Prompt, true
	case string:
		return p, true
	}
	return "", false
}

// IsUserError reports whether err should be shown to the user rather than
// only logged.
func IsUserError(err error) bool {
	return errors.Is(err, usecase.ErrEmptyPrompt) ||
		errors.Is(err, usecase.ErrNoEnabledTools) ||
		errors.Is(err, entity.ErrHotkeyEmpty) ||
		errors.Is(err, entity.ErrHotkeyReserved) ||
		errors.Is(err, usecase.ErrHotkeyUnavailable)
}
