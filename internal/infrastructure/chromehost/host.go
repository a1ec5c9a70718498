// Package chromehost runs the surfaces as tabs of one Chrome instance driven
// over the DevTools protocol. There is no quick window; the main window is
// virtual and only carries events.
package chromehost

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/infrastructure/events"
	"github.com/bnema/tabcast/internal/logging"
)

const (
	evalTimeout     = 10 * time.Second
	navigateTimeout = 45 * time.Second
)

var (
	// ErrQuickWindowUnsupported is returned by ShowQuickWindow.
	ErrQuickWindowUnsupported = errors.New("quick window is not available with the chrome backend")
	// ErrBrowserNotStarted is returned before Run started Chrome.
	ErrBrowserNotStarted = errors.New("chrome not started")
)

// Options configure Chrome.
type Options struct {
	ExecPath   string
	ProfileDir string
	Headless   bool
	Width      int
	Height     int
}

// Host implements port.Host with chromedp.
type Host struct {
	ctx  context.Context
	opts Options
	bus  *events.Bus

	mu       sync.RWMutex
	browser  context.Context
	main     *virtualWindow
	surfaces map[string]*tab
}

var _ port.Host = (*Host)(nil)

// New creates the host. Run starts Chrome.
func New(ctx context.Context, opts Options, bus *events.Bus) *Host {
	return &Host{
		ctx:      logging.WithComponent(ctx, "chromehost"),
		opts:     opts,
		bus:      bus,
		surfaces: make(map[string]*tab),
	}
}

func (h *Host) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("exclude-switches", "enable-automation"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-backgrounding-occluded-windows", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-session-crashed-bubble", true),
		chromedp.WindowSize(h.opts.Width, h.opts.Height),
	}
	if h.opts.ProfileDir != "" {
		opts = append(opts, chromedp.UserDataDir(h.opts.ProfileDir))
	}
	if h.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(h.opts.ExecPath))
	}
	if h.opts.Headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	} else {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	return opts
}

// Run starts Chrome, calls onReady with the viewport as stage bounds and
// blocks until ctx is done.
func (h *Host) Run(ctx context.Context, onReady func(ctx context.Context, bounds entity.Bounds)) error {
	log := logging.FromContext(h.ctx)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, h.allocatorOptions()...)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			log.Debug().Msgf(format, args...)
		}),
	)
	defer browserCancel()

	if err := chromedp.Run(browserCtx); err != nil {
		return fmt.Errorf("start chrome: %w", err)
	}

	h.mu.Lock()
	h.browser = browserCtx
	h.main = &virtualWindow{label: port.MainWindowLabel, emit: h.bus.For(port.MainWindowLabel), visible: true}
	h.mu.Unlock()

	log.Info().Bool("headless", h.opts.Headless).Msg("chrome started")
	if onReady != nil {
		go onReady(h.ctx, entity.Bounds{Width: h.opts.Width, Height: h.opts.Height})
	}

	<-ctx.Done()

	h.mu.Lock()
	for label, t := range h.surfaces {
		t.cancel()
		delete(h.surfaces, label)
	}
	h.browser = nil
	h.mu.Unlock()
	return nil
}

// Window returns the virtual main window.
func (h *Host) Window(_ context.Context, label string) (port.Window, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if label == port.MainWindowLabel && h.main != nil {
		return h.main, nil
	}
	return nil, fmt.Errorf("%w: %s", port.ErrWindowNotFound, label)
}

// ShowQuickWindow always fails.
func (h *Host) ShowQuickWindow(context.Context) error {
	return ErrQuickWindowUnsupported
}

// Surface returns the tab carrying label.
func (h *Host) Surface(_ context.Context, label string) (port.Surface, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if t, ok := h.surfaces[label]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", port.ErrSurfaceNotFound, label)
}

// Surfaces lists the tabs ordered by label.
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

// CreateSurface opens a new tab at spec.URL with its viewport sized to
// spec.Bounds.
func (h *Host) CreateSurface(ctx context.Context, parent port.Window, spec port.SurfaceSpec) (port.Surface, error) {
	if parent == nil || parent.Label() != port.MainWindowLabel {
		return nil, fmt.Errorf("surfaces can only be placed on the main window")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.browser == nil {
		return nil, ErrBrowserNotStarted
	}
	if _, dup := h.surfaces[spec.Label]; dup {
		return nil, fmt.Errorf("surface %s already exists", spec.Label)
	}

	tabCtx, cancel := chromedp.NewContext(h.browser)
	t := &tab{host: h, label: spec.Label, ctx: tabCtx, cancel: cancel, bounds: spec.Bounds.Clamp()}

	runCtx, stop := t.runContext(ctx, navigateTimeout)
	defer stop()
	err := chromedp.Run(runCtx,
		t.metrics(),
		chromedp.Navigate(spec.URL),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open %s: %w", spec.URL, err)
	}

	h.surfaces[spec.Label] = t
	logging.FromContext(h.ctx).Debug().Str("surface", spec.Label).Str("url", spec.URL).Msg("tab opened")
	return t, nil
}

// EvalScript evaluates script in the labelled tab.
func (h *Host) EvalScript(ctx context.Context, label, script string) error {
	h.mu.RLock()
	t, ok := h.surfaces[label]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", port.ErrSurfaceNotFound, label)
	}

	return t.run(ctx, chromedp.Evaluate(script, nil))
}

func (h *Host) forget(label string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.surfaces, label)
}

// tab is one Chrome target.
type tab struct {
	host   *Host
	label  string
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	bounds  entity.Bounds
	visible bool
}

var _ port.Surface = (*tab)(nil)

// runContext derives a context from the tab that also ends with ctx.
// Cancelling it does not close the tab.
func (t *tab) runContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithTimeout(t.ctx, timeout)
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}

func (t *tab) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, stop := t.runContext(ctx, evalTimeout)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

func (t *tab) metrics() chromedp.Action {
	t.mu.Lock()
	b := t.bounds
	t.mu.Unlock()
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if b.IsEmpty() {
			return emulation.ClearDeviceMetricsOverride().Do(ctx)
		}
		return emulation.SetDeviceMetricsOverride(int64(b.Width), int64(b.Height), 1, false).Do(ctx)
	})
}

func (t *tab) Label() string { return t.label }

// SetPosition is recorded only; tabs have no position inside the window.
func (t *tab) SetPosition(_ context.Context, x, y int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bounds.X, t.bounds.Y = x, y
	return nil
}

// SetSize resizes the emulated viewport.
func (t *tab) SetSize(ctx context.Context, width, height int) error {
	t.mu.Lock()
	t.bounds.Width, t.bounds.Height = max(width, 0), max(height, 0)
	t.mu.Unlock()
	return t.run(ctx, t.metrics())
}

// SetAutoResize with true drops the emulated viewport so the tab follows
// the browser window.
func (t *tab) SetAutoResize(ctx context.Context, enabled bool) error {
	if !enabled {
		return nil
	}
	return t.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return emulation.ClearDeviceMetricsOverride().Do(ctx)
	}))
}

// Show brings the tab to the front.
func (t *tab) Show(ctx context.Context) error {
	if err := t.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return page.BringToFront().Do(ctx)
	})); err != nil {
		return err
	}
	t.mu.Lock()
	t.visible = true
	t.mu.Unlock()
	return nil
}

// Hide only marks the tab hidden; the front tab changes on the next Show.
func (t *tab) Hide(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visible = false
	return nil
}

func (t *tab) Focus(ctx context.Context) error {
	return t.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return emulation.SetFocusEmulationEnabled(true).Do(ctx)
	}))
}

// Close closes the target.
func (t *tab) Close(context.Context) error {
	t.cancel()
	t.host.forget(t.label)
	return nil
}

// virtualWindow stands in for the main window.
type virtualWindow struct {
	label string
	emit  events.WindowEmitter

	mu      sync.Mutex
	visible bool
}

var _ port.Window = (*virtualWindow)(nil)

func (w *virtualWindow) Label() string { return w.label }

func (w *virtualWindow) Show(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = true
	return nil
}

func (w *virtualWindow) Hide(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = false
	return nil
}

func (w *virtualWindow) Focus(context.Context) error { return nil }

func (w *virtualWindow) IsVisible(context.Context) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible, nil
}

func (w *virtualWindow) IsFocused(ctx context.Context) (bool, error) {
	return w.IsVisible(ctx)
}

func (w *virtualWindow) Emit(ctx context.Context, event string, payload any) error {
	return w.emit.Emit(ctx, event, payload)
}

func (t *tab) isVisible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}
