package gtkhost

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/infrastructure/events"
)

// windowHandle is the port.Window view of a GTK window.
type windowHandle struct {
	label string
	win   *gtk.ApplicationWindow
	emit  events.WindowEmitter
}

var _ port.Window = (*windowHandle)(nil)

func newWindowHandle(h *Host, label string, win *gtk.ApplicationWindow) *windowHandle {
	return &windowHandle{label: label, win: win, emit: h.bus.For(label)}
}

func (w *windowHandle) Label() string { return w.label }

func (w *windowHandle) Show(ctx context.Context) error {
	return invoke(ctx, func() error {
		w.win.SetVisible(true)
		w.win.Unminimize()
		return nil
	})
}

func (w *windowHandle) Hide(ctx context.Context) error {
	return invoke(ctx, func() error {
		w.win.SetVisible(false)
		return nil
	})
}

// Focus presents the window, which is how GTK4 asks for keyboard focus.
func (w *windowHandle) Focus(ctx context.Context) error {
	return invoke(ctx, func() error {
		w.win.Present()
		return nil
	})
}

func (w *windowHandle) IsVisible(ctx context.Context) (bool, error) {
	return query(ctx, func() (bool, error) {
		return w.win.IsVisible(), nil
	})
}

func (w *windowHandle) IsFocused(ctx context.Context) (bool, error) {
	return query(ctx, func() (bool, error) {
		return w.win.IsActive(), nil
	})
}

func (w *windowHandle) Emit(ctx context.Context, event string, payload any) error {
	return w.emit.Emit(ctx, event, payload)
}

// bindEscape routes Esc pressed in win to the dismiss callback. Esc stays a
// window-local binding and is never grabbed globally.
func bindEscape(h *Host, win *gtk.ApplicationWindow) {
	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		if keyval != gdk.KEY_Escape || state&gtk.AcceleratorGetDefaultModMask() != 0 {
			return false
		}
		h.spawn(func(cb Callbacks) {
			if cb.OnDismiss != nil {
				cb.OnDismiss(h.ctx)
			}
		})
		return true
	})
	win.AddController(keys)
}
