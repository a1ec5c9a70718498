package gtkhost

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
)

// surface is a WebKit view laid over the main window. Its position is
// expressed with start alignment plus margins.
type surface struct {
	host  *Host
	main  *mainWindow
	label string
	view  *webkit.WebView

	// autoResize is guarded by host.mu.
	autoResize bool
}

var _ port.Surface = (*surface)(nil)

// newSurface must run on the main thread.
func newSurface(h *Host, main *mainWindow, spec port.SurfaceSpec) *surface {
	view := webkit.NewWebView()
	if settings := view.Settings(); settings != nil {
		settings.SetEnableDeveloperExtras(h.opts.EnableDevTools)
		settings.SetEnableJavascript(true)
	}
	view.SetHAlign(gtk.AlignStart)
	view.SetVAlign(gtk.AlignStart)
	view.SetVisible(false)

	s := &surface{host: h, main: main, label: spec.Label, view: view}
	s.place(spec.Bounds)
	main.root.AddOverlay(view)
	view.LoadURI(spec.URL)

	logging.FromContext(h.ctx).Debug().
		Str("surface", spec.Label).
		Str("url", spec.URL).
		Msg("surface created")
	return s
}

func (s *surface) Label() string { return s.label }

// place moves and sizes the view. Main thread only.
func (s *surface) place(b entity.Bounds) {
	b = b.Clamp()
	s.view.SetMarginStart(b.X)
	s.view.SetMarginTop(b.Y)
	s.view.SetSizeRequest(b.Width, b.Height)
}

func (s *surface) SetPosition(ctx context.Context, x, y int) error {
	return invoke(ctx, func() error {
		s.view.SetMarginStart(max(x, 0))
		s.view.SetMarginTop(max(y, 0))
		return nil
	})
}

func (s *surface) SetSize(ctx context.Context, width, height int) error {
	return invoke(ctx, func() error {
		s.view.SetSizeRequest(max(width, 0), max(height, 0))
		return nil
	})
}

// SetAutoResize makes the surface follow the stage rectangle.
func (s *surface) SetAutoResize(ctx context.Context, enabled bool) error {
	return invoke(ctx, func() error {
		s.host.mu.Lock()
		s.autoResize = enabled
		s.host.mu.Unlock()
		if enabled && s.main.hasSize {
			s.place(s.main.bounds)
		}
		return nil
	})
}

func (s *surface) Show(ctx context.Context) error {
	return invoke(ctx, func() error {
		s.view.SetVisible(true)
		return nil
	})
}

func (s *surface) Hide(ctx context.Context) error {
	return invoke(ctx, func() error {
		s.view.SetVisible(false)
		return nil
	})
}

func (s *surface) Focus(ctx context.Context) error {
	return invoke(ctx, func() error {
		s.view.GrabFocus()
		return nil
	})
}

// Close removes the view from the window and forgets the label.
func (s *surface) Close(ctx context.Context) error {
	err := invoke(ctx, func() error {
		s.main.root.RemoveOverlay(s.view)
		return nil
	})
	if err == nil {
		s.host.removeSurface(s.label)
	}
	return err
}

// eval hands script to WebKit. Main thread only.
func (s *surface) eval(script string) error {
	log := logging.FromContext(s.host.ctx).With().Str("surface", s.label).Logger()
	s.view.EvaluateJavascript(s.host.ctx, script, -1, "", "", func(res gio.AsyncResulter) {
		if _, err := s.view.EvaluateJavascriptFinish(res); err != nil {
			log.Debug().Err(err).Msg("injected script failed")
		}
	})
	return nil
}
