package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/tabcast/internal/application/port"
)

// fakeHost is an in-memory window system recording every surface call.
type fakeHost struct {
	mu        sync.Mutex
	main      *fakeWindow
	live      map[string]*fakeSurface
	created   []string
	closed    []string
	lookups   int
	evals     map[string][]string
	evalErr   map[string]error
	createErr map[string]error
	opErr     map[string]error // "label:op" -> error
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		main:      &fakeWindow{label: port.MainWindowLabel},
		live:      map[string]*fakeSurface{},
		evals:     map[string][]string{},
		evalErr:   map[string]error{},
		createErr: map[string]error{},
		opErr:     map[string]error{},
	}
}

func (h *fakeHost) Window(_ context.Context, label string) (port.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if label == port.MainWindowLabel && h.main != nil {
		return h.main, nil
	}
	return nil, port.ErrWindowNotFound
}

func (h *fakeHost) ShowQuickWindow(context.Context) error { return nil }

func (h *fakeHost) Surface(_ context.Context, label string) (port.Surface, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lookups++
	if s, ok := h.live[label]; ok {
		return s, nil
	}
	return nil, port.ErrSurfaceNotFound
}

func (h *fakeHost) Surfaces(context.Context) ([]port.Surface, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	labels := make([]string, 0, len(h.live))
	for label := range h.live {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	out := make([]port.Surface, 0, len(labels))
	for _, label := range labels {
		out = append(out, h.live[label])
	}
	return out, nil
}

func (h *fakeHost) CreateSurface(_ context.Context, parent port.Window, spec port.SurfaceSpec) (port.Surface, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.createErr[spec.Label]; err != nil {
		return nil, err
	}
	if _, dup := h.live[spec.Label]; dup {
		return nil, fmt.Errorf("duplicate surface %s", spec.Label)
	}
	s := &fakeSurface{
		host:       h,
		label:      spec.Label,
		url:        spec.URL,
		parent:     parent.Label(),
		x:          spec.Bounds.X,
		y:          spec.Bounds.Y,
		w:          spec.Bounds.Width,
		hgt:        spec.Bounds.Height,
		autoResize: true,
	}
	h.live[spec.Label] = s
	h.created = append(h.created, spec.Label)
	return s, nil
}

func (h *fakeHost) EvalScript(_ context.Context, label, script string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.evalErr[label]; err != nil {
		return err
	}
	if _, ok := h.live[label]; !ok {
		return port.ErrSurfaceNotFound
	}
	h.evals[label] = append(h.evals[label], script)
	return nil
}

// seed adds live surfaces without recording them as created.
func (h *fakeHost) seed(labels ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, label := range labels {
		h.live[label] = &fakeSurface{host: h, label: label}
	}
}

func (h *fakeHost) liveLabels() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	labels := make([]string, 0, len(h.live))
	for label := range h.live {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

func (h *fakeHost) visibleLabels() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var labels []string
	for label, s := range h.live {
		if s.visible {
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)
	return labels
}

func (h *fakeHost) surface(label string) *fakeSurface {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live[label]
}

type fakeSurface struct {
	host       *fakeHost
	label      string
	url        string
	parent     string
	x, y, w    int
	hgt        int
	visible    bool
	focused    bool
	autoResize bool
	moves      int
}

func (s *fakeSurface) Label() string { return s.label }

func (s *fakeSurface) op(name string, apply func()) error {
	s.host.mu.Lock()
	defer s.host.mu.Unlock()
	if err := s.host.opErr[s.label+":"+name]; err != nil {
		return err
	}
	apply()
	return nil
}

func (s *fakeSurface) SetPosition(_ context.Context, x, y int) error {
	return s.op("position", func() { s.x, s.y = x, y; s.moves++ })
}

func (s *fakeSurface) SetSize(_ context.Context, w, h int) error {
	return s.op("size", func() { s.w, s.hgt = w, h })
}

func (s *fakeSurface) SetAutoResize(_ context.Context, enabled bool) error {
	return s.op("autoresize", func() { s.autoResize = enabled })
}

func (s *fakeSurface) Show(context.Context) error {
	return s.op("show", func() { s.visible = true })
}

func (s *fakeSurface) Hide(context.Context) error {
	return s.op("hide", func() { s.visible = false; s.focused = false })
}

func (s *fakeSurface) Focus(context.Context) error {
	return s.op("focus", func() {
		for _, other := range s.host.live {
			other.focused = false
		}
		s.focused = true
	})
}

func (s *fakeSurface) Close(context.Context) error {
	return s.op("close", func() {
		delete(s.host.live, s.label)
		s.host.closed = append(s.host.closed, s.label)
	})
}

type fakeWindow struct {
	label string
}

func (w *fakeWindow) Label() string                          { return w.label }
func (w *fakeWindow) Show(context.Context) error             { return nil }
func (w *fakeWindow) Hide(context.Context) error             { return nil }
func (w *fakeWindow) Focus(context.Context) error            { return nil }
func (w *fakeWindow) IsVisible(context.Context) (bool, error) { return true, nil }
func (w *fakeWindow) IsFocused(context.Context) (bool, error) { return true, nil }
func (w *fakeWindow) Emit(context.Context, string, any) error { return nil }
