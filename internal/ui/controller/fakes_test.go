package controller

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
)

// stageHost is a minimal window system: one main window and a surface map.
type stageHost struct {
	mu      sync.Mutex
	noMain  bool
	live    map[string]*stageSurface
	scripts map[string]int
}

func newStageHost() *stageHost {
	return &stageHost{live: map[string]*stageSurface{}, scripts: map[string]int{}}
}

func (h *stageHost) Window(_ context.Context, label string) (port.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if label != port.MainWindowLabel || h.noMain {
		return nil, port.ErrWindowNotFound
	}
	return stageWindow{}, nil
}

func (h *stageHost) ShowQuickWindow(context.Context) error { return nil }

func (h *stageHost) Surface(_ context.Context, label string) (port.Surface, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.live[label]; ok {
		return s, nil
	}
	return nil, port.ErrSurfaceNotFound
}

func (h *stageHost) Surfaces(context.Context) ([]port.Surface, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]port.Surface, 0, len(h.live))
	for _, s := range h.live {
		out = append(out, s)
	}
	return out, nil
}

func (h *stageHost) CreateSurface(_ context.Context, _ port.Window, spec port.SurfaceSpec) (port.Surface, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := &stageSurface{host: h, label: spec.Label, bounds: spec.Bounds}
	h.live[spec.Label] = s
	return s, nil
}

func (h *stageHost) EvalScript(_ context.Context, label, _ string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.live[label]; !ok {
		return port.ErrSurfaceNotFound
	}
	h.scripts[label]++
	return nil
}

func (h *stageHost) labels() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.live))
	for label := range h.live {
		out = append(out, label)
	}
	slices.Sort(out)
	return out
}

func (h *stageHost) visible() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for label, s := range h.live {
		if s.shown {
			out = append(out, label)
		}
	}
	slices.Sort(out)
	return out
}

func (h *stageHost) boundsOf(label string) entity.Bounds {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live[label].bounds
}

func (h *stageHost) scriptCount(label string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scripts[label]
}

type stageSurface struct {
	host   *stageHost
	label  string
	bounds entity.Bounds
	shown  bool
}

func (s *stageSurface) Label() string { return s.label }

func (s *stageSurface) set(fn func()) error {
	s.host.mu.Lock()
	defer s.host.mu.Unlock()
	fn()
	return nil
}

func (s *stageSurface) SetPosition(_ context.Context, x, y int) error {
	return s.set(func() { s.bounds.X, s.bounds.Y = x, y })
}

func (s *stageSurface) SetSize(_ context.Context, w, h int) error {
	return s.set(func() { s.bounds.Width, s.bounds.Height = w, h })
}

func (s *stageSurface) SetAutoResize(context.Context, bool) error { return nil }
func (s *stageSurface) Show(context.Context) error              { return s.set(func() { s.shown = true }) }
func (s *stageSurface) Hide(context.Context) error              { return s.set(func() { s.shown = false }) }
func (s *stageSurface) Focus(context.Context) error             { return nil }

func (s *stageSurface) Close(context.Context) error {
	return s.set(func() { delete(s.host.live, s.label) })
}

type stageWindow struct{}

func (stageWindow) Label() string                           { return port.MainWindowLabel }
func (stageWindow) Show(context.Context) error              { return nil }
func (stageWindow) Hide(context.Context) error              { return nil }
func (stageWindow) Focus(context.Context) error             { return nil }
func (stageWindow) IsVisible(context.Context) (bool, error) { return true, nil }
func (stageWindow) IsFocused(context.Context) (bool, error) { return true, nil }
func (stageWindow) Emit(context.Context, string, any) error { return nil }

type memorySettings struct {
	mu    sync.Mutex
	s     entity.Settings
	saved []entity.Settings
	err   error
}

func (m *memorySettings) Settings() entity.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.Clone()
}

func (m *memorySettings) SaveSettings(_ context.Context, s entity.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.s = s.Clone()
	m.saved = append(m.saved, s.Clone())
	return nil
}

type fakeHotkeys struct {
	mu      sync.Mutex
	current string
	applied []string
	err     error
}

func (f *fakeHotkeys) Apply(_ context.Context, hotkey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied = append(f.applied, hotkey)
	if f.err != nil {
		return f.err
	}
	f.current = hotkey
	return nil
}

func (f *fakeHotkeys) Current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

type recordingView struct {
	mu      sync.Mutex
	states  []State
	notices []Notice
}

func (v *recordingView) Render(_ context.Context, s State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.states = append(v.states, s)
}

func (v *recordingView) Notify(_ context.Context, n Notice) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notices = append(v.notices, n)
}

func (v *recordingView) last() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.states[len(v.states)-1]
}

func (v *recordingView) levels() []NoticeLevel {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]NoticeLevel, 0, len(v.notices))
	for _, n := range v.notices {
		out = append(out, n.Level)
	}
	return out
}
