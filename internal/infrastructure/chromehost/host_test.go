package chromehost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/infrastructure/events"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	bus := events.NewBus(context.Background())
	t.Cleanup(bus.Close)
	return New(context.Background(), Options{Width: 1280, Height: 800, Headless: true}, bus)
}

func TestHost_BeforeStart(t *testing.T) {
	h := newTestHost(t)
	ctx := context.Background()

	_, err := h.Window(ctx, port.MainWindowLabel)
	assert.ErrorIs(t, err, port.ErrWindowNotFound)

	_, err = h.CreateSurface(ctx, &virtualWindow{label: port.MainWindowLabel}, port.SurfaceSpec{Label: "ai-tab-a"})
	assert.ErrorIs(t, err, ErrBrowserNotStarted)

	_, err = h.Surface(ctx, "ai-tab-a")
	assert.ErrorIs(t, err, port.ErrSurfaceNotFound)
	assert.ErrorIs(t, h.EvalScript(ctx, "ai-tab-a", "1"), port.ErrSurfaceNotFound)

	surfaces, err := h.Surfaces(ctx)
	require.NoError(t, err)
	assert.Empty(t, surfaces)
}

func TestHost_NoQuickWindow(t *testing.T) {
	h := newTestHost(t)

	assert.ErrorIs(t, h.ShowQuickWindow(context.Background()), ErrQuickWindowUnsupported)
	_, err := h.Window(context.Background(), port.QuickWindowLabel)
	assert.ErrorIs(t, err, port.ErrWindowNotFound)
}

func TestHost_RejectsForeignParent(t *testing.T) {
	h := newTestHost(t)

	_, err := h.CreateSurface(context.Background(), &virtualWindow{label: port.QuickWindowLabel}, port.SurfaceSpec{Label: "ai-tab-a"})
	assert.Error(t, err)
}

func TestAllocatorOptions(t *testing.T) {
	h := newTestHost(t)
	base := len(h.allocatorOptions())

	h.opts.ProfileDir = t.TempDir()
	h.opts.ExecPath = "/usr/bin/chromium"
	assert.Len(t, h.allocatorOptions(), base+2)
}

func TestTab_PositionAndVisibility(t *testing.T) {
	h := newTestHost(t)
	closed := false
	tb := &tab{host: h, label: "ai-tab-a", ctx: context.Background(), cancel: func() { closed = true }, visible: true}
	h.surfaces[tb.label] = tb
	ctx := context.Background()

	require.NoError(t, tb.SetPosition(ctx, 10, 20))
	require.NoError(t, tb.Hide(ctx))
	assert.False(t, tb.isVisible())
	assert.Equal(t, entity.Bounds{X: 10, Y: 20}, tb.bounds)
	require.NoError(t, tb.SetAutoResize(ctx, false))

	require.NoError(t, tb.Close(ctx))
	assert.True(t, closed)
	_, err := h.Surface(ctx, "ai-tab-a")
	assert.ErrorIs(t, err, port.ErrSurfaceNotFound)
}

func TestVirtualWindow(t *testing.T) {
	bus := events.NewBus(context.Background())
	defer bus.Close()

	got := make(chan any, 1)
	bus.Listen(port.MainWindowLabel, port.EventOpenSettings, func(_ context.Context, p any) { got <- p })

	w := &virtualWindow{label: port.MainWindowLabel, emit: bus.For(port.MainWindowLabel), visible: true}
	ctx := context.Background()

	require.NoError(t, w.Hide(ctx))
	visible, err := w.IsVisible(ctx)
	require.NoError(t, err)
	assert.False(t, visible)

	require.NoError(t, w.Show(ctx))
	focused, err := w.IsFocused(ctx)
	require.NoError(t, err)
	assert.True(t, focused)

	require.NoError(t, w.Emit(ctx, port.EventOpenSettings, "x"))
	assert.Equal(t, "x", <-got)
}
