package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/application/port/mocks"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var stage = entity.Bounds{X: 0, Y: 48, Width: 960, Height: 620}

func toolsABC() []entity.Tool {
	return []entity.Tool{
		{ID: "a", Name: "A", URL: "https://a.example", Enabled: true, SendWithEnter: true},
		{ID: "b", Name: "B", URL: "https://b.example", Enabled: true, SendWithEnter: true},
		{ID: "c", Name: "C", URL: "https://c.example", Enabled: true, SendWithEnter: true},
	}
}

func TestEnsure_CreatesHiddenFixedSizeSurfaces(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)

	report, err := o.Ensure(context.Background(), toolsABC(), stage)
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, []string{"ai-tab-a", "ai-tab-b", "ai-tab-c"}, host.liveLabels())
	s := host.surface("ai-tab-b")
	assert.Equal(t, "https://b.example", s.url)
	assert.Equal(t, port.MainWindowLabel, s.parent)
	assert.Equal(t, [4]int{0, 48, 960, 620}, [4]int{s.x, s.y, s.w, s.hgt})
	assert.False(t, s.visible)
	assert.False(t, s.autoResize)
}

func TestEnsure_IsIdempotent(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)
	ctx := context.Background()

	_, err := o.Ensure(ctx, toolsABC(), stage)
	require.NoError(t, err)
	before := host.liveLabels()

	report, err := o.Ensure(ctx, toolsABC(), stage)
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, before, host.liveLabels())
	assert.Len(t, host.created, 3)
	assert.Empty(t, host.closed)
}

func TestEnsure_ReconcilesAgainstKeepSet(t *testing.T) {
	host := newFakeHost()
	host.seed("ai-tab-a", "ai-tab-b", "ai-tab-c", "devtools")
	o := NewSurfaceOrchestrator(host)

	tools := toolsABC()
	tools[1].Enabled = false

	_, err := o.Ensure(context.Background(), tools, stage)
	require.NoError(t, err)

	assert.Equal(t, []string{"ai-tab-a", "ai-tab-c", "devtools"}, host.liveLabels())
	assert.Equal(t, []string{"ai-tab-b"}, host.closed)
	assert.Empty(t, host.created)
}

func TestEnsure_RecreatesExternallyClosedSurface(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)
	ctx := context.Background()

	_, err := o.Ensure(ctx, toolsABC(), stage)
	require.NoError(t, err)
	require.NoError(t, host.surface("ai-tab-a").Close(ctx))

	_, err = o.Ensure(ctx, toolsABC(), stage)
	require.NoError(t, err)

	assert.Equal(t, []string{"ai-tab-a", "ai-tab-b", "ai-tab-c"}, host.liveLabels())
	assert.Len(t, host.created, 4)
}

func TestEnsure_MissingMainWindowIsNoop(t *testing.T) {
	host := newFakeHost()
	host.main = nil
	host.seed("ai-tab-stale")
	o := NewSurfaceOrchestrator(host)

	report, err := o.Ensure(context.Background(), toolsABC(), stage)

	assert.ErrorIs(t, err, port.ErrWindowNotFound)
	assert.Nil(t, report)
	assert.Equal(t, []string{"ai-tab-stale"}, host.liveLabels())
	assert.Zero(t, host.lookups)
}

func TestEnsure_FailureIsolatedPerTool(t *testing.T) {
	host := newFakeHost()
	host.createErr["ai-tab-b"] = errors.New("webkit refused")
	o := NewSurfaceOrchestrator(host)

	report, err := o.Ensure(context.Background(), toolsABC(), stage)
	require.NoError(t, err)

	assert.Equal(t, []string{"ai-tab-a", "ai-tab-c"}, host.liveLabels())
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "ai-tab-b", failed[0].Key)
	assert.ErrorContains(t, report.Err(), "webkit refused")
}

func TestEnsure_DuplicateLabelsCreateOnce(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)
	tools := []entity.Tool{
		{ID: "Chat", URL: "https://one.example", Enabled: true},
		{ID: "chat", URL: "https://two.example", Enabled: true},
	}

	report, err := o.Ensure(context.Background(), tools, stage)
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, []string{"ai-tab-chat"}, host.liveLabels())
	assert.Equal(t, "https://one.example", host.surface("ai-tab-chat").url)
}

func TestActivate_ExclusiveVisibility(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)
	ctx := context.Background()

	_, err := o.Activate(ctx, "b", toolsABC(), stage)
	require.NoError(t, err)
	assert.Equal(t, []string{"ai-tab-b"}, host.visibleLabels())
	assert.True(t, host.surface("ai-tab-b").focused)

	_, err = o.Activate(ctx, "c", toolsABC(), stage)
	require.NoError(t, err)
	assert.Equal(t, []string{"ai-tab-c"}, host.visibleLabels())
	assert.True(t, host.surface("ai-tab-c").focused)
	assert.False(t, host.surface("ai-tab-b").focused)
}

func TestActivate_RepositionsEverySurface(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)
	ctx := context.Background()
	_, err := o.Ensure(ctx, toolsABC(), stage)
	require.NoError(t, err)

	moved := entity.Bounds{X: 10, Y: 60, Width: 500, Height: 400}
	_, err = o.Activate(ctx, "a", toolsABC(), moved)
	require.NoError(t, err)

	for _, label := range host.liveLabels() {
		s := host.surface(label)
		assert.Equal(t, [4]int{10, 60, 500, 400}, [4]int{s.x, s.y, s.w, s.hgt}, label)
	}
}

func TestActivate_UnknownIDHidesAll(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)

	_, err := o.Activate(context.Background(), "settings", toolsABC(), stage)
	require.NoError(t, err)

	assert.Empty(t, host.visibleLabels())
}

func TestActivate_MissingMainWindow(t *testing.T) {
	host := newFakeHost()
	host.main = nil
	o := NewSurfaceOrchestrator(host)

	_, err := o.Activate(context.Background(), "a", toolsABC(), stage)

	assert.ErrorIs(t, err, port.ErrWindowNotFound)
	assert.Empty(t, host.liveLabels())
}

func TestActivate_HideFailureDoesNotStopActiveSurface(t *testing.T) {
	host := newFakeHost()
	host.opErr["ai-tab-a:hide"] = errors.New("hide failed")
	o := NewSurfaceOrchestrator(host)

	report, err := o.Activate(context.Background(), "c", toolsABC(), stage)
	require.NoError(t, err)

	assert.Equal(t, []string{"ai-tab-a"}, report.Failed().Keys())
	assert.Equal(t, []string{"ai-tab-c"}, host.visibleLabels())
}

func TestSync_OnlyMovesExistingSurfaces(t *testing.T) {
	host := newFakeHost()
	host.seed("ai-tab-a")
	o := NewSurfaceOrchestrator(host)

	report := o.Sync(context.Background(), toolsABC(), stage)

	assert.True(t, report.OK())
	assert.Equal(t, []string{"ai-tab-a"}, host.liveLabels())
	assert.Empty(t, host.created)
	a := host.surface("ai-tab-a")
	assert.Equal(t, 1, a.moves)
	assert.Equal(t, 960, a.w)
}

func TestSync_PositionFailureSkipsResize(t *testing.T) {
	host := newFakeHost()
	host.seed("ai-tab-a", "ai-tab-b")
	host.opErr["ai-tab-a:position"] = errors.New("gone")
	o := NewSurfaceOrchestrator(host)

	report := o.Sync(context.Background(), toolsABC(), stage)

	assert.Equal(t, []string{"ai-tab-a"}, report.Failed().Keys())
	assert.Equal(t, 0, host.surface("ai-tab-a").w)
	assert.Equal(t, 960, host.surface("ai-tab-b").w)
}

func TestHideAll_DoesNotCreate(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)
	ctx := context.Background()
	_, err := o.Activate(ctx, "a", toolsABC()[:1], stage)
	require.NoError(t, err)
	require.Equal(t, []string{"ai-tab-a"}, host.visibleLabels())

	report := o.HideAll(ctx, toolsABC())

	assert.True(t, report.OK())
	assert.Empty(t, host.visibleLabels())
	assert.Equal(t, []string{"ai-tab-a"}, host.liveLabels())
}

func TestHideAll_ReportsPerSurfaceFailures(t *testing.T) {
	host := mocks.NewMockHost(t)
	broken := mocks.NewMockSurface(t)
	healthy := mocks.NewMockSurface(t)
	o := NewSurfaceOrchestrator(host)

	host.EXPECT().Surface(mock.Anything, "ai-tab-a").Return(broken, nil).Once()
	host.EXPECT().Surface(mock.Anything, "ai-tab-b").Return(healthy, nil).Once()
	host.EXPECT().Surface(mock.Anything, "ai-tab-c").Return(nil, port.ErrSurfaceNotFound).Once()
	broken.EXPECT().Hide(mock.Anything).Return(errors.New("surface gone")).Once()
	healthy.EXPECT().Hide(mock.Anything).Return(nil).Once()

	report := o.HideAll(context.Background(), toolsABC())

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "ai-tab-a", failed[0].Key)
	assert.Equal(t, []string{"ai-tab-a", "ai-tab-b", "ai-tab-c"}, report.Keys())
}

func TestOrchestrator_IgnoresDisabledTools(t *testing.T) {
	host := newFakeHost()
	o := NewSurfaceOrchestrator(host)
	tools := toolsABC()
	for i := range tools {
		tools[i].Enabled = false
	}

	report, err := o.Ensure(context.Background(), tools, stage)
	require.NoError(t, err)

	assert.Empty(t, report)
	assert.Empty(t, host.liveLabels())
}
