package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/tabcast/internal/application/port"
	mock_port "github.com/bnema/tabcast/internal/application/port/gomocks"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCoordinator(t *testing.T, onPressed func(context.Context)) (*HotkeyCoordinator, *mock_port.MockGlobalAccelerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	accel := mock_port.NewMockGlobalAccelerator(ctrl)
	c := NewHotkeyCoordinator(context.Background(), accel, onPressed)
	return c, accel
}

func TestHotkeyApply_RejectsInvalidWithoutTouchingAccelerator(t *testing.T) {
	c, _ := newCoordinator(t, nil)
	defer c.Close()

	assert.ErrorIs(t, c.Apply(context.Background(), ""), entity.ErrHotkeyEmpty)
	assert.ErrorIs(t, c.Apply(context.Background(), "   "), entity.ErrHotkeyEmpty)
	assert.ErrorIs(t, c.Apply(context.Background(), "Esc"), entity.ErrHotkeyReserved)
	assert.Empty(t, c.Current())
}

func TestHotkeyApply_SameValueIsNoop(t *testing.T) {
	c, accel := newCoordinator(t, nil)
	ctx := context.Background()

	accel.EXPECT().Register(gomock.Any(), "Alt+Q", gomock.Any()).Return(nil).Times(1)
	accel.EXPECT().Unregister(gomock.Any(), "Alt+Q").Return(nil).Times(1)

	require.NoError(t, c.Apply(ctx, "Alt+Q"))
	require.NoError(t, c.Apply(ctx, " Alt+Q "))
	assert.Equal(t, "Alt+Q", c.Current())

	c.Close()
}

func TestHotkeyApply_ReplacesPrevious(t *testing.T) {
	c, accel := newCoordinator(t, nil)
	ctx := context.Background()

	gomock.InOrder(
		accel.EXPECT().Register(gomock.Any(), "Alt+Q", gomock.Any()).Return(nil),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+Q").Return(nil),
		accel.EXPECT().Register(gomock.Any(), "Ctrl+Shift+Space", gomock.Any()).Return(nil),
		accel.EXPECT().Unregister(gomock.Any(), "Ctrl+Shift+Space").Return(nil),
	)

	require.NoError(t, c.Apply(ctx, "Alt+Q"))
	require.NoError(t, c.Apply(ctx, "Ctrl+Shift+Space"))
	assert.Equal(t, "Ctrl+Shift+Space", c.Current())

	c.Close()
	assert.Empty(t, c.Current())
}

func TestHotkeyApply_UnregisterFailureIsNotFatal(t *testing.T) {
	c, accel := newCoordinator(t, nil)
	ctx := context.Background()

	gomock.InOrder(
		accel.EXPECT().Register(gomock.Any(), "Alt+Q", gomock.Any()).Return(nil),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+Q").Return(errors.New("not registered")),
		accel.EXPECT().Register(gomock.Any(), "Alt+W", gomock.Any()).Return(nil),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+W").Return(nil),
	)

	require.NoError(t, c.Apply(ctx, "Alt+Q"))
	require.NoError(t, c.Apply(ctx, "Alt+W"))
	assert.Equal(t, "Alt+W", c.Current())

	c.Close()
}

func TestHotkeyApply_AdoptsExistingRegistration(t *testing.T) {
	c, accel := newCoordinator(t, nil)

	gomock.InOrder(
		accel.EXPECT().Register(gomock.Any(), "Alt+Q", gomock.Any()).Return(errors.New("already registered")),
		accel.EXPECT().IsRegistered(gomock.Any(), "Alt+Q").Return(true, nil),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+Q").Return(nil),
	)

	require.NoError(t, c.Apply(context.Background(), "Alt+Q"))
	assert.Equal(t, "Alt+Q", c.Current())

	c.Close()
}

func TestHotkeyApply_RegisterFailureKeepsPreviousValue(t *testing.T) {
	c, accel := newCoordinator(t, nil)
	ctx := context.Background()
	regErr := errors.New("grab failed")

	gomock.InOrder(
		accel.EXPECT().Register(gomock.Any(), "Alt+Q", gomock.Any()).Return(nil),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+Q").Return(nil),
		accel.EXPECT().Register(gomock.Any(), "Alt+W", gomock.Any()).Return(regErr),
		accel.EXPECT().IsRegistered(gomock.Any(), "Alt+W").Return(false, nil),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+Q").Return(nil),
	)

	require.NoError(t, c.Apply(ctx, "Alt+Q"))
	err := c.Apply(ctx, "Alt+W")
	require.ErrorIs(t, err, regErr)
	assert.ErrorIs(t, err, ErrHotkeyUnavailable)
	assert.Contains(t, err.Error(), `"Alt+W"`)
	assert.Equal(t, "Alt+Q", c.Current())

	c.Close()
}

func TestHotkeyApply_RequestsAreSerialized(t *testing.T) {
	c, accel := newCoordinator(t, nil)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		accel.EXPECT().Register(gomock.Any(), "Alt+A", gomock.Any()).
			DoAndReturn(func(context.Context, string, port.AcceleratorHandler) error {
				close(entered)
				<-release
				return nil
			}),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+A").Return(nil),
		accel.EXPECT().Register(gomock.Any(), "Alt+B", gomock.Any()).Return(nil),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+B").Return(nil),
	)

	first := make(chan error, 1)
	go func() { first <- c.Apply(ctx, "Alt+A") }()
	<-entered

	second := make(chan error, 1)
	go func() { second <- c.Apply(ctx, "Alt+B") }()

	select {
	case err := <-second:
		t.Fatalf("second apply finished while first was in flight: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-first)
	require.NoError(t, <-second)
	assert.Equal(t, "Alt+B", c.Current())

	c.Close()
}

func TestHotkeyHandler_OnlyPressTriggers(t *testing.T) {
	var presses atomic.Int32
	c, accel := newCoordinator(t, func(context.Context) { presses.Add(1) })

	var handler port.AcceleratorHandler
	accel.EXPECT().Register(gomock.Any(), "Alt+Q", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, h port.AcceleratorHandler) error {
			handler = h
			return nil
		})
	accel.EXPECT().Unregister(gomock.Any(), "Alt+Q").Return(nil)

	require.NoError(t, c.Apply(context.Background(), "Alt+Q"))
	require.NotNil(t, handler)

	handler(entity.KeyPressed)
	handler(entity.KeyReleased)
	handler(entity.KeyPressed)
	assert.Equal(t, int32(2), presses.Load())

	c.Close()
}

func TestHotkeyApply_AfterClose(t *testing.T) {
	c, _ := newCoordinator(t, nil)
	c.Close()
	c.Close()

	assert.ErrorIs(t, c.Apply(context.Background(), "Alt+Q"), ErrCoordinatorClosed)
}

func TestHotkeyApply_CancelledContext(t *testing.T) {
	c, _ := newCoordinator(t, nil)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Apply(ctx, "Alt+Q"), context.Canceled)
	assert.Empty(t, c.Current())
}

func TestHotkeyApply_CancelAfterStartWaitsForOutcome(t *testing.T) {
	c, accel := newCoordinator(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	entered := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		accel.EXPECT().Register(gomock.Any(), "Alt+Q", gomock.Any()).
			DoAndReturn(func(regCtx context.Context, _ string, _ port.AcceleratorHandler) error {
				close(entered)
				<-release
				assert.NoError(t, regCtx.Err())
				return nil
			}),
		accel.EXPECT().Unregister(gomock.Any(), "Alt+Q").Return(nil),
	)

	result := make(chan error, 1)
	go func() { result <- c.Apply(ctx, "Alt+Q") }()
	<-entered

	cancel()
	select {
	case err := <-result:
		t.Fatalf("apply returned before the registration finished: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-result)
	assert.Equal(t, "Alt+Q", c.Current())

	c.Close()
}
