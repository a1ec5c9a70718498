package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/application/port/mocks"
	"github.com/bnema/tabcast/internal/application/usecase"
	"github.com/bnema/tabcast/internal/domain/entity"
)

type fakeHotkeySettings struct {
	applied  []string
	err      error
	settings entity.Settings
}

func (f *fakeHotkeySettings) SetHotkey(_ context.Context, hotkey string) error {
	f.applied = append(f.applied, hotkey)
	return f.err
}

func (f *fakeHotkeySettings) Settings() entity.Settings { return f.settings }

func newActions(host *mocks.MockHost, main hotkeySettings) *controlActions {
	return newControlActions(
		usecase.NewQuickWindowUseCase(host),
		usecase.NewDispatchUseCase(host, nil, nil),
		main,
	)
}

func TestControlActions_SendPrompt(t *testing.T) {
	host := mocks.NewMockHost(t)
	main := mocks.NewMockWindow(t)
	host.EXPECT().Window(mock.Anything, port.MainWindowLabel).Return(main, nil).Once()
	main.EXPECT().Show(mock.Anything).Return(nil).Once()
	main.EXPECT().Focus(mock.Anything).Return(nil).Once()
	main.EXPECT().Emit(mock.Anything, port.EventSend, port.SendPayload{Prompt: "compare these"}).Return(nil).Once()

	err := newActions(host, &fakeHotkeySettings{}).SendPrompt(context.Background(), " compare these ")
	require.NoError(t, err)
}

func TestControlActions_SendPromptEmpty(t *testing.T) {
	host := mocks.NewMockHost(t)
	err := newActions(host, &fakeHotkeySettings{}).SendPrompt(context.Background(), "   ")
	assert.ErrorIs(t, err, usecase.ErrEmptyPrompt)
}

func TestControlActions_ToggleQuickShows(t *testing.T) {
	host := mocks.NewMockHost(t)
	quick := mocks.NewMockWindow(t)
	host.EXPECT().Window(mock.Anything, port.QuickWindowLabel).Return(quick, nil).Once()
	quick.EXPECT().IsVisible(mock.Anything).Return(false, nil).Once()
	host.EXPECT().ShowQuickWindow(mock.Anything).Return(nil).Once()
	quick.EXPECT().Emit(mock.Anything, port.EventQuickFocus, nil).Return(nil).Once()

	require.NoError(t, newActions(host, &fakeHotkeySettings{}).ToggleQuick(context.Background()))
}

func TestControlActions_OpenSettings(t *testing.T) {
	host := mocks.NewMockHost(t)
	main := mocks.NewMockWindow(t)
	host.EXPECT().Window(mock.Anything, port.MainWindowLabel).Return(main, nil).Once()
	main.EXPECT().Show(mock.Anything).Return(nil).Once()
	main.EXPECT().Focus(mock.Anything).Return(nil).Once()
	main.EXPECT().Emit(mock.Anything, port.EventOpenSettings, nil).Return(nil).Once()

	require.NoError(t, newActions(host, &fakeHotkeySettings{}).OpenSettings(context.Background()))
}

func TestControlActions_ApplyHotkey(t *testing.T) {
	tests := []struct {
		name    string
		hotkey  string
		setErr  error
		wantErr error
		applied []string
	}{
		{name: "normalized", hotkey: "  Ctrl+Shift+K ", applied: []string{"Ctrl+Shift+K"}},
		{name: "reserved", hotkey: "Escape", wantErr: entity.ErrHotkeyReserved},
		{name: "empty", hotkey: " ", wantErr: entity.ErrHotkeyEmpty},
		{
			name:    "register failure",
			hotkey:  "Alt+W",
			setErr:  usecase.ErrHotkeyUnavailable,
			wantErr: usecase.ErrHotkeyUnavailable,
			applied: []string{"Alt+W"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeHotkeySettings{err: tt.setErr}
			err := newActions(mocks.NewMockHost(t), fake).ApplyHotkey(context.Background(), tt.hotkey)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.applied, fake.applied)
		})
	}
}

func TestControlActions_Settings(t *testing.T) {
	want := entity.DefaultSettings()
	a := newActions(mocks.NewMockHost(t), &fakeHotkeySettings{settings: want})
	assert.Equal(t, want, a.Settings())
}
