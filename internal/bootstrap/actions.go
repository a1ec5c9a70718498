package bootstrap

import (
	"context"

	"github.com/bnema/tabcast/internal/application/usecase"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/infrastructure/control"
)

// hotkeySettings is the part of the main controller the control API uses.
type hotkeySettings interface {
	SetHotkey(ctx context.Context, hotkey string) error
	Settings() entity.Settings
}

// controlActions routes control API requests to the use cases.
type controlActions struct {
	quick    *usecase.QuickWindowUseCase
	dispatch *usecase.DispatchUseCase
	main     hotkeySettings
}

var _ control.Actions = (*controlActions)(nil)

func newControlActions(quick *usecase.QuickWindowUseCase, dispatch *usecase.DispatchUseCase, main hotkeySettings) *controlActions {
	return &controlActions{quick: quick, dispatch: dispatch, main: main}
}

// SendPrompt is openAndSend: the main window receives the prompt as if typed
// into the quick window.
func (a *controlActions) SendPrompt(ctx context.Context, prompt string) error {
	return a.dispatch.ForwardToMain(ctx, prompt)
}

func (a *controlActions) ToggleQuick(ctx context.Context) error {
	return a.quick.Toggle(ctx)
}

func (a *controlActions) ShowMain(ctx context.Context) error {
	return a.quick.ShowMain(ctx)
}

func (a *controlActions) OpenSettings(ctx context.Context) error {
	return a.quick.OpenSettings(ctx)
}

// ApplyHotkey validates, registers and persists hotkey.
func (a *controlActions) ApplyHotkey(ctx context.Context, hotkey string) error {
	normalized, err := entity.ValidateHotkey(hotkey)
	if err != nil {
		return err
	}
	return a.main.SetHotkey(ctx, normalized)
}

func (a *controlActions) Settings() entity.Settings {
	return a.main.Settings()
}
