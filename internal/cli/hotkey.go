package cli

import (
	"context"
	"errors"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/infrastructure/control"
)

// HotkeyClient is the hotkey side of the control client.
type HotkeyClient interface {
	Status(ctx context.Context) (*control.Status, error)
	SetHotkey(ctx context.Context, hotkey string) (string, error)
}

// Hotkey returns the hotkey of the running instance, or the configured
// one when nothing is running.
func (a *App) Hotkey(ctx context.Context, client HotkeyClient) (hotkey string, live bool, err error) {
	status, err := client.Status(ctx)
	switch {
	case err == nil:
		return status.Hotkey, true, nil
	case errors.Is(err, control.ErrNotRunning):
		return a.Manager.Settings().Hotkey, false, nil
	default:
		return "", false, remoteErr(err)
	}
}

// SetHotkey registers hotkey in the running instance, which also saves it.
// Without a running instance the value is validated and saved only.
func (a *App) SetHotkey(ctx context.Context, client HotkeyClient, hotkey string) (applied string, live bool, err error) {
	normalized, err := entity.ValidateHotkey(hotkey)
	if err != nil {
		return "", false, err
	}

	applied, err = client.SetHotkey(ctx, normalized)
	if err == nil {
		return applied, true, nil
	}
	if !errors.Is(err, control.ErrNotRunning) {
		return "", false, remoteErr(err)
	}

	err = a.EditSettings(func(s entity.Settings) (entity.Settings, error) {
		s.Hotkey = normalized
		return s, nil
	})
	return normalized, false, err
}
