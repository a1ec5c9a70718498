package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/logging"
)

// QuickWindowUseCase shows and hides the top-level windows.
type QuickWindowUseCase struct {
	host port.WindowHost
}

// NewQuickWindowUseCase creates the use case.
func NewQuickWindowUseCase(host port.WindowHost) *QuickWindowUseCase {
	return &QuickWindowUseCase{host: host}
}

// Toggle hides the quick window when it is visible, otherwise shows it and
// asks it to focus its entry. Errors are logged and returned.
func (uc *QuickWindowUseCase) Toggle(ctx context.Context) error {
	if err := uc.toggle(ctx); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to toggle quick window")
		return err
	}
	return nil
}

// OnHotkey is the accelerator press action. It never fails.
func (uc *QuickWindowUseCase) OnHotkey(ctx context.Context) {
	_ = uc.Toggle(ctx)
}

func (uc *QuickWindowUseCase) toggle(ctx context.Context) error {
	quick, err := uc.window(ctx, port.QuickWindowLabel)
	if err != nil {
		return err
	}
	if quick != nil {
		visible, err := quick.IsVisible(ctx)
		if err != nil {
			return fmt.Errorf("quick window visibility: %w", err)
		}
		if visible {
			return quick.Hide(ctx)
		}
	}

	if err := uc.host.ShowQuickWindow(ctx); err != nil {
		return fmt.Errorf("show quick window: %w", err)
	}
	if quick == nil {
		if quick, err = uc.host.Window(ctx, port.QuickWindowLabel); err != nil {
			return err
		}
	}
	return quick.Emit(ctx, port.EventQuickFocus, nil)
}

// ShowMain shows and focuses the main window.
func (uc *QuickWindowUseCase) ShowMain(ctx context.Context) error {
	main, err := uc.window(ctx, port.MainWindowLabel)
	if err != nil || main == nil {
		return err
	}
	if err := main.Show(ctx); err != nil {
		return err
	}
	return main.Focus(ctx)
}

// HideQuick hides the quick window if it exists.
func (uc *QuickWindowUseCase) HideQuick(ctx context.Context) error {
	quick, err := uc.window(ctx, port.QuickWindowLabel)
	if err != nil || quick == nil {
		return err
	}
	return quick.Hide(ctx)
}

// OpenSettings shows the main window on its settings tab.
func (uc *QuickWindowUseCase) OpenSettings(ctx context.Context) error {
	main, err := uc.host.Window(ctx, port.MainWindowLabel)
	if err != nil {
		return err
	}
	if err := main.Show(ctx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to show main window")
	} else if err := main.Focus(ctx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to focus main window")
	}
	return main.Emit(ctx, port.EventOpenSettings, nil)
}

// Dismiss is the Esc action: hide the quick window when it is focused or
// visible, otherwise hide the main window when it is.
func (uc *QuickWindowUseCase) Dismiss(ctx context.Context) error {
	for _, label := range []string{port.QuickWindowLabel, port.MainWindowLabel} {
		w, err := uc.window(ctx, label)
		if err != nil {
			return err
		}
		if w == nil || !uc.engaged(ctx, w) {
			continue
		}
		return w.Hide(ctx)
	}
	return nil
}

// engaged reports focused or visible; query failures count as false.
func (uc *QuickWindowUseCase) engaged(ctx context.Context, w port.Window) bool {
	focused, err := w.IsFocused(ctx)
	if err == nil && focused {
		return true
	}
	visible, err := w.IsVisible(ctx)
	return err == nil && visible
}

// window returns nil without error when no window carries label.
func (uc *QuickWindowUseCase) window(ctx context.Context, label string) (port.Window, error) {
	w, err := uc.host.Window(ctx, label)
	if errors.Is(err, port.ErrWindowNotFound) {
		return nil, nil
	}
	return w, err
}
