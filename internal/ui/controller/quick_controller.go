package controller

import (
	"context"
	"strings"

	"github.com/bnema/tabcast/internal/application/usecase"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
)

// QuickResult tells the quick window what to do with its entry.
type QuickResult struct {
	// Clear empties the entry.
	Clear bool
	// Notice, when set, is shown under the entry.
	Notice *Notice
}

// QuickController handles text submitted in the quick window.
type QuickController struct {
	windows  *usecase.QuickWindowUseCase
	dispatch *usecase.DispatchUseCase
}

// NewQuickController creates the controller.
func NewQuickController(windows *usecase.QuickWindowUseCase, dispatch *usecase.DispatchUseCase) *QuickController {
	return &QuickController{windows: windows, dispatch: dispatch}
}

// Submit runs a slash command or forwards the prompt to the main window,
// hiding the quick window first.
func (c *QuickController) Submit(ctx context.Context, text string) QuickResult {
	log := logging.FromContext(ctx)
	in := entity.ParseQuickInput(text)

	switch in.Command {
	case entity.QuickCommandSettings:
		if err := c.windows.ShowMain(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to show main window")
		}
		if err := c.windows.HideQuick(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to hide quick window")
		}
		return QuickResult{Clear: true}
	case entity.QuickCommandClear:
		return QuickResult{Clear: true}
	case entity.QuickCommandHelp:
		return QuickResult{Notice: &Notice{Level: NoticeInfo, Message: entity.QuickHelp}}
	case entity.QuickCommandUnknown:
		return QuickResult{Notice: &Notice{Level: NoticeWarning, Message: "unknown command: " + in.Name}}
	}

	if in.Prompt == "" {
		return QuickResult{Notice: &Notice{Level: NoticeWarning, Message: "type a prompt first"}}
	}

	if err := c.windows.HideQuick(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to hide quick window")
	}
	if err := c.dispatch.ForwardToMain(ctx, in.Prompt); err != nil {
		log.Error().Err(err).Msg("failed to forward prompt")
		return QuickResult{Notice: &Notice{Level: NoticeError, Message: "sending failed, try again"}}
	}
	return QuickResult{Clear: true}
}

// Dismiss is the Esc action shared by both windows.
func (c *QuickController) Dismiss(ctx context.Context) {
	if err := c.windows.Dismiss(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("dismiss failed")
	}
}

// Blurred hides the quick window when it lost focus with an empty entry.
func (c *QuickController) Blurred(ctx context.Context, text string) {
	if strings.TrimSpace(text) != "" {
		return
	}
	if err := c.windows.HideQuick(ctx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to hide quick window")
	}
}
