package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
)

var (
	// ErrEmptyPrompt is returned for a blank prompt.
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrNoEnabledTools is returned when no tool can receive a prompt.
	ErrNoEnabledTools = errors.New("no enabled tools")
)

// DispatchUseCase is the entry point for UI send actions.
type DispatchUseCase struct {
	windows      port.WindowHost
	orchestrator *SurfaceOrchestrator
	deliver      *DeliverPromptUseCase
}

// NewDispatchUseCase wires the facade.
func NewDispatchUseCase(windows port.WindowHost, orchestrator *SurfaceOrchestrator, deliver *DeliverPromptUseCase) *DispatchUseCase {
	return &DispatchUseCase{windows: windows, orchestrator: orchestrator, deliver: deliver}
}

// SendToAll makes sure every enabled tool has a surface at bounds, then
// delivers prompt to all of them.
func (uc *DispatchUseCase) SendToAll(ctx context.Context, prompt string, tools []entity.Tool, bounds entity.Bounds) (Report, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if len(entity.EnabledTools(tools)) == 0 {
		return nil, ErrNoEnabledTools
	}

	if _, err := uc.orchestrator.Ensure(ctx, tools, bounds); err != nil {
		return nil, err
	}
	return uc.deliver.Execute(ctx, prompt, tools), nil
}

// ForwardToMain shows and focuses the main window, then hands prompt to it
// as an EventSend event. Show and focus failures are ignored.
func (uc *DispatchUseCase) ForwardToMain(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return ErrEmptyPrompt
	}

	main, err := uc.windows.Window(ctx, port.MainWindowLabel)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	if err := main.Show(ctx); err != nil {
		log.Debug().Err(err).Msg("failed to show main window")
	} else if err := main.Focus(ctx); err != nil {
		log.Debug().Err(err).Msg("failed to focus main window")
	}

	return main.Emit(ctx, port.EventSend, port.SendPayload{Prompt: prompt})
}
