package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/domain/inject"
	"github.com/bnema/tabcast/internal/logging"
)

// DispatchRecorder receives a record of every delivery fan-out.
type DispatchRecorder interface {
	Record(ctx context.Context, d *entity.Dispatch)
}

// DeliverPromptUseCase hands the delivery script to every enabled surface.
// Delivery inside the page is best-effort and not observable here: a nil
// outcome only means the host accepted the script.
type DeliverPromptUseCase struct {
	host     port.SurfaceHost
	recorder DispatchRecorder
}

// NewDeliverPromptUseCase creates the use case. recorder may be nil.
func NewDeliverPromptUseCase(host port.SurfaceHost, recorder DispatchRecorder) *DeliverPromptUseCase {
	return &DeliverPromptUseCase{host: host, recorder: recorder}
}

// Execute delivers prompt to every enabled tool concurrently.
func (uc *DeliverPromptUseCase) Execute(ctx context.Context, prompt string, tools []entity.Tool) Report {
	log := logging.FromContext(ctx)
	enabled := surfaceTools(tools)

	report := fanOut(ctx, enabled, toolKey, func(ctx context.Context, tool entity.Tool) error {
		script, err := inject.Build(prompt, tool)
		if err != nil {
			return err
		}
		if err := uc.host.EvalScript(logging.WithToolID(ctx, tool.ID), tool.Label(), script); err != nil {
			return fmt.Errorf("eval script: %w", err)
		}
		return nil
	})

	log.Debug().
		Int("tools", len(enabled)).
		Int("failed", len(report.Failed())).
		Msg("prompt handed to surfaces")
	report.logFailures(log, "deliver")

	if uc.recorder != nil {
		uc.recorder.Record(ctx, dispatchRecord(prompt, enabled, report))
	}
	return report
}

func dispatchRecord(prompt string, tools []entity.Tool, report Report) *entity.Dispatch {
	d := entity.NewDispatch(prompt)
	for i, tool := range tools {
		d.AddTarget(tool, report[i].Err)
	}
	return d
}
