package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
)

// SurfaceOrchestrator keeps one embedded surface per enabled tool.
//
// It holds no per-surface state: every call reconciles against the live
// surfaces of the host, so surfaces closed behind its back are recreated and
// surfaces of disabled tools are closed on the next Ensure.
type SurfaceOrchestrator struct {
	host port.Host
	// mu serializes whole operations so concurrent callers cannot create
	// the same surface twice.
	mu sync.Mutex
}

// NewSurfaceOrchestrator creates an orchestrator over host.
func NewSurfaceOrchestrator(host port.Host) *SurfaceOrchestrator {
	return &SurfaceOrchestrator{host: host}
}

// Ensure creates missing surfaces for enabled tools at bounds, then closes
// every tabcast surface whose tool is no longer enabled.
// Only a missing main window is returned as an error.
func (o *SurfaceOrchestrator) Ensure(ctx context.Context, tools []entity.Tool, bounds entity.Bounds) (Report, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	main, err := o.mainWindow(ctx)
	if err != nil {
		return nil, err
	}

	enabled := surfaceTools(tools)
	report := fanOut(ctx, enabled, toolKey, func(ctx context.Context, tool entity.Tool) error {
		_, err := o.getOrCreate(ctx, main, tool, bounds)
		return err
	})
	report = append(report, o.reconcile(ctx, enabled)...)

	report.logFailures(logging.FromContext(ctx), "ensure")
	return report, nil
}

// Sync reapplies bounds to the existing surfaces of enabled tools.
func (o *SurfaceOrchestrator) Sync(ctx context.Context, tools []entity.Tool, bounds entity.Bounds) Report {
	o.mu.Lock()
	defer o.mu.Unlock()

	report := fanOut(ctx, surfaceTools(tools), toolKey, func(ctx context.Context, tool entity.Tool) error {
		surface, err := o.existing(ctx, tool)
		if surface == nil {
			return err
		}
		return applyBounds(ctx, surface, bounds)
	})

	report.logFailures(logging.FromContext(ctx), "sync")
	return report
}

// Activate positions every enabled surface at bounds, shows and focuses the
// one belonging to activeToolID and hides the rest.
func (o *SurfaceOrchestrator) Activate(ctx context.Context, activeToolID string, tools []entity.Tool, bounds entity.Bounds) (Report, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	main, err := o.mainWindow(ctx)
	if err != nil {
		return nil, err
	}

	report := fanOut(ctx, surfaceTools(tools), toolKey, func(ctx context.Context, tool entity.Tool) error {
		surface, err := o.getOrCreate(ctx, main, tool, bounds)
		if err != nil {
			return err
		}
		if err := applyBounds(ctx, surface, bounds); err != nil {
			return err
		}
		if tool.ID != activeToolID {
			return surface.Hide(ctx)
		}
		if err := surface.Show(ctx); err != nil {
			return fmt.Errorf("show: %w", err)
		}
		if err := surface.Focus(ctx); err != nil {
			return fmt.Errorf("focus: %w", err)
		}
		return nil
	})

	logging.FromContext(ctx).Debug().
		Str("active", activeToolID).
		Int("surfaces", len(report)).
		Msg("activated surface")
	report.logFailures(logging.FromContext(ctx), "activate")
	return report, nil
}

// HideAll hides the existing surfaces of enabled tools. Missing surfaces are
// not created.
func (o *SurfaceOrchestrator) HideAll(ctx context.Context, tools []entity.Tool) Report {
	o.mu.Lock()
	defer o.mu.Unlock()

	report := fanOut(ctx, surfaceTools(tools), toolKey, func(ctx context.Context, tool entity.Tool) error {
		surface, err := o.existing(ctx, tool)
		if surface == nil {
			return err
		}
		return surface.Hide(ctx)
	})

	report.logFailures(logging.FromContext(ctx), "hide-all")
	return report
}

func (o *SurfaceOrchestrator) mainWindow(ctx context.Context) (port.Window, error) {
	main, err := o.host.Window(ctx, port.MainWindowLabel)
	if err != nil {
		return nil, fmt.Errorf("locate main window: %w", err)
	}
	return main, nil
}

// existing returns the live surface of tool, or nil and no error when there
// is none.
func (o *SurfaceOrchestrator) existing(ctx context.Context, tool entity.Tool) (port.Surface, error) {
	surface, err := o.host.Surface(ctx, tool.Label())
	if errors.Is(err, port.ErrSurfaceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup surface: %w", err)
	}
	return surface, nil
}

func (o *SurfaceOrchestrator) getOrCreate(ctx context.Context, main port.Window, tool entity.Tool, bounds entity.Bounds) (port.Surface, error) {
	surface, err := o.existing(ctx, tool)
	if err != nil || surface != nil {
		return surface, err
	}

	ctx = logging.WithSurface(ctx, tool.Label())
	surface, err = o.host.CreateSurface(ctx, main, port.SurfaceSpec{
		Label:  tool.Label(),
		URL:    tool.URL,
		Bounds: bounds,
	})
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	if err := surface.SetAutoResize(ctx, false); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to disable surface auto-resize")
	}

	logging.FromContext(ctx).Info().
		Str("tool_id", tool.ID).
		Str("url", tool.URL).
		Msg("created surface")
	return surface, nil
}

// reconcile closes tabcast surfaces that are not in keep.
func (o *SurfaceOrchestrator) reconcile(ctx context.Context, keep []entity.Tool) Report {
	live, err := o.host.Surfaces(ctx)
	if err != nil {
		return Report{{Key: "reconcile", Err: fmt.Errorf("list surfaces: %w", err)}}
	}

	keepSet := make(map[string]struct{}, len(keep))
	for _, tool := range keep {
		keepSet[tool.Label()] = struct{}{}
	}

	var stale []port.Surface
	for _, surface := range live {
		if _, ok := keepSet[surface.Label()]; ok || !entity.IsSurfaceLabel(surface.Label()) {
			continue
		}
		stale = append(stale, surface)
	}

	return fanOut(ctx, stale, port.Surface.Label, func(ctx context.Context, surface port.Surface) error {
		logging.FromContext(ctx).Info().Str("surface", surface.Label()).Msg("closing stale surface")
		return surface.Close(ctx)
	})
}

func applyBounds(ctx context.Context, surface port.Surface, bounds entity.Bounds) error {
	if err := surface.SetPosition(ctx, bounds.X, bounds.Y); err != nil {
		return fmt.Errorf("set position: %w", err)
	}
	if err := surface.SetSize(ctx, bounds.Width, bounds.Height); err != nil {
		return fmt.Errorf("set size: %w", err)
	}
	return nil
}

// surfaceTools returns enabled tools with one entry per surface label; the
// first tool mapping to a label wins.
func surfaceTools(tools []entity.Tool) []entity.Tool {
	enabled := entity.EnabledTools(tools)
	seen := make(map[string]struct{}, len(enabled))
	out := enabled[:0:0]
	for _, tool := range enabled {
		if _, dup := seen[tool.Label()]; dup {
			continue
		}
		seen[tool.Label()] = struct{}{}
		out = append(out, tool)
	}
	return out
}

func toolKey(tool entity.Tool) string {
	return tool.Label()
}
