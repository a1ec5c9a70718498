package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tabcast/internal/cli/styles"
	"github.com/bnema/tabcast/internal/infrastructure/control"
)

// StatusClient reads the state of the running instance.
type StatusClient interface {
	Status(ctx context.Context) (*control.Status, error)
}

// Status returns the live status, or one built from the config file with
// live set to false.
func (a *App) Status(ctx context.Context, client StatusClient) (status *control.Status, live bool, err error) {
	status, err = client.Status(ctx)
	if err == nil {
		return status, true, nil
	}
	if !errors.Is(err, control.ErrNotRunning) {
		return nil, false, remoteErr(err)
	}

	settings := a.Manager.Settings()
	status = &control.Status{Hotkey: settings.Hotkey}
	for _, t := range settings.Tools {
		status.Tools = append(status.Tools, control.ToolStatus{
			ID:      t.ID,
			Name:    t.Name,
			Label:   t.Label(),
			Enabled: t.Enabled,
		})
	}
	return status, false, nil
}

// RenderStatus renders the status block.
func RenderStatus(theme *styles.Theme, status *control.Status, live bool) string {
	var b strings.Builder
	state := theme.WarningStyle.Render("not running")
	if live {
		state = theme.SuccessStyle.Render("running")
	}
	fmt.Fprintf(&b, "%s %s\n", theme.Title.Render("tabcast"), state)
	fmt.Fprintf(&b, "%s %s\n", theme.Subtle.Render(styles.IconKey+" hotkey"), theme.Highlight.Render(status.Hotkey))
	for _, t := range status.Tools {
		fmt.Fprintf(&b, "  %s %s %s\n", theme.EnabledBadge(t.Enabled), theme.Normal.Render(t.Name), theme.Subtle.Render(t.Label))
	}
	return strings.TrimRight(b.String(), "\n")
}
