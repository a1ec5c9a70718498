package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/bnema/tabcast/internal/cli/styles"
	"github.com/bnema/tabcast/internal/domain/entity"
)

const tableWidth = 100

var (
	// ErrToolNotFound is returned when no tool carries the given id.
	ErrToolNotFound = errors.New("tool not found")
	// ErrToolExists is returned when adding a tool with a taken id.
	ErrToolExists = errors.New("tool id already used")
)

// ToolSpec describes a tool to add.
type ToolSpec struct {
	ID            string
	Name          string
	URL           string
	InputSelector string
	SendSelector  string
	NoEnter       bool
	Disabled      bool
}

// SetToolEnabled flips the enabled flag of tool id.
func SetToolEnabled(s entity.Settings, id string, enabled bool) (entity.Settings, error) {
	out := s.Clone()
	for i := range out.Tools {
		if out.Tools[i].ID == id {
			out.Tools[i].Enabled = enabled
			return out, nil
		}
	}
	return s, fmt.Errorf("%w: %s", ErrToolNotFound, id)
}

// AddTool appends a tool built from spec. An empty id is generated.
func AddTool(s entity.Settings, spec ToolSpec, now time.Time) (entity.Settings, entity.Tool, error) {
	tool := entity.Tool{
		ID:            strings.TrimSpace(spec.ID),
		Name:          strings.TrimSpace(spec.Name),
		URL:           strings.TrimSpace(spec.URL),
		Enabled:       !spec.Disabled,
		InputSelector: strings.TrimSpace(spec.InputSelector),
		SendSelector:  strings.TrimSpace(spec.SendSelector),
		SendWithEnter: !spec.NoEnter,
	}
	if tool.URL == "" {
		return s, entity.Tool{}, errors.New("url is required")
	}
	if tool.ID == "" {
		tool.ID = entity.NewToolID(now)
	}
	if tool.Name == "" {
		tool.Name = tool.ID
	}
	if _, taken := entity.FindTool(s.Tools, tool.ID); taken {
		return s, entity.Tool{}, fmt.Errorf("%w: %s", ErrToolExists, tool.ID)
	}

	out := s.Clone()
	out.Tools = append(out.Tools, tool)
	return out, tool, nil
}

// RemoveTool drops tool id.
func RemoveTool(s entity.Settings, id string) (entity.Settings, error) {
	out := s.Clone()
	for i, tool := range out.Tools {
		if tool.ID == id {
			out.Tools = append(out.Tools[:i], out.Tools[i+1:]...)
			return out, nil
		}
	}
	return s, fmt.Errorf("%w: %s", ErrToolNotFound, id)
}

// EditSettings applies edit to the stored settings and saves the result.
// A running instance picks the change up through config hot reload.
func (a *App) EditSettings(edit func(entity.Settings) (entity.Settings, error)) error {
	next, err := edit(a.Manager.Settings())
	if err != nil {
		return err
	}
	return a.Manager.SaveSettings(a.ctx, next)
}

// RenderTools renders the tool table.
func RenderTools(theme *styles.Theme, tools []entity.Tool) string {
	if len(tools) == 0 {
		return theme.Subtle.Render("No tools configured.")
	}
	rows := make([]table.Row, 0, len(tools))
	for _, t := range tools {
		on := "no"
		if t.Enabled {
			on = "yes"
		}
		rows = append(rows, table.Row{t.ID, t.Name, on, t.URL, t.Label()})
	}
	return styles.NewStyledTable(theme, styles.ToolTableColumns(), rows, tableWidth).View()
}
