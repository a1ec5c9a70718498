package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model. Non-interactive callers
// print its View once.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.Foreground(theme.Text)
	s.Cell = s.Cell.Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// ToolTableColumns returns the columns of `tabcast tools list`.
func ToolTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 14},
		{Title: "Name", Width: 14},
		{Title: "On", Width: 4},
		{Title: "URL", Width: 36},
		{Title: "Surface", Width: 22},
	}
}

// DispatchTableColumns returns the columns of `tabcast history`.
func DispatchTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "When", Width: 10},
		{Title: "Sent", Width: 6},
		{Title: "Prompt", Width: 56},
	}
}
