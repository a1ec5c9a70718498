package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/bnema/tabcast/internal/cli/styles"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/domain/repository"
)

const historyPromptWidth = 54

// History returns the newest limit dispatches.
func History(ctx context.Context, repo repository.DispatchRepository, limit int) ([]*entity.Dispatch, error) {
	dispatches, err := repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return dispatches, nil
}

// WriteHistoryJSON writes dispatches as an indented JSON array.
func WriteHistoryJSON(w io.Writer, dispatches []*entity.Dispatch) error {
	if dispatches == nil {
		dispatches = []*entity.Dispatch{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dispatches)
}

// RenderHistory renders dispatches as a table, newest first.
func RenderHistory(theme *styles.Theme, dispatches []*entity.Dispatch, now time.Time) string {
	if len(dispatches) == 0 {
		return theme.Subtle.Render("No prompts sent yet.")
	}
	rows := make([]table.Row, 0, len(dispatches))
	for _, d := range dispatches {
		rows = append(rows, table.Row{
			strconv.FormatInt(d.ID, 10),
			styles.RelativeTimeAt(now, d.CreatedAt),
			fmt.Sprintf("%d/%d", d.Delivered(), len(d.Targets)),
			oneLine(d.Prompt, historyPromptWidth),
		})
	}
	return styles.NewStyledTable(theme, styles.DispatchTableColumns(), rows, tableWidth).View()
}

// oneLine flattens s and cuts it to n runes.
func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
