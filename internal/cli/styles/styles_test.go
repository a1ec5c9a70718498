package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{15 * 24 * time.Hour, "2w ago"},
		{70 * 24 * time.Hour, "2mo ago"},
		{800 * 24 * time.Hour, "2y ago"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTimeAt(now, now.Add(-tt.ago)))
		})
	}
}

func TestStyledTableRendersRows(t *testing.T) {
	theme := NewTheme()
	tbl := NewStyledTable(theme, DispatchTableColumns(), nil, 80)
	assert.Contains(t, tbl.View(), "Prompt")
}

func TestDefaultPromptKeyMap(t *testing.T) {
	km := DefaultPromptKeyMap()
	assert.Equal(t, []string{"enter"}, km.Send.Keys())
	assert.Len(t, km.FullHelp(), 1)
}
