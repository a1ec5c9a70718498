package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabcast/internal/cli/styles"
	"github.com/bnema/tabcast/internal/infrastructure/control"
)

func TestStatus_Live(t *testing.T) {
	app := newTestApp(t)
	want := &control.Status{Hotkey: "Alt+Q", Tools: []control.ToolStatus{{ID: "qwen", Name: "Qwen", Enabled: true}}}

	got, live, err := app.Status(context.Background(), &fakeClient{status: want})
	require.NoError(t, err)
	assert.True(t, live)
	assert.Same(t, want, got)
}

func TestStatus_FallsBackToConfig(t *testing.T) {
	app := newTestApp(t)

	got, live, err := app.Status(context.Background(), &fakeClient{err: control.ErrNotRunning})
	require.NoError(t, err)
	assert.False(t, live)
	assert.Equal(t, "Alt+Q", got.Hotkey)
	require.Len(t, got.Tools, 3)
	assert.Equal(t, "deepseek", got.Tools[0].ID)
	assert.NotEmpty(t, got.Tools[0].Label)
}

func TestRenderStatus(t *testing.T) {
	theme := styles.NewTheme()
	status := &control.Status{Hotkey: "Alt+Q", Tools: []control.ToolStatus{{ID: "qwen", Name: "Qwen", Enabled: true}}}

	assert.Contains(t, RenderStatus(theme, status, true), "running")
	out := RenderStatus(theme, status, false)
	assert.Contains(t, out, "not running")
	assert.Contains(t, out, "Alt+Q")
	assert.Contains(t, out, "Qwen")
}
