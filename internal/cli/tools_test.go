package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabcast/internal/cli/styles"
	"github.com/bnema/tabcast/internal/domain/entity"
)

func TestSetToolEnabled(t *testing.T) {
	s := entity.DefaultSettings()

	out, err := SetToolEnabled(s, "qwen", false)
	require.NoError(t, err)
	tool, ok := entity.FindTool(out.Tools, "qwen")
	require.True(t, ok)
	assert.False(t, tool.Enabled)

	orig, _ := entity.FindTool(s.Tools, "qwen")
	assert.True(t, orig.Enabled, "input settings must not change")

	_, err = SetToolEnabled(s, "missing", true)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestAddTool(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	s := entity.DefaultSettings()

	t.Run("explicit id", func(t *testing.T) {
		out, tool, err := AddTool(s, ToolSpec{
			ID:            " kimi ",
			Name:          "Kimi",
			URL:           "https://kimi.moonshot.cn/",
			InputSelector: "textarea",
			NoEnter:       true,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "kimi", tool.ID)
		assert.True(t, tool.Enabled)
		assert.False(t, tool.SendWithEnter)
		assert.Len(t, out.Tools, len(s.Tools)+1)
		assert.Len(t, s.Tools, 3)
	})

	t.Run("generated id and name", func(t *testing.T) {
		_, tool, err := AddTool(s, ToolSpec{URL: "https://example.com", Disabled: true}, now)
		require.NoError(t, err)
		assert.Contains(t, tool.ID, "tool-1700000000000-")
		assert.Equal(t, tool.ID, tool.Name)
		assert.False(t, tool.Enabled)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, _, err := AddTool(s, ToolSpec{ID: "qwen", URL: "https://example.com"}, now)
		assert.ErrorIs(t, err, ErrToolExists)
	})

	t.Run("missing url", func(t *testing.T) {
		_, _, err := AddTool(s, ToolSpec{ID: "x"}, now)
		assert.Error(t, err)
	})
}

func TestRemoveTool(t *testing.T) {
	s := entity.DefaultSettings()

	out, err := RemoveTool(s, "deepseek")
	require.NoError(t, err)
	require.Len(t, out.Tools, 2)
	assert.Equal(t, "qwen", out.Tools[0].ID)
	assert.Equal(t, "deepseek", s.Tools[0].ID)

	_, err = RemoveTool(s, "missing")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestEditSettings_Persists(t *testing.T) {
	app := newTestApp(t)

	err := app.EditSettings(func(s entity.Settings) (entity.Settings, error) {
		return SetToolEnabled(s, "doubao", false)
	})
	require.NoError(t, err)

	tool, ok := entity.FindTool(app.Manager.Settings().Tools, "doubao")
	require.True(t, ok)
	assert.False(t, tool.Enabled)

	reloaded := newManagerAt(t, app.ConfigPath())
	tool, ok = entity.FindTool(reloaded.Settings().Tools, "doubao")
	require.True(t, ok)
	assert.False(t, tool.Enabled)
}

func TestEditSettings_ErrorLeavesFileAlone(t *testing.T) {
	app := newTestApp(t)
	before := app.Manager.Settings()

	err := app.EditSettings(func(s entity.Settings) (entity.Settings, error) {
		return RemoveTool(s, "missing")
	})
	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.Equal(t, before, app.Manager.Settings())
}

func TestRenderTools(t *testing.T) {
	theme := styles.NewTheme()
	assert.Contains(t, RenderTools(theme, nil), "No tools configured")

	out := RenderTools(theme, entity.DefaultTools())
	assert.Contains(t, out, "deepseek")
	assert.Contains(t, out, "Qwen")
}
