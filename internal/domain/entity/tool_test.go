package entity_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestSurfaceLabel(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		toolName string
		expected string
	}{
		{"plain id", "qwen", "Qwen", "ai-tab-qwen"},
		{"punctuation and case", "My Tool!", "", "ai-tab-my-tool-"},
		{"keeps dash and underscore", "a_b-c", "", "ai-tab-a_b-c"},
		{"falls back to name", "", "Deep Seek", "ai-tab-deep-seek"},
		{"falls back to tool", "", "", "ai-tab-tool"},
		{"non ascii", "发送", "", "ai-tab---"},
		{"astral rune takes two dashes", "a😀", "", "ai-tab-a--"},
		{"invalid utf-8 bytes", "a\xff\xfeb", "", "ai-tab-a--b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, entity.SurfaceLabel(tt.id, tt.toolName))
			tool := entity.Tool{ID: tt.id, Name: tt.toolName}
			assert.Equal(t, tt.expected, tool.Label())
		})
	}
}

func TestIsSurfaceLabel(t *testing.T) {
	assert.True(t, entity.IsSurfaceLabel("ai-tab-qwen"))
	assert.False(t, entity.IsSurfaceLabel("main"))
	assert.False(t, entity.IsSurfaceLabel("quick"))
}

func TestEnabledTools_PreservesOrder(t *testing.T) {
	tools := []entity.Tool{
		{ID: "a", Enabled: true},
		{ID: "b"},
		{ID: "c", Enabled: true},
	}

	got := entity.EnabledTools(tools)

	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestFindTool(t *testing.T) {
	tools := []entity.Tool{{ID: "a"}, {ID: "b", Name: "Bee"}}

	tool, ok := entity.FindTool(tools, "b")
	assert.True(t, ok)
	assert.Equal(t, "Bee", tool.Name)

	_, ok = entity.FindTool(tools, "z")
	assert.False(t, ok)
}

func TestNewToolID(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	id := entity.NewToolID(now)

	assert.Regexp(t, regexp.MustCompile(`^tool-1700000000123-[0-9a-z]{6}$`), id)
	assert.NotEqual(t, id, entity.NewToolID(now))
}

func TestDefaultSettings(t *testing.T) {
	s := entity.DefaultSettings()

	assert.Equal(t, "Alt+Q", s.Hotkey)
	assert.Len(t, s.Tools, 3)
	for _, tool := range s.Tools {
		assert.True(t, tool.Enabled, tool.ID)
		assert.True(t, tool.SendWithEnter, tool.ID)
	}
	assert.Len(t, s.EnabledTools(), 3)
}

func TestSettingsClone_IsIndependent(t *testing.T) {
	s := entity.DefaultSettings()
	clone := s.Clone()
	clone.Tools[0].Enabled = false

	assert.True(t, s.Tools[0].Enabled)
}

func TestBounds(t *testing.T) {
	b := entity.BoundsFromRect(10.4, 20.6, -3, 99.5)

	assert.Equal(t, entity.Bounds{X: 10, Y: 21, Width: 0, Height: 100}, b)
	assert.True(t, b.IsEmpty())
	assert.False(t, entity.Bounds{Width: 1, Height: 1}.IsEmpty())
}

func TestDispatch_AddTarget(t *testing.T) {
	d := entity.NewDispatch("hello")
	d.AddTarget(entity.Tool{ID: "a"}, nil)
	d.AddTarget(entity.Tool{ID: "b"}, assert.AnError)

	assert.Equal(t, 1, d.Delivered())
	assert.Equal(t, "ai-tab-a", d.Targets[0].Label)
	assert.False(t, d.Targets[1].OK)
	assert.Equal(t, assert.AnError.Error(), d.Targets[1].Error)
}
