package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, content string) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	}
	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	return mgr
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "Alt+Q", mgr.viper.GetString("hotkey"))
	assert.Equal(t, 980, mgr.viper.GetInt("window.main_width"))
	assert.Equal(t, 154, mgr.viper.GetInt("window.quick_height"))
	assert.Equal(t, "gtk", mgr.viper.GetString("host.backend"))
	assert.True(t, mgr.viper.GetBool("journal.enabled"))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	mgr := newTestManager(t, "")

	require.NoError(t, mgr.Load())

	assert.FileExists(t, mgr.GetConfigFile())
	assert.Equal(t, entity.DefaultSettings(), mgr.Settings())
}

func TestLoad_NormalizesTools(t *testing.T) {
	mgr := newTestManager(t, `
hotkey = "  "

[[tools]]
name = "Local"
url = " https://chat.local.test/ "
enabled = true
input_selector = "  #prompt "

[[tools]]
id = "b"
url = "https://b.example"
enabled = false
send_with_enter = false
`)

	require.NoError(t, mgr.Load())
	s := mgr.Settings()

	assert.Equal(t, entity.DefaultHotkey, s.Hotkey)
	require.Len(t, s.Tools, 2)

	assert.Regexp(t, `^tool-\d+-[0-9a-z]{6}$`, s.Tools[0].ID)
	assert.Equal(t, "Local", s.Tools[0].Name)
	assert.Equal(t, "https://chat.local.test/", s.Tools[0].URL)
	assert.Equal(t, "#prompt", s.Tools[0].InputSelector)
	assert.True(t, s.Tools[0].SendWithEnter)

	assert.Equal(t, "b", s.Tools[1].Name)
	assert.False(t, s.Tools[1].Enabled)
	assert.False(t, s.Tools[1].SendWithEnter)
}

func TestLoad_MissingToolsUsesDefaults(t *testing.T) {
	mgr := newTestManager(t, "hotkey = \"Ctrl+Shift+K\"\n")
	require.NoError(t, mgr.Load())
	assert.Equal(t, entity.DefaultTools(), mgr.Settings().Tools)
	assert.Equal(t, "Ctrl+Shift+K", mgr.Settings().Hotkey)

	mgr = newTestManager(t, "tools = []\n")
	require.NoError(t, mgr.Load())
	assert.Empty(t, mgr.Settings().Tools)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TABCAST_HOTKEY", "Ctrl+Space")
	t.Setenv("TABCAST_LOG_LEVEL", "debug")
	t.Setenv("TABCAST_HOST_BACKEND", "chrome")

	mgr := newTestManager(t, "")
	require.NoError(t, mgr.Load())
	cfg := mgr.Get()

	assert.Equal(t, "Ctrl+Space", cfg.Hotkey)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, BackendChrome, cfg.Host.Backend)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	mgr := newTestManager(t, "hotkey = \"Esc\"\n")
	err := mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hotkey")

	mgr = newTestManager(t, "hotkey = [\n")
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	mgr := newTestManager(t, "")
	require.NoError(t, mgr.Load())

	var notified []*Config
	mgr.OnConfigChange(func(c *Config) { notified = append(notified, c) })

	s := entity.Settings{
		Hotkey: "Ctrl+Alt+P",
		Tools: []entity.Tool{
			{ID: "x", Name: "X", URL: "https://x.example", Enabled: true, SendSelector: "button.go"},
		},
	}
	require.NoError(t, mgr.SaveSettings(context.Background(), s))

	require.Len(t, notified, 1)
	assert.Equal(t, s, notified[0].Settings())

	reloaded, err := NewManagerForFile(mgr.GetConfigFile())
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s, reloaded.Settings())
	assert.Equal(t, defaultMainWidth, reloaded.Get().Window.MainWidth)
}

func TestSave_RejectsInvalidWithoutWriting(t *testing.T) {
	mgr := newTestManager(t, "")
	require.NoError(t, mgr.Load())
	before, err := os.ReadFile(mgr.GetConfigFile())
	require.NoError(t, err)

	cfg := mgr.Get()
	cfg.Tools = append(cfg.Tools, cfg.Tools[0])
	require.Error(t, mgr.Save(cfg))

	after, err := os.ReadFile(mgr.GetConfigFile())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr := newTestManager(t, "")
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Tools[0].Name = "changed"
	*cfg.Tools[0].SendWithEnter = false

	assert.Equal(t, "DeepSeek", mgr.Get().Tools[0].Name)
	assert.True(t, mgr.Settings().Tools[0].SendWithEnter)
}

func TestWatch_ReloadsExternalEdits(t *testing.T) {
	mgr := newTestManager(t, "")
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 16)
	mgr.OnConfigChange(func(c *Config) { changed <- c })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())

	cfg := DefaultConfig()
	cfg.Hotkey = "Ctrl+Shift+Y"
	require.NoError(t, WriteConfigOrdered(cfg, mgr.GetConfigFile()))

	select {
	case c := <-changed:
		assert.Equal(t, "Ctrl+Shift+Y", c.Hotkey)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not observed")
	}
	assert.Equal(t, "Ctrl+Shift+Y", mgr.Settings().Hotkey)
}
