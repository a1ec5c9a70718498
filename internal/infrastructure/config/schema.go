// Package config loads, validates, watches and writes the tabcast
// configuration file.
package config

import (
	"github.com/bnema/tabcast/internal/domain/entity"
)

// Backend selects the surface host implementation.
type Backend string

const (
	// BackendGTK hosts surfaces as WebKitGTK views inside a GTK4 window.
	BackendGTK Backend = "gtk"
	// BackendChrome hosts surfaces as tabs of a Chrome instance driven over CDP.
	BackendChrome Backend = "chrome"
)

// Config is the on-disk configuration.
type Config struct {
	// Hotkey is the global accelerator that toggles the quick window.
	Hotkey string `mapstructure:"hotkey" toml:"hotkey" json:"hotkey" jsonschema:"description=Global accelerator toggling the quick window,default=Alt+Q"`
	// Tools are the chat sites, in tab order.
	Tools []ToolConfig `mapstructure:"tools" toml:"tools" json:"tools"`

	Window  WindowConfig  `mapstructure:"window" toml:"window" json:"window"`
	Host    HostConfig    `mapstructure:"host" toml:"host" json:"host"`
	Journal JournalConfig `mapstructure:"journal" toml:"journal" json:"journal"`
	Control ControlConfig `mapstructure:"control" toml:"control" json:"control"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// ToolConfig describes one chat site.
type ToolConfig struct {
	ID            string `mapstructure:"id" toml:"id" json:"id"`
	Name          string `mapstructure:"name" toml:"name" json:"name"`
	URL           string `mapstructure:"url" toml:"url" json:"url" jsonschema:"format=uri"`
	Enabled       bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	InputSelector string `mapstructure:"input_selector" toml:"input_selector,omitempty" json:"input_selector,omitempty"`
	SendSelector  string `mapstructure:"send_selector" toml:"send_selector,omitempty" json:"send_selector,omitempty"`
	// SendWithEnter defaults to true when absent.
	SendWithEnter *bool `mapstructure:"send_with_enter" toml:"send_with_enter" json:"send_with_enter,omitempty"`
}

// WindowConfig holds initial window geometry.
type WindowConfig struct {
	MainWidth    int  `mapstructure:"main_width" toml:"main_width" json:"main_width" jsonschema:"minimum=320"`
	MainHeight   int  `mapstructure:"main_height" toml:"main_height" json:"main_height" jsonschema:"minimum=240"`
	QuickWidth   int  `mapstructure:"quick_width" toml:"quick_width" json:"quick_width" jsonschema:"minimum=200"`
	QuickHeight  int  `mapstructure:"quick_height" toml:"quick_height" json:"quick_height" jsonschema:"minimum=60"`
	StartVisible bool `mapstructure:"start_visible" toml:"start_visible" json:"start_visible"`
}

// HostConfig selects and tunes the surface host.
type HostConfig struct {
	Backend Backend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=gtk,enum=chrome"`
	// ChromePath overrides the Chrome executable for the chrome backend.
	ChromePath string `mapstructure:"chrome_path" toml:"chrome_path,omitempty" json:"chrome_path,omitempty"`
	// ChromeProfileDir keeps site logins across runs. Empty uses the data dir.
	ChromeProfileDir string `mapstructure:"chrome_profile_dir" toml:"chrome_profile_dir,omitempty" json:"chrome_profile_dir,omitempty"`
	Headless         bool   `mapstructure:"headless" toml:"headless" json:"headless"`
	EnableDevTools   bool   `mapstructure:"enable_devtools" toml:"enable_devtools" json:"enable_devtools"`
}

// JournalConfig controls the dispatch journal.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Path of the SQLite database. Empty uses the XDG data dir.
	Path          string `mapstructure:"path" toml:"path,omitempty" json:"path,omitempty"`
	RetentionDays int    `mapstructure:"retention_days" toml:"retention_days" json:"retention_days" jsonschema:"minimum=0"`
}

// ControlConfig controls the local control socket.
type ControlConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// SocketPath of the unix socket. Empty uses $XDG_RUNTIME_DIR.
	SocketPath string `mapstructure:"socket_path" toml:"socket_path,omitempty" json:"socket_path,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir,omitempty" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// Settings returns the hotkey and tool list in domain form.
func (c *Config) Settings() entity.Settings {
	tools := make([]entity.Tool, 0, len(c.Tools))
	for _, t := range c.Tools {
		tools = append(tools, t.Tool())
	}
	return entity.Settings{Hotkey: c.Hotkey, Tools: tools}
}

// ApplySettings replaces the hotkey and tool list.
func (c *Config) ApplySettings(s entity.Settings) {
	c.Hotkey = s.Hotkey
	c.Tools = make([]ToolConfig, 0, len(s.Tools))
	for _, t := range s.Tools {
		c.Tools = append(c.Tools, ToolConfigFrom(t))
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Tools = make([]ToolConfig, len(c.Tools))
	for i, t := range c.Tools {
		out.Tools[i] = t
		if t.SendWithEnter != nil {
			v := *t.SendWithEnter
			out.Tools[i].SendWithEnter = &v
		}
	}
	return &out
}

// Tool converts to the domain type.
func (t ToolConfig) Tool() entity.Tool {
	return entity.Tool{
		ID:            t.ID,
		Name:          t.Name,
		URL:           t.URL,
		Enabled:       t.Enabled,
		InputSelector: t.InputSelector,
		SendSelector:  t.SendSelector,
		SendWithEnter: t.SendWithEnter == nil || *t.SendWithEnter,
	}
}

// ToolConfigFrom converts from the domain type.
func ToolConfigFrom(t entity.Tool) ToolConfig {
	sendWithEnter := t.SendWithEnter
	return ToolConfig{
		ID:            t.ID,
		Name:          t.Name,
		URL:           t.URL,
		Enabled:       t.Enabled,
		InputSelector: t.InputSelector,
		SendSelector:  t.SendSelector,
		SendWithEnter: &sendWithEnter,
	}
}
