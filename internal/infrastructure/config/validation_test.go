package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "reserved hotkey", mutate: func(c *Config) { c.Hotkey = "escape" }, wantErr: "hotkey"},
		{name: "empty hotkey", mutate: func(c *Config) { c.Hotkey = "" }, wantErr: "hotkey"},
		{name: "empty tool id", mutate: func(c *Config) { c.Tools[0].ID = "" }, wantErr: "tools[0].id must not be empty"},
		{name: "duplicate tool id", mutate: func(c *Config) { c.Tools[2].ID = c.Tools[0].ID }, wantErr: "duplicates tools[0]"},
		{name: "relative url", mutate: func(c *Config) { c.Tools[1].URL = "/chat" }, wantErr: "tools[1].url"},
		{name: "file url", mutate: func(c *Config) { c.Tools[1].URL = "file:///etc/passwd" }, wantErr: "scheme must be http or https"},
		{name: "tiny main window", mutate: func(c *Config) { c.Window.MainWidth = 10 }, wantErr: "window.main_width"},
		{name: "unknown backend", mutate: func(c *Config) { c.Host.Backend = "qt" }, wantErr: "host.backend"},
		{name: "negative retention", mutate: func(c *Config) { c.Journal.RetentionDays = -1 }, wantErr: "journal.retention_days"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeConfig_Backend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host.Backend = "CHROME"
	normalizeConfig(cfg)
	assert.Equal(t, BackendChrome, cfg.Host.Backend)

	cfg.Host.Backend = "unknown"
	normalizeConfig(cfg)
	assert.Equal(t, BackendGTK, cfg.Host.Backend)
}
