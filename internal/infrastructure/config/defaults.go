package config

import "github.com/bnema/tabcast/internal/domain/entity"

// Default configuration constants
const (
	// Window defaults
	defaultMainWidth   = 980 // px
	defaultMainHeight  = 720 // px
	defaultQuickWidth  = 720 // px
	defaultQuickHeight = 154 // px

	// Journal defaults
	defaultJournalRetentionDays = 30 // days

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10 // MB
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7 // days
)

// DefaultConfig returns the first-run configuration.
func DefaultConfig() *Config {
	cfg := &Config{
		Window: WindowConfig{
			MainWidth:   defaultMainWidth,
			MainHeight:  defaultMainHeight,
			QuickWidth:  defaultQuickWidth,
			QuickHeight: defaultQuickHeight,
		},
		Host: HostConfig{
			Backend: BackendGTK,
		},
		Journal: JournalConfig{
			Enabled:       true,
			RetentionDays: defaultJournalRetentionDays,
		},
		Control: ControlConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
	}
	cfg.ApplySettings(entity.DefaultSettings())
	return cfg
}
