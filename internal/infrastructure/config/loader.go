package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and saving.
// It serves as the settings store of the running application.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	path           string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a configuration manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager for path.
func NewManagerForFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// TABCAST_HOTKEY, TABCAST_HOST_BACKEND, TABCAST_JOURNAL_ENABLED, ...
	v.SetEnvPrefix("TABCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TABCAST_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABCAST_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABCAST_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABCAST_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		path:      path,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads the configuration file, creating it with defaults on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.path, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.path,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.path,
			err,
		)
	}
	if !m.viper.IsSet("tools") {
		config.Tools = DefaultConfig().Tools
	}
	return config, nil
}

// normalizeConfig fills derived values and canonicalizes free-form ones.
func normalizeConfig(config *Config) {
	config.Hotkey = entity.NormalizeHotkey(config.Hotkey)
	if config.Hotkey == "" {
		config.Hotkey = entity.DefaultHotkey
	}

	now := time.Now()
	for i := range config.Tools {
		tool := &config.Tools[i]
		tool.ID = strings.TrimSpace(tool.ID)
		tool.Name = strings.TrimSpace(tool.Name)
		tool.URL = strings.TrimSpace(tool.URL)
		tool.InputSelector = strings.TrimSpace(tool.InputSelector)
		tool.SendSelector = strings.TrimSpace(tool.SendSelector)
		if tool.ID == "" {
			tool.ID = entity.NewToolID(now)
		}
		if tool.Name == "" {
			tool.Name = tool.ID
		}
		if tool.SendWithEnter == nil {
			sendWithEnter := true
			tool.SendWithEnter = &sendWithEnter
		}
	}

	switch Backend(strings.ToLower(string(config.Host.Backend))) {
	case BackendChrome:
		config.Host.Backend = BackendChrome
	default:
		config.Host.Backend = BackendGTK
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.Clone()
}

// Settings returns the current hotkey and tool list.
func (m *Manager) Settings() entity.Settings {
	return m.Get().Settings()
}

// SaveSettings persists a new hotkey and tool list, keeping every other
// section as loaded.
func (m *Manager) SaveSettings(ctx context.Context, s entity.Settings) error {
	cfg := m.Get()
	cfg.ApplySettings(s)
	if err := m.Save(cfg); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().
		Str("hotkey", cfg.Hotkey).
		Int("tools", len(cfg.Tools)).
		Msg("settings saved")
	return nil
}

// Save validates cfg, writes it to disk and makes it current.
// Change callbacks run once the file has been written.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	m.mu.Lock()

	cfg = cfg.Clone()
	normalizeConfig(cfg)
	// Validate before writing so callers get immediate errors.
	if err := validateConfig(cfg); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), dirPerm); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(cfg, m.path); err != nil {
		m.mu.Unlock()
		return err
	}

	m.config = cfg
	if m.watching {
		// The watcher will see our own write; let it resync viper only.
		m.skipNextReload = true
	} else if err := m.viper.ReadInConfig(); err != nil {
		log := logging.NewFromEnv()
		log.Warn().Err(err).Msg("failed to sync viper config after Save")
	}
	m.notifyCallbacksLocked()
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.path
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.path), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.path); err != nil {
		return err
	}
	log := logging.NewFromEnv()
	log.Info().Str("path", m.path).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("hotkey", defaults.Hotkey)

	m.viper.SetDefault("window.main_width", defaults.Window.MainWidth)
	m.viper.SetDefault("window.main_height", defaults.Window.MainHeight)
	m.viper.SetDefault("window.quick_width", defaults.Window.QuickWidth)
	m.viper.SetDefault("window.quick_height", defaults.Window.QuickHeight)
	m.viper.SetDefault("window.start_visible", defaults.Window.StartVisible)

	m.viper.SetDefault("host.backend", string(defaults.Host.Backend))
	m.viper.SetDefault("host.chrome_path", defaults.Host.ChromePath)
	m.viper.SetDefault("host.chrome_profile_dir", defaults.Host.ChromeProfileDir)
	m.viper.SetDefault("host.headless", defaults.Host.Headless)
	m.viper.SetDefault("host.enable_devtools", defaults.Host.EnableDevTools)

	m.viper.SetDefault("journal.enabled", defaults.Journal.Enabled)
	m.viper.SetDefault("journal.path", defaults.Journal.Path)
	m.viper.SetDefault("journal.retention_days", defaults.Journal.RetentionDays)

	m.viper.SetDefault("control.enabled", defaults.Control.Enabled)
	m.viper.SetDefault("control.socket_path", defaults.Control.SocketPath)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
