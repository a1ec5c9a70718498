package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/logging"
)

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateHotkey(config)...)
	validationErrors = append(validationErrors, validateTools(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateHost(config)...)
	validationErrors = append(validationErrors, validateJournal(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateHotkey(config *Config) []string {
	if _, err := entity.ValidateHotkey(config.Hotkey); err != nil {
		return []string{fmt.Sprintf("hotkey %q: %v", config.Hotkey, err)}
	}
	return nil
}

func validateTools(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]int, len(config.Tools))

	for i, tool := range config.Tools {
		field := fmt.Sprintf("tools[%d]", i)
		if tool.ID == "" {
			validationErrors = append(validationErrors, field+".id must not be empty")
		} else if first, dup := seen[tool.ID]; dup {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s.id %q duplicates tools[%d]", field, tool.ID, first))
		} else {
			seen[tool.ID] = i
		}
		if err := validateToolURL(tool.URL); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.url: %v", field, err))
		}
	}
	return validationErrors
}

func validateToolURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.MainWidth < 320 || config.Window.MainHeight < 240 {
		validationErrors = append(validationErrors, "window.main_width/main_height must be at least 320x240")
	}
	if config.Window.QuickWidth < 200 || config.Window.QuickHeight < 60 {
		validationErrors = append(validationErrors, "window.quick_width/quick_height must be at least 200x60")
	}
	return validationErrors
}

func validateHost(config *Config) []string {
	switch config.Host.Backend {
	case BackendGTK, BackendChrome:
		return nil
	default:
		return []string{fmt.Sprintf("host.backend must be %q or %q", BackendGTK, BackendChrome)}
	}
}

func validateJournal(config *Config) []string {
	if config.Journal.RetentionDays < 0 {
		return []string{"journal.retention_days must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level: %v", err))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return validationErrors
}
