// Package logging builds the application logger from the logging section of
// the configuration file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/tabcast/internal/infrastructure/config"
	corelogging "github.com/bnema/tabcast/internal/logging"
)

const (
	logFileName    = "tabcast.log"
	timeFormat     = "15:04:05"
	fallbackFormat = "console"
)

// Options tune NewAppLogger.
type Options struct {
	// Stderr receives the terminal output. Nil means os.Stderr.
	Stderr io.Writer
	// DefaultLogDir is used when the config leaves log_dir empty.
	DefaultLogDir string
}

// NewAppLogger returns a logger honouring cfg and the TABCAST_LOG_* overrides.
// The cleanup function closes the log file, if any. When the log file cannot
// be opened the terminal-only logger is returned along with the error.
func NewAppLogger(cfg config.LoggingConfig, opts Options) (zerolog.Logger, func(), error) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	level, err := corelogging.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	format := cfg.Format
	if format == "" {
		format = fallbackFormat
	}
	logCfg := corelogging.ApplyEnv(corelogging.Config{
		Level:      level,
		Format:     format,
		TimeFormat: timeFormat,
	})

	if !cfg.EnableFileLog {
		return corelogging.NewWithWriter(stderr, logCfg), func() {}, nil
	}

	dir := cfg.LogDir
	if dir == "" {
		dir = opts.DefaultLogDir
	}
	rotator, err := corelogging.NewRotator(dir, logFileName, corelogging.RotatorOptions{
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
	if err != nil {
		return corelogging.NewWithWriter(stderr, logCfg), func() {}, fmt.Errorf("open log file in %s: %w", dir, err)
	}

	logCfg.File = rotator
	logger := corelogging.NewWithWriter(stderr, logCfg)
	logger.Debug().Str("path", rotator.Path()).Msg("file logging enabled")
	return logger, func() { _ = rotator.Close() }, nil
}
