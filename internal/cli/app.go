// Package cli holds the logic behind the tabcast commands. Commands that
// act on the running instance go through the control socket; the others
// edit the configuration file, which a running instance hot reloads.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/tabcast/internal/cli/styles"
	"github.com/bnema/tabcast/internal/domain/build"
	"github.com/bnema/tabcast/internal/domain/repository"
	"github.com/bnema/tabcast/internal/infrastructure/config"
	"github.com/bnema/tabcast/internal/infrastructure/control"
	"github.com/bnema/tabcast/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabcast/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Out       io.Writer

	ctx       context.Context
	journalDB *sqlite.LazyDB
}

// NewApp loads the configuration from configFile, or from the XDG path
// when empty.
func NewApp(configFile string) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configFile == "" {
		mgr, err = config.NewManager()
	} else {
		mgr, err = config.NewManagerForFile(configFile)
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return NewAppWithManager(mgr, os.Stdout), nil
}

// NewAppWithManager wires an App around an already loaded manager.
func NewAppWithManager(mgr *config.Manager, out io.Writer) *App {
	// Commands stay quiet unless TABCAST_LOG_LEVEL asks otherwise.
	logCfg := logging.DefaultConfig()
	logCfg.Level = zerolog.WarnLevel
	logCfg.TimeFormat = "15:04:05"
	logger := logging.New(logging.ApplyEnv(logCfg))

	return &App{
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Out:     out,
		ctx:     logging.WithContext(context.Background(), logger),
	}
}

// Context returns the base context carrying the CLI logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Config returns the current configuration.
func (a *App) Config() *config.Config {
	return a.Manager.Get()
}

// SocketPath returns the control socket of the running instance.
func (a *App) SocketPath() (string, error) {
	if p := a.Config().Control.SocketPath; p != "" {
		return p, nil
	}
	return config.GetSocketPath()
}

// Client returns a control client for the running instance.
func (a *App) Client() (*control.Client, error) {
	path, err := a.SocketPath()
	if err != nil {
		return nil, err
	}
	return control.NewClient(path), nil
}

// Journal opens the dispatch journal read side.
func (a *App) Journal() (repository.DispatchRepository, error) {
	path := a.Config().Journal.Path
	if path == "" {
		var err error
		if path, err = config.GetDatabaseFile(); err != nil {
			return nil, err
		}
	}
	if a.journalDB == nil {
		a.journalDB = sqlite.NewLazyDB(path)
	}
	return sqlite.NewLazyDispatchRepository(a.journalDB), nil
}

// Close releases the journal database.
func (a *App) Close() error {
	if a.journalDB == nil {
		return nil
	}
	return a.journalDB.Close()
}
