package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/application/usecase"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/infrastructure/accelerator"
	"github.com/bnema/tabcast/internal/infrastructure/chromehost"
	"github.com/bnema/tabcast/internal/infrastructure/config"
	"github.com/bnema/tabcast/internal/infrastructure/control"
	"github.com/bnema/tabcast/internal/infrastructure/events"
	"github.com/bnema/tabcast/internal/infrastructure/gtkhost"
	infralogging "github.com/bnema/tabcast/internal/infrastructure/logging"
	"github.com/bnema/tabcast/internal/logging"
	"github.com/bnema/tabcast/internal/ui/controller"
)

// Options configure Run.
type Options struct {
	// ConfigFile overrides the XDG config path.
	ConfigFile string
	// Backend overrides host.backend from the config file.
	Backend config.Backend
}

// Run starts tabcast and blocks until ctx is done or the windows are gone.
// With the gtk backend it must be called from the main OS thread.
func Run(ctx context.Context, opts Options) error {
	timer := NewStartupTimer()

	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	mgr, err := NewConfigManager(opts.ConfigFile)
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		return err
	}
	cfg := mgr.Get()
	if opts.Backend != "" {
		cfg.Host.Backend = opts.Backend
	}

	logDir, _ := config.GetLogDir()
	logger, closeLog, logErr := infralogging.NewAppLogger(cfg.Logging, infralogging.Options{DefaultLogDir: logDir})
	defer closeLog()
	ctx = logging.WithContext(ctx, logger)
	log := logging.FromContext(ctx)
	if logErr != nil {
		log.Warn().Err(logErr).Msg("file logging disabled")
	}

	lockPath, err := config.GetLockFile()
	if err != nil {
		return err
	}
	lock, err := AcquireInstanceLock(lockPath)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()
	timer.Mark(PhaseConfig)

	j, err := openJournal(ctx, cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()
	timer.Mark(PhaseJournal)

	bus := events.NewBus(ctx)
	defer bus.Close()

	a := &app{cfg: cfg, mgr: mgr, journal: j, bus: bus, timer: timer}
	log.Info().
		Str("backend", string(cfg.Host.Backend)).
		Str("config", mgr.GetConfigFile()).
		Int("tools", len(cfg.Settings().EnabledTools())).
		Msg("starting tabcast")

	switch cfg.Host.Backend {
	case config.BackendChrome:
		return a.runChrome(ctx)
	default:
		return a.runGTK(ctx)
	}
}

// NewConfigManager returns a manager for path, or for the XDG config file
// when path is empty.
func NewConfigManager(path string) (*config.Manager, error) {
	if path == "" {
		return config.NewManager()
	}
	return config.NewManagerForFile(path)
}

type app struct {
	cfg     *config.Config
	mgr     *config.Manager
	journal *journal
	bus     *events.Bus
	timer   *StartupTimer

	orchestrator *usecase.SurfaceOrchestrator
	dispatch     *usecase.DispatchUseCase
	windows      *usecase.QuickWindowUseCase
	accel        *accelerator.Manager
	hotkeys      *usecase.HotkeyCoordinator
	main         *controller.MainController
	quick        *controller.QuickController

	firstLayout sync.Once
}

// wire builds the use cases and controllers on top of host.
func (a *app) wire(ctx context.Context, host port.Host, view controller.View) {
	a.orchestrator = usecase.NewSurfaceOrchestrator(host)
	deliver := usecase.NewDeliverPromptUseCase(host, a.journal.Recorder())
	a.dispatch = usecase.NewDispatchUseCase(host, a.orchestrator, deliver)
	a.windows = usecase.NewQuickWindowUseCase(host)

	a.accel = accelerator.NewManager(ctx)
	a.hotkeys = usecase.NewHotkeyCoordinator(ctx, a.accel, a.windows.OnHotkey)

	a.main = controller.New(controller.Deps{
		Settings:     a.mgr,
		Orchestrator: a.orchestrator,
		Dispatch:     a.dispatch,
		Hotkeys:      a.hotkeys,
		View:         view,
	})
	a.quick = controller.NewQuickController(a.windows, a.dispatch)

	a.mgr.OnConfigChange(func(cfg *config.Config) {
		if err := a.main.ApplySettings(ctx, cfg.Settings()); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to apply new settings")
		}
	})
	if err := a.mgr.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload disabled")
	}
}

func (a *app) shutdown(ctx context.Context) {
	a.main.Stop()
	a.hotkeys.Close()
	if err := a.accel.Close(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("accelerator close")
	}
}

// onBounds feeds the seq-th stage rectangle to the main controller.
func (a *app) onBounds(ctx context.Context, seq uint64, bounds entity.Bounds) {
	if err := a.main.ApplyBounds(ctx, seq, bounds); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("layout failed")
	}
	a.firstLayout.Do(func() {
		a.timer.Since(PhaseReady)
		a.timer.Log(ctx)
	})
}

// supervise runs the host on the calling goroutine and the background
// services next to it. Whichever stops first stops the others.
func (a *app) supervise(ctx context.Context, runHost func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if a.cfg.Control.Enabled {
		socketPath := a.cfg.Control.SocketPath
		if socketPath == "" {
			var err error
			if socketPath, err = config.GetSocketPath(); err != nil {
				return err
			}
		}
		actions := newControlActions(a.windows, a.dispatch, a.main)
		server := control.NewServer(gctx, actions, socketPath)
		g.Go(func() error {
			err := server.Serve(gctx)
			if errors.Is(err, control.ErrSocketInUse) {
				logging.FromContext(gctx).Warn().Str("socket", socketPath).Msg("control socket taken, remote control disabled")
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		a.journal.Prune(gctx, a.cfg.Journal.RetentionDays)
		return nil
	})

	hostErr := runHost(gctx)
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Join(hostErr, err)
	}
	return hostErr
}

func (a *app) runGTK(ctx context.Context) error {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return err
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = filepath.Join(dirs.StateHome, "cache")
	}

	host := gtkhost.New(ctx, gtkhost.Options{
		MainWidth:      a.cfg.Window.MainWidth,
		MainHeight:     a.cfg.Window.MainHeight,
		QuickWidth:     a.cfg.Window.QuickWidth,
		QuickHeight:    a.cfg.Window.QuickHeight,
		StartVisible:   a.cfg.Window.StartVisible,
		EnableDevTools: a.cfg.Host.EnableDevTools,
		DataDir:        filepath.Join(dirs.DataHome, "webkit"),
		CacheDir:       filepath.Join(cacheDir, "tabcast", "webkit"),
		ConfigFile:     a.mgr.GetConfigFile(),
	}, a.bus)

	a.wire(ctx, host, host.View())
	defer a.shutdown(ctx)
	a.timer.Mark(PhaseHotkey)

	host.SetCallbacks(gtkhost.Callbacks{
		OnReady: func(ctx context.Context) {
			a.timer.Since(PhaseHost)
			a.main.Start(ctx, a.bus)
		},
		OnBounds: a.onBounds,
		OnSelectTab: func(ctx context.Context, id string) {
			if err := a.main.SelectTab(ctx, id); err != nil {
				logging.FromContext(ctx).Debug().Err(err).Str("tab", id).Msg("tab not selectable")
			}
		},
		OnSetHotkey: func(ctx context.Context, hotkey string) {
			_ = a.main.SetHotkey(ctx, hotkey)
		},
		OnQuickSubmit: func(ctx context.Context, text string) gtkhost.QuickReply {
			res := a.quick.Submit(ctx, text)
			reply := gtkhost.QuickReply{Clear: res.Clear}
			if res.Notice != nil {
				reply.Message = res.Notice.Message
			}
			return reply
		},
		OnQuickBlur: a.quick.Blurred,
		OnDismiss:   a.quick.Dismiss,
	})

	return a.supervise(ctx, host.Run)
}

func (a *app) runChrome(ctx context.Context) error {
	profileDir := a.cfg.Host.ChromeProfileDir
	if profileDir == "" {
		var err error
		if profileDir, err = config.GetChromeProfileDir(); err != nil {
			return err
		}
	}

	host := chromehost.New(ctx, chromehost.Options{
		ExecPath:   a.cfg.Host.ChromePath,
		ProfileDir: profileDir,
		Headless:   a.cfg.Host.Headless,
		Width:      a.cfg.Window.MainWidth,
		Height:     a.cfg.Window.MainHeight,
	}, a.bus)

	a.wire(ctx, host, nil)
	defer a.shutdown(ctx)
	a.timer.Mark(PhaseHotkey)

	return a.supervise(ctx, func(ctx context.Context) error {
		return host.Run(ctx, func(ctx context.Context, bounds entity.Bounds) {
			a.timer.Since(PhaseHost)
			a.main.Start(ctx, a.bus)
			a.onBounds(ctx, 1, bounds)
		})
	})
}
