// Package desktop installs the freedesktop.org launcher and autostart
// entries of tabcast.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/tabcast/internal/logging"
)

const (
	appName       = "tabcast"
	entryFileName = "tabcast.desktop"
	filePerm      = 0o644
	dirPerm       = 0o755
)

// entryTemplate takes the executable path three times.
const entryTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=tabcast
GenericName=Prompt Broadcaster
Comment=Send one prompt to several AI chat sites at once
Exec=%[1]s run
Icon=internet-chat
Terminal=false
Categories=Network;Chat;Utility;
StartupNotify=false
StartupWMClass=tabcast
Actions=quick;settings;

[Desktop Action quick]
Name=Quick Prompt
Exec=%[1]s toggle

[Desktop Action settings]
Name=Settings
Exec=%[1]s settings
`

const autostartSuffix = "X-GNOME-Autostart-enabled=true\n"

// Paths are the directories entries are written to.
type Paths struct {
	// Applications is usually $XDG_DATA_HOME/applications.
	Applications string
	// Autostart is usually $XDG_CONFIG_HOME/autostart.
	Autostart string
}

// DefaultPaths resolves Paths from the XDG environment.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("get home dir: %w", err)
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return Paths{
		Applications: filepath.Join(dataHome, "applications"),
		Autostart:    filepath.Join(configHome, "autostart"),
	}, nil
}

// Status is the current integration state.
type Status struct {
	LauncherPath       string
	LauncherInstalled  bool
	AutostartPath      string
	AutostartInstalled bool
	ExecutablePath     string
}

// Integration writes and removes the entries.
type Integration struct {
	paths    Paths
	execPath string
	updateDB string
}

// New returns an Integration for paths launching execPath, or the running
// executable when execPath is empty.
func New(paths Paths, execPath string) (*Integration, error) {
	if execPath == "" {
		var err error
		if execPath, err = executablePath(); err != nil {
			return nil, err
		}
	}
	d := &Integration{paths: paths, execPath: execPath}
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		d.updateDB = path
	}
	return d, nil
}

func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symErr := filepath.EvalSymlinks(execPath); symErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}
	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

func (d *Integration) launcherPath() string {
	return filepath.Join(d.paths.Applications, entryFileName)
}

func (d *Integration) autostartPath() string {
	return filepath.Join(d.paths.Autostart, entryFileName)
}

// Entry renders the launcher entry.
func (d *Integration) Entry(autostart bool) string {
	content := fmt.Sprintf(entryTemplate, d.execPath)
	if autostart {
		content += autostartSuffix
	}
	return content
}

// Status reports which entries exist.
func (d *Integration) Status(context.Context) Status {
	s := Status{
		LauncherPath:   d.launcherPath(),
		AutostartPath:  d.autostartPath(),
		ExecutablePath: d.execPath,
	}
	s.LauncherInstalled = exists(s.LauncherPath)
	s.AutostartInstalled = exists(s.AutostartPath)
	return s
}

// Install writes the launcher and, with autostart, the autostart entry.
// It returns the written paths.
func (d *Integration) Install(ctx context.Context, autostart bool) ([]string, error) {
	log := logging.FromContext(ctx)

	written := []string{d.launcherPath()}
	if err := writeEntry(d.launcherPath(), d.Entry(false)); err != nil {
		return nil, err
	}
	if autostart {
		if err := writeEntry(d.autostartPath(), d.Entry(true)); err != nil {
			return written, err
		}
		written = append(written, d.autostartPath())
	}
	log.Info().Strs("paths", written).Msg("desktop entries installed")

	d.refresh(ctx)
	return written, nil
}

// Remove deletes both entries. Missing entries are not an error.
func (d *Integration) Remove(ctx context.Context) error {
	log := logging.FromContext(ctx)
	for _, path := range []string{d.launcherPath(), d.autostartPath()} {
		err := os.Remove(path)
		switch {
		case err == nil:
			log.Info().Str("path", path).Msg("desktop entry removed")
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("path", path).Msg("desktop entry already absent")
		default:
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	d.refresh(ctx)
	return nil
}

// refresh runs update-desktop-database when available. Failures only log.
func (d *Integration) refresh(ctx context.Context) {
	if d.updateDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, d.updateDB, d.paths.Applications).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed")
	}
}

func writeEntry(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
