package cli

import (
	"fmt"
	"strings"

	"github.com/bnema/tabcast/internal/cli/styles"
	"github.com/bnema/tabcast/internal/infrastructure/desktop"
)

// Desktop returns the launcher integration for the running executable.
func (a *App) Desktop() (*desktop.Integration, error) {
	paths, err := desktop.DefaultPaths()
	if err != nil {
		return nil, err
	}
	return desktop.New(paths, "")
}

// RenderDesktopStatus renders which desktop entries are installed.
func RenderDesktopStatus(theme *styles.Theme, st desktop.Status) string {
	var b strings.Builder
	line := func(name, path string, installed bool) {
		fmt.Fprintf(&b, "%s %-10s %s\n", theme.EnabledBadge(installed), name, theme.Subtle.Render(path))
	}
	line("launcher", st.LauncherPath, st.LauncherInstalled)
	line("autostart", st.AutostartPath, st.AutostartInstalled)
	fmt.Fprintf(&b, "%s %s", theme.Subtle.Render("executable"), st.ExecutablePath)
	return b.String()
}
