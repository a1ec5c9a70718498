// Package cmd provides the Cobra commands of tabcast.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
	"github.com/bnema/tabcast/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string

	rootCmd = &cobra.Command{
		Use:   "tabcast",
		Short: "Send one prompt to several AI chat sites at once",
		Long: `tabcast keeps one embedded web view per chat site (DeepSeek, Qwen,
Doubao, or any site you add) and types the same prompt into all of them.

Use 'tabcast run' to start the window. A global hotkey (Alt+Q by default)
opens a small quick window from anywhere; the other subcommands drive the
running instance or edit the configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "run", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tabcast/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
