package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/bootstrap"
	"github.com/bnema/tabcast/internal/infrastructure/config"
)

var runBackend string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start tabcast",
	Long: `Start the main window with one tab per enabled tool and register the
global hotkey.

The gtk backend embeds WebKitGTK views in a GTK4 window. The chrome backend
drives one tab per tool in a Chrome instance over the DevTools protocol; it
has no quick window, use 'tabcast send' or 'tabcast prompt' instead.

Examples:
  tabcast run
  tabcast run --backend chrome`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		backend := config.Backend(runBackend)
		switch backend {
		case "", config.BackendGTK, config.BackendChrome:
		default:
			return fmt.Errorf("unknown backend %q (want gtk or chrome)", runBackend)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := bootstrap.Run(ctx, bootstrap.Options{ConfigFile: configFile, Backend: backend})
		if errors.Is(err, bootstrap.ErrAlreadyRunning) {
			return fmt.Errorf("%w; use 'tabcast show' or 'tabcast toggle'", err)
		}
		return err
	},
}

func init() {
	runCmd.Flags().StringVar(&runBackend, "backend", "", "surface host: gtk or chrome (default from config)")
	rootCmd.AddCommand(runCmd)
}
