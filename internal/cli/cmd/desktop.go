package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
)

var desktopAutostart bool

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Manage the desktop launcher and autostart entry",
	Long: `The global hotkey only works while tabcast runs. Install an autostart
entry to start it with your session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		d, err := app.Desktop()
		if err != nil {
			return err
		}
		cmd.Println(cli.RenderDesktopStatus(app.Theme, d.Status(cmd.Context())))
		return nil
	},
}

var desktopInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the launcher entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		d, err := app.Desktop()
		if err != nil {
			return err
		}
		written, err := d.Install(app.Context(), desktopAutostart)
		if err != nil {
			return err
		}
		for _, path := range written {
			cmd.Println(app.Theme.SuccessLine("wrote " + path))
		}
		return nil
	},
}

var desktopRemoveCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"uninstall"},
	Short:   "Remove the launcher and autostart entries",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		d, err := app.Desktop()
		if err != nil {
			return err
		}
		if err := d.Remove(app.Context()); err != nil {
			return err
		}
		cmd.Println(app.Theme.SuccessLine("desktop entries removed"))
		return nil
	},
}

func init() {
	desktopInstallCmd.Flags().BoolVar(&desktopAutostart, "autostart", false, "also start tabcast with the session")
	desktopCmd.AddCommand(desktopInstallCmd, desktopRemoveCmd)
	rootCmd.AddCommand(desktopCmd)
}
