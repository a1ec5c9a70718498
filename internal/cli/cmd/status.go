package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether tabcast runs, its hotkey and its tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		client, err := app.Client()
		if err != nil {
			return err
		}
		status, live, err := app.Status(cmd.Context(), client)
		if err != nil {
			return err
		}
		cmd.Println(cli.RenderStatus(app.Theme, status, live))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
