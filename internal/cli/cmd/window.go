package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
)

func windowCommand(use, short string, action func(ctx context.Context, c cli.WindowClient) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := GetApp().Client()
			if err != nil {
				return err
			}
			return action(cmd.Context(), client)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		windowCommand("toggle", "Show or hide the quick window", cli.ToggleQuick),
		windowCommand("show", "Raise the main window", cli.ShowMain),
		windowCommand("settings", "Open the settings tab of the main window", cli.OpenSettings),
	)
}
