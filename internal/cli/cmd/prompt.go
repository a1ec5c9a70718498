package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
	"github.com/bnema/tabcast/internal/cli/model"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Type a prompt in the terminal and send it",
	Long: `Open a one-line prompt entry in the terminal, the terminal twin of the
quick window. Enter sends, Esc closes. /settings, /clear and /help work as
in the quick window.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		client, err := app.Client()
		if err != nil {
			return err
		}

		m := model.NewPromptModel(cmd.Context(), app.Theme, model.PromptActions{
			Send: func(ctx context.Context, prompt string) error {
				return cli.Send(ctx, client, prompt)
			},
			OpenSettings: func(ctx context.Context) error {
				return cli.OpenSettings(ctx, client)
			},
		})
		final, err := tea.NewProgram(m).Run()
		if err != nil {
			return err
		}
		if pm, ok := final.(model.PromptModel); ok && pm.Sent {
			cmd.Println(app.Theme.SuccessLine("prompt sent"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
