package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
	"github.com/bnema/tabcast/internal/infrastructure/clipboard"
)

var sendFromClipboard bool

var sendCmd = &cobra.Command{
	Use:   "send [prompt...]",
	Short: "Send a prompt to every enabled tool",
	Long: `Forward a prompt to the running instance, which shows its main window
and types the prompt into every enabled tool.

Without arguments, or with "-", the prompt is read from stdin.

Examples:
  tabcast send "explain this stack trace"
  git diff | tabcast send -
  tabcast send --clipboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		var (
			prompt string
			err    error
		)
		if sendFromClipboard {
			prompt, err = cli.ClipboardPrompt(app.Context(), clipboard.New())
		} else {
			prompt, err = cli.ReadPrompt(args, os.Stdin)
		}
		if err != nil {
			return err
		}
		client, err := app.Client()
		if err != nil {
			return err
		}
		if err := cli.Send(cmd.Context(), client, prompt); err != nil {
			return err
		}
		cmd.Println(app.Theme.SuccessLine("prompt sent"))
		return nil
	},
}

func init() {
	sendCmd.Flags().BoolVarP(&sendFromClipboard, "clipboard", "c", false, "send the clipboard content")
	rootCmd.AddCommand(sendCmd)
}
