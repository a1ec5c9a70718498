package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
	"github.com/bnema/tabcast/internal/infrastructure/clipboard"
)

var (
	scriptTool string
	scriptCopy bool
)

var scriptCmd = &cobra.Command{
	Use:   "script [prompt...]",
	Short: "Print the script that would type a prompt into a tool",
	Long: `Print the JavaScript tabcast evaluates in a tool's page to type and send
a prompt. Paste it in the browser console to debug a tool's selectors.

Examples:
  tabcast script --tool deepseek "hello"
  echo "hello" | tabcast script --tool qwen`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		prompt, err := cli.ReadPrompt(args, os.Stdin)
		if err != nil {
			return err
		}
		script, err := cli.Script(app.Manager.Settings(), scriptTool, prompt)
		if err != nil {
			return err
		}
		if scriptCopy {
			if err := clipboard.New().WriteText(app.Context(), script); err != nil {
				return err
			}
			cmd.Println(app.Theme.SuccessLine("script copied to the clipboard"))
			return nil
		}
		_, err = cmd.OutOrStdout().Write([]byte(script + "\n"))
		return err
	},
}

func init() {
	scriptCmd.Flags().StringVarP(&scriptTool, "tool", "t", "", "tool id")
	scriptCmd.Flags().BoolVar(&scriptCopy, "copy", false, "copy the script to the clipboard instead of printing it")
	_ = scriptCmd.MarkFlagRequired("tool")
	rootCmd.AddCommand(scriptCmd)
}
