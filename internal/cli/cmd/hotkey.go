package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli/styles"
)

var hotkeyCmd = &cobra.Command{
	Use:   "hotkey",
	Short: "Show or change the quick window hotkey",
	Args:  cobra.NoArgs,
	RunE:  showHotkey,
}

var hotkeyGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the active hotkey",
	Args:  cobra.NoArgs,
	RunE:  showHotkey,
}

func showHotkey(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	client, err := app.Client()
	if err != nil {
		return err
	}
	hk, live, err := app.Hotkey(cmd.Context(), client)
	if err != nil {
		return err
	}
	line := app.Theme.Highlight.Render(hk)
	if !live {
		line += " " + app.Theme.Subtle.Render("(configured, not running)")
	}
	cmd.Println(styles.IconKey + " " + line)
	return nil
}

var hotkeySetCmd = &cobra.Command{
	Use:   "set <accelerator>",
	Short: "Register a new hotkey",
	Long: `Register a new global hotkey for the quick window and save it.

When tabcast is running the new key is registered first and only saved if
that worked. Otherwise the value is checked and written to the config file.

Examples:
  tabcast hotkey set Alt+Q
  tabcast hotkey set "Ctrl+Shift+Space"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		client, err := app.Client()
		if err != nil {
			return err
		}
		applied, live, err := app.SetHotkey(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		if live {
			cmd.Println(app.Theme.SuccessLine("hotkey registered: " + applied))
			return nil
		}
		cmd.Println(app.Theme.SuccessLine("hotkey saved: " + applied + " (applies on next start)"))
		return nil
	},
}

func init() {
	hotkeyCmd.AddCommand(hotkeyGetCmd, hotkeySetCmd)
	rootCmd.AddCommand(hotkeyCmd)
}
