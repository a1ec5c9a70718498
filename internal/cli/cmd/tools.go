package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
	"github.com/bnema/tabcast/internal/domain/entity"
)

var addSpec cli.ToolSpec

var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"tool"},
	Short:   "List and edit the configured tools",
	Long: `List and edit the chat sites tabcast opens as tabs.

Changes are written to the config file; a running instance reloads them
and opens or closes tabs to match.`,
	Args: cobra.NoArgs,
	RunE: listTools,
}

var toolsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the configured tools",
	Args:    cobra.NoArgs,
	RunE:    listTools,
}

func listTools(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	cmd.Println(cli.RenderTools(app.Theme, app.Manager.Settings().Tools))
	return nil
}

func toggleToolCommand(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := GetApp()
			err := app.EditSettings(func(s entity.Settings) (entity.Settings, error) {
				return cli.SetToolEnabled(s, args[0], enabled)
			})
			if err != nil {
				return err
			}
			cmd.Println(app.Theme.SuccessLine(args[0] + " " + use + "d"))
			return nil
		},
	}
}

var toolsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a tool",
	Long: `Add a chat site. Without --input-selector the first textarea or
editable element of the page receives the prompt.

Examples:
  tabcast tools add --name Kimi --url https://kimi.moonshot.cn/
  tabcast tools add --id claude --name Claude --url https://claude.ai/new \
    --input-selector 'div[contenteditable=true]'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		var added entity.Tool
		err := app.EditSettings(func(s entity.Settings) (entity.Settings, error) {
			next, tool, err := cli.AddTool(s, addSpec, time.Now())
			added = tool
			return next, err
		})
		if err != nil {
			return err
		}
		cmd.Println(app.Theme.SuccessLine("added " + added.ID + " (" + added.URL + ")"))
		return nil
	},
}

var toolsRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a tool",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		err := app.EditSettings(func(s entity.Settings) (entity.Settings, error) {
			return cli.RemoveTool(s, args[0])
		})
		if err != nil {
			return err
		}
		cmd.Println(app.Theme.SuccessLine("removed " + args[0]))
		return nil
	},
}

func init() {
	f := toolsAddCmd.Flags()
	f.StringVar(&addSpec.ID, "id", "", "tool id (generated when empty)")
	f.StringVar(&addSpec.Name, "name", "", "display name")
	f.StringVar(&addSpec.URL, "url", "", "chat page URL")
	f.StringVar(&addSpec.InputSelector, "input-selector", "", "CSS selector of the prompt input")
	f.StringVar(&addSpec.SendSelector, "send-selector", "", "CSS selector of the send button")
	f.BoolVar(&addSpec.NoEnter, "no-enter", false, "do not press Enter after typing")
	f.BoolVar(&addSpec.Disabled, "disabled", false, "add the tool disabled")
	_ = toolsAddCmd.MarkFlagRequired("name")
	_ = toolsAddCmd.MarkFlagRequired("url")

	toolsCmd.AddCommand(
		toolsListCmd,
		toggleToolCommand("enable", "Enable a tool", true),
		toggleToolCommand("disable", "Disable a tool", false),
		toolsAddCmd,
		toolsRemoveCmd,
	)
	rootCmd.AddCommand(toolsCmd)
}
