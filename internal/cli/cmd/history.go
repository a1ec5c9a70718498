package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/cli"
)

var (
	historyJSON  bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the prompts sent recently",
	Long: `List the prompts sent recently, with how many tools accepted each one.

Entries older than journal.retention_days are pruned at start.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		repo, err := app.Journal()
		if err != nil {
			return err
		}
		dispatches, err := cli.History(cmd.Context(), repo, historyLimit)
		if err != nil {
			return err
		}
		if historyJSON {
			return cli.WriteHistoryJSON(cmd.OutOrStdout(), dispatches)
		}
		cmd.Println(cli.RenderHistory(app.Theme, dispatches, time.Now()))
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries, 0 for all")
	rootCmd.AddCommand(historyCmd)
}
