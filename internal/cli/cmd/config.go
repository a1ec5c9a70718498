package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Locate the config file and its schema",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Println(GetApp().ConfigPath())
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	Long: `Write config.schema.json next to the config file. Editors with TOML
schema support (taplo, Even Better TOML) use it for completion and checks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		path, err := app.WriteSchema()
		if err != nil {
			return err
		}
		cmd.Println(app.Theme.SuccessLine("schema written to " + path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}
