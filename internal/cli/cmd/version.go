package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/tabcast/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info := buildInfo
		if info.GoVersion == "" {
			info.GoVersion = runtime.Version()
		}
		cmd.Println(info.String())
		cmd.Printf("%s/%s  %s\n", runtime.GOOS, runtime.GOARCH, build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
