package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabe/intpick/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "intpick version %s\n", version.Version)
		fmt.Fprintf(out, "  commit: %s\n", version.GitCommit)
		fmt.Fprintf(out, "  built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
