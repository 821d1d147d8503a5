package cmd

import (
	"fmt"
	"runtime"

	"github.com/prevostc/graph-tooling/pkg/ui"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of graph",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintBanner()
		fmt.Fprintf(ui.Out, "graph %s (%s) built %s %s/%s\n", Version, CommitSHA, BuildDate, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
