package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/jobfit/internal/engine"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s version: %s (logic %s)\n", app, version, engine.LogicVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
