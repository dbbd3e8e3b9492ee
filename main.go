package main

import (
	"os"

	"github.com/cottand/fwd/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "fwd [subcommand]",
	Short:        "fwd ⏩\n structural type equivalence for forwarding wrappers",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.SimilarCmd)
	rootCmd.AddCommand(cmd.AlikeCmd)
}
