package cmd

import (
	"fmt"
	"log/slog"

	"github.com/cottand/fwd/internal/log"
	"github.com/cottand/fwd/typedesc"
	"github.com/spf13/cobra"
)

var AlikeCmd = &cobra.Command{
	Use:          "alike <type> <type>",
	Short:        "Decide whether two types denote the same value identity, ignoring how each is bound",
	RunE:         runAlike,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var alikeLogLevel *int

func init() {
	alikeLogLevel = AlikeCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runAlike(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*alikeLogLevel))

	fst, snd, err := parsePair(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "alike: %v\n", typedesc.Alike(fst, snd))
	return err
}
