package cmd

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cottand/fwd/fwderr"
	"github.com/cottand/fwd/internal/log"
	"github.com/cottand/fwd/typedesc"
	"github.com/cottand/fwd/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var logger = log.DefaultLogger.With("section", "typedesc")

var SimilarCmd = &cobra.Command{
	Use:          "similar <type> <type>",
	Short:        "Decide whether two types have the same shape, ignoring qualifiers",
	RunE:         runSimilar,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var similarLogLevel *int

func init() {
	similarLogLevel = SimilarCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*similarLogLevel))

	fst, snd, err := parsePair(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "similar: %v\n", typedesc.Similar(fst, snd))
	return err
}

func parsePair(args []string) (fst, snd typedesc.Desc, err error) {
	fst, err = parseNotation(args[0])
	if err != nil {
		return nil, nil, err
	}
	snd, err = parseNotation(args[1])
	if err != nil {
		return nil, nil, err
	}
	return fst, snd, nil
}

func parseNotation(notation string) (typedesc.Desc, error) {
	d, err := typedesc.Parse(notation)
	if err != nil {
		var coded fwderr.Error
		if stderrors.As(err, &coded) {
			return nil, errors.Errorf("could not parse type %q:\n  %s", notation, fwderr.FormatWithCode(coded))
		}
		return nil, errors.Wrapf(err, "could not parse type %q", notation)
	}
	bases := util.SetFromSeq(util.MapIter(slices.Values(typedesc.Bases(d)), (*typedesc.Named).String), 2)
	logger.Debug("parsed type notation", "type", d.String(), "bases", bases.Slice())
	return d, nil
}
