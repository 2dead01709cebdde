package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/playability"
	"github.com/jsphweid/fretdex/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect ROOT QUALITY",
	Short: "Prints the ranked fingerings of one chord as chord charts",
	Long: `Prints the ranked fingerings of one chord, one per line, in chord chart
form (x for a muted string, lowest string first) with score and fret span.`,
	Example: "  fretdex inspect C Major --limit 5",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := parseChordArgs(args)
		if err != nil {
			return err
		}
		opts, err := reportOptions()
		if err != nil {
			return err
		}
		c := chords[0]
		opts = append(opts, report.WithRoots(c.root), report.WithQualities(c.quality))
		inspect(cmd.OutOrStdout(), report.Build(opts...), c.root, c.quality)
		return nil
	},
}

func inspect(w io.Writer, r *report.Report, root pitch.Class, q chord.Quality) {
	fs := r.Get(root, q)
	fmt.Fprintf(w, "%s (%s): %d fingerings\n", chord.Name(root, q), r.Tuning(), len(fs))
	for _, f := range fs {
		fmt.Fprintf(w, "%s  score=%d  span=%d\n", f, playability.Score(f), playability.Compactness(f))
	}
}

type chordArg struct {
	root    pitch.Class
	quality chord.Quality
}

// parseChordArgs reads ROOT QUALITY pairs.
func parseChordArgs(args []string) ([]chordArg, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("expected ROOT QUALITY pairs, got %d args", len(args))
	}
	var res []chordArg
	for i := 0; i < len(args); i += 2 {
		root, err := pitch.Parse(args[i])
		if err != nil {
			return nil, err
		}
		q, err := chord.ParseQuality(args[i+1])
		if err != nil {
			return nil, err
		}
		res = append(res, chordArg{root, q})
	}
	return res, nil
}
