package cmd

import (
	"bufio"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fingering"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi ROOT QUALITY [ROOT QUALITY...]",
	Short: "Writes the best fingering of each chord as a MIDI file on stdout",
	Long: `Strums the top ranked fingering of each requested chord, in order, and
writes the result as a Standard MIDI File to stdout.`,
	Example: "  fretdex midi C Major A Minor F Major G Seventh > progression.mid",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := parseChordArgs(args)
		if err != nil {
			return err
		}
		opts, err := reportOptions()
		if err != nil {
			return err
		}
		tuning, err := fingering.ParseTuning(tuningFlag)
		if err != nil {
			return err
		}

		var rendered []midi.Chord
		for _, c := range chords {
			r := report.Build(append(opts, report.WithLimit(1), report.WithRoots(c.root), report.WithQualities(c.quality))...)
			fs := r.Get(c.root, c.quality)
			if len(fs) == 0 {
				logger.Warn("no playable fingering, skipping", "chord", chord.Name(c.root, c.quality))
				continue
			}
			rendered = append(rendered, midi.Chord{Root: c.root, Quality: c.quality, Fingering: fs[0]})
		}

		out := bufio.NewWriter(cmd.OutOrStdout())
		if err := midi.Write(out, tuning, rendered); err != nil {
			return err
		}
		return out.Flush()
	},
}
