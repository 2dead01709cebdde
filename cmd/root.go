package cmd

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/config"
	"github.com/jsphweid/fretdex/fingering"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	tuningFlag   string
	debug        bool
	compact      bool
	limit        int
	rootNames    []string
	qualityNames []string
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Lists every playable guitar fingering of every chord",
	Long: `Walks all fret combinations of a six string guitar, keeps the ones that
sound exactly the notes of a chord and are comfortable to hold, ranks them and
prints the result as JSON: root -> quality -> fingerings, -1 for a muted string.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnvDefaults(cmd); err != nil {
			return err
		}
		initLogger(cmd.ErrOrStderr(), debug)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := reportOptions()
		if err != nil {
			return err
		}
		return report.Build(opts...).Write(cmd.OutOrStdout(), !compact)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&tuningFlag, "tuning", "E,A,D,G,B,E", "open string pitches, lowest string first")
	flags.BoolVar(&debug, "debug", false, "enable debug logging (adds source location)")
	flags.IntVar(&limit, "limit", 0, "keep only the N best fingerings per chord, 0 keeps all")
	flags.StringSliceVar(&rootNames, "root", nil, "only these roots (repeatable), e.g. C,FSharp,Bb")
	flags.StringSliceVar(&qualityNames, "quality", nil, "only these qualities (repeatable), e.g. Major,MinorSeventh")

	rootCmd.Flags().BoolVar(&compact, "compact", false, "print the report on a single line")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// applyEnvDefaults fills every flag not given on the command line from the
// environment.
func applyEnvDefaults(cmd *cobra.Command) error {
	d, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("tuning") {
		tuningFlag = d.Tuning
	}
	if !flags.Changed("debug") {
		debug = d.Debug
	}
	if !flags.Changed("compact") {
		compact = d.Compact
	}
	if !flags.Changed("limit") {
		limit = d.Limit
	}
	return nil
}

func reportOptions() ([]report.Option, error) {
	tuning, err := fingering.ParseTuning(tuningFlag)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, errors.Errorf("limit must not be negative, got %d", limit)
	}

	var roots []pitch.Class
	for _, name := range rootNames {
		p, err := pitch.Parse(name)
		if err != nil {
			return nil, errors.Wrap(err, "--root")
		}
		roots = append(roots, p)
	}
	var qualities []chord.Quality
	for _, name := range qualityNames {
		q, err := chord.ParseQuality(name)
		if err != nil {
			return nil, errors.Wrap(err, "--quality")
		}
		qualities = append(qualities, q)
	}

	return []report.Option{
		report.WithTuning(tuning),
		report.WithRoots(roots...),
		report.WithQualities(qualities...),
		report.WithLimit(limit),
		report.WithLogger(logger),
	}, nil
}
