package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/playability"
	"github.com/jsphweid/fretdex/report"
	"github.com/jsphweid/fretdex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints how many fingerings survive each step, per chord",
	Long:  `Prints how many fingerings survive each step, per chord`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := reportOptions()
		if err != nil {
			return err
		}
		return stats(cmd.OutOrStdout(), report.Build(opts...))
	},
}

func stats(w io.Writer, r *report.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHORD\tEXAMINED\tACCEPTED\tKEPT\tBEST\tSCORE")

	var kept []int
	for _, e := range r.Entries() {
		best, score := "-", "-"
		if len(e.Fingerings) > 0 {
			best = e.Fingerings[0].String()
			score = fmt.Sprint(playability.Score(e.Fingerings[0]))
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n",
			chord.Name(e.Root, e.Quality), e.Stats.Examined, e.Stats.Accepted, e.Stats.Kept, best, score)
		kept = append(kept, e.Stats.Kept)
	}
	empty := util.Count(kept, func(n int) bool { return n == 0 })
	fmt.Fprintf(tw, "TOTAL\t\t\t%d\t%d without fingerings\t\n", util.Sum(kept), empty)
	return tw.Flush()
}
