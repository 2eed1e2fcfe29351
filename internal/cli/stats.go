package cli

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show learning progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			rep, err := svc.Report(cmd.Context())
			if err != nil {
				return err
			}
			p := rep.Progress
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cards:          %d\n", p.TotalCards)
			fmt.Fprintf(out, "Accuracy:       %.1f%%\n", p.AccuracyRate)
			fmt.Fprintf(out, "Average bucket: %.2f\n", p.AverageBucket)
			fmt.Fprintf(out, "Active days:    %d\n", rep.ActiveDays)
			fmt.Fprintf(out, "Streak:         %d\n\n", rep.Streak)

			var buckets []int
			for b := range p.BucketDistribution {
				buckets = append(buckets, b)
			}
			for b := range rep.ReviewsPerBucket {
				if !slices.Contains(buckets, b) {
					buckets = append(buckets, b)
				}
			}
			slices.Sort(buckets)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BUCKET\tCARDS\tREVIEWS")
			fmt.Fprintln(w, "------\t-----\t-------")
			for _, b := range buckets {
				fmt.Fprintf(w, "%d\t%d\t%d\n", b, p.BucketDistribution[b], rep.ReviewsPerBucket[b])
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if len(rep.Struggling) == 0 {
				return nil
			}
			fmt.Fprintln(out, "\nStruggling:")
			w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FRONT\tBACK\tATTEMPTS\tACCURACY\tLAPSES")
			for _, s := range rep.Struggling {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.0f%%\t%d\n", s.Card.Front, s.Card.Back, s.Attempts, s.Accuracy(), s.Lapses)
			}
			return w.Flush()
		},
	}
}
