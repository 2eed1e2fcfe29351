package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newForecastCmd(a *app) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Show how many cards come due over the next days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			from, due, err := svc.Forecast(cmd.Context(), days)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tDUE")
			for i, n := range due {
				fmt.Fprintf(w, "%d\t%d\n", from+i, n)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&days, "days", "n", 7, "number of days to forecast")
	return cmd
}
