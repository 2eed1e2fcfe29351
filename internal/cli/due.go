package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDueCmd(a *app) *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List the cards to practice today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			sess, err := svc.Practice(cmd.Context(), dayFlag(cmd, day))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sess.Cards) == 0 {
				fmt.Fprintf(out, "No cards due on day %d.\n", sess.Day)
				return nil
			}

			fmt.Fprintf(out, "%d cards due on day %d:\n\n", len(sess.Cards), sess.Day)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FRONT\tBACK\tTAGS")
			fmt.Fprintln(w, "-----\t----\t----")
			for _, c := range sess.Cards {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Front, c.Back, strings.Join(c.Tags, ", "))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&day, "day", "d", 0, "practice day (defaults to the current day)")
	return cmd
}
