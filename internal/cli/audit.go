package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check the stored buckets against a replay of the practice log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			mismatched, err := svc.Audit(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(mismatched) == 0 {
				fmt.Fprintln(out, "Stored buckets match the practice log.")
				return nil
			}
			fmt.Fprintf(out, "%d cards disagree with the practice log:\n", len(mismatched))
			for _, k := range mismatched {
				fmt.Fprintf(out, "  %s\n", k)
			}
			return nil
		},
	}
}
