package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNextDayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next-day",
		Short: "Advance the current practice day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			day, err := svc.AdvanceDay(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Day %d\n", day)
			return nil
		},
	}
}
