package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hint FRONT BACK",
		Short: "Show a hint for a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			hint, err := svc.Hint(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hint)
			return nil
		},
	}
}
