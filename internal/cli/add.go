package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sky-flux/leitner"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		hint string
		tags []string
	)
	cmd := &cobra.Command{
		Use:   "add FRONT BACK",
		Short: "Add a card to bucket 0",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			card := leitner.Flashcard{Front: args[0], Back: args[1], Hint: hint, Tags: tags}
			if err := svc.AddCard(cmd.Context(), card); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to bucket 0\n", card.Key())
			return nil
		},
	}
	cmd.Flags().StringVar(&hint, "hint", "", "hint text shown instead of the generated one")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tag the card (repeatable or comma-separated)")
	return cmd
}
