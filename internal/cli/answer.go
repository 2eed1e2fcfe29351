package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sky-flux/leitner"
)

func newAnswerCmd(a *app) *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:   "answer FRONT BACK wrong|hard|easy",
		Short: "Record the outcome of a review",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := leitner.ParseDifficulty(args[2])
			if err != nil {
				return err
			}
			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			rec, err := svc.Answer(cmd.Context(), args[0], args[1], difficulty, dayFlag(cmd, day))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: bucket %d -> %d (%s, day %d)\n",
				rec.Card.Key(), rec.PreviousBucket, rec.NewBucket, rec.Difficulty, rec.Day)
			return nil
		},
	}
	cmd.Flags().IntVarP(&day, "day", "d", 0, "practice day (defaults to the current day)")
	return cmd
}
