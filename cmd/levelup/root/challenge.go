package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newChallengeCmd() *cobra.Command {
	var week int
	var undo bool

	cmd := &cobra.Command{
		Use:   "challenge <number>",
		Short: "Mark a weekly challenge done (or undone with --undo)",
		Long: `Marks challenge <number> (as shown by 'quest', 1-7) of the chosen week.
Completing all seven challenges of a week for the first time grants a
week-completion bonus; that milestone is never revoked by undoing.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("challenge number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("challenge number must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if week == 0 {
				snap, err := svc.Snapshot(ctx, time.Now())
				if err != nil {
					return err
				}
				week = snap.Week
			}
			number, _ := strconv.Atoi(args[0])

			res, err := svc.SetChallengeCompletion(ctx, week, number-1, !undo)
			if err != nil {
				return err
			}
			if !res.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), "Already in that state.")
				return nil
			}
			printToggle(cmd, res)
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 0, "Week of the challenge (1-10, default current)")
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the challenge not done instead")
	return cmd
}
