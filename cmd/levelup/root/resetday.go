package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newResetDayCmd() *cobra.Command {
	var date string
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-day",
		Short: "Clear a day's blocks, weekend tasks, and journal entry",
		Long: `Removes all completions and the journal entry for a day and refunds
exactly the XP they granted. Challenge completions are untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this removes the day's progress; re-run with --yes to confirm")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := resolveDay(date)
			if err != nil {
				return err
			}
			res, err := svc.ResetDay(ctx, day)
			if err != nil {
				return err
			}
			if !res.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing recorded for "+day+"."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Cleared %s: %+d XP\n", ui.IconWarn, day, res.XPDelta)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to reset (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")
	return cmd
}
