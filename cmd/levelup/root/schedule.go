package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newScheduleCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the weekday schedule with completion marks",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			snap, err := svc.Snapshot(ctx, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJourney, "Schedule — "+day))
			done := snap.State.CompletedBlocks[day]
			for _, b := range engine.ActiveTimeBlocks(snap.Settings) {
				mark := ui.Checkbox(contains(done, b.ID))
				xp := engine.XPForActivity(b.Activity)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %2d. %s  %s %s\n",
					mark, b.ID, ui.Key.Render(b.Time), b.Activity, ui.Muted.Render(fmt.Sprintf("(%s, %d XP)", b.Category, xp)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")
	return cmd
}

func contains(set []int, id int) bool {
	for _, x := range set {
		if x == id {
			return true
		}
	}
	return false
}
