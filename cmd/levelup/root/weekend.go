package root

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newWeekendCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "weekend [id]",
		Short: "List weekend tasks, or toggle one by id",
		Long: `Without arguments, lists the weekend task catalog with completion marks
for the chosen day. With an id, toggles that task. Weekend tasks only
count on Saturday and Sunday; toggling on a weekday changes nothing.`,
		Args: cobra.MaximumNArgs(1),
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

			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("task id must be an integer: %q", args[0])
				}
				res, err := svc.ToggleWeekendTask(ctx, day, id)
				if err != nil {
					return err
				}
				if !res.Applied {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Not a weekend day; nothing changed."))
					return nil
				}
				printToggle(cmd, res)
				return nil
			}

			snap, err := svc.Snapshot(ctx, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShield, "Weekend tasks — "+day))
			done := snap.State.CompletedWeekendTasks[day]
			for _, t := range engine.WeekendTasks {
				mark := ui.Checkbox(contains(done, t.ID))
				xp := engine.XPForActivity(t.Activity)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %2d. %s %s\n",
					mark, t.ID, t.Activity, ui.Muted.Render(fmt.Sprintf("(%s, %d XP)", t.Category, xp)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to use (YYYY-MM-DD, default today)")
	return cmd
}
