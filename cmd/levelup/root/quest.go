package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newQuestCmd() *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Show a week's quest and its challenges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := svc.Snapshot(ctx, time.Now())
			if err != nil {
				return err
			}
			if week == 0 {
				week = snap.Week
			}
			quest, ok := engine.QuestForWeek(week)
			if !ok {
				return fmt.Errorf("no quest for week %d", week)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, fmt.Sprintf("Week %d: %s", quest.Week, quest.Title)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(quest.Description))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			done := snap.State.ChallengesCompleted[week]
			for i, c := range quest.Challenges {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d. %s\n", ui.Checkbox(contains(done, i)), i+1, c)
			}
			if week == snap.State.LastCompletedWeek {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintf(cmd.OutOrStdout(), "%s Week %d conquered\n", ui.IconTrophy, week)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 0, "Week to show (1-10, default current)")
	return cmd
}
