package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show character sheet: level, virtues, achievements",
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
			gs := snap.State

			nextAt := gs.Level() * 100
			toNext := nextAt - gs.Experience

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, snap.Settings.CharacterName+" — "+snap.Title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", gs.Level()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d (next level at %d, %d to go)", gs.Experience, nextAt, toNext)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Week", fmt.Sprintf("%d of %d (%.0f%% of the journey)", snap.Week, engine.TotalWeeks, snap.Progress)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%d days (best %d)", snap.CurrentStreak, snap.LongestStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Virtues"))
			printVirtue(cmd, "mentalClarity", "Mental Clarity", snap.Stats.MentalClarity)
			printVirtue(cmd, "consistency", "Consistency", snap.Stats.Consistency)
			printVirtue(cmd, "emotionalIntelligence", "Emotional Intelligence", snap.Stats.EmotionalIntelligence)
			printVirtue(cmd, "interdependence", "Interdependence", snap.Stats.Interdependence)
			fmt.Fprintln(cmd.OutOrStdout(), "")

			earned := 0
			for _, a := range snap.Achievements {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, earned, len(snap.Achievements))))
			for _, a := range snap.Achievements {
				if a.Earned {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s — %s\n", a.Icon, ui.Gold.Render(a.Title), ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", ui.Dim.Render("🔒 "+a.Title))
				}
			}
			return nil
		},
	}

	return cmd
}

func printVirtue(cmd *cobra.Command, key, label string, value int) {
	bar := "[" + strings.Repeat("#", value) + strings.Repeat("-", 10-value) + "]"
	fmt.Fprintf(cmd.OutOrStdout(), "- %s %-22s %2d/10 %s\n", ui.VirtueIcon(key), label, value, bar)
}
