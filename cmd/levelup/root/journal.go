package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newJournalCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "journal [text...]",
		Short: "Write or show a day's journal entry",
		Long: `With text arguments, saves them (joined by spaces) as the day's entry,
replacing any previous one. The first entry for a day grants XP; rewrites
do not. Without arguments, shows the stored entry.`,
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

			if len(args) > 0 {
				res, err := svc.SaveJournalEntry(ctx, day, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !res.Applied {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Empty entry; nothing saved."))
					return nil
				}
				if res.XPDelta > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s Entry saved: %+d XP\n", ui.IconJournal, res.XPDelta)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s Entry updated\n", ui.IconJournal)
				}
				if res.LevelUp {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s — level %d → %d\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
				}
				return nil
			}

			gs, err := svc.Store().LoadGameState(ctx)
			if err != nil {
				return err
			}
			entry := ""
			if gs != nil {
				entry = gs.JournalEntries[day]
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJournal, "Journal — "+day))
			if entry == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no entry)"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to use (YYYY-MM-DD, default today)")
	return cmd
}
