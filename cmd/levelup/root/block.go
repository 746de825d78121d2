package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newBlockCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "block <id>",
		Short: "Toggle completion of a schedule block",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("block id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("block id must be an integer")
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

			day, err := resolveDay(date)
			if err != nil {
				return err
			}
			id, _ := strconv.Atoi(args[0])

			res, err := svc.ToggleBlock(ctx, day, id)
			if err != nil {
				return err
			}
			printToggle(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to toggle (YYYY-MM-DD, default today)")
	return cmd
}

// printToggle is the shared outcome printer for toggle-style commands.
func printToggle(cmd *cobra.Command, res *engine.MutationResult) {
	if !res.Applied {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No change."))
		return
	}
	if res.Completed {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Completed: %+d XP\n", ui.IconDone, res.XPDelta)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Unchecked: %+d XP\n", ui.IconWarn, res.XPDelta)
	}
	if res.WeekCompleted {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Week complete! +%d XP bonus\n", ui.IconTrophy, engine.WeekCompletionXP)
	}
	if res.LevelUp {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s — level %d → %d\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
	}
}
