package root

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
	"github.com/Dacosmicgiant/LevelUp/internal/storage"
	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newOnboardCmd() *cobra.Command {
	var name string
	var start string
	var end string
	var blocksFile string

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Configure and start your 10-week journey",
		Long: `Configure the journey: character name, start/end dates, and optionally a
custom weekday timetable (a JSON array of {id, time, activity, category}).
The configuration is immutable once the journey begins; use 'restart' to
begin over.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			done, err := svc.Onboarded(ctx)
			if err != nil {
				return err
			}
			if done {
				return errors.New("journey already configured; run 'levelup restart --yes' to start over")
			}

			st := engine.DefaultSettings(time.Now())
			if name != "" {
				st.CharacterName = name
			}
			if start != "" {
				d, err := engine.ParseDay(start)
				if err != nil {
					return err
				}
				st.StartDate = d
				st.EndDate = d.AddDate(0, 0, engine.DefaultJourneyDays)
			}
			if end != "" {
				d, err := engine.ParseDay(end)
				if err != nil {
					return err
				}
				st.EndDate = d
			}
			if !st.EndDate.After(st.StartDate) {
				return errors.New("end date must be after start date")
			}

			if blocksFile != "" {
				data, err := os.ReadFile(blocksFile)
				if err != nil {
					return fmt.Errorf("read timetable: %w", err)
				}
				var blocks []storage.TimeBlock
				if err := json.Unmarshal(data, &blocks); err != nil {
					return fmt.Errorf("decode timetable: %w", err)
				}
				if len(blocks) == 0 {
					return errors.New("custom timetable is empty")
				}
				st.CustomTimeBlocks = blocks
			}

			if err := svc.CompleteOnboarding(ctx, st); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJourney, "Journey begins"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Character", st.CharacterName))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("From", engine.FormatDay(st.StartDate)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("To", engine.FormatDay(st.EndDate)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Character name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, default start + 70 days)")
	cmd.Flags().StringVar(&blocksFile, "timetable", "", "JSON file with a custom weekday timetable")

	return cmd
}
