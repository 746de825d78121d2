package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "levelup",
	Short:         "LevelUp — a 10-week self-improvement journey as an RPG",
	Long:          "LevelUp turns a 10-week self-improvement program into an RPG journey: daily schedule blocks, weekend tasks, journaling, weekly quests, XP, levels, and four derived virtues.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newOnboardCmd(),
		newStatusCmd(),
		newScheduleCmd(),
		newBlockCmd(),
		newWeekendCmd(),
		newJournalCmd(),
		newQuestCmd(),
		newChallengeCmd(),
		newResetDayCmd(),
		newRestartCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" Error:"), err)
		os.Exit(1)
	}
}
