package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/ui"
)

func newRestartCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Erase the journey and return to onboarding",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases all progress; re-run with --yes to confirm")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Restart(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJourney, "Journey erased. Run 'levelup onboard' to begin anew."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")
	return cmd
}
