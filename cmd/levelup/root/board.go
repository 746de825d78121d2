package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dacosmicgiant/LevelUp/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive day board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, time.Now())
		},
	}
	return cmd
}
