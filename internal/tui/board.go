package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
)

// RunBoard starts the interactive day board.
func RunBoard(ctx context.Context, svc *engine.Service, today time.Time) error {
	p := tea.NewProgram(newBoardModel(ctx, svc, today), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
