package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/grid"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

// Run starts the TUI and blocks until the user quits. The relay must be
// the same notifier the coordinator was built with, so rollback
// notifications land on the status line.
func Run(coord *usecase.Coordinator, gestures *grid.Gestures, clock domain.Clock, relay *Relay) error {
	m := New(coord, gestures, clock)
	p := tea.NewProgram(m, tea.WithAltScreen())
	relay.Attach(p)
	_, err := p.Run()
	return err
}
