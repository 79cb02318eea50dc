// Package tui implements a spectator viewer for an in-progress solve,
// rendering the board grid and the move/score counters as snapshots
// arrive over the websocket feed. The snapshot's heat values are not
// rendered.
package tui

import (
	"log"

	"github.com/callegarimattia/battleship/internal/dto"
	"github.com/callegarimattia/battleship/internal/env"
	tea "github.com/charmbracelet/bubbletea"
)

const BoardSize = 12

// Model is the spectator TUI's state, updated each time a snapshot
// arrives on Feed.
type Model struct {
	WatchURL string
	Feed     <-chan dto.SpectatorSnapshot

	Latest   dto.SpectatorSnapshot
	Received int
	Err      error

	Width, Height int
}

// New builds a spectator Model watching the websocket URL configured for
// the client, following the same env.LoadClientConfig entry point the
// original login-driven TUI used.
func New(feed <-chan dto.SpectatorSnapshot) *Model {
	cfg, err := env.LoadClientConfig()
	if err != nil {
		log.Fatalf("failed to load client config: %v", err)
	}

	return &Model{
		WatchURL: cfg.JudgeBaseURL,
		Feed:     feed,
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForSnapshot(m.Feed)
}
