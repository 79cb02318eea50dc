package tui

import (
	"github.com/callegarimattia/battleship/internal/dto"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForSnapshot(feed <-chan dto.SpectatorSnapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-feed
		if !ok {
			return FeedClosedMsg{}
		}
		return SnapshotMsg(snap)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case SnapshotMsg:
		m.Latest = dto.SpectatorSnapshot(msg)
		m.Received++
		if m.Latest.Finished {
			return m, tea.Sequence(waitForSnapshot(m.Feed))
		}
		return m, waitForSnapshot(m.Feed)

	case FeedClosedMsg:
		return m, tea.Quit

	case ErrMsg:
		m.Err = msg.Err
		return m, nil
	}

	return m, nil
}
