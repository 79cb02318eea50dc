package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var styleFinished = lipgloss.NewStyle().Bold(true).Foreground(ColorWin)

func (m *Model) View() string {
	if m.Err != nil {
		return StyleErrorBox.Render(fmt.Sprintf("error: %v\n\npress q to dismiss", m.Err))
	}

	title := StyleTitle.Render(" waiting for first snapshot ")
	if m.Latest.MapID != "" {
		title = StyleTitle.Render(fmt.Sprintf(" watching %s ", m.Latest.MapID))
	}

	body := renderGrid(m.Latest.Grid)
	status := fmt.Sprintf(
		"moves: %d   score: %d   snapshots received: %d",
		m.Latest.MoveCount, m.Latest.Score, m.Received,
	)
	if m.Latest.Finished {
		status = styleFinished.Render(status + "   board cleared")
	}

	return title + "\n\n" + StyleBoardBorder.Render(body) + "\n\n" + status + "\n"
}

func renderGrid(grid string) string {
	if len(grid) != BoardSize*BoardSize {
		return "(no data yet)"
	}

	var b strings.Builder
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.WriteString(renderCell(grid[y*BoardSize+x]) + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(c byte) string {
	switch c {
	case 'X':
		return StyleCellHit.Render("X")
	case '.':
		return StyleCellMiss.Render(".")
	default:
		return StyleCellUnknown.Render("*")
	}
}
