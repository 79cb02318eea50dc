package tui

import "github.com/charmbracelet/lipgloss"

var (
	// ColorWin marks a fully-discovered board in the status line.
	ColorWin = lipgloss.Color("#FFD700") // Gold

	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	StyleBoardBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)

	StyleCellHit     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	StyleCellMiss    = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))  // Cyan
	StyleCellUnknown = lipgloss.NewStyle().Foreground(lipgloss.Color("237")) // Gray

	StyleErrorBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")). // Red
			Foreground(lipgloss.Color("196")).
			Padding(1, 2).
			Align(lipgloss.Center)
)
