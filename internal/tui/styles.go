package tui

import "github.com/charmbracelet/lipgloss"

// Shared palette.
var (
	ColorNavy   = lipgloss.Color("#1a1b40")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorGray   = lipgloss.Color("245")
	ColorBlue   = lipgloss.Color("39")
	ColorGreen  = lipgloss.Color("#49E209")
	ColorYellow = lipgloss.Color("214")
	ColorRed    = lipgloss.Color("196")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBlue).
				Padding(0, 1)

	chartTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	deckTabStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 1)

	activeDeckTabStyle = lipgloss.NewStyle().
				Foreground(ColorWhite).
				Background(ColorNavy).
				Bold(true).
				Padding(0, 1)

	eventStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)
)
