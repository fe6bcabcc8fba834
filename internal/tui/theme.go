package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin palette, same scheme the rest of the terminal UI kit in
// this codebase was designed around.
const (
	colourRed      = "#f38ba8"
	colourPeach    = "#fab387"
	colourYellow   = "#f9e2af"
	colourGreen    = "#a6e3a1"
	colourBlue     = "#89b4fa"
	colourLavender = "#b4befe"
	colourText     = "#cdd6f4"
	colourSubtext  = "#a6adc8"
	colourSurface  = "#313244"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourLavender)).
			Bold(true).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourGreen)).
			Bold(true)

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourBlue)).
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourText))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourRed)).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourPeach))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourSubtext)).
			Background(lipgloss.Color(colourSurface)).
			Padding(0, 1)
)
