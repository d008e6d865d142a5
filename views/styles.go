package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Core colors
var (
	primaryColor    = lipgloss.Color("#39ff14") // Bright digital green
	secondaryColor  = lipgloss.Color("#FFFFFF") // Pure white for values
	accentColor     = lipgloss.Color("#39ff14") // Bright green for borders
	backgroundColor = lipgloss.Color("#000000") // Pure black
)

// Styles holds all the application styles
type Styles struct {
	Title     lipgloss.Style
	Box       lipgloss.Style
	DialogBox lipgloss.Style
	Text      lipgloss.Style
	Label     lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a new Styles instance
func NewStyles() *Styles {
	s := &Styles{}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor).
		Background(backgroundColor).
		Padding(0, 1)

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 2).
		Background(backgroundColor)

	s.DialogBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 3).
		Background(backgroundColor)

	s.Text = lipgloss.NewStyle().
		Foreground(secondaryColor).
		Background(backgroundColor)

	s.Label = lipgloss.NewStyle().
		Foreground(primaryColor).
		Background(backgroundColor).
		Width(12).
		Align(lipgloss.Right)

	s.Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1)

	return s
}
