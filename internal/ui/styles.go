package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the input line and dropdown panel.
type Styles struct {
	Input       lipgloss.Style
	Panel       lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Hint        lipgloss.Style
	Heading     lipgloss.Style
}

// DefaultStyles returns the standard look.
func DefaultStyles() *Styles {
	return &Styles{
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		RowSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("62")).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
	}
}
