// Package render turns roster query results into terminal-friendly
// tables and reports.
package render

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by the report renderers.
type Styles struct {
	Title lipgloss.Style
	Bold  lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultStyles returns the standard report styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Underline(true),
		Bold:  lipgloss.NewStyle().Bold(true),
		Body:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
