package tasklist

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	pending  lipgloss.Style
	done     lipgloss.Style
	checkbox lipgloss.Style
	id       lipgloss.Style
	stats    lipgloss.Style
	empty    lipgloss.Style
	warning  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		checkbox: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		id:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		stats:    lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("250")),
		empty:    lipgloss.NewStyle().Faint(true),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
