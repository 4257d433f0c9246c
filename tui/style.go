package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	base      lipgloss.Style
	title     lipgloss.Style
	hint      lipgloss.Style
	countdown lipgloss.Style
	overdue   lipgloss.Style
	notice    lipgloss.Style
}

func newStyles(darkTheme bool) styles {
	main := lipgloss.Color("#1B1B1B")
	if darkTheme {
		main = lipgloss.Color("#F5F5F5")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B0DB43")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D")),
		countdown: lipgloss.NewStyle().Bold(true).Foreground(main),
		overdue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5484D")),
		notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E5484D")),
	}
}
