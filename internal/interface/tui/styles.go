package tui

import "github.com/charmbracelet/lipgloss"

// Styles shared by the setup form and the setup command output.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	OkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("green")).
		Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
