package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    = lipgloss.Color("#3b3b3b")
	colorMuted   = lipgloss.Color("#8a8a8a")
	colorAccent  = lipgloss.Color("#d4a017")
	colorCard    = lipgloss.Color("#cccccc")
	colorWarning = lipgloss.Color("#e06c75")
	colorInfo    = lipgloss.Color("#61afef")
)

type styles struct {
	banner      lipgloss.Style
	bannerTitle lipgloss.Style
	card        lipgloss.Style
	cardHeader  lipgloss.Style
	mood        lipgloss.Style
	moodActive  lipgloss.Style
	moodFocused lipgloss.Style
	status      lipgloss.Style
	empty       lipgloss.Style
	prompt      lipgloss.Style
	dialogTitle lipgloss.Style
	info        lipgloss.Style
	warning     lipgloss.Style
	confirm     lipgloss.Style
}

func defaultStyles() styles {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	return styles{
		banner:      lipgloss.NewStyle().Foreground(colorText).Italic(true).Padding(0, 1).Align(lipgloss.Center),
		bannerTitle: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		card:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorCard).Padding(0, 1),
		cardHeader:  lipgloss.NewStyle().Bold(true),
		mood:        lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		moodActive:  lipgloss.NewStyle().Foreground(colorText).Bold(true).Padding(0, 1),
		moodFocused: lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true).Padding(0, 1),
		status:      lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		empty:       lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 2),
		prompt:      box.BorderForeground(colorAccent),
		dialogTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		info:        box.BorderForeground(colorInfo),
		warning:     box.BorderForeground(colorWarning),
		confirm:     box.BorderForeground(colorAccent),
	}
}
