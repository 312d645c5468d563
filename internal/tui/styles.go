package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#7B61FF")
	colorMuted  = lipgloss.Color("#666666")
	colorTrack  = lipgloss.Color("#E0E0E0")
	colorError  = lipgloss.Color("#F44336")
)

var styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	ErrorBox lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Subtitle: lipgloss.NewStyle().Foreground(colorMuted),
	Label:    lipgloss.NewStyle().Bold(true),
	Focused:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Help:     lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 3),
	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorError).
		Foreground(colorError).
		Padding(0, 1),
}

const barWidth = 30

// renderBar draws a horizontal bar filled to fraction in the given color.
func renderBar(fraction float64, color string) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*barWidth + 0.5)
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", filled))
	off := lipgloss.NewStyle().Foreground(colorTrack).Render(strings.Repeat("░", barWidth-filled))
	return on + off
}
