package dialog

import "github.com/charmbracelet/lipgloss"

// Color palette for dialog rendering. Hosts that want different colors
// can assign these before showing any dialog.
var (
	ColorBorder  = lipgloss.Color("6")
	ColorTitle   = lipgloss.Color("6")
	ColorText    = lipgloss.Color("7")
	ColorDim     = lipgloss.Color("240")
	ColorAccent  = lipgloss.Color("205")
	ColorWarning = lipgloss.Color("3")
)

// DefaultPositiveLabel and DefaultNegativeLabel are used when a builder
// does not set button titles.
var (
	DefaultPositiveLabel = "OK"
	DefaultNegativeLabel = "Cancel"
)

func boxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 2).
		Width(width)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorTitle)
}

func textStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorText)
}

func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent)
}

func buttonStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Margin(0, 1, 0, 0)
	if focused {
		return s.BorderForeground(ColorBorder).Bold(true)
	}
	return s.BorderForeground(ColorDim)
}
