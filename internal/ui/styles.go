package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#7f57b4") // purple
	ColorSecondary  = lipgloss.Color("#436b77") // teal
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#9ba0bf") // muted text
	ColorError      = lipgloss.Color("#e06c75") // red
	ColorInk        = lipgloss.Color("#273540") // light theme text
)

// --- Reusable Styles ---

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	tileDarkStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	tileLightStyle = lipgloss.NewStyle().
			Foreground(ColorInk)
)

// tileStyle picks the grid style for a config theme name.
func tileStyle(theme string) lipgloss.Style {
	if theme == "light" {
		return tileLightStyle
	}
	return tileDarkStyle
}
