package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2).
			Width(40)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))

	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#436b77"))
)

func dialog(title, body, hint string) string {
	return dialogStyle.Render(dialogTitleStyle.Render(title) + "\n\n" + body + "\n" + dialogBodyStyle.Render(hint))
}

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	return dialog(title, dialogBodyStyle.Render(SanitizeText(message)), "y: confirm | n: cancel")
}

// InputDialog renders a text input prompt.
func InputDialog(title, input string) string {
	return dialog(title, dialogFieldStyle.Render("> "+SanitizeOneLine(input)+"█"), "enter: submit | esc: cancel")
}
