package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
┏━┓┏━╸┏━╸╻ ╻┏━╸╻  ┏━╸┏━┓
┣┳┛┣╸ ┃  ┗┳┛┃  ┃  ┣╸ ┣┳┛
╹┗╸┗━╸┗━╸ ╹ ┗━╸┗━╸┗━╸╹┗╸`

// RenderBanner returns the styled wordmark shown while the list is empty.
func RenderBanner() string {
	lines := splitLines(bannerArt)
	baseStyle := lipgloss.NewStyle().Foreground(ColorPrimary)

	maxWidth := 0
	var rendered []string
	for _, line := range lines {
		if line == "" {
			continue
		}
		maxWidth = max(maxWidth, lipgloss.Width(line))
		rendered = append(rendered, baseStyle.Render(line))
	}

	subtitleText := "empty list • r rebinds the configured count"
	blockWidth := max(maxWidth, lipgloss.Width(subtitleText))

	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(subtitleText)
	underline := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", lipgloss.Width(subtitleText)))

	art := lipgloss.NewStyle().Width(blockWidth).Align(lipgloss.Center).Render(strings.Join(rendered, "\n"))
	return art + "\n\n" + subtitle + "\n" + underline
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
