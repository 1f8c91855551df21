package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// gridIndent is the left margin of every grid line.
const gridIndent = 2

var (
	gridLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#273540"))

	gridMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da")).
			Background(lipgloss.Color("#1f2530")).
			Bold(true)

	gridMarkSepStyle = gridLineStyle.
				Background(lipgloss.Color("#1f2530"))
)

// Field is one name/value line of a FieldGrid. Marked fields are
// highlighted.
type Field struct {
	Name  string
	Value string
	Mark  bool
}

// FieldGrid renders fields under a header and a rule: names left-aligned in
// a nameWidth column, values right-aligned in the rest. Every line is
// exactly width cells wide.
func FieldGrid(nameHeader, valueHeader string, fields []Field, nameWidth, width int) string {
	if width <= 0 {
		return ""
	}
	border := lipgloss.RoundedBorder()
	sep := border.Left
	inner := max(width-gridIndent-lipgloss.Width(sep), 2)
	nameWidth = min(max(nameWidth, 1), inner-1)
	valueWidth := inner - nameWidth

	lines := make([]string, 0, len(fields)+2)
	lines = append(lines, fieldLine(nameHeader, valueHeader, nameWidth, valueWidth, sep, boxLabelStyle, gridLineStyle, width))

	rule := strings.Repeat(" ", gridIndent) +
		strings.Repeat(border.Top, nameWidth) + border.Middle + strings.Repeat(border.Top, valueWidth)
	lines = append(lines, gridLineStyle.Inline(true).Render(fitLine(rule, width)))

	for _, f := range fields {
		style, sepStyle := lipgloss.NewStyle(), gridLineStyle
		if f.Mark {
			style, sepStyle = gridMarkStyle, gridMarkSepStyle
		}
		lines = append(lines, fieldLine(f.Name, f.Value, nameWidth, valueWidth, sep, style, sepStyle, width))
	}
	return strings.Join(lines, "\n")
}

func fieldLine(name, value string, nameWidth, valueWidth int, sep string, style, sepStyle lipgloss.Style, width int) string {
	line := strings.Repeat(" ", gridIndent) +
		style.Inline(true).Render(alignCell(name, nameWidth, lipgloss.Left)) +
		sepStyle.Inline(true).Render(sep) +
		style.Inline(true).Render(alignCell(value, valueWidth, lipgloss.Right))
	return padRight(line, width)
}

// fitLine cuts or pads an unstyled line to width cells.
func fitLine(s string, width int) string {
	return padRight(truncateRunes(s, width), width)
}

// alignCell clamps text to width and pads it on the side opposite align.
func alignCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	text = truncateRunes(SanitizeOneLine(text), width)
	pad := strings.Repeat(" ", max(width-lipgloss.Width(text), 0))
	if align == lipgloss.Right {
		return pad + text
	}
	return text + pad
}
