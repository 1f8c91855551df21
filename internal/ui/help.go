package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpMarkdown lists every binding in k and explains the status line.
func helpMarkdown(k KeyMap) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n| key | action |\n| --- | --- |\n")
	for _, binding := range k.all() {
		h := binding.Help()
		if h.Key == "" {
			continue
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\n# Status\n\n")
	b.WriteString("- **window** is the index range currently bound to slots.\n")
	b.WriteString("- **line** counts whole strides scrolled from the top.\n")
	b.WriteString("- **live** slots are bound, **cached** slots wait for regrowth.\n")
	b.WriteString("- **created** only grows when the pool runs out of cached slots.\n")
	return b.String()
}

// renderHelp renders the help page for the config theme. The raw markdown
// is returned when glamour cannot render it.
func renderHelp(k KeyMap, theme string, width int) string {
	md := helpMarkdown(k)
	style := "dark"
	if theme == "light" {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
