package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestKeyHintsSkipsDisabledAndHelpless(t *testing.T) {
	jump := key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump"))
	hidden := key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide"), key.WithDisabled())
	bare := key.NewBinding(key.WithKeys("x"))

	hints := KeyHints(jump, hidden, bare)
	assert.Len(t, hints, 1)
	assert.Contains(t, hints[0], "jump")
}

func TestHintIncludesKeyAndDesc(t *testing.T) {
	out := Hint("↑/↓", "Scroll")
	assert.True(t, strings.Contains(out, "Scroll"))
	assert.True(t, strings.Contains(out, "↑/↓"))
}

func TestStatusBarRendersHints(t *testing.T) {
	out := StatusBar([]string{Hint("q", "quit")}, 0)
	assert.True(t, strings.Contains(out, "quit"))
	assert.True(t, strings.Contains(out, "q"))
}

func TestWrapSegmentsWrapsWhenNarrow(t *testing.T) {
	segments := []string{"123456", "abcdef", "ghijkl"}
	rows := wrapSegments(segments, 10)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.LessOrEqual(t, lipgloss.Width(row), 10)
	}
}
