package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 40, boxWidth(50))
	assert.Equal(t, 80, boxWidth(200))
	assert.Equal(t, 70, boxWidth(100))
	assert.Equal(t, 20, boxWidth(20))
	assert.Equal(t, 0, boxWidth(0))
}

func TestBoxContentWidth(t *testing.T) {
	assert.Equal(t, 64, BoxContentWidth(100))
	assert.Equal(t, 0, BoxContentWidth(4))
}

func TestBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := TitledBox("Plan", "line", 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 22)
	}
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox("My Title", "Content", 80)
	assert.Contains(t, out, "My Title")
	assert.Contains(t, out, "Content")

	lines := strings.Split(out, "\n")
	assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(lines[0]))
}

func TestTitledBoxEmptyTitleFallsBack(t *testing.T) {
	out := TitledBox("", "Content", 80)
	assert.Contains(t, out, "Content")
	assert.NotContains(t, out, "[")
}

func TestErrorBoxIncludesMessage(t *testing.T) {
	out := ErrorBox("Error", "Something broke", 80)
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "Something broke")
}

func TestClampTextWidth(t *testing.T) {
	assert.Equal(t, "hello", ClampTextWidth("hello", 10))
	assert.Equal(t, "hel", ClampTextWidth("hello", 3))
	assert.Equal(t, "a b", ClampTextWidth("a\nb", 10))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("hello", 0))
	assert.Equal(t, "he", truncateRunes("hello", 2))
	assert.Equal(t, "你", truncateRunes("你好", 1))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
}
