package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestScrollThumbFitsContent(t *testing.T) {
	start, size := ScrollThumb(10, 5, 10, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, size)
}

func TestScrollThumbProportional(t *testing.T) {
	start, size := ScrollThumb(10, 100, 20, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, size)

	start, _ = ScrollThumb(10, 100, 20, 80)
	assert.Equal(t, 8, start)

	start, _ = ScrollThumb(10, 100, 20, 40)
	assert.Equal(t, 4, start)
}

func TestScrollThumbClampsOffsetAndMinSize(t *testing.T) {
	start, size := ScrollThumb(5, 10000, 10, 99999)
	assert.Equal(t, 1, size)
	assert.Equal(t, 4, start)

	start, _ = ScrollThumb(5, 10000, 10, -3)
	assert.Equal(t, 0, start)

	start, size = ScrollThumb(0, 100, 10, 0)
	assert.Zero(t, start)
	assert.Zero(t, size)
}

func TestScrollbarRenderWidth(t *testing.T) {
	rows := VerticalScrollbar(6, 60, 20, 10)
	assert.Len(t, rows, 6)
	for _, r := range rows {
		assert.Equal(t, 1, lipgloss.Width(r))
	}

	bar := HorizontalScrollbar(12, 60, 20, 10)
	assert.Equal(t, 12, lipgloss.Width(bar))
	assert.Empty(t, HorizontalScrollbar(0, 60, 20, 10))
}
