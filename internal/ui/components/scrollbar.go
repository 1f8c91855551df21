package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	scrollTrackV = "│"
	scrollTrackH = "─"
	scrollThumb  = "█"
)

var (
	scrollTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#273540"))
	scrollThumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f57b4"))
)

// ScrollThumb positions a thumb on a track of track cells. The thumb spans
// the visible share of the content and is at least one cell long. When the
// content fits in the viewport the thumb covers the whole track.
func ScrollThumb(track int, content, viewport, offset float64) (start, size int) {
	if track <= 0 {
		return 0, 0
	}
	if content <= viewport || viewport <= 0 {
		return 0, track
	}

	size = int(float64(track) * viewport / content)
	if size < 1 {
		size = 1
	}
	if size > track {
		size = track
	}

	scrollable := content - viewport
	if offset > scrollable {
		offset = scrollable
	}
	if offset < 0 {
		offset = 0
	}
	start = int(offset / scrollable * float64(track-size))
	if start+size > track {
		start = track - size
	}
	return start, size
}

// VerticalScrollbar renders one styled cell per track row.
func VerticalScrollbar(track int, content, viewport, offset float64) []string {
	start, size := ScrollThumb(track, content, viewport, offset)
	rows := make([]string, track)
	for i := range rows {
		if i >= start && i < start+size {
			rows[i] = scrollThumbStyle.Render(scrollThumb)
		} else {
			rows[i] = scrollTrackStyle.Render(scrollTrackV)
		}
	}
	return rows
}

// HorizontalScrollbar renders the track as a single line.
func HorizontalScrollbar(track int, content, viewport, offset float64) string {
	start, size := ScrollThumb(track, content, viewport, offset)
	if track <= 0 {
		return ""
	}
	return scrollTrackStyle.Render(strings.Repeat(scrollTrackH, start)) +
		scrollThumbStyle.Render(strings.Repeat(scrollThumb, size)) +
		scrollTrackStyle.Render(strings.Repeat(scrollTrackH, track-start-size))
}
