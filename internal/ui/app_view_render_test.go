package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/recycler/internal/config"
	"github.com/gravitrone/recycler/internal/ui/components"
)

func TestAppViewRendersTilesAndStatus(t *testing.T) {
	app := newTestApp(t, 100)
	out := components.SanitizeText(app.View())

	assert.Contains(t, out, "recycler")
	assert.Contains(t, out, "100 items")
	assert.Contains(t, out, "recycling")
	assert.Contains(t, out, "item 0")
	assert.Contains(t, out, "item 34")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "window 0..69")
	assert.Contains(t, out, "slots 70 live 0 cached")
}

func TestAppViewGridIsViewportSized(t *testing.T) {
	app := newTestApp(t, 100)
	grid := app.renderGrid()
	lines := strings.Split(grid, "\n")

	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, 81, lipgloss.Width(line))
	}
}

func TestAppViewClipsPartialTiles(t *testing.T) {
	app := newTestApp(t, 100)
	app = press(t, app, tea.KeyMsg{Type: tea.KeyDown})

	lines := strings.Split(components.SanitizeText(app.renderGrid()), "\n")
	// The first row of tiles is scrolled one cell up, so its top border is cut.
	assert.NotContains(t, lines[0], "╭")
	assert.Contains(t, lines[0], "item 0")
}

func TestAppViewEmptyListShowsBanner(t *testing.T) {
	app := newTestApp(t, 0)
	out := components.SanitizeText(app.View())

	assert.Contains(t, out, "empty list")
	assert.Contains(t, out, "0 items")
}

func TestAppViewOverlays(t *testing.T) {
	app := newTestApp(t, 100)

	prompt := components.SanitizeText(press(t, app, runes(":"), runes("4")).View())
	assert.Contains(t, prompt, "Jump to index")
	assert.Contains(t, prompt, "> 4")

	confirm := components.SanitizeText(press(t, app, runes("r")).View())
	assert.Contains(t, confirm, "Drop all 100 items?")

	failed := components.SanitizeText(press(t, app, runes(":"), tea.KeyMsg{Type: tea.KeyEnter}).View())
	assert.Contains(t, failed, "Error")
	assert.Contains(t, failed, "not an index")
}

func TestAppViewHorizontalScrollbarRow(t *testing.T) {
	cfg := config.Default()
	cfg.Axis = "horizontal"
	cfg.Total = 100
	app, err := NewApp(cfg)
	require.NoError(t, err)

	assert.Equal(t, 6, app.rect.Plan().Cross)
	lines := strings.Split(app.renderGrid(), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, 80, lipgloss.Width(lines[20]))

	app = press(t, app, runes("G"))
	assert.Equal(t, 175.0, app.rect.Offset())
	_, to := app.rect.VisibleRange()
	assert.GreaterOrEqual(t, to, 99)
}

func TestStatusHintsFollowKeyMap(t *testing.T) {
	app := newTestApp(t, 10)
	hints := app.statusHints()
	require.Len(t, hints, len(app.keys.hints()))
	assert.Contains(t, components.SanitizeText(strings.Join(hints, " ")), "jump")
}
