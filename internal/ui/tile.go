package ui

import (
	"fmt"

	"github.com/gravitrone/recycler/internal/layout"
	"github.com/gravitrone/recycler/internal/ui/components"
)

// Tile is one recycled cell of the grid browser.
type Tile struct {
	ID     uint64
	Index  int
	Label  string
	Pos    layout.Vec2
	Active bool
}

// tileHost owns tile instances for the engine and counts what it was asked
// to do, so the status line can show how little gets allocated.
type tileHost struct {
	format    string
	created   int
	destroyed int
	updates   int
}

func newTileHost(format string) *tileHost {
	if format == "" {
		format = "item %d"
	}
	return &tileHost{format: format}
}

func (h *tileHost) Instantiate() (*Tile, error) {
	h.created++
	return &Tile{Index: -1}, nil
}

func (h *tileHost) Destroy(t *Tile) {
	h.destroyed++
	t.Active = false
}

func (h *tileHost) SetActive(t *Tile, active bool) { t.Active = active }

func (h *tileHost) Place(t *Tile, pos layout.Vec2) { t.Pos = pos }

// bind is the engine's content-update callback.
func (h *tileHost) bind(index int, id uint64, t *Tile) {
	h.updates++
	t.Index = index
	t.ID = id
	t.Label = components.SanitizeOneLine(fmt.Sprintf(h.format, index))
}
