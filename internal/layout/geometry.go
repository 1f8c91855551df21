package layout

// Geometry maps logical indices to grid cells and pixel offsets.
// Cross is the number of columns for a vertical list and the number of
// rows for a horizontal one. It is always at least 1 once planned.
type Geometry struct {
	Axis    Axis
	Cross   int
	Item    Size
	Spacing Vec2
	Padding Padding
}

// CellToGrid returns the grid cell of a logical index.
func (g Geometry) CellToGrid(index int) (row, col int) {
	n := g.cross()
	if g.Axis == Vertical {
		return index / n, index % n
	}
	return index % n, index / n
}

// GridToOffset returns the top-left offset of a cell. Y grows downward,
// so offsets below the origin are negative.
func (g Geometry) GridToOffset(row, col int) Vec2 {
	return Vec2{
		X: g.Padding.Left + float64(col)*(g.Item.W+g.Spacing.X),
		Y: -(g.Padding.Top + float64(row)*(g.Item.H+g.Spacing.Y)),
	}
}

// IndexOffset is GridToOffset(CellToGrid(index)).
func (g Geometry) IndexOffset(index int) Vec2 {
	return g.GridToOffset(g.CellToGrid(index))
}

// AlongOf returns the scroll-axis line (row or column) holding index.
func (g Geometry) AlongOf(index int) int {
	return index / g.cross()
}

// Stride is the distance of one line step along the scroll axis.
func (g Geometry) Stride() float64 {
	if g.Axis == Vertical {
		return g.Item.H + g.Spacing.Y
	}
	return g.Item.W + g.Spacing.X
}

// ItemAlong is the item extent on the scroll axis.
func (g Geometry) ItemAlong() float64 {
	return along(g.Axis, g.Item)
}

// LeadPadding is the padding before the first line on the scroll axis.
func (g Geometry) LeadPadding() float64 {
	if g.Axis == Vertical {
		return g.Padding.Top
	}
	return g.Padding.Left
}

func (g Geometry) cross() int {
	if g.Cross < 1 {
		return 1
	}
	return g.Cross
}
