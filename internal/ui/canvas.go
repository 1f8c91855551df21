package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tileBorder = lipgloss.RoundedBorder()

// canvas is a clipped rune grid the size of the viewport. Tiles drawn
// partly outside it are cut at the edges.
type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
}

func (c *canvas) text(x, y int, s string) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r)
	}
}

// tile draws a rounded box with the label centered on its middle row.
// Boxes under three cells in either direction collapse to a bare label.
func (c *canvas) tile(x, y, w, h int, label string) {
	if w <= 0 || h <= 0 {
		return
	}
	if w < 3 || h < 3 {
		c.text(x, y, clipRunes(label, w))
		return
	}

	edge := func(s string) rune { return []rune(s)[0] }
	c.set(x, y, edge(tileBorder.TopLeft))
	c.set(x+w-1, y, edge(tileBorder.TopRight))
	c.set(x, y+h-1, edge(tileBorder.BottomLeft))
	c.set(x+w-1, y+h-1, edge(tileBorder.BottomRight))
	for i := x + 1; i < x+w-1; i++ {
		c.set(i, y, edge(tileBorder.Top))
		c.set(i, y+h-1, edge(tileBorder.Bottom))
	}
	for j := y + 1; j < y+h-1; j++ {
		c.set(x, j, edge(tileBorder.Left))
		c.set(x+w-1, j, edge(tileBorder.Right))
	}

	inner := w - 2
	text := clipRunes(label, inner)
	pad := (inner - len([]rune(text))) / 2
	c.text(x+1+pad, y+h/2, text)
}

func (c *canvas) lines() []string {
	out := make([]string, c.h)
	for y, row := range c.cells {
		out[y] = string(row)
	}
	return out
}

func (c *canvas) String() string {
	return strings.Join(c.lines(), "\n")
}

func clipRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
