package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks a missing or unusable viewport/template setup.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidArgument marks negative counts or indices.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Axis is the scroll direction.
type Axis int

const (
	// Vertical scrolls a list of rows.
	Vertical Axis = iota
	// Horizontal scrolls a list of columns.
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseAxis maps "vertical"/"horizontal" (and v/h) to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "", "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown axis %q: %w", s, ErrInvalidArgument)
}

// Vec2 is a 2-D offset from the content origin.
type Vec2 struct {
	X float64
	Y float64
}

// Size is a width/height pair.
type Size struct {
	W float64
	H float64
}

// Padding is the 4-sided inset of the content container.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Spec describes one grid binding: viewport, item template and spacing.
//
// Spacing is the single gap used when Grid is false. GridSpacing applies
// per axis when Grid is true. Rows/Cols of 0 are computed from the viewport.
type Spec struct {
	Viewport    Size
	Item        Size
	Spacing     float64
	GridSpacing Vec2
	Padding     Padding
	Axis        Axis
	Grid        bool
	Rows        int
	Cols        int
}

// Validate rejects specs the planner cannot work with.
func (s Spec) Validate() error {
	if s.Viewport.W <= 0 || s.Viewport.H <= 0 {
		return fmt.Errorf("viewport %gx%g: %w", s.Viewport.W, s.Viewport.H, ErrConfiguration)
	}
	if s.Item.W <= 0 || s.Item.H <= 0 {
		return fmt.Errorf("item template %gx%g: %w", s.Item.W, s.Item.H, ErrConfiguration)
	}
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("rows=%d cols=%d: %w", s.Rows, s.Cols, ErrInvalidArgument)
	}
	if s.Spacing < 0 || s.GridSpacing.X < 0 || s.GridSpacing.Y < 0 {
		return fmt.Errorf("negative spacing: %w", ErrInvalidArgument)
	}
	return nil
}

// effectiveSpacing collapses spacing to the scroll axis in list mode.
func (s Spec) effectiveSpacing() Vec2 {
	if s.Grid {
		return s.GridSpacing
	}
	if s.Axis == Vertical {
		return Vec2{Y: s.Spacing}
	}
	return Vec2{X: s.Spacing}
}

// along returns the component of a size on the scroll axis, cross the other one.
func along(a Axis, s Size) float64 {
	if a == Vertical {
		return s.H
	}
	return s.W
}

func cross(a Axis, s Size) float64 {
	if a == Vertical {
		return s.W
	}
	return s.H
}
