package layout

import (
	"fmt"
	"math"
)

// ContentSlack keeps the content container strictly larger than the
// viewport on the scroll axis so both edges never coincide exactly.
const ContentSlack = 0.5

// Plan is the capacity decision for one SetCellCount call.
type Plan struct {
	Geometry

	// Requested is the count the caller asked for; Total may be larger
	// when full-grid padding rounded it up.
	Requested int
	Total     int

	// Fit is how many whole lines fit in the viewport.
	Fit int
	// VisibleAlong is the number of pooled lines on the scroll axis.
	VisibleAlong int
	// LogicalAlong is ceil(Total / Cross).
	LogicalAlong int
	Recycling    bool

	Viewport Size
	Content  Size

	// Bottom and Top are the 1-based valid index bounds.
	Bottom int
	Top    int
}

// PlanCapacity sizes the pool and the content container for total items.
// With fullGrid set the total is rounded up to a whole number of lines,
// which changes the caller-visible count reported in Plan.Total.
func PlanCapacity(spec Spec, total int, fullGrid bool) (Plan, error) {
	if err := spec.Validate(); err != nil {
		return Plan{}, err
	}
	if total < 0 {
		return Plan{}, fmt.Errorf("cell count %d: %w", total, ErrInvalidArgument)
	}

	sp := spec.effectiveSpacing()
	axis := spec.Axis

	crossCount := spec.Cols
	if axis == Horizontal {
		crossCount = spec.Rows
	}
	if !spec.Grid {
		crossCount = 1
	}

	padAlong, padCross := spec.Padding.Top+spec.Padding.Bottom, spec.Padding.Left+spec.Padding.Right
	spAlong, spCross := sp.Y, sp.X
	if axis == Horizontal {
		padAlong, padCross = padCross, padAlong
		spAlong, spCross = spCross, spAlong
	}
	viewAlong, viewCross := along(axis, spec.Viewport), cross(axis, spec.Viewport)
	itemAlong, itemCross := along(axis, spec.Item), cross(axis, spec.Item)

	if crossCount == 0 {
		crossCount = fitCount(viewCross, padCross, spCross, itemCross)
	}
	fit := fitCount(viewAlong, padAlong, spAlong, itemAlong)

	p := Plan{
		Geometry: Geometry{
			Axis:    axis,
			Cross:   crossCount,
			Item:    spec.Item,
			Spacing: sp,
			Padding: spec.Padding,
		},
		Requested: total,
		Total:     total,
		Fit:       fit,
		Viewport:  spec.Viewport,
	}

	if fullGrid {
		p.Total = nearestMultiple(total, crossCount)
	}

	if fit*crossCount >= p.Total {
		p.VisibleAlong = fit
	} else {
		p.VisibleAlong = fit + 1
		logical := ceilDiv(p.Total, crossCount)
		if p.VisibleAlong*2 > logical {
			p.VisibleAlong = logical
		} else {
			p.VisibleAlong *= 2
			p.Recycling = true
		}
	}
	p.LogicalAlong = ceilDiv(p.Total, crossCount)

	contentAlong := float64(p.LogicalAlong)*(itemAlong+spAlong) - spAlong + padAlong
	if floor := viewAlong + ContentSlack; contentAlong < floor {
		contentAlong = floor
	}
	contentCross := float64(crossCount)*(itemCross+spCross) - spCross + padCross
	if contentCross < viewCross {
		contentCross = viewCross
	}
	if axis == Vertical {
		p.Content = Size{W: contentCross, H: contentAlong}
	} else {
		p.Content = Size{W: contentAlong, H: contentCross}
	}

	p.Bottom = 1
	p.Top = p.Total
	return p, nil
}

// SlotCount is the number of live slots the pool must hold.
func (p Plan) SlotCount() int {
	n := p.VisibleAlong * p.Geometry.cross()
	if p.Total < n {
		return p.Total
	}
	return n
}

// MaxOffset is the furthest the content can scroll along the axis.
func (p Plan) MaxOffset() float64 {
	m := along(p.Axis, p.Content) - along(p.Axis, p.Viewport)
	if m < 0 {
		return 0
	}
	return m
}

// ViewportAlong is the viewport extent on the scroll axis.
func (p Plan) ViewportAlong() float64 {
	return along(p.Axis, p.Viewport)
}

// fitCount is floor((view - pad + sp) / (item + sp)), at least 1.
func fitCount(view, pad, sp, item float64) int {
	n := int(math.Floor((view - pad + sp) / (item + sp)))
	if n < 1 {
		return 1
	}
	return n
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func nearestMultiple(a, b int) int {
	return ceilDiv(a, b) * b
}
