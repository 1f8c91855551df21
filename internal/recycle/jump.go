package recycle

import (
	"fmt"

	"github.com/gravitrone/recycler/internal/layout"
)

// JumpOffset is the scroll offset that puts index on the displayRow-th
// visible line (1-based). Indices past the end clamp to the last item.
func (r *ScrollRect[T]) JumpOffset(index, displayRow int) (float64, error) {
	if index < 0 {
		return 0, fmt.Errorf("jump to index %d: %w", index, layout.ErrInvalidArgument)
	}
	if r.plan.Total == 0 {
		return 0, nil
	}
	if index >= r.plan.Total {
		index = r.plan.Total - 1
	}
	if displayRow < 1 {
		displayRow = 1
	}

	geom := r.plan.Geometry
	line := geom.AlongOf(index)
	off := geom.LeadPadding() + float64(line)*geom.Stride() - geom.ItemAlong()*float64(displayRow-1)
	return clamp(off, 0, r.plan.MaxOffset()), nil
}

// JumpToIndex scrolls straight to index. The window catches up in a single
// evaluation, relabeling every slot at once when the jump spans more than
// one window.
func (r *ScrollRect[T]) JumpToIndex(index, displayRow int) error {
	if r.closed {
		return ErrClosed
	}
	off, err := r.JumpOffset(index, displayRow)
	if err != nil {
		return err
	}
	r.ScrollTo(off)
	return nil
}
