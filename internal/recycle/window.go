package recycle

import (
	"math"

	"github.com/gravitrone/recycler/internal/pool"
)

// createCellList labels slot i with index i and places it. The pool must
// already hold plan.SlotCount() live slots.
func (r *ScrollRect[T]) createCellList() {
	r.window = r.pool.Live()
	geom := r.plan.Geometry

	stagger := r.delays.Enabled()
	now := r.now()
	for i, h := range r.window {
		s, err := r.pool.Get(h)
		if err != nil {
			continue
		}
		s.Index = i
		s.Pos = geom.IndexOffset(i)
		r.host.Place(s.Item, s.Pos)
		_ = r.pool.SetVisible(h, true)

		if stagger {
			row, col := geom.CellToGrid(i)
			_ = r.pool.SetVisible(h, false)
			r.reveals.Schedule(now.Add(r.delays.After(row, col)), h, true)
		}
	}

	r.from = 0
	r.to = len(r.window) - 1
	r.cur = 0
}

// evaluate recounts the whole strides travelled past the lead padding and,
// when recycling, moves the window to follow. Partial strides stay pending.
func (r *ScrollRect[T]) evaluate() {
	stride := r.plan.Stride()
	if stride <= 0 {
		return
	}
	line := int(math.Floor(math.Max(0, r.offset-r.plan.LeadPadding()) / stride))
	if line == r.cur {
		return
	}
	r.cur = line
	if r.plan.Recycling {
		r.follow()
	}
}

// follow drives the window's first line toward the scroll-step counter. The
// window holds twice the visible lines, so the lead sits below the viewport.
func (r *ScrollRect[T]) follow() {
	cross := r.plan.Cross
	lines := r.plan.VisibleAlong
	if cross < 1 || len(r.window) != lines*cross {
		return
	}

	target := r.cur
	if maxFirst := r.plan.LogicalAlong - lines; target > maxFirst {
		target = maxFirst
	}
	if target < 0 {
		target = 0
	}

	first := r.from / cross
	diff := target - first
	if diff == 0 {
		return
	}
	if diff >= lines || -diff >= lines {
		r.logger.Debug("window relabeled", "line", target, "from", first)
		r.relabelAll(target)
		return
	}
	for ; diff > 0; diff-- {
		if !r.shiftForward() {
			r.logger.Debug("forward shift skipped", "from", r.from, "to", r.to)
			return
		}
	}
	for ; diff < 0; diff++ {
		if !r.shiftBackward() {
			r.logger.Debug("backward shift skipped", "from", r.from, "to", r.to)
			return
		}
	}
}

// shiftForward moves the first line's slots to the tail with the next
// indices, in increasing order. It is a no-op at the last line.
func (r *ScrollRect[T]) shiftForward() bool {
	cross := r.plan.Cross
	n := len(r.window)
	if n < cross || r.from/cross+r.plan.VisibleAlong >= r.plan.LogicalAlong {
		return false
	}

	moved := make([]pool.Handle, cross)
	copy(moved, r.window[:cross])
	copy(r.window, r.window[cross:])
	copy(r.window[n-cross:], moved)

	r.from += cross
	r.to += cross
	for i, h := range moved {
		r.relabel(h, r.to-cross+1+i)
	}
	return true
}

// shiftBackward moves the last line's slots to the head with the previous
// indices, in decreasing order. It is a no-op at the first line.
func (r *ScrollRect[T]) shiftBackward() bool {
	cross := r.plan.Cross
	n := len(r.window)
	if n < cross || r.from <= 0 {
		return false
	}

	moved := make([]pool.Handle, cross)
	copy(moved, r.window[n-cross:])
	copy(r.window[cross:], r.window[:n-cross])
	copy(r.window, moved)

	r.from -= cross
	r.to -= cross
	for i := cross - 1; i >= 0; i-- {
		r.relabel(moved[i], r.from+i)
	}
	return true
}

// relabelAll jumps the whole window to start at line first.
func (r *ScrollRect[T]) relabelAll(first int) {
	r.from = first * r.plan.Cross
	r.to = r.from + len(r.window) - 1
	for i, h := range r.window {
		r.relabel(h, r.from+i)
	}
}

// relabel gives a slot a new index. Slots past the data set are hidden and
// not reported.
func (r *ScrollRect[T]) relabel(h pool.Handle, index int) {
	s, err := r.pool.Get(h)
	if err != nil {
		r.logger.Debug("relabel skipped", "slot", h, "err", err)
		return
	}
	r.reveals.Cancel(h)
	s.Index = index
	if index < 0 || index >= r.plan.Total {
		_ = r.pool.SetVisible(h, false)
		return
	}
	s.Pos = r.plan.IndexOffset(index)
	r.host.Place(s.Item, s.Pos)
	_ = r.pool.SetVisible(h, !r.hidden)
	r.notify(h, s)
}
