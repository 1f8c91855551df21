// Package recycle implements the recyclable scroll grid: a bounded pool of
// slots relabeled with logical indices as the viewport scrolls.
package recycle

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gravitrone/recycler/internal/layout"
	"github.com/gravitrone/recycler/internal/pool"
	"github.com/gravitrone/recycler/internal/reveal"
)

// ErrClosed is returned by operations on a closed ScrollRect.
var ErrClosed = errors.New("scroll rect closed")

// Host is the rendering layer that owns the item instances.
type Host[T any] interface {
	pool.Factory[T]
	Place(item T, pos layout.Vec2)
}

// UpdateFunc is called when a slot is first populated or relabeled.
type UpdateFunc[T any] func(index int, item T)

// CellUpdateFunc is UpdateFunc plus the slot's stable unique id.
type CellUpdateFunc[T any] func(index int, id uint64, item T)

// SlotView is a read-only snapshot of one live slot.
type SlotView[T any] struct {
	ID      uint64
	Item    T
	Index   int
	Pos     layout.Vec2
	Visible bool
}

type options struct {
	logger *slog.Logger
	delays reveal.Delays
	now    func() time.Time
}

// Option configures a ScrollRect.
type Option func(*options)

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRevealDelay staggers slot visibility after each rebuild: a slot in
// row r, column c appears after r*row + c*col.
func WithRevealDelay(row, col time.Duration) Option {
	return func(o *options) { o.delays = reveal.Delays{Row: row, Col: col} }
}

// WithClock overrides time.Now for reveal scheduling.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// ScrollRect is the recycling window over a pool of host items.
// It is not safe for concurrent use; drive it from the UI goroutine.
type ScrollRect[T any] struct {
	spec     layout.Spec
	host     Host[T]
	pool     *pool.Pool[T]
	plan     layout.Plan
	fullGrid bool

	window []pool.Handle
	from   int
	to     int

	offset float64
	cur    int

	listening bool
	hidden    bool
	closed    bool

	onUpdate UpdateFunc[T]
	onCell   CellUpdateFunc[T]

	delays  reveal.Delays
	reveals reveal.Queue
	now     func() time.Time
	logger  *slog.Logger
}

// New binds a ScrollRect to host with the given grid spec.
func New[T any](spec layout.Spec, host Host[T], opts ...Option) (*ScrollRect[T], error) {
	if host == nil {
		return nil, fmt.Errorf("missing item host: %w", layout.ErrConfiguration)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("new scroll rect: %w", err)
	}
	o := options{logger: defaultLogger, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	r := &ScrollRect[T]{
		spec:   spec,
		host:   host,
		pool:   pool.New[T](host),
		delays: o.delays,
		now:    o.now,
		logger: o.logger,
		to:     -1,
	}
	plan, err := layout.PlanCapacity(spec, 0, false)
	if err != nil {
		return nil, fmt.Errorf("new scroll rect: %w", err)
	}
	r.plan = plan
	return r, nil
}

// OnUpdate registers the content-update callback.
func (r *ScrollRect[T]) OnUpdate(fn UpdateFunc[T]) { r.onUpdate = fn }

// OnCellUpdate registers the content-update callback carrying slot ids.
func (r *ScrollRect[T]) OnCellUpdate(fn CellUpdateFunc[T]) { r.onCell = fn }

// SetFullGridPadding makes the next SetCellCount round the count up to a
// whole number of lines. The padded count is what Total and TopBound report.
func (r *ScrollRect[T]) SetFullGridPadding(full bool) { r.fullGrid = full }

// SetCellCount rebinds the grid to n items, rebuilding the pool and window.
// The scroll offset is kept (clamped) unless resetScroll is set.
func (r *ScrollRect[T]) SetCellCount(n int, resetScroll bool) error {
	if r.closed {
		return ErrClosed
	}
	if n < 0 {
		return fmt.Errorf("set cell count %d: %w", n, layout.ErrInvalidArgument)
	}
	plan, err := layout.PlanCapacity(r.spec, n, r.fullGrid)
	if err != nil {
		return fmt.Errorf("set cell count: %w", err)
	}

	r.listening = false
	r.reveals.CancelAll()
	if err := r.pool.Resize(plan.SlotCount()); err != nil {
		return fmt.Errorf("set cell count: %w", err)
	}
	r.plan = plan
	r.hidden = false
	if resetScroll {
		r.offset = 0
	}
	r.offset = clamp(r.offset, 0, plan.MaxOffset())

	r.logger.Debug("cell count set",
		"requested", plan.Requested,
		"total", plan.Total,
		"cross", plan.Cross,
		"visible_along", plan.VisibleAlong,
		"logical_along", plan.LogicalAlong,
		"recycling", plan.Recycling,
		"slots", plan.SlotCount(),
	)

	r.createCellList()
	for _, h := range r.window {
		if s, err := r.pool.Get(h); err == nil {
			r.notify(h, s)
		}
	}

	r.listening = true
	r.evaluate()
	return nil
}

// ResetList is SetCellCount(0, false).
func (r *ScrollRect[T]) ResetList() error {
	return r.SetCellCount(0, false)
}

// CheckIndexVisible reports whether a 1-based index lies within the bounds.
func (r *ScrollRect[T]) CheckIndexVisible(index int) bool {
	return index >= r.plan.Bottom && index <= r.plan.Top
}

// TopBound is the highest valid 1-based index.
func (r *ScrollRect[T]) TopBound() int { return r.plan.Top }

// BottomBound is the lowest valid 1-based index.
func (r *ScrollRect[T]) BottomBound() int { return r.plan.Bottom }

// HideAllSlots deactivates every live slot without touching its index.
// Slots stay hidden until the next SetCellCount.
func (r *ScrollRect[T]) HideAllSlots() {
	r.hidden = true
	r.pool.Each(func(h pool.Handle, _ *pool.Slot[T]) {
		r.reveals.Cancel(h)
		_ = r.pool.SetVisible(h, false)
	})
}

// ClearAllSlots stops tracking scroll, retires every slot to the cache and
// zeroes the count.
func (r *ScrollRect[T]) ClearAllSlots() {
	r.listening = false
	r.reveals.CancelAll()
	r.pool.Clear()
	r.resetWindow()
}

// SetItemSize swaps the item template size. Existing slots are destroyed;
// call SetCellCount to rebuild.
func (r *ScrollRect[T]) SetItemSize(size layout.Size) error {
	if r.closed {
		return ErrClosed
	}
	spec := r.spec
	spec.Item = size
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("set item size: %w", err)
	}
	r.listening = false
	r.reveals.CancelAll()
	r.pool.DestroyAll()
	r.spec = spec
	r.resetWindow()
	return nil
}

// Close stops tracking scroll and destroys every slot.
func (r *ScrollRect[T]) Close() {
	if r.closed {
		return
	}
	r.listening = false
	r.reveals.CancelAll()
	r.pool.DestroyAll()
	r.resetWindow()
	r.closed = true
}

// OnScrollOffsetChanged moves the scroll offset by delta along the scroll axis.
func (r *ScrollRect[T]) OnScrollOffsetChanged(delta float64) {
	r.ScrollTo(r.offset + delta)
}

// ScrollTo sets the absolute scroll offset, clamped to the content.
func (r *ScrollRect[T]) ScrollTo(offset float64) {
	if !r.listening {
		return
	}
	r.offset = clamp(offset, 0, r.plan.MaxOffset())
	r.evaluate()
}

// Tick applies due reveal entries and reports how many changed a slot.
func (r *ScrollRect[T]) Tick(now time.Time) int {
	applied := 0
	for _, e := range r.reveals.Drain(now) {
		if r.hidden && e.Visible {
			continue
		}
		if err := r.pool.SetVisible(e.Slot, e.Visible); err != nil {
			r.logger.Debug("dropped reveal", "slot", e.Slot, "err", err)
			continue
		}
		applied++
	}
	return applied
}

// NextReveal is the time of the earliest pending reveal.
func (r *ScrollRect[T]) NextReveal() (time.Time, bool) {
	return r.reveals.Next()
}

// Slots snapshots the live slots in window order.
func (r *ScrollRect[T]) Slots() []SlotView[T] {
	out := make([]SlotView[T], 0, len(r.window))
	for _, h := range r.window {
		s, err := r.pool.Get(h)
		if err != nil {
			continue
		}
		out = append(out, SlotView[T]{
			ID:      h.ID(),
			Item:    s.Item,
			Index:   s.Index,
			Pos:     s.Pos,
			Visible: s.Visible,
		})
	}
	return out
}

// VisibleRange is the materialized logical range [from, to].
func (r *ScrollRect[T]) VisibleRange() (from, to int) { return r.from, r.to }

// Offset is the current scroll offset along the scroll axis.
func (r *ScrollRect[T]) Offset() float64 { return r.offset }

// Plan is the capacity plan of the current binding.
func (r *ScrollRect[T]) Plan() layout.Plan { return r.plan }

// Spec is the grid spec in use.
func (r *ScrollRect[T]) Spec() layout.Spec { return r.spec }

// Total is the item count after full-grid padding.
func (r *ScrollRect[T]) Total() int { return r.plan.Total }

// Recycling reports whether slots are relabeled while scrolling.
func (r *ScrollRect[T]) Recycling() bool { return r.plan.Recycling }

// Line is the scroll-step counter: the line at the leading edge of the
// viewport, counted in whole strides past the lead padding.
func (r *ScrollRect[T]) Line() int { return r.cur }

// PoolStats reports live and cached slot counts.
func (r *ScrollRect[T]) PoolStats() (live, cached int) {
	return r.pool.Len(), r.pool.Cached()
}

// ArenaSize is the number of slot cells ever allocated, destroyed ones
// included until they are reused.
func (r *ScrollRect[T]) ArenaSize() int { return r.pool.Cap() }

// PendingReveals is the number of staggered reveals not yet applied.
func (r *ScrollRect[T]) PendingReveals() int { return r.reveals.Len() }

func (r *ScrollRect[T]) resetWindow() {
	r.window = nil
	r.from, r.to = 0, -1
	r.offset = 0
	r.cur = 0
	r.hidden = false
	if plan, err := layout.PlanCapacity(r.spec, 0, false); err == nil {
		r.plan = plan
	}
}

func (r *ScrollRect[T]) notify(h pool.Handle, s *pool.Slot[T]) {
	if r.onUpdate != nil {
		r.onUpdate(s.Index, s.Item)
	}
	if r.onCell != nil {
		r.onCell(s.Index, h.ID(), s.Item)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
