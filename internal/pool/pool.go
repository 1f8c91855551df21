// Package pool keeps a bounded arena of reusable item slots.
//
// Slots are addressed by generation-checked handles: retiring a slot to the
// inactive cache or destroying it bumps its generation, so a handle kept
// from before fails with ErrStaleHandle instead of touching a slot that now
// belongs to someone else.
package pool

import (
	"errors"
	"fmt"

	"github.com/gravitrone/recycler/internal/layout"
)

var (
	// ErrStaleHandle is returned for a handle whose slot was retired or destroyed.
	ErrStaleHandle = errors.New("stale slot handle")
	// ErrNegativeSize is returned by Resize for a negative target.
	ErrNegativeSize = fmt.Errorf("negative pool size: %w", layout.ErrInvalidArgument)
)

// Factory creates, destroys and toggles the host's item instances.
type Factory[T any] interface {
	Instantiate() (T, error)
	Destroy(item T)
	SetActive(item T, active bool)
}

// Handle addresses one arena cell at one generation.
type Handle struct {
	index uint32
	gen   uint32
}

// ID packs the handle into a stable unique id.
func (h Handle) ID() uint64 {
	return uint64(h.gen)<<32 | uint64(h.index)
}

func (h Handle) String() string {
	return fmt.Sprintf("slot#%d.%d", h.index, h.gen)
}

// Slot is one pooled item instance with its current label and placement.
// Index below zero or past the data set means the slot is unused.
type Slot[T any] struct {
	Item    T
	Index   int
	Pos     layout.Vec2
	Visible bool
}

type cellState uint8

const (
	cellFree cellState = iota
	cellLive
	cellCached
)

type cell[T any] struct {
	slot  Slot[T]
	gen   uint32
	state cellState
}

// Pool owns the live slot list and the inactive cache.
type Pool[T any] struct {
	factory Factory[T]
	cells   []cell[T]
	live    []uint32
	cache   []uint32
	free    []uint32
}

// New creates an empty pool backed by factory.
func New[T any](factory Factory[T]) *Pool[T] {
	return &Pool[T]{factory: factory}
}

// Resize grows or shrinks the live list to target slots. Growth reuses the
// inactive cache before instantiating; shrinking retires trailing slots to
// the cache.
func (p *Pool[T]) Resize(target int) error {
	if target < 0 {
		return ErrNegativeSize
	}
	for len(p.live) < target {
		idx, err := p.acquire()
		if err != nil {
			return fmt.Errorf("grow pool to %d: %w", target, err)
		}
		c := &p.cells[idx]
		c.state = cellLive
		c.slot.Index = -1
		c.slot.Pos = layout.Vec2{}
		c.slot.Visible = true
		p.factory.SetActive(c.slot.Item, true)
		p.live = append(p.live, idx)
	}
	for len(p.live) > target {
		last := len(p.live) - 1
		p.retire(p.live[last])
		p.live = p.live[:last]
	}
	return nil
}

// Clear retires every live slot to the cache.
func (p *Pool[T]) Clear() {
	for i := len(p.live) - 1; i >= 0; i-- {
		p.retire(p.live[i])
	}
	p.live = p.live[:0]
}

// DestroyAll destroys every live and cached slot.
func (p *Pool[T]) DestroyAll() {
	for _, idx := range p.live {
		p.destroy(idx)
	}
	for _, idx := range p.cache {
		p.destroy(idx)
	}
	p.live = p.live[:0]
	p.cache = p.cache[:0]
}

// Get resolves a live handle.
func (p *Pool[T]) Get(h Handle) (*Slot[T], error) {
	if int(h.index) >= len(p.cells) {
		return nil, fmt.Errorf("%s: %w", h, ErrStaleHandle)
	}
	c := &p.cells[h.index]
	if c.gen != h.gen || c.state != cellLive {
		return nil, fmt.Errorf("%s: %w", h, ErrStaleHandle)
	}
	return &c.slot, nil
}

// SetVisible toggles a live slot, calling the factory only on change.
func (p *Pool[T]) SetVisible(h Handle, visible bool) error {
	s, err := p.Get(h)
	if err != nil {
		return err
	}
	if s.Visible != visible {
		s.Visible = visible
		p.factory.SetActive(s.Item, visible)
	}
	return nil
}

// Live returns handles of the live slots in pool order.
func (p *Pool[T]) Live() []Handle {
	out := make([]Handle, len(p.live))
	for i, idx := range p.live {
		out[i] = Handle{index: idx, gen: p.cells[idx].gen}
	}
	return out
}

// Each calls fn for every live slot in pool order.
func (p *Pool[T]) Each(fn func(Handle, *Slot[T])) {
	for _, idx := range p.live {
		c := &p.cells[idx]
		fn(Handle{index: idx, gen: c.gen}, &c.slot)
	}
}

// Len is the number of live slots.
func (p *Pool[T]) Len() int { return len(p.live) }

// Cached is the number of inactive slots waiting for reuse.
func (p *Pool[T]) Cached() int { return len(p.cache) }

// Cap is the number of arena cells ever allocated.
func (p *Pool[T]) Cap() int { return len(p.cells) }

func (p *Pool[T]) acquire() (uint32, error) {
	if n := len(p.cache); n > 0 {
		idx := p.cache[n-1]
		p.cache = p.cache[:n-1]
		return idx, nil
	}

	item, err := p.factory.Instantiate()
	if err != nil {
		return 0, fmt.Errorf("instantiate slot: %w", err)
	}

	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.cells[idx].slot = Slot[T]{Item: item}
		return idx, nil
	}

	p.cells = append(p.cells, cell[T]{slot: Slot[T]{Item: item}, gen: 1})
	return uint32(len(p.cells) - 1), nil
}

func (p *Pool[T]) retire(idx uint32) {
	c := &p.cells[idx]
	if c.slot.Visible {
		p.factory.SetActive(c.slot.Item, false)
	}
	c.slot.Visible = false
	c.slot.Index = -1
	c.gen++
	c.state = cellCached
	p.cache = append(p.cache, idx)
}

func (p *Pool[T]) destroy(idx uint32) {
	c := &p.cells[idx]
	p.factory.Destroy(c.slot.Item)
	c.slot = Slot[T]{}
	c.gen++
	c.state = cellFree
	p.free = append(p.free, idx)
}
