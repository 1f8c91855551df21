// Package reveal schedules staggered slot visibility changes.
//
// Entries are drained by the host's tick loop; nothing here runs on its own.
package reveal

import (
	"sort"
	"time"

	"github.com/gravitrone/recycler/internal/pool"
)

// Entry is one pending visibility change.
type Entry struct {
	At      time.Time
	Slot    pool.Handle
	Visible bool
	seq     uint64
}

// Delays are the per-row and per-column reveal steps.
type Delays struct {
	Row time.Duration
	Col time.Duration
}

// Enabled reports whether any stagger is configured.
func (d Delays) Enabled() bool {
	return d.Row > 0 || d.Col > 0
}

// After is the delay for a cell: every row step first, then every column step.
func (d Delays) After(row, col int) time.Duration {
	return time.Duration(row)*d.Row + time.Duration(col)*d.Col
}

// Queue holds pending entries ordered by fire time, then insertion.
type Queue struct {
	entries []Entry
	seq     uint64
}

// Schedule adds an entry.
func (q *Queue) Schedule(at time.Time, slot pool.Handle, visible bool) {
	q.seq++
	q.entries = append(q.entries, Entry{At: at, Slot: slot, Visible: visible, seq: q.seq})
	sort.SliceStable(q.entries, func(i, j int) bool {
		if q.entries[i].At.Equal(q.entries[j].At) {
			return q.entries[i].seq < q.entries[j].seq
		}
		return q.entries[i].At.Before(q.entries[j].At)
	})
}

// Drain removes and returns every entry due at or before now.
func (q *Queue) Drain(now time.Time) []Entry {
	n := 0
	for n < len(q.entries) && !q.entries[n].At.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Entry, n)
	copy(due, q.entries[:n])
	q.entries = append(q.entries[:0], q.entries[n:]...)
	return due
}

// Cancel drops every entry for slot and reports whether any was pending.
func (q *Queue) Cancel(slot pool.Handle) bool {
	kept := q.entries[:0]
	dropped := false
	for _, e := range q.entries {
		if e.Slot == slot {
			dropped = true
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept
	return dropped
}

// CancelAll empties the queue.
func (q *Queue) CancelAll() {
	q.entries = q.entries[:0]
}

// Len is the number of pending entries.
func (q *Queue) Len() int { return len(q.entries) }

// Next returns the earliest fire time, if any.
func (q *Queue) Next() (time.Time, bool) {
	if len(q.entries) == 0 {
		return time.Time{}, false
	}
	return q.entries[0].At, true
}
