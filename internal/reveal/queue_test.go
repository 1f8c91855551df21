package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/recycler/internal/pool"
)

type nopFactory struct{}

func (nopFactory) Instantiate() (int, error) { return 0, nil }
func (nopFactory) Destroy(int)               {}
func (nopFactory) SetActive(int, bool)       {}

func handles(t *testing.T, n int) []pool.Handle {
	t.Helper()
	p := pool.New[int](nopFactory{})
	require.NoError(t, p.Resize(n))
	return p.Live()
}

func TestDelaysAfter(t *testing.T) {
	d := Delays{Row: 100 * time.Millisecond, Col: 10 * time.Millisecond}
	assert.True(t, d.Enabled())
	assert.Equal(t, 230*time.Millisecond, d.After(2, 3))
	assert.False(t, Delays{}.Enabled())
}

func TestDrainReturnsDueEntriesInOrder(t *testing.T) {
	hs := handles(t, 3)
	base := time.Unix(1000, 0)
	var q Queue

	q.Schedule(base.Add(30*time.Millisecond), hs[2], true)
	q.Schedule(base.Add(10*time.Millisecond), hs[0], true)
	q.Schedule(base.Add(10*time.Millisecond), hs[1], true)

	next, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, base.Add(10*time.Millisecond), next)

	assert.Nil(t, q.Drain(base))

	due := q.Drain(base.Add(20 * time.Millisecond))
	require.Len(t, due, 2)
	assert.Equal(t, hs[0], due[0].Slot)
	assert.Equal(t, hs[1], due[1].Slot)
	assert.Equal(t, 1, q.Len())

	due = q.Drain(base.Add(time.Second))
	require.Len(t, due, 1)
	assert.Equal(t, hs[2], due[0].Slot)
	assert.Equal(t, 0, q.Len())
}

func TestCancelFiltersSlot(t *testing.T) {
	hs := handles(t, 2)
	base := time.Unix(0, 0)
	var q Queue
	q.Schedule(base, hs[0], false)
	q.Schedule(base.Add(time.Second), hs[0], true)
	q.Schedule(base.Add(time.Second), hs[1], true)

	assert.Equal(t, 3, q.Len())
	assert.True(t, q.Cancel(hs[0]))
	assert.False(t, q.Cancel(hs[0]))
	assert.Equal(t, 1, q.Len())

	q.CancelAll()
	assert.Equal(t, 0, q.Len())
	_, ok := q.Next()
	assert.False(t, ok)
}
