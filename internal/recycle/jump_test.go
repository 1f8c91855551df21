package recycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/recycler/internal/layout"
)

func TestJumpOffset(t *testing.T) {
	r, _, _ := newGrid(t, 100)

	off, err := r.JumpOffset(23, 1)
	require.NoError(t, err)
	assert.Equal(t, 400.0, off)

	off, err = r.JumpOffset(50, 3)
	require.NoError(t, err)
	assert.Equal(t, 800.0, off)

	// Row 0 on the third display line clamps at the top.
	off, err = r.JumpOffset(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, off)

	off, err = r.JumpOffset(500, 0)
	require.NoError(t, err)
	assert.Equal(t, 1650.0, off)

	_, err = r.JumpOffset(-1, 1)
	assert.ErrorIs(t, err, layout.ErrInvalidArgument)
}

func TestJumpAcrossWindowRelabelsInOnePass(t *testing.T) {
	r, _, rec := newGrid(t, 100)
	rec.reset()

	require.NoError(t, r.JumpToIndex(73, 1))
	assert.Equal(t, 1400.0, r.Offset())
	assert.Equal(t, seq(60, 99), rec.indices)
	from, to := r.VisibleRange()
	assert.LessOrEqual(t, from, 73)
	assert.GreaterOrEqual(t, to, 73)
	assertWindow(t, r)
}

func TestShortJumpShiftsLineByLine(t *testing.T) {
	r, _, rec := newGrid(t, 100)
	rec.reset()

	require.NoError(t, r.JumpToIndex(23, 1))
	assert.Equal(t, seq(40, 59), rec.indices)
	from, _ := r.VisibleRange()
	assert.Equal(t, 20, from)
}

func TestJumpRoundTripContainsIndex(t *testing.T) {
	r, _, _ := newGrid(t, 100)
	order := []int{0, 99, 37, 38, 12, 80, 5, 64, 63, 1, 98, 50}
	for _, k := range order {
		require.NoError(t, r.JumpToIndex(k, 1))
		from, to := r.VisibleRange()
		assert.LessOrEqual(t, from, k, "jump to %d", k)
		assert.GreaterOrEqual(t, to, k, "jump to %d", k)
		assert.True(t, r.CheckIndexVisible(k+1))
		assertWindow(t, r)
	}
}

func TestJumpRejectsNegativeIndex(t *testing.T) {
	r, _, _ := newGrid(t, 100)
	r.ScrollTo(300)

	err := r.JumpToIndex(-3, 1)
	assert.ErrorIs(t, err, layout.ErrInvalidArgument)
	assert.Equal(t, 300.0, r.Offset())
}

func TestJumpOnEmptyListIsNoop(t *testing.T) {
	r, _, rec := newGrid(t, 0)
	rec.reset()

	require.NoError(t, r.JumpToIndex(5, 1))
	assert.Equal(t, 0.0, r.Offset())
	assert.Empty(t, rec.indices)
}

func TestJumpWithLeadPaddingLandsInWindow(t *testing.T) {
	for _, axis := range []layout.Axis{layout.Vertical, layout.Horizontal} {
		t.Run(axis.String(), func(t *testing.T) {
			r, err := New[*tile](paddedListSpec(axis), &testHost{}, quietLogger())
			require.NoError(t, err)
			require.NoError(t, r.SetCellCount(100, true))

			require.NoError(t, r.JumpToIndex(10, 1))
			assert.Equal(t, 620.0, r.Offset())
			from, to := r.VisibleRange()
			assert.Equal(t, 10, from)
			assert.Equal(t, 19, to)
			assertWindow(t, r)

			for _, k := range []int{0, 99, 37, 3, 64, 1, 90} {
				require.NoError(t, r.JumpToIndex(k, 1))
				from, to := r.VisibleRange()
				assert.LessOrEqual(t, from, k, "jump to %d", k)
				assert.GreaterOrEqual(t, to, k, "jump to %d", k)
				assertWindow(t, r)
			}
		})
	}
}
