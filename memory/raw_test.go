package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRawEmptySentinel(t *testing.T) {
	r := NewRaw[int](0)
	assert.Equal(t, 0, r.Cap(), "zero-count block should be the empty sentinel")

	r.Release()
	assert.Equal(t, 0, r.Cap(), "releasing the sentinel should be a no-op")
}

func TestNewRawCapacity(t *testing.T) {
	r := NewRaw[int](5)
	require.Equal(t, 5, r.Cap())

	*r.At(0) = 10
	*r.At(4) = 50
	assert.Equal(t, 10, *r.At(0))
	assert.Equal(t, 50, *r.At(4))
}

func TestNewRawNegativePanics(t *testing.T) {
	assert.Panics(t, func() { NewRaw[int](-1) })
}

func TestAtOutOfRangePanics(t *testing.T) {
	r := NewRaw[int](3)
	assert.Panics(t, func() { r.At(3) })
	assert.Panics(t, func() { r.At(-1) })

	empty := NewRaw[int](0)
	assert.Panics(t, func() { empty.At(0) })
}

func TestSlotsWindow(t *testing.T) {
	r := NewRaw[int](4)
	for i := 0; i < 4; i++ {
		*r.At(i) = i + 1
	}

	w := r.Slots(1, 3)
	require.Len(t, w, 2)
	assert.Equal(t, []int{2, 3}, w)

	w[0] = 9
	assert.Equal(t, 9, *r.At(1), "window must alias the block")

	assert.Empty(t, r.Slots(2, 2), "empty window is valid")
	assert.Panics(t, func() { r.Slots(2, 5) })
	assert.Panics(t, func() { r.Slots(3, 2) })
	assert.Panics(t, func() { r.Slots(-1, 2) })
}

func TestSwap(t *testing.T) {
	a := NewRaw[int](2)
	b := NewRaw[int](6)
	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(&b)
	assert.Equal(t, 6, a.Cap())
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, 2, *a.At(0))
	assert.Equal(t, 1, *b.At(0))
}

func TestTakeResetsSource(t *testing.T) {
	src := NewRaw[int](3)
	*src.At(1) = 7

	dst := src.Take()
	assert.Equal(t, 0, src.Cap(), "source must be left as the empty sentinel")
	require.Equal(t, 3, dst.Cap())
	assert.Equal(t, 7, *dst.At(1))
}

func TestRelease(t *testing.T) {
	r := NewRaw[int](8)
	r.Release()
	assert.Equal(t, 0, r.Cap())
	assert.Panics(t, func() { r.At(0) })
}
