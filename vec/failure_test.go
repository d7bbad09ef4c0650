package vec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// copyRelocOps returns int Ops whose Clone can fail and whose Move is not
// declared safe, so relocation travels by copy and failed growth can back
// out with the originals intact.
func copyRelocOps(c *counters, failCloneOn func(int) bool) Ops[int] {
	return Ops[int]{
		Clone: func(x int) (int, error) {
			c.clones++
			if failCloneOn != nil && failCloneOn(x) {
				return 0, errBoom
			}
			return x, nil
		},
		Move: func(p *int) (int, error) {
			c.moves++
			x := *p
			*p = 0
			return x, nil
		},
		Drop: func(p *int) { c.drops++; *p = 0 },
	}
}

func TestMakePartialFailureBacksOut(t *testing.T) {
	var c counters
	calls := 0
	ops := Ops[int]{
		Default: func() (int, error) {
			calls++
			if calls == 3 {
				return 0, errBoom
			}
			return 5, nil
		},
		Drop: func(p *int) { c.drops++; *p = 0 },
	}

	v, err := Make(ops, 5)
	require.ErrorIs(t, err, errBoom)
	assert.ErrorContains(t, err, "default-construct element 2")
	assert.Nil(t, v, "no vector may be produced on a failed sized construction")
	assert.Equal(t, 2, c.drops, "the two built elements must be torn down")
}

func TestReserveFailureLeavesUntouched(t *testing.T) {
	var c counters
	failing := false
	v := New(copyRelocOps(&c, func(x int) bool { return failing && x == 2 }))
	appendAll(t, v, 1, 2, 3)
	capBefore := v.Cap()

	failing = true
	dropsBefore := c.drops
	err := v.Reserve(64)
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, capBefore, v.Cap(), "failed reserve must not adopt the new block")
	assert.Equal(t, []int{1, 2, 3}, collect(v))
	assert.Equal(t, dropsBefore+1, c.drops, "only the one relocated copy is torn down")
}

func TestAppendGrowFailureLeavesUntouched(t *testing.T) {
	var c counters
	failing := false
	v := New(copyRelocOps(&c, func(x int) bool { return failing && x == 2 }))
	appendAll(t, v, 1, 2)
	require.Equal(t, v.Cap(), v.Len(), "block must be full to force growth")

	failing = true
	dropsBefore := c.drops
	err := v.Append(3)
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, []int{1, 2}, collect(v))
	assert.Equal(t, 2, v.Cap())
	// the new element and the one relocated copy both get torn down
	assert.Equal(t, dropsBefore+2, c.drops)
}

func TestInsertCtorFailureStrongSafety(t *testing.T) {
	var c counters
	v := New(copyRelocOps(&c, nil))
	appendAll(t, v, 1, 2, 3)
	require.NoError(t, v.Reserve(8))

	movesBefore, dropsBefore := c.moves, c.drops
	_, err := v.InsertWith(1, func() (int, error) { return 0, errBoom })
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, collect(v), "failed mid-insert must not change the sequence")
	assert.Equal(t, movesBefore, c.moves, "no element may have been disturbed")
	assert.Equal(t, dropsBefore, c.drops)
}

func TestResizeGrowFailure(t *testing.T) {
	var c counters
	calls := 0
	ops := Ops[int]{
		Default: func() (int, error) {
			calls++
			if calls == 3 {
				return 0, errBoom
			}
			return 5, nil
		},
		Drop: func(p *int) { c.drops++; *p = 0 },
	}

	v := New(ops)
	err := v.Resize(4)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, v.Len(), "length is unchanged after a failed grow")
	assert.Equal(t, 4, v.Cap(), "capacity gained by the reserve is kept")
	assert.Equal(t, 2, c.drops, "the partially built tail must be torn down")
}

func TestCloneFailureBacksOut(t *testing.T) {
	var c counters
	failing := false
	v := New(copyRelocOps(&c, func(x int) bool { return failing && x == 2 }))
	appendAll(t, v, 1, 2, 3)

	failing = true
	dropsBefore := c.drops
	dup, err := v.Clone()
	require.ErrorIs(t, err, errBoom)
	assert.ErrorContains(t, err, "clone element 1")
	assert.Nil(t, dup)
	assert.Equal(t, dropsBefore+1, c.drops)
	assert.Equal(t, []int{1, 2, 3}, collect(v), "source must be untouched")
}

func TestCopyFromFailureLeavesTargetUntouched(t *testing.T) {
	var c counters
	failing := false
	ops := copyRelocOps(&c, func(x int) bool { return failing && x == 2 })
	src := New(ops)
	appendAll(t, src, 1, 2, 3)
	dst := New(ops)
	appendAll(t, dst, 7)

	failing = true
	err := dst.CopyFrom(src)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{7}, collect(dst), "clone-and-swap must leave the target untouched on failure")
	assert.Equal(t, []int{1, 2, 3}, collect(src))
}
