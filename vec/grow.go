package vec

import (
	"fmt"

	"dynvec/memory"
)

// nextCap is the growth rule for an unplanned append or insert once the
// block is full: 0 becomes 1, anything else doubles.
func (v *Vector[T]) nextCap() int {
	c := v.data.Cap()
	if c == 0 {
		return 1
	}
	return c * 2
}

// relocate constructs copies or moves of v's live elements [srcFrom, srcTo)
// into dst starting at slot dstAt, per the Ops relocation policy. On a
// failure partway it tears down everything it built in dst, last first, and
// returns the wrapped error; with the copy policy the originals in v are
// untouched.
func (v *Vector[T]) relocate(dst *memory.Raw[T], dstAt, srcFrom, srcTo int) error {
	byMove := v.ops.relocateByMove()
	for i := srcFrom; i < srcTo; i++ {
		d := dst.At(dstAt + (i - srcFrom))
		var err error
		if byMove {
			err = v.ops.moveInto(d, v.data.At(i))
		} else {
			err = v.ops.cloneInto(d, v.data.At(i))
		}
		if err != nil {
			v.ops.dropAll(dst.Slots(dstAt, dstAt+(i-srcFrom)))
			return fmt.Errorf("vec: relocate element %d: %w", i, err)
		}
	}
	return nil
}

// adopt drops the stale originals and swaps the populated block in. The old
// block is released only after relocation fully succeeded.
func (v *Vector[T]) adopt(nd *memory.Raw[T]) {
	v.ops.dropAll(v.data.Slots(0, v.size))
	v.data.Swap(nd)
	nd.Release()
}

// Reserve grows the block to exactly n slots. No-op when n fits the current
// capacity. On a relocation failure the new block is torn down and released
// and v is left completely unmodified.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	nd := memory.NewRaw[T](n)
	if err := v.relocate(&nd, 0, 0, v.size); err != nil {
		nd.Release()
		return err
	}
	v.adopt(&nd)
	return nil
}

// Resize sets Len() to n. Shrinking drops the tail; growing
// default-constructs the tail, reserving more slots first when needed. If a
// trailing construction fails, the partially built tail is torn down and
// Len() is unchanged (capacity gained by the reserve is kept).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative size %d", n))
	}
	switch {
	case n < v.size:
		v.ops.dropAll(v.data.Slots(n, v.size))
		v.size = n
	case n > v.size:
		if n > v.data.Cap() {
			if err := v.Reserve(n); err != nil {
				return err
			}
		}
		for i := v.size; i < n; i++ {
			if err := v.ops.defaultInto(v.data.At(i)); err != nil {
				v.ops.dropAll(v.data.Slots(v.size, i))
				return fmt.Errorf("vec: default-construct element %d: %w", i, err)
			}
		}
		v.size = n
	}
	return nil
}
