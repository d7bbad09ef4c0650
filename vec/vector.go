package vec

import (
	"fmt"

	"dynvec/memory"
)

// Vector is a growable contiguous sequence of T over one owned slot block.
// Slots [0, Len()) hold live elements, slots [Len(), Cap()) are dead.
//
// Index preconditions panic when violated; recoverable errors are element
// construction failures surfaced by the Ops hooks. Two vectors exchanged
// with Swap, CopyFrom, or MoveFrom are expected to share equivalent Ops.
type Vector[T any] struct {
	ops  Ops[T]
	data memory.Raw[T]
	size int
}

// New returns an empty vector with no allocation.
func New[T any](ops Ops[T]) *Vector[T] {
	checkOps(&ops)
	return &Vector[T]{ops: ops}
}

// NewPlain returns an empty vector with trivial value semantics for T.
func NewPlain[T any]() *Vector[T] {
	return New(Plain[T]())
}

// Make returns a vector of count default-constructed elements in a block of
// exactly count slots. If a construction fails partway, everything built so
// far is torn down, the block is released, and no vector is produced.
func Make[T any](ops Ops[T], count int) (*Vector[T], error) {
	checkOps(&ops)
	v := &Vector[T]{ops: ops, data: memory.NewRaw[T](count)}
	for i := 0; i < count; i++ {
		if err := ops.defaultInto(v.data.At(i)); err != nil {
			ops.dropAll(v.data.Slots(0, i))
			v.data.Release()
			return nil, fmt.Errorf("vec: default-construct element %d: %w", i, err)
		}
	}
	v.size = count
	return v, nil
}

// Take returns a new vector owning o's block and elements, leaving o as a
// valid, reusable empty vector. No element-level work.
func Take[T any](o *Vector[T]) *Vector[T] {
	return &Vector[T]{ops: o.ops, data: o.data.Take(), size: takeSize(o)}
}

func takeSize[T any](o *Vector[T]) int {
	n := o.size
	o.size = 0
	return n
}

func checkOps[T any](ops *Ops[T]) {
	if ops.NoCopy && ops.Clone != nil {
		panic("vec: Ops declares NoCopy but sets a Clone hook")
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the slot capacity of the current block.
func (v *Vector[T]) Cap() int { return v.data.Cap() }

// At returns the address of element i. Requires i < Len(). The pointer is
// invalidated by any operation that relocates or shifts elements.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	return v.data.At(i)
}

// Each calls fn for every live element in index order until fn returns
// false. The traversal is invalidated by any capacity-changing operation or
// by any operation that relocates or shifts elements.
func (v *Vector[T]) Each(fn func(i int, p *T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.data.At(i)) {
			return
		}
	}
}

// Clone returns an independent deep copy with a block of exactly Len()
// slots. Backs out fully on a failed element copy. Returns ErrUncopyable
// for NoCopy element types.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v.ops.NoCopy {
		return nil, ErrUncopyable
	}
	dup := &Vector[T]{ops: v.ops, data: memory.NewRaw[T](v.size)}
	for i := 0; i < v.size; i++ {
		if err := v.ops.cloneInto(dup.data.At(i), v.data.At(i)); err != nil {
			v.ops.dropAll(dup.data.Slots(0, i))
			dup.data.Release()
			return nil, fmt.Errorf("vec: clone element %d: %w", i, err)
		}
	}
	dup.size = v.size
	return dup, nil
}

// CopyFrom makes v a value-wise duplicate of o.
//
// When v's capacity cannot hold o's elements, an independent copy is built
// first and swapped in, so a failure leaves v untouched. Otherwise the
// overlap is copy-assigned in place and the tail difference is built or
// dropped; a failure on that path leaves v consistent but partially
// assigned.
func (v *Vector[T]) CopyFrom(o *Vector[T]) error {
	if v == o {
		return nil
	}
	if v.data.Cap() < o.size {
		dup, err := o.Clone()
		if err != nil {
			return err
		}
		v.Swap(dup)
		dup.Release()
		return nil
	}
	n := min(v.size, o.size)
	for i := 0; i < n; i++ {
		if err := v.ops.copyAssign(v.data.At(i), o.data.At(i)); err != nil {
			return fmt.Errorf("vec: copy-assign element %d: %w", i, err)
		}
	}
	switch {
	case o.size > v.size:
		for i := v.size; i < o.size; i++ {
			if err := v.ops.cloneInto(v.data.At(i), o.data.At(i)); err != nil {
				v.ops.dropAll(v.data.Slots(v.size, i))
				return fmt.Errorf("vec: clone element %d: %w", i, err)
			}
		}
	case o.size < v.size:
		v.ops.dropAll(v.data.Slots(o.size, v.size))
	}
	v.size = o.size
	return nil
}

// MoveFrom drops v's own elements and block, then steals o's, leaving o as
// a valid, reusable empty vector. No element-level work on o's elements.
func (v *Vector[T]) MoveFrom(o *Vector[T]) {
	if v == o {
		return
	}
	v.ops.dropAll(v.data.Slots(0, v.size))
	v.data.Release()
	v.ops = o.ops
	v.data = o.data.Take()
	v.size = takeSize(o)
}

// Swap exchanges the contents of v and o. O(1), no element-level work,
// never fails.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.data.Swap(&o.data)
	v.size, o.size = o.size, v.size
	v.ops, o.ops = o.ops, v.ops
}

// Clear drops all live elements and keeps the block for reuse.
func (v *Vector[T]) Clear() {
	v.ops.dropAll(v.data.Slots(0, v.size))
	v.size = 0
}

// Release drops all live elements and the block. The vector stays valid and
// empty. Call it when elements need teardown before the vector goes away.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// Dump prints a short summary for debugging / monitoring.
func (v *Vector[T]) Dump() {
	fmt.Printf("Vector{len=%d, cap=%d, byMove=%t}\n",
		v.size, v.data.Cap(), v.ops.relocateByMove())
}
