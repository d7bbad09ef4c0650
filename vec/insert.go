package vec

import (
	"fmt"

	"dynvec/memory"
)

// Append takes ownership of x and places it after the last element.
// Amortized O(1); grows the block by the doubling rule when full.
func (v *Vector[T]) Append(x T) error {
	_, err := v.emplace(v.size, func(dst *T) error {
		return v.ops.moveInto(dst, &x)
	})
	return err
}

// AppendWith constructs a new last element with mk and returns its address.
// If mk fails, the vector is unchanged.
func (v *Vector[T]) AppendWith(mk func() (T, error)) (*T, error) {
	return v.emplace(v.size, constructWith(mk))
}

// Insert takes ownership of x and places it at index i, shifting [i, Len())
// right by one. Requires 0 <= i <= Len(). O(n).
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.emplace(i, func(dst *T) error {
		return v.ops.moveInto(dst, &x)
	})
	return err
}

// InsertWith constructs a new element at index i with mk and returns its
// address. If mk fails, the vector is unchanged. Requires 0 <= i <= Len().
func (v *Vector[T]) InsertWith(i int, mk func() (T, error)) (*T, error) {
	return v.emplace(i, constructWith(mk))
}

// PopBack drops the last element. Requires Len() > 0.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.ops.drop(v.data.At(v.size - 1))
	v.size--
}

// Remove drops the element at index i, shifting [i+1, Len()) left by one.
// Requires 0 <= i < Len(). O(n). The error is only reachable for element
// types whose Move hook can fail.
func (v *Vector[T]) Remove(i int) error {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	for j := i + 1; j < v.size; j++ {
		if err := v.ops.moveAssign(v.data.At(j-1), v.data.At(j)); err != nil {
			return fmt.Errorf("vec: shift element %d: %w", j, err)
		}
	}
	v.ops.drop(v.data.At(v.size - 1))
	v.size--
	return nil
}

func constructWith[T any](mk func() (T, error)) func(*T) error {
	return func(dst *T) error {
		x, err := mk()
		if err != nil {
			return err
		}
		*dst = x
		return nil
	}
}

// emplace places one new element at index p, 0 <= p <= size.
func (v *Vector[T]) emplace(p int, construct func(*T) error) (*T, error) {
	if p < 0 || p > v.size {
		panic(fmt.Sprintf("vec: position %d out of range [0, %d]", p, v.size))
	}
	if v.size == v.data.Cap() {
		return v.emplaceGrow(p, construct)
	}
	if p == v.size {
		// free slot right there: construct in place, a failure changes nothing
		if err := construct(v.data.At(p)); err != nil {
			return nil, err
		}
		v.size++
		return v.data.At(p), nil
	}
	return v.emplaceShift(p, construct)
}

// emplaceGrow handles insertion with a full block: the new element is
// constructed directly at its final offset in the new block, then the old
// prefix and suffix are relocated around it in the same pass. The old block
// is dropped only after the new one is fully populated.
func (v *Vector[T]) emplaceGrow(p int, construct func(*T) error) (*T, error) {
	nd := memory.NewRaw[T](v.nextCap())
	if err := construct(nd.At(p)); err != nil {
		nd.Release()
		return nil, err
	}
	if err := v.relocate(&nd, 0, 0, p); err != nil {
		v.ops.drop(nd.At(p))
		nd.Release()
		return nil, err
	}
	if err := v.relocate(&nd, p+1, p, v.size); err != nil {
		v.ops.drop(nd.At(p))
		v.ops.dropAll(nd.Slots(0, p))
		nd.Release()
		return nil, err
	}
	v.adopt(&nd)
	v.size++
	return v.data.At(p), nil
}

// emplaceShift handles mid-array insertion with spare capacity and no
// relocation. The new element is built first so a failing constructor
// leaves the vector untouched; after the live range has been extended by
// one at the tail, any later failure must drop that fresh tail slot so no
// live element leaks into nominally-dead capacity.
func (v *Vector[T]) emplaceShift(p int, construct func(*T) error) (*T, error) {
	var tmp T
	if err := construct(&tmp); err != nil {
		return nil, err
	}
	last := v.size - 1
	if err := v.ops.moveInto(v.data.At(v.size), v.data.At(last)); err != nil {
		v.ops.drop(&tmp)
		return nil, err
	}
	for i := last - 1; i >= p; i-- {
		// shift right tail-first so nothing overwrites itself
		if err := v.ops.moveAssign(v.data.At(i+1), v.data.At(i)); err != nil {
			v.ops.drop(v.data.At(v.size))
			v.ops.drop(&tmp)
			return nil, fmt.Errorf("vec: shift element %d: %w", i, err)
		}
	}
	if err := v.ops.moveAssign(v.data.At(p), &tmp); err != nil {
		v.ops.drop(v.data.At(v.size))
		v.ops.drop(&tmp)
		return nil, err
	}
	v.size++
	return v.data.At(p), nil
}
