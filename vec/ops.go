package vec

import "errors"

// ErrUncopyable is returned when a deep copy is requested of a vector whose
// element type was declared NoCopy.
var ErrUncopyable = errors.New("vec: element type is not copyable")

// Ops supplies the element lifetime hooks for a Vector[T]. Every field may
// be nil; the all-nil value (see Plain) gives trivial value semantics.
//
//   - Default constructs a new element for sized construction and Resize.
//     nil means the zero value, which never fails.
//   - Clone duplicates an element without disturbing the source. nil means
//     plain assignment, which never fails. Must be nil when NoCopy is set.
//   - Move transfers an element out of *src, leaving *src hollow but safe to
//     Drop. nil means assignment plus zeroing the source, which never fails.
//     A failing Move must still leave *src droppable.
//   - Drop tears an element down. nil means zeroing the slot. Drop must
//     accept hollow (moved-from) elements.
//
// NoCopy declares that elements cannot be duplicated at all; Clone,
// CopyFrom, and copy-based relocation then refuse with ErrUncopyable.
// MoveSafe declares that Move never returns an error.
type Ops[T any] struct {
	Default func() (T, error)
	Clone   func(T) (T, error)
	Move    func(*T) (T, error)
	Drop    func(*T)

	NoCopy   bool
	MoveSafe bool
}

// Plain returns the all-nil Ops: zero-value default, assignment copy and
// move, zeroing drop. Suitable for element types with no owned resources.
func Plain[T any]() Ops[T] { return Ops[T]{} }

// relocateByMove decides how live elements travel between blocks: move when
// moving cannot fail partway, or when there is no copy path at all;
// otherwise copy, so a failure leaves the originals untouched in the old
// block and the operation can back out.
func (o *Ops[T]) relocateByMove() bool {
	return o.Move == nil || o.MoveSafe || o.NoCopy
}

// defaultInto constructs a default element in the dead slot at dst.
func (o *Ops[T]) defaultInto(dst *T) error {
	if o.Default == nil {
		var zero T
		*dst = zero
		return nil
	}
	v, err := o.Default()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// cloneInto duplicates src into the dead slot at dst, leaving src intact.
func (o *Ops[T]) cloneInto(dst *T, src *T) error {
	if o.NoCopy {
		return ErrUncopyable
	}
	if o.Clone == nil {
		*dst = *src
		return nil
	}
	v, err := o.Clone(*src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// moveInto transfers the live element at src into the dead slot at dst.
// On success src holds a hollow element that still needs a Drop.
func (o *Ops[T]) moveInto(dst *T, src *T) error {
	if o.Move == nil {
		var zero T
		*dst = *src
		*src = zero
		return nil
	}
	v, err := o.Move(src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// moveAssign replaces the live element at dst with the one moved out of
// src. Assignment onto a live slot is modeled as drop-then-move-construct.
func (o *Ops[T]) moveAssign(dst *T, src *T) error {
	o.drop(dst)
	return o.moveInto(dst, src)
}

// copyAssign replaces the live element at dst with a duplicate of src.
// The duplicate is built first so a failure leaves dst untouched.
func (o *Ops[T]) copyAssign(dst *T, src *T) error {
	if o.NoCopy {
		return ErrUncopyable
	}
	if o.Clone == nil {
		o.drop(dst)
		*dst = *src
		return nil
	}
	v, err := o.Clone(*src)
	if err != nil {
		return err
	}
	o.drop(dst)
	*dst = v
	return nil
}

// drop tears down the live element at p, leaving the slot dead.
func (o *Ops[T]) drop(p *T) {
	if o.Drop != nil {
		o.Drop(p)
		return
	}
	var zero T
	*p = zero
}

// dropAll tears down every element in slots, last first.
func (o *Ops[T]) dropAll(slots []T) {
	for k := len(slots) - 1; k >= 0; k-- {
		o.drop(&slots[k])
	}
}
