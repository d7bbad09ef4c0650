package memory

import "fmt"

// Raw owns a block of slots for exactly Cap() elements of T.
//
// Raw does element-free memory management only: it allocates and releases
// the block but never constructs, copies, or drops a value in it. Slot
// contents are zeroed by the allocator; a zeroed slot is NOT a live element.
// The owner decides which slots are live and must tear them down itself
// before the block is released or overwritten.
//
// Raw is move-only. Use it through a pointer and transfer ownership with
// Take or Swap; copying the struct by value aliases one block under two
// owners and is misuse.
type Raw[T any] struct {
	buf []T
}

// NewRaw allocates a block with room for exactly count elements of T.
// count == 0 yields the empty sentinel without allocating.
// A negative count is a caller bug and panics.
func NewRaw[T any](count int) Raw[T] {
	if count < 0 {
		panic(fmt.Sprintf("memory: negative slot count %d", count))
	}
	if count == 0 {
		return Raw[T]{}
	}
	return Raw[T]{buf: make([]T, count)}
}

// Cap returns the slot capacity of the block, in elements.
func (r *Raw[T]) Cap() int { return len(r.buf) }

// At returns the address of slot i. The slot may or may not hold a live
// element; the caller tracks that. Requires i < Cap().
func (r *Raw[T]) At(i int) *T {
	if i < 0 || i >= len(r.buf) {
		panic(fmt.Sprintf("memory: slot %d out of range [0, %d)", i, len(r.buf)))
	}
	return &r.buf[i]
}

// Slots returns the window [i, j) of the block. Requires 0 <= i <= j <= Cap().
func (r *Raw[T]) Slots(i, j int) []T {
	if i < 0 || j < i || j > len(r.buf) {
		panic(fmt.Sprintf("memory: window [%d, %d) out of range [0, %d]", i, j, len(r.buf)))
	}
	return r.buf[i:j:j]
}

// Swap exchanges block ownership with other. No slot-level work, never fails.
func (r *Raw[T]) Swap(other *Raw[T]) {
	r.buf, other.buf = other.buf, r.buf
}

// Take transfers the block out of r, leaving r as the empty sentinel.
func (r *Raw[T]) Take() Raw[T] {
	out := Raw[T]{buf: r.buf}
	r.buf = nil
	return out
}

// Release drops the block, resetting r to the empty sentinel. It never
// touches slot contents; live elements must already be torn down.
func (r *Raw[T]) Release() {
	r.buf = nil
}
