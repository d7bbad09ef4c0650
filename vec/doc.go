// Package vec implements a growable, contiguous, generically-typed sequence
// over raw slot blocks from dynvec/memory.
//
// Vector[T] manages element lifetimes by hand: it tracks which slots of its
// block are live, constructs and drops elements through the Ops[T] hooks it
// was built with, and relocates live elements between blocks on growth.
// Element construction may fail; every mutating operation either completes
// or backs out to a consistent state as documented on the operation.
//
// Vector is a single-threaded value type. Concurrent mutation of one
// instance is the caller's problem to prevent externally.
package vec
