// Package memory provides raw slot-block ownership for container types.
//
// A Raw[T] owns a contiguous block of slots for exactly Cap elements of T
// and never initializes or tears down the values stored in it. Which slots
// hold live values is tracked entirely by the owning container, so a block
// can hold more slots than live elements. Ownership is exclusive and moves
// via Take or Swap; it is never shared.
package memory
