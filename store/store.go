// Package store provides the passive contiguous buffer the array-backed
// collections grow into. The store makes no policy decisions: collections
// decide when and how far to grow, the store allocates and copies. Buffers
// report their current length through the built-in len.
package store

import "math"

// MaxLength bounds how far a collection may grow a buffer. Growth policies
// double until they reach a requested size and clamp to MaxLength.
const MaxLength = math.MaxInt32 - 8

// Allocate returns a zeroed buffer of the given capacity. Negative
// capacities allocate an empty buffer.
func Allocate[T any](capacity int) []T {
	if capacity < 0 {
		capacity = 0
	}
	return make([]T, capacity)
}

// CopySegment copies length elements from src starting at srcOff into dst
// starting at dstOff. The segments may overlap within the same buffer.
func CopySegment[T any](src []T, srcOff int, dst []T, dstOff, length int) {
	copy(dst[dstOff:dstOff+length], src[srcOff:srcOff+length])
}
