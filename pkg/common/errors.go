// Package common holds small fatal-error helpers shared across the
// package, for conditions that indicate a bug or an unusable request
// rather than ordinary runtime error handling.
package common

import "fmt"

// CheckCapacity panics if the requested initial capacity cannot be rounded
// up to a power of two representable by a uint32 shift amount. This is the
// capacity-exhausted guard: anything this large would fail to allocate
// anyway, so it is rejected eagerly rather than left to the allocator.
func CheckCapacity(requested int) {
	if requested < 0 {
		panic(fmt.Sprintf("invalid capacity: %d", requested))
	}
	const maxCapacity = 1 << 30
	if requested > maxCapacity {
		panic(fmt.Sprintf("requested capacity %d exceeds maximum %d", requested, maxCapacity))
	}
}
