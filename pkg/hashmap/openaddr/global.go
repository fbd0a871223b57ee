package openaddr

const (
	// DefaultLoadFactor is the fraction of capacity that may be filled
	// before an insert triggers a resize.
	DefaultLoadFactor = 0.88
	// DefaultCapacity is the smallest table size ever allocated.
	DefaultCapacity = 16
	// maxProbeLimit caps the per-lookup probe budget regardless of how
	// large the table grows.
	maxProbeLimit = 15
	// hashBits is the width, in bits, of the hash word the Fibonacci
	// mapping operates on.
	hashBits = 32
	// fibMultiplier is floor(2^32 / phi), the constant used by Fibonacci
	// (multiplicative) hashing.
	fibMultiplier = 0x9E3779B9
)

// nextPow2 rounds size up to the next power of two, never going below
// DefaultCapacity.
func nextPow2(size int) uint32 {
	count := uint32(DefaultCapacity)
	for count < uint32(size) {
		count *= 2
	}
	return count
}

// log2Floor returns floor(log2(n)) for n >= 1.
func log2Floor(n uint32) uint8 {
	var l uint8
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}

// probeLimitFor returns the hard per-lookup probe budget for a table of the
// given capacity: floor(log2(capacity)), capped at maxProbeLimit.
func probeLimitFor(capacity uint32) uint8 {
	l := log2Floor(capacity)
	if l > maxProbeLimit {
		return maxProbeLimit
	}
	return l
}

// shiftFor returns the right-shift amount that, combined with fibMultiplier,
// selects the top log2(capacity) bits of a 32-bit product as the home slot
// for a table of the given capacity.
func shiftFor(capacity uint32) uint8 {
	return hashBits - log2Floor(capacity)
}

// fibHash32 maps a 32-bit hash to a home slot index via Fibonacci
// (multiplicative) hashing: the high bits of h*fibMultiplier, selected by
// shift, become the table index. This tolerates weak key hashes without a
// secondary mixing step.
func fibHash32(h uint32, shift uint8) uint32 {
	return (h * fibMultiplier) >> shift
}
