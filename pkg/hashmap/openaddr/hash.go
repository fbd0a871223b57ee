package openaddr

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// HashFunc computes the 32-bit hash word used to place a key of type K.
// Only the low hashBits bits matter; fold a wider digest down with
// foldHash64 if a hash library returns 64 bits, as xxhash does.
type HashFunc[K any] func(key K) uint32

// EqualFunc decides whether two keys of type K are the same key. The
// generic dialect uses this for every match check; the numeric dialect
// never calls it, deciding equality from the stored hash alone.
type EqualFunc[K any] func(a, b K) bool

// foldHash64 folds a 64-bit digest into the 32-bit word the Fibonacci
// mapping operates on.
func foldHash64(h uint64) uint32 {
	return uint32(h ^ (h >> 32))
}

// defaultHashString hashes a string key with xxhash.
func defaultHashString(key string) uint32 {
	return foldHash64(xxhash.Sum64String(key))
}

// defaultHashBytes hashes a []byte key with xxhash.
func defaultHashBytes(key []byte) uint32 {
	return foldHash64(xxhash.Sum64(key))
}

// Integer constrains the numeric dialect's key type to fixed-size,
// bit-comparable integers, per spec's resolution of the "numeric equality
// precondition" open question: hash-equality is only sound when the key
// itself is small enough that hash collisions are a negligible, and the
// key has a canonical bit pattern to take that hash from.
type Integer interface {
	constraints.Integer
}

// hashInteger hashes a fixed-size integer key by viewing its bits as a byte
// slice and running xxhash over them.
func hashInteger[K Integer](key K) uint32 {
	size := unsafe.Sizeof(key)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&key)), size)
	return foldHash64(xxhash.Sum64(b))
}
