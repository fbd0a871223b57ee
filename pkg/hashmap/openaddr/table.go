package openaddr

import (
	"github.com/scottcagno/robinhood/pkg/assert"
	"github.com/scottcagno/robinhood/pkg/common"
)

// table is the slot array and sizing state shared by both the generic and
// numeric dialects. It owns no equality policy of its own; Map and NumMap
// each drive a table through their own insert/lookup/update/delete walks,
// the single point where the two dialects diverge.
type table[K any, V any] struct {
	slots      []slot[K, V]
	capacity   uint32 // power of two, >= DefaultCapacity
	probeLimit uint8  // floor(log2(capacity)), capped at maxProbeLimit
	shift      uint8  // hashBits - log2(capacity)
	count      uint32
	loadFactor float64
}

// newTable allocates a table whose capacity is initialCapacity rounded up
// to a power of two no smaller than DefaultCapacity. The load-factor
// trigger in needsResize grows it before that many live entries are held.
func newTable[K any, V any](initialCapacity int, loadFactor float64) *table[K, V] {
	common.CheckCapacity(initialCapacity)
	cap := nextPow2(initialCapacity)
	assert.Invariant(cap >= DefaultCapacity, "table capacity %d below minimum %d", cap, DefaultCapacity)
	pl := probeLimitFor(cap)
	t := &table[K, V]{
		capacity:   cap,
		probeLimit: pl,
		shift:      shiftFor(cap),
		loadFactor: loadFactor,
	}
	t.slots = make([]slot[K, V], uint64(cap)+uint64(pl))
	for i := range t.slots {
		t.slots[i].psl = emptySentinel
	}
	return t
}

// home returns the home slot for a 32-bit hash: the index a key maps to
// before any probing occurs.
func (t *table[K, V]) home(hash uint32) uint32 {
	return fibHash32(hash, t.shift)
}

// needsResize reports whether placing one more entry would push the table
// over the load-factor or capacity trigger, and so must grow before the
// insert proceeds.
func (t *table[K, V]) needsResize() bool {
	if t.count+1 >= t.capacity {
		return true
	}
	return float64(t.count+1)/float64(t.capacity) > t.loadFactor
}

// len returns the number of live entries.
func (t *table[K, V]) len() int {
	return int(t.count)
}

// cap returns the length of the backing array, including tail slots.
func (t *table[K, V]) cap() int {
	return len(t.slots)
}

// loadFactorNow returns the table's current fill ratio, count/capacity.
func (t *table[K, V]) loadFactorNow() float64 {
	return float64(t.count) / float64(t.capacity)
}

// maxProbeLength returns the highest PSL currently carried by any live
// entry in the table.
func (t *table[K, V]) maxProbeLength() uint8 {
	var max uint8
	for i := range t.slots {
		if !t.slots[i].empty() && t.slots[i].psl > max {
			max = t.slots[i].psl
		}
	}
	return max
}
