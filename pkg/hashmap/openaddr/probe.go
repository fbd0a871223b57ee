package openaddr

import "github.com/scottcagno/robinhood/pkg/assert"

// backshiftFrom implements backward-shift deletion starting at hole, a
// slot that has just been vacated. It walks forward, pulling each
// subsequent slot that is not at its own home (psl > 0) one step back to
// fill the hole, until it reaches a slot that is empty or already at its
// home (psl == 0) — the point at which invariant (3) is restored.
//
// This is variant-independent: by the time it is called, the caller has
// already found and cleared the matching entry via its own equality rule.
// No wraparound arithmetic is needed; the tail slots (capacity..capacity+
// probeLimit-1) make the backward walk always stay in bounds for any hole
// a legal probe walk could have produced.
func (t *table[K, V]) backshiftFrom(hole uint32) {
	t.slots[hole].clear()
	for {
		next := hole + 1
		assert.Invariant(int(next) < len(t.slots), "backshift ran past the backing array")
		if t.slots[next].empty() || t.slots[next].psl == 0 {
			return
		}
		t.slots[hole] = t.slots[next]
		t.slots[hole].psl--
		t.slots[next].clear()
		hole = next
	}
}
