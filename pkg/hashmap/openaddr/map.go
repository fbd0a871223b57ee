package openaddr

import "github.com/scottcagno/robinhood/pkg/assert"

// Map is the generic dialect: keys of any comparable type K, equality
// decided by an EqualFunc rather than by comparing hashes.
type Map[K comparable, V any] struct {
	t     *table[K, V]
	hash  HashFunc[K]
	equal EqualFunc[K]

	initialCapacity int
	loadFactor      float64
}

// New constructs a Map. hash is required: K may be any comparable type, and
// there is no generically-derivable default hash for an arbitrary type.
// Callers with string or []byte keys can pass StringHash[K]()/
// BytesHash[K]() instead of writing their own.
func New[K comparable, V any](hash HashFunc[K], opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		hash:            hash,
		equal:           func(a, b K) bool { return a == b },
		initialCapacity: DefaultCapacity,
		loadFactor:      DefaultLoadFactor,
	}
	for _, opt := range opts {
		opt.apply(m)
	}
	assert.Invariant(m.hash != nil, "openaddr: Map requires a hash function")
	m.t = newTable[K, V](m.initialCapacity, m.loadFactor)
	return m
}

// NewStringMap is a convenience constructor for Map[string, V], using
// xxhash as the default hash function.
func NewStringMap[V any](opts ...Option[string, V]) *Map[string, V] {
	return New[string, V](defaultHashString, opts...)
}

// Insert places (key, value) if key is not already present. It reports
// whether the insert happened; a duplicate key leaves the table untouched.
func (m *Map[K, V]) Insert(key K, value V) bool {
	if m.t.needsResize() {
		m.t = growTable(m.t, m.reinsert)
	}
	return m.insertRaw(m.hash(key), key, value, true)
}

// insertRaw runs the Robin Hood probe walk: it fuses the duplicate-key
// check into the same pass that finds a slot, rather than checking
// existence first and then walking again. When checkDup is false
// (rebuild/resize reinsertion), no existence check is performed, since the
// source table's invariants already guarantee the key is unique.
func (m *Map[K, V]) insertRaw(hash uint32, key K, value V, checkDup bool) bool {
	t := m.t
	idx := t.home(hash)
	cand := slot[K, V]{hash: hash, psl: 0, key: key, value: value}
	for {
		if cand.psl == t.probeLimit {
			// Placing here would violate "home <= i <= home+probeLimit-1";
			// resize instead of extending the walk past the budget.
			m.t = growTable(t, m.reinsert)
			return m.insertRaw(cand.hash, cand.key, cand.value, false)
		}
		assert.Invariant(int(idx) < len(t.slots), "probe walk ran past the backing array without a resize opportunity")
		s := &t.slots[idx]
		switch {
		case s.empty():
			*s = cand
			t.count++
			return true
		case checkDup && m.equal(s.key, cand.key):
			return false
		case cand.psl > s.psl:
			*s, cand = cand, *s
		}
		idx++
		cand.psl++
	}
}

// reinsert is the growTable callback: place a surviving slot into nt
// without a duplicate check.
func (m *Map[K, V]) reinsert(nt *table[K, V], s *slot[K, V]) {
	saved := m.t
	m.t = nt
	m.insertRaw(s.hash, s.key, s.value, false)
	if m.t != nt {
		// insertRaw outgrew nt; growTable keeps placing into nt, so hand
		// it the grown table's state.
		*nt = *m.t
	}
	m.t = saved
}

// Lookup returns the value for key, if present.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	t := m.t
	idx := t.home(m.hash(key))
	for steps := uint8(0); steps < t.probeLimit; steps++ {
		s := &t.slots[idx+uint32(steps)]
		if s.empty() {
			var zero V
			return zero, false
		}
		if m.equal(s.key, key) {
			return s.value, true
		}
	}
	var zero V
	return zero, false
}

// Get is an alias for Lookup, matching the common Go map-like idiom.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.Lookup(key)
}

// At is the indexed-read accessor: it returns ErrKeyNotFound instead of a
// boolean when key is absent.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Lookup(key)
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return v, nil
}

// Update overwrites the value for key if it is present. It is a silent
// no-op if key is absent: it never inserts.
func (m *Map[K, V]) Update(key K, value V) {
	t := m.t
	idx := t.home(m.hash(key))
	for steps := uint8(0); steps < t.probeLimit; steps++ {
		s := &t.slots[idx+uint32(steps)]
		if s.empty() {
			return
		}
		if m.equal(s.key, key) {
			s.value = value
			return
		}
	}
}

// Remove deletes key via backshift deletion. It is a silent no-op if key
// is absent; it never triggers a resize.
func (m *Map[K, V]) Remove(key K) {
	t := m.t
	home := t.home(m.hash(key))
	for steps := uint8(0); steps < t.probeLimit; steps++ {
		idx := home + uint32(steps)
		s := &t.slots[idx]
		if s.empty() {
			return
		}
		if m.equal(s.key, key) {
			t.backshiftFrom(idx)
			t.count--
			return
		}
	}
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.t.len() }

// Cap returns the length of the backing array, including tail slots.
func (m *Map[K, V]) Cap() int { return m.t.cap() }

// LoadFactor returns the table's current fill ratio, count/capacity.
func (m *Map[K, V]) LoadFactor() float64 { return m.t.loadFactorNow() }

// MaxProbeLength returns the highest PSL currently carried by any live
// entry.
func (m *Map[K, V]) MaxProbeLength() uint8 { return m.t.maxProbeLength() }

// Iterator is the callback type for Range: return false to stop early.
type Iterator[K any, V any] func(key K, value V) bool

// Range calls it for every live entry in unspecified order. It is not safe
// to Insert or Remove while ranging.
func (m *Map[K, V]) Range(it Iterator[K, V]) {
	for i := range m.t.slots {
		s := &m.t.slots[i]
		if s.empty() {
			continue
		}
		if !it(s.key, s.value) {
			return
		}
	}
}

// Close releases the table. Calling any other method on m afterward is
// undefined.
func (m *Map[K, V]) Close() {
	m.t = nil
}
