package openaddr

// NumMap is the numeric dialect: keys are fixed-size, bit-comparable
// integers, and equality is decided by comparing the stored 32-bit hash
// rather than invoking a key-equality operation.
//
// Precondition: this is only sound because K is restricted to small,
// fixed-size integers, for which hash collisions under xxhash are
// astronomically unlikely. NumMap is never offered for arbitrary K; a
// hash collision between two distinct keys would be silently treated as
// the same entry.
type NumMap[K Integer, V any] struct {
	t *table[K, V]

	initialCapacity int
	loadFactor      float64
}

// NewNumeric constructs a NumMap.
func NewNumeric[K Integer, V any](opts ...NumOption[K, V]) *NumMap[K, V] {
	m := &NumMap[K, V]{
		initialCapacity: DefaultCapacity,
		loadFactor:      DefaultLoadFactor,
	}
	for _, opt := range opts {
		opt.apply(m)
	}
	m.t = newTable[K, V](m.initialCapacity, m.loadFactor)
	return m
}

// Insert places (key, value) if key is not already present.
func (m *NumMap[K, V]) Insert(key K, value V) bool {
	if m.t.needsResize() {
		m.t = growTable(m.t, m.reinsert)
	}
	return m.insertRaw(hashInteger(key), key, value, true)
}

func (m *NumMap[K, V]) insertRaw(hash uint32, key K, value V, checkDup bool) bool {
	t := m.t
	idx := t.home(hash)
	cand := slot[K, V]{hash: hash, psl: 0, key: key, value: value}
	for {
		if cand.psl == t.probeLimit {
			m.t = growTable(t, m.reinsert)
			return m.insertRaw(cand.hash, cand.key, cand.value, false)
		}
		s := &t.slots[idx]
		switch {
		case s.empty():
			*s = cand
			t.count++
			return true
		case checkDup && s.hash == cand.hash:
			return false
		case cand.psl > s.psl:
			*s, cand = cand, *s
		}
		idx++
		cand.psl++
	}
}

func (m *NumMap[K, V]) reinsert(nt *table[K, V], s *slot[K, V]) {
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

// Lookup returns the value for key, if present. It uses the numeric
// dialect's early-termination rule: once a slot's PSL is strictly less
// than the key's own distance from its home at that slot, the key cannot
// appear further along (Robin Hood ordering: it would have displaced that
// entry), so the walk stops early rather than always consuming the full
// probe budget.
func (m *NumMap[K, V]) Lookup(key K) (V, bool) {
	t := m.t
	hash := hashInteger(key)
	home := t.home(hash)
	for steps := uint8(0); steps < t.probeLimit; steps++ {
		s := &t.slots[home+uint32(steps)]
		if s.empty() {
			var zero V
			return zero, false
		}
		if s.psl < steps {
			var zero V
			return zero, false
		}
		if s.hash == hash {
			return s.value, true
		}
	}
	var zero V
	return zero, false
}

// Get is an alias for Lookup, matching the common Go map-like idiom.
func (m *NumMap[K, V]) Get(key K) (V, bool) {
	return m.Lookup(key)
}

// At is the indexed-read accessor: it returns ErrKeyNotFound instead of a
// boolean when key is absent.
func (m *NumMap[K, V]) At(key K) (V, error) {
	v, ok := m.Lookup(key)
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return v, nil
}

// Update overwrites the value for key if present. Silent no-op otherwise.
func (m *NumMap[K, V]) Update(key K, value V) {
	t := m.t
	hash := hashInteger(key)
	home := t.home(hash)
	for steps := uint8(0); steps < t.probeLimit; steps++ {
		s := &t.slots[home+uint32(steps)]
		if s.empty() {
			return
		}
		if s.psl < steps {
			return
		}
		if s.hash == hash {
			s.value = value
			return
		}
	}
}

// Remove deletes key via backshift deletion. Silent no-op if absent; never
// triggers a resize.
func (m *NumMap[K, V]) Remove(key K) {
	t := m.t
	hash := hashInteger(key)
	home := t.home(hash)
	for steps := uint8(0); steps < t.probeLimit; steps++ {
		idx := home + uint32(steps)
		s := &t.slots[idx]
		if s.empty() {
			return
		}
		if s.psl < steps {
			return
		}
		if s.hash == hash {
			t.backshiftFrom(idx)
			t.count--
			return
		}
	}
}

// Len returns the number of live entries.
func (m *NumMap[K, V]) Len() int { return m.t.len() }

// Cap returns the length of the backing array, including tail slots.
func (m *NumMap[K, V]) Cap() int { return m.t.cap() }

// LoadFactor returns the table's current fill ratio, count/capacity.
func (m *NumMap[K, V]) LoadFactor() float64 { return m.t.loadFactorNow() }

// MaxProbeLength returns the highest PSL currently carried by any live
// entry.
func (m *NumMap[K, V]) MaxProbeLength() uint8 { return m.t.maxProbeLength() }

// Range calls it for every live entry in unspecified order. It is not safe
// to Insert or Remove while ranging.
func (m *NumMap[K, V]) Range(it Iterator[K, V]) {
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
func (m *NumMap[K, V]) Close() {
	m.t = nil
}
