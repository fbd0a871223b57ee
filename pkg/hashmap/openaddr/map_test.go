package openaddr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottcagno/robinhood/pkg/util"
)

func wordList(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("%s-%d", util.RandString(8), i)
	}
	return words
}

func TestMap_InsertLookup(t *testing.T) {
	m := NewStringMap[int]()

	ok := m.Insert("alpha", 1)
	require.True(t, ok)
	ok = m.Insert("beta", 2)
	require.True(t, ok)

	v, found := m.Lookup("alpha")
	require.True(t, found)
	require.Equal(t, 1, v)

	v, found = m.Lookup("beta")
	require.True(t, found)
	require.Equal(t, 2, v)

	_, found = m.Lookup("gamma")
	require.False(t, found)
}

func TestMap_InsertRejectsDuplicate(t *testing.T) {
	m := NewStringMap[int]()

	require.True(t, m.Insert("dup", 1))
	require.False(t, m.Insert("dup", 2))

	v, found := m.Lookup("dup")
	require.True(t, found)
	require.Equal(t, 1, v, "a rejected duplicate insert must not overwrite the existing value")
}

func TestMap_At(t *testing.T) {
	m := NewStringMap[int]()
	m.Insert("k", 42)

	v, err := m.At("k")
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = m.At("missing")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMap_Update(t *testing.T) {
	m := NewStringMap[int]()
	m.Insert("k", 1)

	m.Update("k", 2)
	v, found := m.Lookup("k")
	require.True(t, found)
	require.Equal(t, 2, v)

	// Update on an absent key is a silent no-op, never an insert.
	m.Update("absent", 99)
	_, found = m.Lookup("absent")
	require.False(t, found)
	require.Equal(t, 1, m.Len())
}

func TestMap_RemoveEvens(t *testing.T) {
	m := NewStringMap[int]()
	words := wordList(200)
	for i, w := range words {
		require.True(t, m.Insert(w, i))
	}

	for i, w := range words {
		if i%2 == 0 {
			m.Remove(w)
		}
	}

	for i, w := range words {
		v, found := m.Lookup(w)
		if i%2 == 0 {
			require.False(t, found, "word %q at even index %d should have been removed", w, i)
		} else {
			require.True(t, found)
			require.Equal(t, i, v)
		}
	}
	require.Equal(t, 100, m.Len())
}

func TestMap_RemoveAbsentIsNoop(t *testing.T) {
	m := NewStringMap[int]()
	m.Insert("k", 1)
	m.Remove("nope")
	require.Equal(t, 1, m.Len())
}

func TestMap_ResizeAcrossCapacityBoundary(t *testing.T) {
	m := NewStringMap[int](WithCapacity[string, int](16))
	require.Equal(t, 16, m.Cap()-int(m.t.probeLimit))

	words := wordList(64)
	for i, w := range words {
		require.True(t, m.Insert(w, i))
	}
	require.Equal(t, 64, m.Len())
	require.LessOrEqual(t, m.LoadFactor(), DefaultLoadFactor)

	for i, w := range words {
		v, found := m.Lookup(w)
		require.True(t, found)
		require.Equal(t, i, v)
	}
}

func TestMap_BulkInsertLookup(t *testing.T) {
	m := NewStringMap[int]()
	words := wordList(1000)
	for i, w := range words {
		require.True(t, m.Insert(w, i))
	}
	require.Equal(t, 1000, m.Len())

	for i, w := range words {
		v, found := m.Lookup(w)
		require.True(t, found)
		require.Equal(t, i, v)
	}
}

func TestMap_MaxProbeLengthStaysWithinBudget(t *testing.T) {
	m := NewStringMap[int]()
	words := wordList(500)
	for i, w := range words {
		m.Insert(w, i)
	}
	require.LessOrEqual(t, m.MaxProbeLength(), m.t.probeLimit)
}

func TestMap_Range(t *testing.T) {
	m := NewStringMap[int]()
	words := wordList(50)
	for i, w := range words {
		m.Insert(w, i)
	}

	seen := make(map[string]int)
	m.Range(func(key string, value int) bool {
		seen[key] = value
		return true
	})
	require.Len(t, seen, 50)
	for i, w := range words {
		require.Equal(t, i, seen[w])
	}
}

func TestMap_RangeEarlyStop(t *testing.T) {
	m := NewStringMap[int]()
	for i, w := range wordList(20) {
		m.Insert(w, i)
	}

	var count int
	m.Range(func(key string, value int) bool {
		count++
		return count < 5
	})
	require.Equal(t, 5, count)
}

func TestMap_PathologicalClustering(t *testing.T) {
	n := util.RandIntn(9000, 10000)
	words := wordList(n)
	// Every hash is a distinct multiple of 1<<16, so the low 16 bits carry
	// no information. The hashes are kept distinct because at most
	// probeLimit keys with one identical hash fit in any table.
	index := make(map[string]uint32, n)
	for i, w := range words {
		index[w] = uint32(i)
	}
	m := NewStringMap[int](WithHash[string, int](func(w string) uint32 { return index[w] << 16 }))

	for i, w := range words {
		require.True(t, m.Insert(w, i), "insert %d (%q) under a clustered hash", i, w)
	}
	require.Equal(t, n, m.Len())

	for i, w := range words {
		v, found := m.Lookup(w)
		require.True(t, found)
		require.Equal(t, i, v)
	}
}

func TestMap_CustomEqual(t *testing.T) {
	type id struct{ n int }
	m := New[id, string](
		func(k id) uint32 { return uint32(k.n) },
		WithEqual[id, string](func(a, b id) bool { return a.n == b.n }),
	)

	require.True(t, m.Insert(id{1}, "one"))
	v, found := m.Lookup(id{1})
	require.True(t, found)
	require.Equal(t, "one", v)
}

func TestMap_Close(t *testing.T) {
	m := NewStringMap[int]()
	m.Insert("k", 1)
	m.Close()
	require.Nil(t, m.t)
}
