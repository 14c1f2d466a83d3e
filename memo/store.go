package memo

import (
	"sync"
	"sync/atomic"
)

// Store is the cache backing a memoized function. Implementations must
// allow concurrent readers without exclusive locking; writers for the same
// key are already serialized by the memoizer's single-flight discipline.
//
// Each memoized instance owns its Store exclusively; stores are never
// shared between wrapped functions.
type Store interface {
	// Load returns the value cached under keys, if any.
	Load(keys []ComparableOrString) (value any, ok bool)
	// Store caches value under keys, overwriting any previous entry.
	Store(keys []ComparableOrString, value any)
}

// trieStore keys entries by the full argument list, one trie level of
// sync.Map per argument. With maxSize == 0 it grows without bound, which is
// the documented trade-off of the default memoization cache. With
// maxSize > 0 it keeps two generations and rotates: once the live
// generation reaches maxSize entries it becomes the fallback and a fresh
// generation takes writes, so recent entries survive one rotation and stale
// ones age out wholesale.
type trieStore struct {
	generations [2]atomic.Pointer[sync.Map]
	head        atomic.Uint32
	size        atomic.Uint32
	maxSize     uint32
}

// NewTrieStore returns the default trie-backed [Store]. maxSize == 0 means
// unbounded; a positive maxSize enables generation rotation as a coarse
// eviction policy.
func NewTrieStore(maxSize uint32) Store {
	t := &trieStore{maxSize: maxSize}
	t.generations[0].Store(&sync.Map{})
	t.generations[1].Store(&sync.Map{})
	return t
}

func (t *trieStore) Load(keys []ComparableOrString) (any, bool) {
	if len(keys) == 0 {
		panic("load: empty keys")
	}
	head := t.head.Load()
	if v, ok := walk(t.generations[head].Load(), keys); ok {
		return v, true
	}
	if t.maxSize == 0 {
		return nil, false
	}
	return walk(t.generations[1-head].Load(), keys)
}

func (t *trieStore) Store(keys []ComparableOrString, value any) {
	if len(keys) == 0 {
		panic("store: empty keys")
	}
	if t.maxSize > 0 && t.size.CompareAndSwap(t.maxSize, 0) {
		head := t.head.Load()
		t.generations[1-head].Store(&sync.Map{})
		t.head.Store(1 - head)
	}
	m := t.generations[t.head.Load()].Load()
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			v, _ = m.LoadOrStore(k, &sync.Map{})
		}
		m = v.(*sync.Map)
	}
	m.Store(keys[len(keys)-1], value)
	t.size.Add(1)
}

// walk descends the trie without materializing intermediate levels, so
// lookups of absent keys leave the trie untouched.
func walk(m *sync.Map, keys []ComparableOrString) (any, bool) {
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m, ok = v.(*sync.Map)
		if !ok {
			return nil, false
		}
	}
	return m.Load(keys[len(keys)-1])
}
