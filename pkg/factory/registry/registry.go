package registry

import (
	"sync"
	"sync/atomic"
)

// Index is an insertion-ordered map where the first value inserted for a key
// is kept. It is safe for concurrent use.
type Index[K comparable, V any] struct {
	mu      sync.RWMutex
	order   []K
	entries map[K]V
	sealed  atomic.Bool
}

// New creates an empty index.
func New[K comparable, V any]() *Index[K, V] {
	return &Index[K, V]{
		entries: make(map[K]V),
	}
}

// Insert adds value under key unless the key is already present or the
// index is sealed. It reports whether the value was stored.
func (x *Index[K, V]) Insert(key K, value V) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.sealed.Load() {
		return false
	}
	if _, exists := x.entries[key]; exists {
		return false
	}
	x.entries[key] = value
	x.order = append(x.order, key)
	return true
}

// Seal prevents further inserts. It returns true if this call sealed the index.
// It waits for in-flight inserts, so no insert succeeds after Seal returns.
func (x *Index[K, V]) Seal() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return !x.sealed.Swap(true)
}

// Sealed reports whether the index accepts inserts.
func (x *Index[K, V]) Sealed() bool { return x.sealed.Load() }

// Get returns the value for a key and whether it exists.
func (x *Index[K, V]) Get(key K) (V, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	v, ok := x.entries[key]
	return v, ok
}

// Has returns true if the key exists in the index.
func (x *Index[K, V]) Has(key K) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	_, ok := x.entries[key]
	return ok
}

// Keys returns all keys in insertion order.
func (x *Index[K, V]) Keys() []K {
	x.mu.RLock()
	defer x.mu.RUnlock()
	keys := make([]K, len(x.order))
	copy(keys, x.order)
	return keys
}

// Values returns all values in insertion order.
func (x *Index[K, V]) Values() []V {
	x.mu.RLock()
	defer x.mu.RUnlock()
	values := make([]V, 0, len(x.order))
	for _, k := range x.order {
		values = append(values, x.entries[k])
	}
	return values
}

// Len returns the number of entries in the index.
func (x *Index[K, V]) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.order)
}

// Range calls fn for each entry in insertion order until fn returns false.
//
// Range iterates over a snapshot, so fn may call Insert without deadlocking.
func (x *Index[K, V]) Range(fn func(K, V) bool) {
	x.mu.RLock()
	keys := make([]K, len(x.order))
	copy(keys, x.order)
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = x.entries[k]
	}
	x.mu.RUnlock()

	for i, k := range keys {
		if !fn(k, values[i]) {
			return
		}
	}
}
