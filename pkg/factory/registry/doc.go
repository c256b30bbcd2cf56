// Package registry provides an ordered, first-wins index of values by key.
//
// Index is the lookup table behind a factory: it is filled once, in
// discovery order, and then sealed. Reads after sealing never observe a
// mutation, so an Index can be shared by many goroutines.
//
// # Basic Usage
//
//	idx := registry.New[string, int]()
//	idx.Insert("one", 1)
//	idx.Insert("two", 2)
//	idx.Insert("one", 100) // false: "one" is already present
//	idx.Seal()
//
//	v, ok := idx.Get("one") // 1, true
//	idx.Keys()              // ["one", "two"]
//
// # Ordering
//
// Keys, Values and Range all follow insertion order. The order records which
// value was seen first for a key; callers should not treat it as a ranking.
//
// # Sealing
//
// Seal freezes the index. Insert on a sealed index returns false and leaves
// the contents untouched. Seal is idempotent.
package registry
