// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list (slice) of items,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
package keylist

import "fmt"

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List]. The zero value is usable without
// initialization, so this is just a standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) makeIndexes() {
	kl.indexes = make(map[K]int)
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.makeIndexes()
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	return len(kl.Values)
}

// IndexByKey returns the index of the given key, with a -1 if not found.
func (kl *List[K, V]) IndexByKey(key K) int {
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// ValueByKey returns the value for the given key,
// with a zero value returned for a missing key.
func (kl *List[K, V]) ValueByKey(key K) V {
	idx := kl.IndexByKey(key)
	if idx < 0 {
		var zv V
		return zv
	}
	return kl.Values[idx]
}

// Add adds an item to the list with the given key,
// returning an error and not adding if the key is already on the list.
// See [List.Set] for a version that overwrites an existing keyed item.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Keys = append(kl.Keys, key)
	kl.Values = append(kl.Values, val)
	return nil
}

// Set sets the value for the given key, adding it to the end
// of the list if not already present.
func (kl *List[K, V]) Set(key K, val V) {
	idx := kl.IndexByKey(key)
	if idx >= 0 {
		kl.Values[idx] = val
		return
	}
	kl.Add(key, val)
}

// DeleteByIndex deletes item at the given index,
// returning false if the index is out of range.
func (kl *List[K, V]) DeleteByIndex(idx int) bool {
	if idx < 0 || idx >= len(kl.Values) {
		return false
	}
	kl.Values = append(kl.Values[:idx], kl.Values[idx+1:]...)
	kl.Keys = append(kl.Keys[:idx], kl.Keys[idx+1:]...)
	kl.makeIndexes()
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
	return true
}

// DeleteByKey deletes the item with the given key,
// returning false if the key is not found.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	return kl.DeleteByIndex(kl.IndexByKey(key))
}

// Copy copies all of the entries from the given list
// into this list, preserving order and overwriting any
// existing matching keys.
func (kl *List[K, V]) Copy(fm *List[K, V]) {
	for i, k := range fm.Keys {
		kl.Set(k, fm.Values[i])
	}
}
