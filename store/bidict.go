/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package store

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"dirpx.dev/relx/apis"
)

// BiDict is an invertible one-to-one map.
//
// It links a forward table and a backward table; Inverse swaps them.
// A zero BiDict is not usable, construct one with NewBiDict.
type BiDict[K, V comparable] struct {
	fwd map[K]V
	bwd map[V]K
}

// Ensure BiDict implements apis.MutableRelSet.
var _ apis.MutableRelSet[apis.Pair[int, string]] = (*BiDict[int, string])(nil)

// NewBiDict creates an empty BiDict.
func NewBiDict[K, V comparable]() *BiDict[K, V] {
	return &BiDict[K, V]{
		fwd: make(map[K]V),
		bwd: make(map[V]K),
	}
}

// Get returns the value held by key.
func (d *BiDict[K, V]) Get(key K) (V, error) {
	v, ok := d.fwd[key]
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Lookup returns the value held by key and whether there is one.
func (d *BiDict[K, V]) Lookup(key K) (V, bool) {
	v, ok := d.fwd[key]
	return v, ok
}

// Set assigns value to key. It fails with ErrValueAssigned unless value is
// free or already assigned to key. A previous value of key is released.
func (d *BiDict[K, V]) Set(key K, value V) error {
	if owner, ok := d.bwd[value]; ok {
		if owner == key {
			return nil
		}
		return fmt.Errorf("%w: %v is held by %v", ErrValueAssigned, value, owner)
	}
	if old, ok := d.fwd[key]; ok {
		delete(d.bwd, old)
	}
	d.fwd[key] = value
	d.bwd[value] = key
	return nil
}

// Delete removes key and its value from both tables.
func (d *BiDict[K, V]) Delete(key K) error {
	v, ok := d.fwd[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	delete(d.fwd, key)
	delete(d.bwd, v)
	return nil
}

// Contains reports whether p.Key holds p.Value.
func (d *BiDict[K, V]) Contains(p apis.Pair[K, V]) bool {
	v, ok := d.fwd[p.Key]
	return ok && v == p.Value
}

// Add is Set(p.Key, p.Value).
func (d *BiDict[K, V]) Add(p apis.Pair[K, V]) error {
	return d.Set(p.Key, p.Value)
}

// Discard removes the pair p if present.
func (d *BiDict[K, V]) Discard(p apis.Pair[K, V]) {
	if d.Contains(p) {
		delete(d.fwd, p.Key)
		delete(d.bwd, p.Value)
	}
}

// Len returns the number of pairs.
func (d *BiDict[K, V]) Len() int {
	return len(d.fwd)
}

// Keys iterates the keys.
func (d *BiDict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range slices.Collect(maps.Keys(d.fwd)) {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates the values.
func (d *BiDict[K, V]) Values() iter.Seq[V] {
	return d.Inverse().Keys()
}

// All iterates the pairs.
func (d *BiDict[K, V]) All() iter.Seq[apis.Pair[K, V]] {
	return func(yield func(apis.Pair[K, V]) bool) {
		for _, p := range d.pairs() {
			if !yield(p) {
				return
			}
		}
	}
}

// Inverse returns a view of d with keys and values swapped. The view shares
// both tables with d.
func (d *BiDict[K, V]) Inverse() *BiDict[V, K] {
	return &BiDict[V, K]{fwd: d.bwd, bwd: d.fwd}
}

// Copy returns an independent BiDict holding the same pairs.
func (d *BiDict[K, V]) Copy() *BiDict[K, V] {
	return &BiDict[K, V]{fwd: maps.Clone(d.fwd), bwd: maps.Clone(d.bwd)}
}

// Clear removes every pair, keeping the tables shared with inverse views.
func (d *BiDict[K, V]) Clear() {
	clear(d.fwd)
	clear(d.bwd)
}

// String renders the dict as "bidict{k: v, ...}" in a stable order.
func (d *BiDict[K, V]) String() string {
	return render("bidict", d.pairs(), false)
}

func (d *BiDict[K, V]) pairs() []apis.Pair[K, V] {
	out := make([]apis.Pair[K, V], 0, len(d.fwd))
	for k, v := range d.fwd {
		out = append(out, apis.Pair[K, V]{Key: k, Value: v})
	}
	return out
}
