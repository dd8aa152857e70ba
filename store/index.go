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
	"maps"
	"slices"
)

// index is one direction of a multi-valued dict: key -> values.
// A multi index holds a set of values per key; a single index holds at
// most one value per key, which is what makes a dict one-sided.
type index[K, V comparable] interface {
	// put records (k, v). On a single index it overwrites k's value;
	// callers release the old pair first.
	put(k K, v V)
	// drop removes (k, v) if present and forgets k once it has no values.
	drop(k K, v V)
	// first returns some value of k. On a single index it is the value.
	first(k K) (V, bool)
	// values returns a copy of k's values.
	values(k K) []V
	// keys returns a copy of the keys.
	keys() []K
	// unique reports whether this is a single index.
	unique() bool
	// empty returns a new, empty index of the same shape.
	empty() index[K, V]
	// reset removes every entry in place.
	reset()
}

// multiIndex maps each key to a set of values.
type multiIndex[K, V comparable] map[K]map[V]struct{}

func (m multiIndex[K, V]) put(k K, v V) {
	set, ok := m[k]
	if !ok {
		set = make(map[V]struct{})
		m[k] = set
	}
	set[v] = struct{}{}
}

func (m multiIndex[K, V]) drop(k K, v V) {
	set, ok := m[k]
	if !ok {
		return
	}
	delete(set, v)
	if len(set) == 0 {
		delete(m, k)
	}
}

func (m multiIndex[K, V]) first(k K) (V, bool) {
	for v := range m[k] {
		return v, true
	}
	var zero V
	return zero, false
}

func (m multiIndex[K, V]) values(k K) []V {
	return slices.Collect(maps.Keys(m[k]))
}

func (m multiIndex[K, V]) keys() []K {
	return slices.Collect(maps.Keys(m))
}

func (multiIndex[K, V]) unique() bool { return false }

func (multiIndex[K, V]) empty() index[K, V] { return multiIndex[K, V]{} }

func (m multiIndex[K, V]) reset() { clear(m) }

// singleIndex maps each key to exactly one value.
type singleIndex[K, V comparable] map[K]V

func (m singleIndex[K, V]) put(k K, v V) {
	m[k] = v
}

func (m singleIndex[K, V]) drop(k K, v V) {
	if cur, ok := m[k]; ok && cur == v {
		delete(m, k)
	}
}

func (m singleIndex[K, V]) first(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

func (m singleIndex[K, V]) values(k K) []V {
	if v, ok := m[k]; ok {
		return []V{v}
	}
	return nil
}

func (m singleIndex[K, V]) keys() []K {
	return slices.Collect(maps.Keys(m))
}

func (singleIndex[K, V]) unique() bool { return true }

func (singleIndex[K, V]) empty() index[K, V] { return singleIndex[K, V]{} }

func (m singleIndex[K, V]) reset() { clear(m) }
