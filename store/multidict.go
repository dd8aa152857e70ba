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

	"dirpx.dev/relx/apis"
)

// MultiDict is an invertible many-to-many map.
//
// It embeds four structures kept mutually consistent: a forward index
// (key -> values), a backward index (value -> keys), and the set of pairs
// in both orientations. Membership tests hit the pair set; Get hits the
// forward index; Inverse swaps forward with backward.
//
// The one-sided variants (InvertibleDict, InverseDict) are MultiDicts
// whose forward or backward index is single-valued. A zero MultiDict is
// not usable, construct one with NewMultiDict.
type MultiDict[K, V comparable] struct {
	fwd    index[K, V]
	bwd    index[V, K]
	pairs  map[apis.Pair[K, V]]struct{}
	rpairs map[apis.Pair[V, K]]struct{}
}

// Ensure MultiDict implements apis.MutableRelSet.
var _ apis.MutableRelSet[apis.Pair[int, string]] = (*MultiDict[int, string])(nil)

// NewMultiDict creates an empty MultiDict.
func NewMultiDict[K, V comparable]() *MultiDict[K, V] {
	return newMultiDict[K, V](multiIndex[K, V]{}, multiIndex[V, K]{})
}

func newMultiDict[K, V comparable](fwd index[K, V], bwd index[V, K]) *MultiDict[K, V] {
	return &MultiDict[K, V]{
		fwd:    fwd,
		bwd:    bwd,
		pairs:  make(map[apis.Pair[K, V]]struct{}),
		rpairs: make(map[apis.Pair[V, K]]struct{}),
	}
}

// Contains reports whether the pair p is present.
func (m *MultiDict[K, V]) Contains(p apis.Pair[K, V]) bool {
	_, ok := m.pairs[p]
	return ok
}

// Get returns the values of key. The slice is a copy; mutating it does not
// touch the dict.
func (m *MultiDict[K, V]) Get(key K) ([]V, error) {
	vals := m.fwd.values(key)
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return vals, nil
}

// Has reports whether key has at least one value.
func (m *MultiDict[K, V]) Has(key K) bool {
	_, ok := m.fwd.first(key)
	return ok
}

// Set adds the pair (key, value). Adding a present pair is a no-op.
//
// When the backward index is single-valued and value is owned by another
// key, Set fails with ErrValueOwned and changes nothing. When the forward
// index is single-valued, the previous pair of key is replaced.
func (m *MultiDict[K, V]) Set(key K, value V) error {
	p := apis.Pair[K, V]{Key: key, Value: value}
	if _, ok := m.pairs[p]; ok {
		return nil
	}
	if m.bwd.unique() {
		if owner, ok := m.bwd.first(value); ok && owner != key {
			return fmt.Errorf("%w: %v is owned by %v", ErrValueOwned, value, owner)
		}
	}
	if m.fwd.unique() {
		if old, ok := m.fwd.first(key); ok {
			m.Discard(apis.Pair[K, V]{Key: key, Value: old})
		}
	}
	m.fwd.put(key, value)
	m.bwd.put(value, key)
	m.pairs[p] = struct{}{}
	m.rpairs[p.Swap()] = struct{}{}
	return nil
}

// Add is Set(p.Key, p.Value).
func (m *MultiDict[K, V]) Add(p apis.Pair[K, V]) error {
	return m.Set(p.Key, p.Value)
}

// Delete removes every pair whose key is key.
func (m *MultiDict[K, V]) Delete(key K) error {
	vals := m.fwd.values(key)
	if len(vals) == 0 {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	for _, v := range vals {
		m.Discard(apis.Pair[K, V]{Key: key, Value: v})
	}
	return nil
}

// Discard removes the pair p if present. It never fails.
func (m *MultiDict[K, V]) Discard(p apis.Pair[K, V]) {
	if _, ok := m.pairs[p]; !ok {
		return
	}
	m.fwd.drop(p.Key, p.Value)
	m.bwd.drop(p.Value, p.Key)
	delete(m.pairs, p)
	delete(m.rpairs, p.Swap())
}

// Len returns the number of pairs.
func (m *MultiDict[K, V]) Len() int {
	return len(m.pairs)
}

// Keys iterates the distinct keys.
func (m *MultiDict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.fwd.keys() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates the distinct values. It is the inverse's Keys.
func (m *MultiDict[K, V]) Values() iter.Seq[V] {
	return m.Inverse().Keys()
}

// All iterates the pairs.
func (m *MultiDict[K, V]) All() iter.Seq[apis.Pair[K, V]] {
	return func(yield func(apis.Pair[K, V]) bool) {
		for _, p := range m.snapshot() {
			if !yield(p) {
				return
			}
		}
	}
}

// Inverse returns a view of m with keys and values swapped. The view shares
// all four structures with m.
func (m *MultiDict[K, V]) Inverse() *MultiDict[V, K] {
	return &MultiDict[V, K]{
		fwd:    m.bwd,
		bwd:    m.fwd,
		pairs:  m.rpairs,
		rpairs: m.pairs,
	}
}

// Copy returns an independent dict of the same shape holding the same pairs.
func (m *MultiDict[K, V]) Copy() *MultiDict[K, V] {
	out := newMultiDict(m.fwd.empty(), m.bwd.empty())
	for p := range m.pairs {
		// The source already satisfies the shape's constraints.
		_ = out.Set(p.Key, p.Value)
	}
	return out
}

// Clear removes every pair, keeping the structures shared with inverse views.
func (m *MultiDict[K, V]) Clear() {
	m.fwd.reset()
	m.bwd.reset()
	clear(m.pairs)
	clear(m.rpairs)
}

// String renders the dict as "multidict{k: [v ...], ...}" in a stable order.
// One-sided dicts render under their own names.
func (m *MultiDict[K, V]) String() string {
	switch {
	case m.fwd.unique():
		return render("invertibledict", m.snapshot(), false)
	case m.bwd.unique():
		return render("inversedict", m.snapshot(), true)
	default:
		return render("multidict", m.snapshot(), true)
	}
}

func (m *MultiDict[K, V]) snapshot() []apis.Pair[K, V] {
	out := make([]apis.Pair[K, V], 0, len(m.pairs))
	for p := range m.pairs {
		out = append(out, p)
	}
	return out
}
