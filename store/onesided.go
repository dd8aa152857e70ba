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

import "fmt"

// InvertibleDict is a many-to-one dict: each key holds at most one value,
// while many keys may share a value. Setting a new value for a key
// silently replaces the old pair. Its inverse is an InverseDict.
type InvertibleDict[K, V comparable] struct {
	*MultiDict[K, V]
}

// NewInvertibleDict creates an empty InvertibleDict.
func NewInvertibleDict[K, V comparable]() *InvertibleDict[K, V] {
	return &InvertibleDict[K, V]{newMultiDict[K, V](singleIndex[K, V]{}, multiIndex[V, K]{})}
}

// Get returns the value held by key.
func (d *InvertibleDict[K, V]) Get(key K) (V, error) {
	v, ok := d.fwd.first(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Lookup returns the value held by key and whether there is one.
func (d *InvertibleDict[K, V]) Lookup(key K) (V, bool) {
	return d.fwd.first(key)
}

// Inverse returns the one-to-many view of d. It shares storage with d.
func (d *InvertibleDict[K, V]) Inverse() *InverseDict[V, K] {
	return &InverseDict[V, K]{d.MultiDict.Inverse()}
}

// Copy returns an independent InvertibleDict holding the same pairs.
func (d *InvertibleDict[K, V]) Copy() *InvertibleDict[K, V] {
	return &InvertibleDict[K, V]{d.MultiDict.Copy()}
}

// InverseDict is a one-to-many dict: each value is owned by at most one
// key, while a key may own many values. Setting a value owned by another
// key fails with ErrValueOwned. Its inverse is an InvertibleDict.
type InverseDict[K, V comparable] struct {
	*MultiDict[K, V]
}

// NewInverseDict creates an empty InverseDict.
func NewInverseDict[K, V comparable]() *InverseDict[K, V] {
	return &InverseDict[K, V]{newMultiDict[K, V](multiIndex[K, V]{}, singleIndex[V, K]{})}
}

// Owner returns the key owning value.
func (d *InverseDict[K, V]) Owner(value V) (K, bool) {
	return d.bwd.first(value)
}

// Inverse returns the many-to-one view of d. It shares storage with d.
func (d *InverseDict[K, V]) Inverse() *InvertibleDict[V, K] {
	return &InvertibleDict[V, K]{d.MultiDict.Inverse()}
}

// Copy returns an independent InverseDict holding the same pairs.
func (d *InverseDict[K, V]) Copy() *InverseDict[K, V] {
	return &InverseDict[K, V]{d.MultiDict.Copy()}
}
