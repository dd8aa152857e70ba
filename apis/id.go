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

package apis

import "strconv"

// ID is the stable identity a Registry issues to an entity.
// IDs are strictly increasing and never reused within one Registry.
type ID int64

// NilID is the null identifier. It stands for "no entity" and is never
// issued by a Registry.
const NilID ID = 0

// IsNil reports whether id is the null identifier.
func (id ID) IsNil() bool { return id == NilID }

// String renders the id as "#<n>", or "#nil" for NilID.
func (id ID) String() string {
	if id == NilID {
		return "#nil"
	}
	return "#" + strconv.FormatInt(int64(id), 10)
}

// Pair is a single (key, value) association: the element type of every
// relation seen as a set.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// PairOf builds a Pair.
func PairOf[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Swap returns the pair with key and value exchanged.
func (p Pair[K, V]) Swap() Pair[V, K] {
	return Pair[V, K]{Key: p.Value, Value: p.Key}
}

// ComparePairs orders id pairs by key, then by value.
func ComparePairs(a, b Pair[ID, ID]) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	}
	return 0
}
