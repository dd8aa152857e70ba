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

import "iter"

// Relation is the behavior shared by every typed relation, whatever its
// cardinality. A relation is a mutable set of (key, value) pairs over
// registered entities with a live inverse view.
type Relation[K, V any] interface {
	MutableRelSet[Pair[K, V]]

	// Kind returns the cardinality of the relation.
	Kind() Kind
	// Name returns the relation's name (may be empty).
	Name() string

	// Set relates key to value. Structural violations fail; a validator
	// rejection is a silent no-op.
	Set(key K, value V) error
	// Delete removes every pair whose key is key.
	Delete(key K) error
	// GetAll returns the values related to key, whatever the cardinality.
	GetAll(key K) ([]V, error)

	// Keys iterates the distinct keys.
	Keys() iter.Seq[K]
	// Values iterates the distinct values.
	Values() iter.Seq[V]

	// InverseRelation returns the inverse as a Relation. The inverse shares
	// storage with the receiver.
	InverseRelation() Relation[V, K]

	// Listing returns a structured snapshot of the relation for inspection.
	Listing() Listing
	// String renders the relation's listing for debugging.
	String() string
}

// BiMapping is a Relation in which each key holds at most one value, read
// back with Get.
type BiMapping[K, V any] interface {
	Relation[K, V]
	// Get returns the single value related to key.
	Get(key K) (V, error)
}

// MultiMapping is a Relation in which a key may hold several values.
// Its Set validates first and only then writes.
type MultiMapping[K, V any] interface {
	Relation[K, V]
	// Get returns the values related to key.
	Get(key K) ([]V, error)
}

// Listing is a structured, human-readable snapshot of a relation.
type Listing struct {
	// Kind is the relation's cardinality.
	Kind Kind
	// Name is the relation's name.
	Name string
	// Entries holds one entry per key, in key-id order.
	Entries []ListingEntry
}

// ListingEntry is one key and the labels of its values.
type ListingEntry struct {
	// Key is the key's label.
	Key string
	// Values are the value labels, in value-id order.
	Values []string
}
