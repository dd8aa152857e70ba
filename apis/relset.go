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

// Container answers membership questions.
type Container[E any] interface {
	// Contains reports whether e is an element. Malformed input is simply
	// not an element; Contains never fails.
	Contains(e E) bool
}

// RelSet is a relational set: a collection that supports set comparisons
// (subset, superset, equality, disjointness) but not set algebra.
// Implementations supply Contains, All and Len; package relset derives the
// comparisons from these three.
type RelSet[E any] interface {
	Container[E]
	// All iterates the elements. The elements are snapshotted when the
	// iteration starts.
	All() iter.Seq[E]
	// Len returns the number of elements.
	Len() int
}

// MutableRelSet is a RelSet that can grow and shrink. Add and Discard are
// the only required mutators; pop, clear, remove, update and
// difference-update are derived in package relset.
type MutableRelSet[E any] interface {
	RelSet[E]
	// Add inserts e. It may fail when e violates a structural constraint.
	Add(e E) error
	// Discard removes e if present. It never fails.
	Discard(e E)
}
