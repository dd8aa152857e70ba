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

// Package relset derives set comparisons and bulk mutations for any
// apis.RelSet / apis.MutableRelSet from their primitive operations.
//
// Comparisons are defined purely by membership, iteration and size:
// a is a subset of b iff every element of a is in b, equality is mutual
// subset, and disjointness is an empty intersection. Mutations are built
// from Add and Discard only.
package relset

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/relx/apis"
)

var (
	// ErrNotFound is returned by Remove when the element is absent.
	ErrNotFound = errors.New("relx(relset): element not found")
	// ErrEmpty is returned by Pop on an empty set.
	ErrEmpty = errors.New("relx(relset): set is empty")
)

// IsSubset reports whether every element of a is in b.
func IsSubset[E any](a apis.RelSet[E], b apis.Container[E]) bool {
	for e := range a.All() {
		if !b.Contains(e) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every element of b is in a.
func IsSuperset[E any](a apis.Container[E], b apis.RelSet[E]) bool {
	return IsSubset(b, a)
}

// Equal reports whether a and b hold the same elements.
func Equal[E any](a, b apis.RelSet[E]) bool {
	return IsSubset(a, b) && IsSubset(b, a)
}

// NotEqual is the negation of Equal.
func NotEqual[E any](a, b apis.RelSet[E]) bool {
	return !Equal(a, b)
}

// IsProperSubset reports whether a is a subset of b and not equal to it.
func IsProperSubset[E any](a, b apis.RelSet[E]) bool {
	return IsSubset(a, b) && !IsSubset(b, a)
}

// IsProperSuperset reports whether b is a proper subset of a.
func IsProperSuperset[E any](a, b apis.RelSet[E]) bool {
	return IsProperSubset(b, a)
}

// IsDisjoint reports whether a and b have no element in common.
func IsDisjoint[E any](a apis.RelSet[E], b apis.Container[E]) bool {
	for e := range a.All() {
		if b.Contains(e) {
			return false
		}
	}
	return true
}

// Pop removes some element from s and returns it.
func Pop[E any](s apis.MutableRelSet[E]) (E, error) {
	for e := range s.All() {
		s.Discard(e)
		return e, nil
	}
	var zero E
	return zero, ErrEmpty
}

// Clear removes every element from s.
func Clear[E any](s apis.MutableRelSet[E]) {
	for _, e := range slices.Collect(s.All()) {
		s.Discard(e)
	}
}

// Remove discards e from s, failing with ErrNotFound if it is absent.
func Remove[E any](s apis.MutableRelSet[E], e E) error {
	if !s.Contains(e) {
		return fmt.Errorf("%w: %v", ErrNotFound, e)
	}
	s.Discard(e)
	return nil
}

// Update adds every element of every source to s. It stops at the first
// Add error and returns it; elements added before the error stay added.
func Update[E any](s apis.MutableRelSet[E], sources ...apis.RelSet[E]) error {
	for _, src := range sources {
		// Snapshot first: src may be s itself.
		for _, e := range slices.Collect(src.All()) {
			if err := s.Add(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// DifferenceUpdate discards every element of every source from s.
func DifferenceUpdate[E any](s apis.MutableRelSet[E], sources ...apis.RelSet[E]) {
	for _, src := range sources {
		for _, e := range slices.Collect(src.All()) {
			s.Discard(e)
		}
	}
}
