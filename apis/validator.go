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

// Validator is the admission hook consulted before every insertion into a
// relation. Both arguments are entities, never identifiers.
//
// Returning (false, nil) rejects the pair silently: the insertion becomes a
// no-op. Returning a non-nil error aborts the insertion and the error is
// handed back to the caller unchanged.
type Validator[K, V any] interface {
	Validate(key K, value V) (bool, error)
}

// ValidatorFunc adapts a plain predicate to a Validator.
type ValidatorFunc[K, V any] func(key K, value V) bool

// Validate calls f.
func (f ValidatorFunc[K, V]) Validate(key K, value V) (bool, error) {
	return f(key, value), nil
}

// CheckFunc adapts a function that reports rejection as an error.
// A nil error accepts the pair.
type CheckFunc[K, V any] func(key K, value V) error

// Validate calls f.
func (f CheckFunc[K, V]) Validate(key K, value V) (bool, error) {
	if err := f(key, value); err != nil {
		return false, err
	}
	return true, nil
}

// AcceptAll is the default Validator: every pair is admitted.
type AcceptAll[K, V any] struct{}

// Validate always returns true.
func (AcceptAll[K, V]) Validate(K, V) (bool, error) { return true, nil }
