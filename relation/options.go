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

package relation

import (
	"fmt"
	"log/slog"
	"reflect"

	"dirpx.dev/relx/apis"
)

// Option configures a relation at construction.
type Option func(*settings)

type settings struct {
	name        string
	inverseName string
	labeler     apis.Labeler
	logger      *slog.Logger
	validator   any
}

// WithName names the relation.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithInverseName names the inverse relation.
func WithInverseName(name string) Option {
	return func(s *settings) { s.inverseName = name }
}

// WithLabeler sets the labeler used by listings.
// The default is resolver.Default().
func WithLabeler(l apis.Labeler) Option {
	return func(s *settings) { s.labeler = l }
}

// WithLogger overrides the registry config's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithValidator sets the admission hook. K and V must match the relation's
// type parameters.
func WithValidator[K, V any](v apis.Validator[K, V]) Option {
	return func(s *settings) { s.validator = v }
}

// Validate sets a boolean admission predicate.
func Validate[K, V any](fn func(key K, value V) bool) Option {
	return WithValidator[K, V](apis.ValidatorFunc[K, V](fn))
}

// Check sets an admission check that rejects by returning an error.
// The error is handed back to the caller of Set.
func Check[K, V any](fn func(key K, value V) error) Option {
	return WithValidator[K, V](apis.CheckFunc[K, V](fn))
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// checker extracts the validator for a relation from K to V.
func checker[K, V any](s settings) (func(K, V) (bool, error), error) {
	switch v := s.validator.(type) {
	case nil:
		return apis.AcceptAll[K, V]{}.Validate, nil
	case apis.Validator[K, V]:
		return v.Validate, nil
	default:
		return nil, fmt.Errorf("%w: %T for (%v, %v)", ErrValidatorType, v, reflect.TypeFor[K](), reflect.TypeFor[V]())
	}
}
