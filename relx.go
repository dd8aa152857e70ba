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

package relx

import (
	"errors"
	"fmt"

	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/builder"
	"dirpx.dev/relx/config"
	"dirpx.dev/relx/registry"
	"dirpx.dev/relx/relation"
)

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("relx: builder returned nil registry")
	// ErrNilLabeler is returned when a builder returns a nil labeler.
	ErrNilLabeler = errors.New("relx: builder returned nil labeler")
)

// Space bundles a registry with the labeler shared by every relation
// created through it.
type Space struct {
	cfg apis.Config
	reg apis.Registry
	lab apis.Labeler
	bld apis.Builder
}

// New creates a Space with the default builder.
func New(opts ...config.Option) *Space {
	s, err := NewWithBuilder(builder.New(), opts...)
	if err != nil {
		// The default builder never fails without a previous registry.
		panic(err)
	}
	return s
}

// NewWithBuilder creates a Space whose registry and labeler come from b.
func NewWithBuilder(b apis.Builder, opts ...config.Option) (*Space, error) {
	cfg := config.NewConfig(opts...)
	reg, err := b.BuildRegistry(cfg, nil)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	lab := b.BuildLabeler(cfg)
	if lab == nil {
		return nil, ErrNilLabeler
	}
	return &Space{cfg: cfg, reg: reg, lab: lab, bld: b}, nil
}

// Config returns the Space configuration.
func (s *Space) Config() apis.Config { return s.cfg }

// Registry returns the Space registry.
func (s *Space) Registry() apis.Registry { return s.reg }

// Labeler returns the Space labeler.
func (s *Space) Labeler() apis.Labeler { return s.lab }

// Builder returns the builder the Space was created with.
func (s *Space) Builder() apis.Builder { return s.bld }

// Label returns the label of a registered entity.
func (s *Space) Label(e any) (string, bool) {
	id, ok := s.reg.Lookup(e)
	if !ok {
		return "", false
	}
	return s.lab.Label(e, id, s.cfg), true
}

// Fork returns a new Space configured by opts that starts with every
// registration of s under the same IDs. Relations are not carried over.
func (s *Space) Fork(opts ...config.Option) (*Space, error) {
	cfg := s.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = config.Normalize(cfg)
	reg, err := s.bld.BuildRegistry(cfg, s.reg)
	if err != nil {
		return nil, fmt.Errorf("relx: fork registry: %w", err)
	}
	return &Space{cfg: cfg, reg: reg, lab: s.bld.BuildLabeler(cfg), bld: s.bld}, nil
}

// Make registers e in s and returns it, so entities can be created and
// registered in one expression.
func Make[T any](s *Space, e T) (T, error) {
	if _, err := s.reg.Register(e); err != nil {
		var zero T
		return zero, err
	}
	return e, nil
}

// MustMake is Make that panics on error.
func MustMake[T any](s *Space, e T) T {
	e, err := Make(s, e)
	if err != nil {
		panic(err)
	}
	return e
}

// All returns every entity of type T registered in s, in ID order.
func All[T any](s *Space) []T {
	return registry.All[T](s.reg)
}

// options puts the Space labeler ahead of the caller's options.
func (s *Space) options(opts []relation.Option) []relation.Option {
	return append([]relation.Option{relation.WithLabeler(s.lab)}, opts...)
}

// OneToOne creates a one-to-one relation in s.
func OneToOne[K, V any](s *Space, opts ...relation.Option) *relation.OneToOne[K, V] {
	return relation.NewOneToOne[K, V](s.reg, s.options(opts)...)
}

// ManyToOne creates a many-to-one relation in s.
func ManyToOne[K, V any](s *Space, opts ...relation.Option) *relation.ManyToOne[K, V] {
	return relation.NewManyToOne[K, V](s.reg, s.options(opts)...)
}

// OneToMany creates a one-to-many relation in s.
func OneToMany[K, V any](s *Space, opts ...relation.Option) *relation.OneToMany[K, V] {
	return relation.NewOneToMany[K, V](s.reg, s.options(opts)...)
}

// ManyToMany creates a many-to-many relation in s.
func ManyToMany[K, V any](s *Space, opts ...relation.Option) *relation.ManyToMany[K, V] {
	return relation.NewManyToMany[K, V](s.reg, s.options(opts)...)
}

// Relation creates a relation of the given kind in s.
func Relation[K, V any](s *Space, kind apis.Kind, opts ...relation.Option) (apis.Relation[K, V], error) {
	return builder.Relation[K, V](s.reg, kind, s.options(opts)...)
}
