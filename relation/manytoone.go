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
	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/store"
)

// ManyToOne relates each key to at most one value; a value may have many
// keys. Setting a new value for a key replaces the old one. Its inverse is a
// OneToMany[V, K].
type ManyToOne[K, V any] struct {
	*rel[K, V]
	d   *store.InvertibleDict[apis.ID, apis.ID]
	inv *OneToMany[V, K]
}

var _ apis.BiMapping[any, any] = (*ManyToOne[any, any])(nil)

// NewManyToOne creates an empty ManyToOne bound to reg.
// It panics if reg is nil or a validator's types do not match.
func NewManyToOne[K, V any](reg apis.Registry, opts ...Option) *ManyToOne[K, V] {
	r, err := newManyToOne[K, V](reg, newSettings(opts))
	if err != nil {
		panic(err)
	}
	return r
}

func newManyToOne[K, V any](reg apis.Registry, s settings) (*ManyToOne[K, V], error) {
	d := store.NewInvertibleDict[apis.ID, apis.ID]()
	base, err := newRel[K, V](reg, apis.KindManyToOne, s, d, d.Inverse())
	if err != nil {
		return nil, err
	}
	return bindManyToOne(base, d), nil
}

func bindManyToOne[K, V any](base *rel[K, V], d *store.InvertibleDict[apis.ID, apis.ID]) *ManyToOne[K, V] {
	base.st = d
	base.values = multiValues(d.MultiDict)
	return &ManyToOne[K, V]{rel: base, d: d}
}

// Get returns the value of key.
func (r *ManyToOne[K, V]) Get(key K) (V, error) {
	return r.one(key)
}

// Inverse returns the live inverse relation.
func (r *ManyToOne[K, V]) Inverse() *OneToMany[V, K] {
	if r.inv == nil {
		r.inv = bindOneToMany(flip(r.rel), r.d.Inverse())
		r.inv.inv = r
	}
	return r.inv
}

// InverseRelation returns Inverse as an apis.Relation.
func (r *ManyToOne[K, V]) InverseRelation() apis.Relation[V, K] {
	return r.Inverse()
}

// OneToMany relates each value to at most one key; a key may own many
// values. Its inverse is a ManyToOne[V, K].
type OneToMany[K, V any] struct {
	*rel[K, V]
	d   *store.InverseDict[apis.ID, apis.ID]
	inv *ManyToOne[V, K]
}

var _ apis.MultiMapping[any, any] = (*OneToMany[any, any])(nil)

// NewOneToMany creates an empty OneToMany bound to reg.
// It panics if reg is nil or a validator's types do not match.
func NewOneToMany[K, V any](reg apis.Registry, opts ...Option) *OneToMany[K, V] {
	r, err := newOneToMany[K, V](reg, newSettings(opts))
	if err != nil {
		panic(err)
	}
	return r
}

func newOneToMany[K, V any](reg apis.Registry, s settings) (*OneToMany[K, V], error) {
	d := store.NewInverseDict[apis.ID, apis.ID]()
	base, err := newRel[K, V](reg, apis.KindOneToMany, s, d, d.Inverse())
	if err != nil {
		return nil, err
	}
	return bindOneToMany(base, d), nil
}

func bindOneToMany[K, V any](base *rel[K, V], d *store.InverseDict[apis.ID, apis.ID]) *OneToMany[K, V] {
	base.st = d
	base.values = multiValues(d.MultiDict)
	base.owned = func(k, v apis.ID) (apis.ID, bool) {
		owner, ok := d.Owner(v)
		return owner, ok && owner != k
	}
	return &OneToMany[K, V]{rel: base, d: d}
}

// Get returns the values owned by key.
func (r *OneToMany[K, V]) Get(key K) ([]V, error) {
	return r.GetAll(key)
}

// Set gives value to key. Validation runs first; the write then fails with
// ErrValueOwned when value already belongs to another key.
func (r *OneToMany[K, V]) Set(key K, value V) error {
	return r.rel.Set(key, value)
}

// Owner returns the key that owns value.
func (r *OneToMany[K, V]) Owner(value V) (K, bool) {
	var zero K
	r.fam.sync()
	vid, ok := lookup(r.fam, value)
	if !ok {
		return zero, false
	}
	kid, ok := r.d.Owner(vid)
	if !ok {
		return zero, false
	}
	return entity[K](r.fam, kid)
}

// Inverse returns the live inverse relation.
func (r *OneToMany[K, V]) Inverse() *ManyToOne[V, K] {
	if r.inv == nil {
		r.inv = bindManyToOne(flip(r.rel), r.d.Inverse())
		r.inv.inv = r
	}
	return r.inv
}

// InverseRelation returns Inverse as an apis.Relation.
func (r *OneToMany[K, V]) InverseRelation() apis.Relation[V, K] {
	return r.Inverse()
}

func multiValues(m *store.MultiDict[apis.ID, apis.ID]) func(apis.ID) []apis.ID {
	return func(k apis.ID) []apis.ID {
		vals, _ := m.Get(k)
		return vals
	}
}
