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

// OneToOne relates each key to at most one value and each value to at most
// one key. Its inverse is a OneToOne[V, K].
type OneToOne[K, V any] struct {
	*rel[K, V]
	d   *store.BiDict[apis.ID, apis.ID]
	inv *OneToOne[V, K]
}

// Ensure OneToOne implements apis.BiMapping.
var _ apis.BiMapping[any, any] = (*OneToOne[any, any])(nil)

// NewOneToOne creates an empty OneToOne bound to reg.
// It panics if reg is nil or a validator's types do not match.
func NewOneToOne[K, V any](reg apis.Registry, opts ...Option) *OneToOne[K, V] {
	r, err := newOneToOne[K, V](reg, newSettings(opts))
	if err != nil {
		panic(err)
	}
	return r
}

func newOneToOne[K, V any](reg apis.Registry, s settings) (*OneToOne[K, V], error) {
	d := store.NewBiDict[apis.ID, apis.ID]()
	base, err := newRel[K, V](reg, apis.KindOneToOne, s, d, d.Inverse())
	if err != nil {
		return nil, err
	}
	return bindOneToOne(base, d), nil
}

func bindOneToOne[K, V any](base *rel[K, V], d *store.BiDict[apis.ID, apis.ID]) *OneToOne[K, V] {
	inv := d.Inverse()
	base.st = d
	base.values = func(k apis.ID) []apis.ID {
		if v, ok := d.Lookup(k); ok {
			return []apis.ID{v}
		}
		return nil
	}
	base.taken = func(k, v apis.ID) (apis.ID, bool) {
		owner, ok := inv.Lookup(v)
		return owner, ok && owner != k
	}
	return &OneToOne[K, V]{rel: base, d: d}
}

// Get returns the value of key.
func (r *OneToOne[K, V]) Get(key K) (V, error) {
	return r.one(key)
}

// Set assigns value to key, replacing key's previous value. It fails with
// ErrValueTaken, before validation, when value belongs to another key.
func (r *OneToOne[K, V]) Set(key K, value V) error {
	return r.rel.Set(key, value)
}

// Inverse returns the live inverse relation.
func (r *OneToOne[K, V]) Inverse() *OneToOne[V, K] {
	if r.inv == nil {
		r.inv = bindOneToOne(flip(r.rel), r.d.Inverse())
		r.inv.inv = r
	}
	return r.inv
}

// InverseRelation returns Inverse as an apis.Relation.
func (r *OneToOne[K, V]) InverseRelation() apis.Relation[V, K] {
	return r.Inverse()
}
