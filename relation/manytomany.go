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

// ManyToMany relates keys and values without cardinality constraints.
// Its inverse is a ManyToMany[V, K].
type ManyToMany[K, V any] struct {
	*rel[K, V]
	d   *store.MultiDict[apis.ID, apis.ID]
	inv *ManyToMany[V, K]
}

var _ apis.MultiMapping[any, any] = (*ManyToMany[any, any])(nil)

// NewManyToMany creates an empty ManyToMany bound to reg.
// It panics if reg is nil or a validator's types do not match.
func NewManyToMany[K, V any](reg apis.Registry, opts ...Option) *ManyToMany[K, V] {
	r, err := newManyToMany[K, V](reg, newSettings(opts))
	if err != nil {
		panic(err)
	}
	return r
}

func newManyToMany[K, V any](reg apis.Registry, s settings) (*ManyToMany[K, V], error) {
	d := store.NewMultiDict[apis.ID, apis.ID]()
	base, err := newRel[K, V](reg, apis.KindManyToMany, s, d, d.Inverse())
	if err != nil {
		return nil, err
	}
	return bindManyToMany(base, d), nil
}

func bindManyToMany[K, V any](base *rel[K, V], d *store.MultiDict[apis.ID, apis.ID]) *ManyToMany[K, V] {
	base.st = d
	base.values = multiValues(d)
	return &ManyToMany[K, V]{rel: base, d: d}
}

// Get returns the values of key.
func (r *ManyToMany[K, V]) Get(key K) ([]V, error) {
	return r.GetAll(key)
}

// Inverse returns the live inverse relation.
func (r *ManyToMany[K, V]) Inverse() *ManyToMany[V, K] {
	if r.inv == nil {
		r.inv = bindManyToMany(flip(r.rel), r.d.Inverse())
		r.inv.inv = r
	}
	return r.inv
}

// InverseRelation returns Inverse as an apis.Relation.
func (r *ManyToMany[K, V]) InverseRelation() apis.Relation[V, K] {
	return r.Inverse()
}
