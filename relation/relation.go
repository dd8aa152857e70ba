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
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/codec"
	"dirpx.dev/relx/config"
	"dirpx.dev/relx/registry"
	"dirpx.dev/relx/resolver"
	uref "dirpx.dev/relx/utils/reflect"
)

// idStore is the ID-level storage behind a relation, oriented key -> value.
type idStore interface {
	apis.MutableRelSet[apis.Pair[apis.ID, apis.ID]]
	Set(key, value apis.ID) error
	Delete(key apis.ID) error
	Keys() iter.Seq[apis.ID]
	Values() iter.Seq[apis.ID]
}

// family is the state a relation shares with its inverse.
type family struct {
	reg     apis.Registry
	cfg     apis.Config
	log     *slog.Logger
	labeler apis.Labeler
	cancel  func()

	fwd, bwd idStore
	closed   bool

	// pending holds deregistered IDs not yet purged from storage. The
	// registry hook only appends; storage is changed by sync.
	mu      sync.Mutex
	pending []apis.ID
}

// newFamily binds fwd and its inverse view bwd to reg. Pairs mentioning a
// deregistered entity are purged from both orientations on the next access
// to either of them.
func newFamily(reg apis.Registry, s settings, fwd, bwd idStore) *family {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	cfg := reg.Config()
	log := s.logger
	if log == nil {
		log = config.Logger(cfg)
	}
	if s.name != "" {
		log = log.With(slog.String("relation", s.name))
	}
	labeler := s.labeler
	if labeler == nil {
		labeler = resolver.Default()
	}

	f := &family{reg: reg, cfg: cfg, log: log, labeler: labeler, fwd: fwd, bwd: bwd}
	f.cancel = reg.OnDeregister(func(id apis.ID) {
		f.mu.Lock()
		f.pending = append(f.pending, id)
		f.mu.Unlock()
	})
	return f
}

// sync purges the pairs of entities deregistered since the last access.
// After close the registry no longer reports deregistrations, so every
// stored ID is checked against it instead.
func (f *family) sync() {
	f.mu.Lock()
	ids := f.pending
	f.pending = nil
	f.mu.Unlock()

	for _, id := range ids {
		f.purge(id)
	}
	if f.closed {
		f.sweep()
	}
}

// sweep purges every stored ID that no longer resolves.
func (f *family) sweep() {
	ids := slices.Concat(slices.Collect(f.fwd.Keys()), slices.Collect(f.fwd.Values()))
	for _, id := range ids {
		if id.IsNil() {
			continue
		}
		if _, ok := f.reg.Resolve(id); !ok {
			f.purge(id)
		}
	}
}

func (f *family) purge(id apis.ID) {
	before := f.fwd.Len()
	_ = f.fwd.Delete(id)
	_ = f.bwd.Delete(id)
	if n := before - f.fwd.Len(); n > 0 {
		f.log.Debug("purged pairs", slog.Any("id", id), slog.Int("count", n))
	}
}

// close unsubscribes the family from the registry.
func (f *family) close() {
	f.cancel()
	f.closed = true
}

// label renders id with the family's labeler.
func (f *family) label(id apis.ID) string {
	if id.IsNil() {
		return f.labeler.Label(nil, id, f.cfg)
	}
	e, _ := f.reg.Resolve(id)
	return f.labeler.Label(e, id, f.cfg)
}

// labelOf renders e, which may not be registered yet.
func (f *family) labelOf(e any, id apis.ID) string {
	if id == unregistered {
		return fmt.Sprint(e)
	}
	return f.label(id)
}

// lookup translates e to its ID for reads. A nil e maps to apis.NilID when
// nil is allowed.
func lookup[T any](f *family, e T) (apis.ID, bool) {
	if uref.IsNil(any(e)) {
		return apis.NilID, f.cfg.AllowNil
	}
	return f.reg.Lookup(e)
}

// unregistered stands for the ID of an entity that Set will register once
// the write is accepted. The registry never issues it.
const unregistered apis.ID = -1

// identify translates e to its ID for writes. It returns unregistered for
// an unknown entity when Config.AutoRegister is set.
func identify[T any](f *family, e T) (apis.ID, error) {
	if uref.IsNil(any(e)) {
		if f.cfg.AllowNil {
			return apis.NilID, nil
		}
		return apis.NilID, ErrNilNotAllowed
	}
	if id, ok := f.reg.Lookup(e); ok {
		return id, nil
	}
	if f.cfg.AutoRegister {
		return unregistered, nil
	}
	return apis.NilID, fmt.Errorf("%w: %T", registry.ErrNotRegistered, e)
}

// commit registers e when identify deferred it.
func commit[T any](f *family, e T, id apis.ID) (apis.ID, error) {
	if id != unregistered {
		return id, nil
	}
	return f.reg.Register(e)
}

// entity translates id back to an entity of type T. apis.NilID yields the
// zero T.
func entity[T any](f *family, id apis.ID) (T, bool) {
	var zero T
	if id.IsNil() {
		return zero, true
	}
	e, ok := f.reg.Resolve(id)
	if !ok {
		return zero, false
	}
	t, ok := e.(T)
	return t, ok
}

func entities[T any](f *family, ids []apis.ID) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if e, ok := entity[T](f, id); ok {
			out = append(out, e)
		}
	}
	return out
}

// rel implements the behavior every cardinality shares. The wrappers bind
// it to a concrete store and add their typed Get and Inverse.
type rel[K, V any] struct {
	fam         *family
	kind        apis.Kind
	name        string
	inverseName string
	check       func(K, V) (bool, error)

	st idStore
	// values returns the value IDs of a key ID.
	values func(apis.ID) []apis.ID
	// taken reports the owner of value when it is held by a key other than
	// key and must be refused before validation. Nil disables the check.
	taken func(key, value apis.ID) (apis.ID, bool)
	// owned is taken checked after validation. Nil disables the check.
	owned func(key, value apis.ID) (apis.ID, bool)
}

// newRel builds the shared part of a relation from K to V.
func newRel[K, V any](reg apis.Registry, kind apis.Kind, s settings, fwd, bwd idStore) (*rel[K, V], error) {
	check, err := checker[K, V](s)
	if err != nil {
		return nil, err
	}
	return &rel[K, V]{
		fam:         newFamily(reg, s, fwd, bwd),
		kind:        kind,
		name:        s.name,
		inverseName: s.inverseName,
		check:       check,
	}, nil
}

// flip returns the unbound inverse of r. It validates through r's check
// with the arguments swapped back.
func flip[K, V any](r *rel[K, V]) *rel[V, K] {
	check := r.check
	return &rel[V, K]{
		fam:         r.fam,
		kind:        r.kind.Inverse(),
		name:        r.inverseName,
		inverseName: r.name,
		check:       func(v V, k K) (bool, error) { return check(k, v) },
	}
}

// Kind returns the cardinality of the relation.
func (r *rel[K, V]) Kind() apis.Kind { return r.kind }

// Name returns the relation's name.
func (r *rel[K, V]) Name() string { return r.name }

// Registry returns the registry the relation translates entities with.
func (r *rel[K, V]) Registry() apis.Registry { return r.fam.reg }

// Len returns the number of pairs.
func (r *rel[K, V]) Len() int {
	r.fam.sync()
	return r.st.Len()
}

// Set relates key to value.
//
// Structural violations fail and change nothing. A validator rejection is a
// silent no-op; a validator error is returned unchanged. With
// Config.AutoRegister, unknown entities are registered only when the pair
// is about to be stored.
func (r *rel[K, V]) Set(key K, value V) error {
	r.fam.sync()
	kid, err := identify(r.fam, key)
	if err != nil {
		return err
	}
	vid, err := identify(r.fam, value)
	if err != nil {
		return err
	}

	if r.taken != nil && vid != unregistered {
		if owner, ok := r.taken(kid, vid); ok {
			return fmt.Errorf("%w: %s is held by %s", ErrValueTaken, r.fam.label(vid), r.fam.label(owner))
		}
	}

	ok, err := r.check(key, value)
	if err != nil {
		return err
	}
	if !ok {
		if r.fam.log.Enabled(context.Background(), slog.LevelDebug) {
			r.fam.log.Debug("validation rejected",
				slog.String("kind", r.kind.String()),
				slog.String("key", r.fam.labelOf(key, kid)),
				slog.String("value", r.fam.labelOf(value, vid)))
		}
		return nil
	}

	if r.owned != nil && vid != unregistered {
		if owner, ok := r.owned(kid, vid); ok {
			return fmt.Errorf("%w: %s is owned by %s", ErrValueOwned, r.fam.label(vid), r.fam.label(owner))
		}
	}

	if kid, err = commit(r.fam, key, kid); err != nil {
		return err
	}
	if vid, err = commit(r.fam, value, vid); err != nil {
		return err
	}

	if err := r.st.Set(kid, vid); err != nil {
		r.fam.log.Debug("constraint violated", slog.String("kind", r.kind.String()), slog.Any("error", err))
		return err
	}
	return nil
}

// Add is Set(p.Key, p.Value).
func (r *rel[K, V]) Add(p apis.Pair[K, V]) error {
	return r.Set(p.Key, p.Value)
}

// Delete removes every pair whose key is key.
func (r *rel[K, V]) Delete(key K) error {
	r.fam.sync()
	kid, ok := lookup(r.fam, key)
	if !ok {
		return fmt.Errorf("%w: %T", ErrKeyNotFound, key)
	}
	return r.st.Delete(kid)
}

// Contains reports whether p is a pair of the relation. Unregistered
// entities are never present.
func (r *rel[K, V]) Contains(p apis.Pair[K, V]) bool {
	r.fam.sync()
	ids, ok := r.ids(p)
	return ok && r.st.Contains(ids)
}

// Discard removes p if present.
func (r *rel[K, V]) Discard(p apis.Pair[K, V]) {
	r.fam.sync()
	if ids, ok := r.ids(p); ok {
		r.st.Discard(ids)
	}
}

func (r *rel[K, V]) ids(p apis.Pair[K, V]) (apis.Pair[apis.ID, apis.ID], bool) {
	kid, ok := lookup(r.fam, p.Key)
	if !ok {
		return apis.Pair[apis.ID, apis.ID]{}, false
	}
	vid, ok := lookup(r.fam, p.Value)
	if !ok {
		return apis.Pair[apis.ID, apis.ID]{}, false
	}
	return apis.PairOf(kid, vid), true
}

// GetAll returns the values related to key in ID order.
func (r *rel[K, V]) GetAll(key K) ([]V, error) {
	r.fam.sync()
	kid, ok := lookup(r.fam, key)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrKeyNotFound, key)
	}
	ids := r.values(kid)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, r.fam.label(kid))
	}
	slices.Sort(ids)
	vals := entities[V](r.fam, ids)
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, r.fam.label(kid))
	}
	return vals, nil
}

// one returns the single value of key.
func (r *rel[K, V]) one(key K) (V, error) {
	vals, err := r.GetAll(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return vals[0], nil
}

// Keys iterates the distinct keys in ID order.
func (r *rel[K, V]) Keys() iter.Seq[K] {
	return seq[K](r.fam, r.st.Keys())
}

// Values iterates the distinct values in ID order.
func (r *rel[K, V]) Values() iter.Seq[V] {
	return seq[V](r.fam, r.st.Values())
}

func seq[T any](f *family, ids iter.Seq[apis.ID]) iter.Seq[T] {
	return func(yield func(T) bool) {
		f.sync()
		for _, id := range slices.Sorted(ids) {
			e, ok := entity[T](f, id)
			if ok && !yield(e) {
				return
			}
		}
	}
}

// All iterates the pairs ordered by key ID, then value ID.
func (r *rel[K, V]) All() iter.Seq[apis.Pair[K, V]] {
	return func(yield func(apis.Pair[K, V]) bool) {
		r.fam.sync()
		for _, p := range slices.SortedFunc(r.st.All(), apis.ComparePairs) {
			k, ok := entity[K](r.fam, p.Key)
			if !ok {
				continue
			}
			v, ok := entity[V](r.fam, p.Value)
			if !ok {
				continue
			}
			if !yield(apis.PairOf(k, v)) {
				return
			}
		}
	}
}

// Listing returns one entry per key, in key-ID order.
func (r *rel[K, V]) Listing() apis.Listing {
	r.fam.sync()
	l := apis.Listing{Kind: r.kind, Name: r.name}
	last := apis.ID(-1)
	for _, p := range slices.SortedFunc(r.st.All(), apis.ComparePairs) {
		if p.Key != last {
			l.Entries = append(l.Entries, apis.ListingEntry{Key: r.fam.label(p.Key)})
			last = p.Key
		}
		e := &l.Entries[len(l.Entries)-1]
		e.Values = append(e.Values, r.fam.label(p.Value))
	}
	return l
}

// String renders the listing in text form.
func (r *rel[K, V]) String() string {
	return codec.FormatText(r.Listing())
}

// Close unsubscribes the relation and its inverse from the registry. The
// relation stays usable; pairs of entities deregistered afterwards are
// dropped on the next access by checking every stored ID against the
// registry. Close is idempotent.
func (r *rel[K, V]) Close() {
	r.fam.close()
}
