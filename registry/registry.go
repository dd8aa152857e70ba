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

package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/config"
	uref "dirpx.dev/relx/utils/reflect"
)

var (
	// ErrNilEntity is returned when a nil entity is registered.
	ErrNilEntity = errors.New("relx(registry): nil entity provided")
	// ErrNotComparable is returned when an entity cannot be used as a map key.
	ErrNotComparable = errors.New("relx(registry): entity is not comparable")
	// ErrNotRegistered indicates that an entity has no ID in the registry.
	ErrNotRegistered = errors.New("relx(registry): entity not registered")
	// ErrUnknownID indicates that no entity is registered under an ID.
	ErrUnknownID = errors.New("relx(registry): unknown id")
	// ErrDuplicateID is returned by Restore when two entries share an ID
	// or an entity appears twice.
	ErrDuplicateID = errors.New("relx(registry): duplicate registration")
	// ErrInvalidID is returned by Restore for an ID the registry would never
	// issue.
	ErrInvalidID = errors.New("relx(registry): invalid id")
)

// New constructs an empty Registry that issues IDs starting at cfg.FirstID.
func New(cfg apis.Config) apis.Registry {
	cfg = config.Normalize(cfg)
	return &registry{
		cfg:      cfg,
		log:      config.Logger(cfg).With(slog.String("component", "registry")),
		next:     cfg.FirstID,
		byID:     make(map[apis.ID]any),
		byEntity: make(map[any]apis.ID),
		hooks:    make(map[uint64]func(apis.ID)),
	}
}

// Restore constructs a Registry holding entries under their original IDs.
// New registrations continue after the highest restored ID.
func Restore(cfg apis.Config, entries []apis.Entry) (apis.Registry, error) {
	r := New(cfg).(*registry)
	for _, e := range entries {
		if e.ID < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, int64(e.ID))
		}
		if uref.IsNil(e.Entity) {
			return nil, fmt.Errorf("%w: %v", ErrNilEntity, e.ID)
		}
		if !uref.Comparable(e.Entity) {
			return nil, fmt.Errorf("%w: %T", ErrNotComparable, e.Entity)
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateID, e.ID)
		}
		if _, dup := r.byEntity[e.Entity]; dup {
			return nil, fmt.Errorf("%w: %T", ErrDuplicateID, e.Entity)
		}
		r.byID[e.ID] = e.Entity
		r.byEntity[e.Entity] = e.ID
		if e.ID >= r.next {
			r.next = e.ID + 1
		}
	}
	return r, nil
}

// All returns every registered entity of type T, in ID order.
func All[T any](reg apis.Registry) []T {
	var out []T
	for _, e := range reg.Entries() {
		if v, ok := e.Entity.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// registry is a Registry implementation backed by two maps under one mutex.
type registry struct {
	// cfg is the configuration the registry was built with.
	cfg apis.Config
	// log receives debug events.
	log *slog.Logger

	// mu guards every field below.
	mu sync.RWMutex
	// next is the next ID to issue; it only grows.
	next apis.ID
	// byID maps issued IDs to entities.
	byID map[apis.ID]any
	// byEntity maps entities back to their IDs.
	byEntity map[any]apis.ID
	// hooks are the deregistration subscribers, keyed by subscription order.
	hooks   map[uint64]func(apis.ID)
	hookSeq uint64
}

// Register assigns the next ID to e, or returns the ID e already holds.
func (r *registry) Register(e any) (apis.ID, error) {
	if uref.IsNil(e) {
		return apis.NilID, ErrNilEntity
	}
	if !uref.Comparable(e) {
		return apis.NilID, fmt.Errorf("%w: %T", ErrNotComparable, e)
	}

	// Fast read path: already registered.
	r.mu.RLock()
	id, ok := r.byEntity[e]
	r.mu.RUnlock()
	if ok {
		return id, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine registered e meanwhile.
	if id, ok := r.byEntity[e]; ok {
		return id, nil
	}
	id = r.next
	r.next++
	r.byID[id] = e
	r.byEntity[e] = id
	r.log.Debug("registered entity", slog.Any("id", id), slog.String("type", fmt.Sprintf("%T", e)))
	return id, nil
}

// Lookup returns the ID of e if it is registered.
func (r *registry) Lookup(e any) (apis.ID, bool) {
	if uref.IsNil(e) || !uref.Comparable(e) {
		return apis.NilID, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEntity[e]
	return id, ok
}

// Resolve returns the entity registered under id.
func (r *registry) Resolve(id apis.ID) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	return e, ok
}

// Deregister notifies subscribers and then forgets id.
// Subscribers run outside the lock so they may call back into the registry.
func (r *registry) Deregister(id apis.ID) error {
	r.mu.RLock()
	_, ok := r.byID[id]
	hooks := r.hookSnapshot()
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownID, id)
	}

	for _, fn := range hooks {
		fn(id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byID[id]; ok {
		delete(r.byID, id)
		delete(r.byEntity, e)
		r.log.Debug("deregistered entity", slog.Any("id", id))
	}
	return nil
}

// OnDeregister subscribes fn to deregistrations.
func (r *registry) OnDeregister(fn func(apis.ID)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hookSeq++
	seq := r.hookSeq
	r.hooks[seq] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.hooks, seq)
	}
}

// hookSnapshot returns the subscribers in subscription order.
// Callers must hold r.mu.
func (r *registry) hookSnapshot() []func(apis.ID) {
	seqs := slices.Sorted(maps.Keys(r.hooks))
	out := make([]func(apis.ID), 0, len(seqs))
	for _, s := range seqs {
		out = append(out, r.hooks[s])
	}
	return out
}

// Entries returns a snapshot in ID order.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]apis.Entry, 0, len(r.byID))
	for _, id := range slices.Sorted(maps.Keys(r.byID)) {
		entries = append(entries, apis.Entry{ID: id, Entity: r.byID[id]})
	}
	return entries
}

// Count returns the number of registered entities.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Reset deregisters every entity, newest first.
func (r *registry) Reset() {
	entries := r.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		// A concurrent Deregister may have won the race; that is fine.
		_ = r.Deregister(entries[i].ID)
	}
}

// Config returns the configuration the registry was built with.
func (r *registry) Config() apis.Config {
	return r.cfg
}
