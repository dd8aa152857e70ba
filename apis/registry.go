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

// Registry issues stable identifiers to entities and resolves them back.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Register assigns an ID to e, or returns the ID it already has.
	// e must be non-nil and comparable (pointers are the usual choice).
	Register(e any) (ID, error)
	// Lookup returns the ID of a registered entity.
	Lookup(e any) (id ID, ok bool)
	// Resolve returns the entity registered under id.
	Resolve(id ID) (e any, ok bool)

	// Deregister removes the entity registered under id. Subscribers added
	// with OnDeregister are notified first, while id still resolves, on the
	// calling goroutine and outside the registry lock. The id is never
	// issued again.
	Deregister(id ID) error
	// OnDeregister subscribes fn to deregistrations. fn may run on any
	// goroutine that calls Deregister, so it must synchronize whatever it
	// touches. The returned function cancels the subscription and is safe
	// to call more than once.
	OnDeregister(fn func(ID)) (cancel func())

	// Entries returns a snapshot of all registrations in ID order.
	Entries() []Entry
	// Count returns the number of registered entities.
	Count() int
	// Reset deregisters every entity. The ID counter is not rewound.
	Reset()

	// Config returns the configuration the registry was built with.
	Config() Config
}

// Entry is a single (id, entity) association in a Registry snapshot.
type Entry struct {
	// ID is the issued identifier.
	ID ID
	// Entity is the registered value.
	Entity any
}
