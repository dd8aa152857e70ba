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

// Package relation provides typed relations between registered entities.
//
// A relation stores pairs of registry IDs in one of the store primitives and
// translates entities to IDs at its boundary. Four cardinalities exist:
//
//	OneToOne[K, V]    backed by store.BiDict        inverse OneToOne[V, K]
//	ManyToOne[K, V]   backed by store.InvertibleDict inverse OneToMany[V, K]
//	OneToMany[K, V]   backed by store.InverseDict    inverse ManyToOne[V, K]
//	ManyToMany[K, V]  backed by store.MultiDict      inverse ManyToMany[V, K]
//
// Every relation has a live inverse sharing its storage: a write through
// either side is visible through the other immediately. The inverse is
// built on first use and cached; its own inverse is the original relation.
//
// Before each insertion the relation consults its validator with the key
// and value entities. A rejection is a silent no-op. The inverse validates
// through the same validator with the arguments swapped back.
//
// Nil keys and values stand for "no entity" and are stored as apis.NilID
// when Config.AllowNil is set.
//
// Relations subscribe to their registry's deregistrations: when an entity
// is deregistered every pair mentioning it is purged. Close detaches a
// relation family from the registry.
//
// Relations are not safe for concurrent mutation.
package relation
