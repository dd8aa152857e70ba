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

// Package relx provides typed, invertible relations between application
// entities.
//
// relx answers questions such as "which guild employs this character",
// "who is wearing this hat" or "which spells does this mage know" without
// putting back-pointers into the entities themselves. Entities are plain Go
// values (pointers in practice). A registry gives each one a stable integer
// ID, and relations store pairs of IDs.
//
// # Design
//
// The library is layered:
//
//   - apis: the contracts. Relation, BiMapping and MultiMapping describe
//     relations; RelSet and MutableRelSet describe pair collections;
//     Registry, Labeler, Strategy and Builder describe the supporting
//     services.
//
//   - store: four storage primitives over comparable keys and values.
//     BiDict (one-to-one), InvertibleDict (many-to-one), InverseDict
//     (one-to-many) and MultiDict (many-to-many). Each keeps forward and
//     backward indexes in step and exposes a live inverse view.
//
//   - registry: issues IDs. IDs start at Config.FirstID, grow by one and
//     are never reused. Deregistering an entity notifies subscribed
//     relations, which purge every pair mentioning it.
//
//   - relation: typed wrappers OneToOne, ManyToOne, OneToMany and
//     ManyToMany. They translate entities to IDs, consult a validator
//     before every insertion and hand out a cached live inverse.
//
//   - relset: set comparisons and derived mutators (Pop, Remove, Update,
//     DifferenceUpdate) for anything implementing the RelSet contracts.
//
//   - strategy, resolver: the label chain used in listings. An entity is
//     labelled by apis.Identifier, apis.Namer, fmt.Stringer or, as a last
//     resort, its reflected "pkg.Type#id".
//
//   - codec: text and YAML export of relation listings.
//
// # Usage
//
// A Space ties a registry to the labeler its relations share:
//
//	s := relx.New()
//	conan := relx.MustMake(s, &Character{Name: "Conan"})
//	guild := relx.MustMake(s, &Guild{Name: "Fighter's Guild", Cap: 2})
//
//	employedBy := relx.ManyToOne[*Character, *Guild](s,
//		relation.WithName("is_employed_by"),
//		relation.WithInverseName("employs"))
//	_ = employedBy.Set(conan, guild)
//
//	members, _ := employedBy.Inverse().Get(guild) // [conan]
//
// # Errors
//
// Structural violations (a taken or owned value) and unknown keys are
// reported with sentinel errors that can be tested with errors.Is. A
// validator that returns false turns the insertion into a silent no-op.
// Membership tests never fail: an unregistered entity is simply not
// present.
//
// # Concurrency model
//
// Registries are safe for concurrent use. Relations and stores are not;
// guard them externally if they are shared between goroutines.
package relx
