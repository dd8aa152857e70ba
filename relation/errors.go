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
	"errors"

	"dirpx.dev/relx/store"
)

var (
	// ErrValueTaken is returned by OneToOne.Set when the value is already
	// assigned to another key.
	ErrValueTaken = store.ErrValueAssigned
	// ErrValueOwned is returned by OneToMany.Set when the value already
	// belongs to another key.
	ErrValueOwned = store.ErrValueOwned
	// ErrKeyNotFound is returned when a key has no values.
	ErrKeyNotFound = store.ErrKeyNotFound
	// ErrNilNotAllowed is returned when a nil entity is given and
	// Config.AllowNil is false.
	ErrNilNotAllowed = errors.New("relx(relation): nil entity not allowed")
	// ErrNilRegistry is the panic value of constructors given a nil registry.
	ErrNilRegistry = errors.New("relx(relation): nil registry")
	// ErrValidatorType is returned when a validator's type parameters do not
	// match the relation's.
	ErrValidatorType = errors.New("relx(relation): validator type mismatch")
)
