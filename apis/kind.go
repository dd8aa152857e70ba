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

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for an unrecognized name.
var ErrUnknownKind = errors.New("relx(apis): unknown relation kind")

// Kind is the cardinality of a relation.
type Kind int

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota
	// KindOneToOne relates each key to at most one value and vice versa.
	KindOneToOne
	// KindManyToOne relates each key to at most one value; values may be shared.
	KindManyToOne
	// KindOneToMany relates each value to at most one key; keys may own many values.
	KindOneToMany
	// KindManyToMany has no cardinality constraint.
	KindManyToMany
)

// String returns the canonical name of the kind ("OneToOne", ...).
func (k Kind) String() string {
	switch k {
	case KindOneToOne:
		return "OneToOne"
	case KindManyToOne:
		return "ManyToOne"
	case KindOneToMany:
		return "OneToMany"
	case KindManyToMany:
		return "ManyToMany"
	default:
		return "Unknown"
	}
}

// Inverse returns the kind of the inverse relation.
func (k Kind) Inverse() Kind {
	switch k {
	case KindManyToOne:
		return KindOneToMany
	case KindOneToMany:
		return KindManyToOne
	default:
		return k
	}
}

// Kinds lists every valid Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindOneToOne, KindManyToOne, KindOneToMany, KindManyToMany}
}

// ParseKind parses a kind name. Matching ignores case and the separators
// '-', '_' and ' ', so "many_to_one" and "ManyToOne" are equivalent.
func ParseKind(s string) (Kind, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(norm, k.String()) {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
