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
	"fmt"

	"dirpx.dev/relx/apis"
)

// New creates a relation of the given kind. Unlike the typed constructors it
// reports a nil registry or a mismatched validator as an error.
func New[K, V any](reg apis.Registry, kind apis.Kind, opts ...Option) (apis.Relation[K, V], error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	s := newSettings(opts)
	switch kind {
	case apis.KindOneToOne:
		r, err := newOneToOne[K, V](reg, s)
		if err != nil {
			return nil, err
		}
		return r, nil
	case apis.KindManyToOne:
		r, err := newManyToOne[K, V](reg, s)
		if err != nil {
			return nil, err
		}
		return r, nil
	case apis.KindOneToMany:
		r, err := newOneToMany[K, V](reg, s)
		if err != nil {
			return nil, err
		}
		return r, nil
	case apis.KindManyToMany:
		r, err := newManyToMany[K, V](reg, s)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: %v", apis.ErrUnknownKind, kind)
}
