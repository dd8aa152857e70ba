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

package resolver

import (
	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/strategy"
)

// NilLabel is the label of the nil sentinel.
const NilLabel = "<nil>"

// New constructs an apis.Labeler that tries the given strategies in order.
// Nil strategies are ignored. The returned labeler is safe for concurrent use
// provided strategies themselves are safe for concurrent TryLabel calls.
func New(strategies ...apis.Strategy) apis.Labeler {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// Default returns the standard chain:
// Identifier -> Namer -> Stringer -> Reflect.
func Default() apis.Labeler {
	return New(
		strategy.NewIdentifierStrategy(),
		strategy.NewNamerStrategy(),
		strategy.NewStringerStrategy(),
		strategy.NewReflectStrategy(),
	)
}

// chain is an immutable, order-preserving labeler over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Label runs strategies in order until one handles the entity.
// NilID is labelled NilLabel; when no strategy handles e the bare id is used.
func (r chain) Label(e any, id apis.ID, cfg apis.Config) string {
	if id.IsNil() {
		return NilLabel
	}
	for _, s := range r.strats {
		if label, ok := s.TryLabel(e, id, cfg); ok {
			return label
		}
	}
	return id.String()
}
