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

package strategy

import (
	"fmt"

	"dirpx.dev/relx/apis"
	uref "dirpx.dev/relx/utils/reflect"
)

// NewStringerStrategy creates an apis.Strategy that uses fmt.Stringer.
func NewStringerStrategy() apis.Strategy {
	return stringerStrategy{}
}

// stringerStrategy labels an entity with its own String() output.
type stringerStrategy struct{}

var _ apis.Strategy = stringerStrategy{}

// TryLabel returns e.String() when e implements fmt.Stringer. Typed nils and
// empty strings fall through.
func (stringerStrategy) TryLabel(e any, _ apis.ID, _ apis.Config) (string, bool) {
	if uref.IsNil(e) {
		return "", false
	}
	s, ok := e.(fmt.Stringer)
	if !ok {
		return "", false
	}
	if out := s.String(); out != "" {
		return out, true
	}
	return "", false
}
