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

import "dirpx.dev/relx/apis"

// NewNamerStrategy creates an apis.Strategy that uses apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy is a zero-cost fast path: if e implements apis.Namer,
// label it "<EntityName>#<id>" and stop the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

// TryLabel checks if e implements apis.Namer and combines its EntityName()
// with id.
func (*namerStrategy) TryLabel(e any, id apis.ID, _ apis.Config) (string, bool) {
	if e == nil {
		return "", false
	}
	n, ok := e.(apis.Namer)
	if !ok {
		return "", false
	}
	name := n.EntityName()
	if name == "" {
		return "", false
	}
	return name + id.String(), true
}

// NewIdentifierStrategy creates an apis.Strategy that uses apis.Identifier.
func NewIdentifierStrategy() apis.Strategy {
	return &identifierStrategy{}
}

// identifierStrategy labels entities that carry their own instance id as
// "<EntityName>:<EntityID>". The registry id is not needed.
type identifierStrategy struct{}

var _ apis.Strategy = (*identifierStrategy)(nil)

// TryLabel checks if e implements apis.Identifier.
func (*identifierStrategy) TryLabel(e any, _ apis.ID, _ apis.Config) (string, bool) {
	if e == nil {
		return "", false
	}
	n, ok := e.(apis.Identifier)
	if !ok || n.EntityID() == "" {
		return "", false
	}
	return n.EntityName() + ":" + n.EntityID(), true
}
