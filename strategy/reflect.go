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
	"reflect"
	"sync"

	"dirpx.dev/relx/apis"
	uref "dirpx.dev/relx/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that labels entities by their
// type name via reflection, using utils/reflect.TypeName and memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback that computes "pkg.Type#id".
// It unwraps containers (ptr/slice/array/chan/map) via Normalize, strips generic
// instantiation parameters, and can hide builtin/no-package names.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t              reflect.Type
	includeBuiltin bool
	maxUnwrap      int16
}

// typeNameCache caches resolved type names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryLabel computes the type name for e and appends id. Entities whose type
// yields no name are not handled.
func (reflectStrategy) TryLabel(e any, id apis.ID, cfg apis.Config) (string, bool) {
	if e == nil {
		return "", false
	}
	name := TypeName(reflect.TypeOf(e), cfg)
	if name == "" {
		return "", false
	}
	return name + id.String(), true
}

// TypeName resolves the domain name for t with memoization.
func TypeName(t reflect.Type, cfg apis.Config) string {
	if t == nil {
		return ""
	}
	key := cacheKey{
		t:              t,
		includeBuiltin: cfg.IncludeBuiltins,
		maxUnwrap:      int16(cfg.MaxUnwrap),
	}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}
	name := uref.TypeName(t, cfg)
	typeNameCache.Store(key, name)
	return name
}
