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

package builder

import (
	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/registry"
	"dirpx.dev/relx/relation"
	"dirpx.dev/relx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its entries are carried
// into the new registry under their original IDs.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) (apis.Registry, error) {
	if prev == nil {
		return registry.New(cfg), nil
	}
	return registry.Restore(cfg, prev.Entries())
}

// BuildLabeler builds and returns the default labeler chain.
func (b *builder) BuildLabeler(_ apis.Config) apis.Labeler {
	return resolver.Default()
}

// Relation creates a relation of the given kind, the dynamic counterpart of
// the typed relation constructors.
func Relation[K, V any](reg apis.Registry, kind apis.Kind, opts ...relation.Option) (apis.Relation[K, V], error) {
	return relation.New[K, V](reg, kind, opts...)
}

// RelationByName is Relation with the kind given by name, e.g. "many_to_one".
func RelationByName[K, V any](reg apis.Registry, kind string, opts ...relation.Option) (apis.Relation[K, V], error) {
	k, err := apis.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return Relation[K, V](reg, k, opts...)
}
