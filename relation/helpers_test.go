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

package relation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/config"
	"dirpx.dev/relx/registry"
)

type person struct{ name string }

func (p *person) String() string { return p.name }

type thing struct{ name string }

func (t *thing) String() string { return t.name }

func newRegistry(opts ...config.Option) apis.Registry {
	return registry.New(config.NewConfig(opts...))
}

// people registers one person per name, in order.
func people(t *testing.T, reg apis.Registry, names ...string) []*person {
	t.Helper()
	out := make([]*person, 0, len(names))
	for _, n := range names {
		p := &person{n}
		_, err := reg.Register(p)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

// things registers one thing per name, in order.
func things(t *testing.T, reg apis.Registry, names ...string) []*thing {
	t.Helper()
	out := make([]*thing, 0, len(names))
	for _, n := range names {
		th := &thing{n}
		_, err := reg.Register(th)
		require.NoError(t, err)
		out = append(out, th)
	}
	return out
}
