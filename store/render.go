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

package store

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/relx/apis"
)

// render formats pairs grouped by key as "name{k: v, k2: [v1 v2]}".
// Keys and values are ordered by their printed form.
func render[K, V comparable](name string, pairs []apis.Pair[K, V], multi bool) string {
	groups := make(map[string][]string)
	for _, p := range pairs {
		k := fmt.Sprint(p.Key)
		groups[k] = append(groups[k], fmt.Sprint(p.Value))
	}
	keys := slices.Sorted(maps.Keys(groups))

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		vals := groups[k]
		slices.Sort(vals)
		b.WriteString(k)
		b.WriteString(": ")
		if multi {
			b.WriteString("[" + strings.Join(vals, " ") + "]")
		} else {
			b.WriteString(vals[0])
		}
	}
	b.WriteByte('}')
	return b.String()
}
