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

// Package store provides the storage primitives beneath relx relations.
//
// All four types map comparable keys to comparable values and can be
// inverted in O(1): Inverse returns a view over the very same internal
// tables with the roles of keys and values swapped, so a mutation through
// either view is immediately visible through the other.
//
//   - BiDict: one-to-one. No value is held by two keys.
//   - MultiDict: many-to-many. A pair either is or is not present.
//   - InvertibleDict: many-to-one. Each key holds at most one value;
//     setting a new value replaces the old pair. Its inverse is an InverseDict.
//   - InverseDict: one-to-many. Each value is owned by at most one key;
//     setting an owned value under another key fails. Its inverse is an
//     InvertibleDict.
//
// The types are not safe for concurrent use. Iterators snapshot their
// elements when the iteration starts, so mutating a dict while consuming
// one of its iterators is safe (the iterator sees the old contents).
package store
