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

import "errors"

var (
	// ErrKeyNotFound is returned when a key has no entries.
	ErrKeyNotFound = errors.New("relx(store): key not found")
	// ErrValueAssigned is returned by BiDict.Set when the value is already
	// assigned to another key.
	ErrValueAssigned = errors.New("relx(store): value already assigned")
	// ErrValueOwned is returned by InverseDict.Set when the value is already
	// owned by another key.
	ErrValueOwned = errors.New("relx(store): value already owned")
)
