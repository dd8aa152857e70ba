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

package apis

import "log/slog"

// Config carries the knobs shared by a Registry and the relations bound to it.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// FirstID is the first identifier a Registry issues. Values below 1
	// are replaced by the default, since 0 is reserved for NilID.
	FirstID ID

	// AllowNil controls whether a nil key or value is accepted by relations
	// as the "no entity" sentinel. If false, such calls fail.
	AllowNil bool

	// AutoRegister makes relations register unknown entities on insertion
	// instead of failing with a not-registered error.
	AutoRegister bool

	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") are used in reflect-derived entity labels.
	IncludeBuiltins bool

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when deriving a type name for an entity label.
	MaxUnwrap int

	// Logger receives debug events. Nil means silent.
	Logger *slog.Logger
}
