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

// Strategy is a pluggable labelling step. A Labeler chains strategies in
// order (e.g., Identifier -> Stringer -> Namer -> Reflect) and uses the
// first one that handles the entity.
type Strategy interface {
	// TryLabel attempts to produce a label for entity e registered under id.
	// It returns (label, true) if handled; otherwise ("", false) to fall through.
	TryLabel(e any, id ID, cfg Config) (label string, handled bool)
}
