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

// Namer identifies application-level entities by a stable, type-level name
// such as "domain.character". Labels for a Namer combine the name with the
// registry ID, since the name alone does not tell instances apart.
type Namer interface {
	EntityName() string
}

// Identifier extends Namer with an instance-level identifier. When an
// entity implements Identifier its label is "<EntityName>:<EntityID>".
type Identifier interface {
	Namer
	EntityID() string
}
