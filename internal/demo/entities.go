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

package demo

// Class is a character class. Its order is the heaviest armor weight the
// class may wear.
type Class int

const (
	ClassMage Class = iota
	ClassCleric
	ClassFighter
)

func (c Class) String() string {
	switch c {
	case ClassMage:
		return "mage"
	case ClassCleric:
		return "cleric"
	case ClassFighter:
		return "fighter"
	}
	return "unknown"
}

// Weight is an armor weight.
type Weight int

const (
	WeightLight Weight = iota
	WeightMedium
	WeightHeavy
)

func (w Weight) String() string {
	switch w {
	case WeightLight:
		return "light"
	case WeightMedium:
		return "medium"
	case WeightHeavy:
		return "heavy"
	}
	return "unknown"
}

// Character can join a guild, wear a hat, learn spells and carry items.
type Character struct {
	Name     string
	Class    Class
	SpellCap int
	InvCap   int
}

func (c *Character) String() string { return c.Name }

// Guild employs up to Cap characters.
type Guild struct {
	Name string
	Cap  int
}

func (g *Guild) String() string { return g.Name }

// Hat is worn by at most one character.
type Hat struct {
	Style  string
	Weight Weight
}

func (h *Hat) String() string { return h.Style }

// Spell may be known by many characters.
type Spell struct {
	Name string
}

func (s *Spell) String() string { return s.Name }

// Item is carried by at most one character.
type Item struct {
	Name string
}

func (i *Item) String() string { return i.Name }
