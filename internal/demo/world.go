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

// Package demo is a small role-playing world built on relx relations.
package demo

import (
	"errors"
	"fmt"
	"io"

	"dirpx.dev/relx"
	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/relation"
)

// World holds the relations between characters and the things around them.
// Capacity and class rules are enforced by the relations' validators.
type World struct {
	Space *relx.Space

	EmployedBy *relation.ManyToOne[*Character, *Guild]
	Wearing    *relation.OneToOne[*Character, *Hat]
	Knows      *relation.ManyToMany[*Character, *Spell]
	Carrying   *relation.OneToMany[*Character, *Item]

	out io.Writer
}

// NewWorld creates the relations of a world in s. Rule violations are
// reported to out.
func NewWorld(s *relx.Space, out io.Writer) *World {
	if out == nil {
		out = io.Discard
	}
	w := &World{Space: s, out: out}
	w.EmployedBy = relx.ManyToOne[*Character, *Guild](s,
		relation.WithName("is_employed_by"),
		relation.WithInverseName("employs"),
		relation.Validate(w.canJoin))
	w.Wearing = relx.OneToOne[*Character, *Hat](s,
		relation.WithName("is_wearing"),
		relation.WithInverseName("is_worn_by"),
		relation.Validate(w.canWear))
	w.Knows = relx.ManyToMany[*Character, *Spell](s,
		relation.WithName("knows"),
		relation.WithInverseName("is_known_by"),
		relation.Validate(w.canLearn))
	w.Carrying = relx.OneToMany[*Character, *Item](s,
		relation.WithName("is_carrying"),
		relation.WithInverseName("is_carried_by"),
		relation.Validate(w.canCarry))
	return w
}

func (w *World) say(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

func (w *World) canJoin(_ *Character, g *Guild) bool {
	if members, err := w.EmployedBy.Inverse().Get(g); err == nil && len(members) >= g.Cap {
		w.say("The guild is full!")
		return false
	}
	return true
}

func (w *World) canWear(c *Character, h *Hat) bool {
	if int(h.Weight) > int(c.Class) {
		w.say("A %s cannot wear %s armor!", c.Class, h.Weight)
		return false
	}
	return true
}

func (w *World) canLearn(c *Character, _ *Spell) bool {
	if spells, err := w.Knows.Get(c); err == nil && len(spells) >= c.SpellCap {
		w.say("Your spellbook is full!")
		return false
	}
	return true
}

func (w *World) canCarry(c *Character, _ *Item) bool {
	if items, err := w.Carrying.Get(c); err == nil && len(items) >= c.InvCap {
		w.say("Your backpack is full!")
		return false
	}
	return true
}

// Listings returns every relation of the world followed by its inverse.
func (w *World) Listings() []apis.Listing {
	return []apis.Listing{
		w.EmployedBy.Listing(), w.EmployedBy.Inverse().Listing(),
		w.Wearing.Listing(), w.Wearing.Inverse().Listing(),
		w.Knows.Listing(), w.Knows.Inverse().Listing(),
		w.Carrying.Listing(), w.Carrying.Inverse().Listing(),
	}
}

// Close detaches the world's relations from the registry.
func (w *World) Close() {
	w.EmployedBy.Close()
	w.Wearing.Close()
	w.Knows.Close()
	w.Carrying.Close()
}

// Play runs the reference scenario: three characters join guilds, put on
// hats, learn spells and pass items around, bumping into every rule once.
// Expected rule violations are reported to the world's output; any other
// error is returned.
func Play(w *World) error {
	s := w.Space
	conan := relx.MustMake(s, &Character{Name: "Conan", Class: ClassFighter, SpellCap: 1, InvCap: 2})
	sonja := relx.MustMake(s, &Character{Name: "Sonja", Class: ClassCleric, SpellCap: 1, InvCap: 1})
	peewee := relx.MustMake(s, &Character{Name: "Pee-Wee", Class: ClassMage, SpellCap: 2, InvCap: 1})

	fighters := relx.MustMake(s, &Guild{Name: "Fighter's Guild", Cap: 2})
	mages := relx.MustMake(s, &Guild{Name: "Mage's Guild", Cap: 2})

	helmet := relx.MustMake(s, &Hat{Style: "Thor's Helmet", Weight: WeightHeavy})
	hood := relx.MustMake(s, &Hat{Style: "Red Hood", Weight: WeightLight})

	fireball := relx.MustMake(s, &Spell{Name: "Fireball"})
	sleep := relx.MustMake(s, &Spell{Name: "Sleep"})

	potion := relx.MustMake(s, &Item{Name: "Elixir of Health"})
	dagger := relx.MustMake(s, &Item{Name: "Blade of Death"})
	ring := relx.MustMake(s, &Item{Name: "The One Ring"})

	steps := []func() error{
		func() error { return w.EmployedBy.Set(conan, fighters) },
		func() error { return w.EmployedBy.Set(sonja, fighters) },
		func() error { return w.EmployedBy.Set(peewee, fighters) },
		func() error { return w.EmployedBy.Set(peewee, mages) },

		func() error { return w.Wearing.Set(conan, helmet) },
		func() error {
			err := w.Wearing.Set(sonja, helmet)
			if errors.Is(err, relation.ErrValueTaken) {
				owner, _ := w.Wearing.Inverse().Get(helmet)
				w.say("%s is wearing %s", owner, helmet)
				return nil
			}
			return err
		},
		func() error { return w.Wearing.Set(sonja, hood) },

		func() error { return w.Knows.Set(conan, fireball) },
		func() error { return w.Knows.Set(conan, sleep) },
		func() error { return w.Knows.Set(sonja, sleep) },
		func() error { return w.Knows.Inverse().Set(fireball, sonja) },
		func() error { return w.Knows.Inverse().Set(fireball, peewee) },
		func() error { return w.Knows.Inverse().Set(sleep, peewee) },

		func() error { return w.Carrying.Set(peewee, dagger) },
		func() error { return w.Carrying.Set(peewee, ring) },
		func() error { return w.Carrying.Set(sonja, ring) },
		func() error { return w.Carrying.Set(sonja, potion) },
		func() error { return w.Carrying.Inverse().Delete(ring) },
		func() error { return w.Carrying.Set(sonja, potion) },
		func() error {
			err := w.Carrying.Set(conan, potion)
			if errors.Is(err, relation.ErrValueOwned) {
				owner, _ := w.Carrying.Owner(potion)
				w.say("%s is carrying %s", owner, potion)
				return nil
			}
			return err
		},
		func() error { return w.Carrying.Delete(peewee) },
		func() error { return w.Carrying.Set(conan, dagger) },
		func() error { return w.Carrying.Set(conan, ring) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
