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
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/config"
	"dirpx.dev/relx/registry"
	"dirpx.dev/relx/relation"
	"dirpx.dev/relx/relset"
)

func TestOneToOne_SetGetAndInverse(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "alice", "bob")
	ts := things(t, reg, "hat", "cap")
	r := relation.NewOneToOne[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], ts[0]))

	got, err := r.Get(ps[0])
	require.NoError(t, err)
	assert.Same(t, ts[0], got)

	back, err := r.Inverse().Get(ts[0])
	require.NoError(t, err)
	assert.Same(t, ps[0], back)
	assert.Equal(t, apis.KindOneToOne, r.Inverse().Kind())
}

func TestOneToOne_ValueTakenLeavesStateUnchanged(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "alice", "bob")
	ts := things(t, reg, "hat", "cap")
	r := relation.NewOneToOne[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], ts[0]))
	require.NoError(t, r.Set(ps[1], ts[1]))

	err := r.Set(ps[1], ts[0])
	require.ErrorIs(t, err, relation.ErrValueTaken)

	got, _ := r.Get(ps[1])
	assert.Same(t, ts[1], got, "(k, *) unchanged")
	owner, _ := r.Inverse().Get(ts[0])
	assert.Same(t, ps[0], owner, "(k2, v) unchanged")
	assert.Equal(t, 2, r.Len())
}

func TestOneToOne_TakenCheckedBeforeValidation(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "alice", "bob")
	ts := things(t, reg, "hat")

	calls := 0
	r := relation.NewOneToOne[*person, *thing](reg, relation.Validate(func(*person, *thing) bool {
		calls++
		return true
	}))
	require.NoError(t, r.Set(ps[0], ts[0]))
	require.ErrorIs(t, r.Set(ps[1], ts[0]), relation.ErrValueTaken)
	assert.Equal(t, 1, calls)
}

func TestManyToOne_ReplacesValue(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "alice")
	ts := things(t, reg, "guild1", "guild2")
	r := relation.NewManyToOne[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], ts[0]))
	require.NoError(t, r.Set(ps[0], ts[1]))

	got, err := r.Get(ps[0])
	require.NoError(t, err)
	assert.Same(t, ts[1], got)
	assert.False(t, r.Contains(apis.PairOf(ps[0], ts[0])))

	_, err = r.Inverse().Get(ts[0])
	require.ErrorIs(t, err, relation.ErrKeyNotFound)
	members, err := r.Inverse().Get(ts[1])
	require.NoError(t, err)
	assert.Equal(t, []*person{ps[0]}, members)
	assert.Equal(t, apis.KindOneToMany, r.Inverse().Kind())
}

func TestOneToMany_ValueOwned(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "alice", "bob")
	ts := things(t, reg, "sword")
	r := relation.NewOneToMany[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], ts[0]))
	err := r.Set(ps[1], ts[0])
	require.ErrorIs(t, err, relation.ErrValueOwned)

	assert.True(t, r.Contains(apis.PairOf(ps[0], ts[0])))
	assert.False(t, r.Contains(apis.PairOf(ps[1], ts[0])))
	owner, ok := r.Owner(ts[0])
	require.True(t, ok)
	assert.Same(t, ps[0], owner)

	holder, err := r.Inverse().Get(ts[0])
	require.NoError(t, err)
	assert.Same(t, ps[0], holder)
}

func TestOneToMany_ValidatesBeforeWriting(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "alice", "bob")
	ts := things(t, reg, "sword")

	calls := 0
	r := relation.NewOneToMany[*person, *thing](reg, relation.Validate(func(*person, *thing) bool {
		calls++
		return true
	}))
	require.NoError(t, r.Set(ps[0], ts[0]))
	require.ErrorIs(t, r.Set(ps[1], ts[0]), relation.ErrValueOwned)
	assert.Equal(t, 2, calls)
}

func TestManyToMany_DiscardKeepsOtherPairs(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "alice")
	ts := things(t, reg, "fireball", "heal")
	r := relation.NewManyToMany[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], ts[0]))
	require.NoError(t, r.Set(ps[0], ts[1]))
	assert.Equal(t, 2, r.Len())

	r.Discard(apis.PairOf(ps[0], ts[0]))
	got, err := r.Get(ps[0])
	require.NoError(t, err)
	assert.Equal(t, []*thing{ts[1]}, got)
}

func TestManyToMany_RoundTrip(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a", "b")
	ts := things(t, reg, "1", "2")
	r := relation.NewManyToMany[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], ts[0]))
	require.NoError(t, r.Set(ps[0], ts[1]))
	require.NoError(t, r.Set(ps[1], ts[1]))

	keys, err := r.Inverse().Get(ts[1])
	require.NoError(t, err)
	assert.ElementsMatch(t, []*person{ps[0], ps[1]}, keys)
}

func TestManyToMany_Delete(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a")
	ts := things(t, reg, "1", "2")
	r := relation.NewManyToMany[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], ts[0]))
	require.NoError(t, r.Set(ps[0], ts[1]))
	require.NoError(t, r.Delete(ps[0]))

	assert.Equal(t, 0, r.Len())
	_, err := r.Get(ps[0])
	require.ErrorIs(t, err, relation.ErrKeyNotFound)
	inv := r.Inverse()
	assert.False(t, inv.Contains(apis.PairOf(ts[0], ps[0])))
	assert.False(t, inv.Contains(apis.PairOf(ts[1], ps[0])))
	assert.Equal(t, 0, inv.Len())

	require.ErrorIs(t, r.Delete(ps[0]), relation.ErrKeyNotFound)
}

func TestIdempotentSet(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a")
	ts := things(t, reg, "1")

	for _, kind := range apis.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			r, err := relation.New[*person, *thing](reg, kind)
			require.NoError(t, err)
			defer r.(interface{ Close() }).Close()

			require.NoError(t, r.Set(ps[0], ts[0]))
			before := slices.Collect(r.All())
			require.NoError(t, r.Set(ps[0], ts[0]))
			assert.Equal(t, 1, r.Len())
			assert.Equal(t, before, slices.Collect(r.All()))
		})
	}
}

func TestInverseOfInverseIsSelf(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a", "b")
	ts := things(t, reg, "1", "2")

	o2o := relation.NewOneToOne[*person, *thing](reg)
	m2o := relation.NewManyToOne[*person, *thing](reg)
	o2m := relation.NewOneToMany[*person, *thing](reg)
	m2m := relation.NewManyToMany[*person, *thing](reg)

	assert.Same(t, o2o, o2o.Inverse().Inverse())
	assert.Same(t, m2o, m2o.Inverse().Inverse())
	assert.Same(t, o2m, o2m.Inverse().Inverse())
	assert.Same(t, m2m, m2m.Inverse().Inverse())
	assert.Same(t, o2o.Inverse(), o2o.Inverse(), "inverse is cached")

	// Writes through the inverse are visible through the original.
	require.NoError(t, m2m.Inverse().Set(ts[1], ps[1]))
	assert.True(t, m2m.Contains(apis.PairOf(ps[1], ts[1])))
	require.NoError(t, o2m.Inverse().Set(ts[0], ps[0]))
	owner, ok := o2m.Owner(ts[0])
	require.True(t, ok)
	assert.Same(t, ps[0], owner)
}

func TestValidationRejectionIsSilent(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a")
	ts := things(t, reg, "forbidden", "ok")

	r := relation.NewManyToMany[*person, *thing](reg, relation.Validate(func(_ *person, th *thing) bool {
		return th.name != "forbidden"
	}))

	require.NoError(t, r.Set(ps[0], ts[0]))
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains(apis.PairOf(ps[0], ts[0])))

	require.NoError(t, r.Set(ps[0], ts[1]))
	assert.Equal(t, 1, r.Len())
}

func TestCheckErrorIsReturned(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a")
	ts := things(t, reg, "1")
	full := errors.New("inventory full")

	r := relation.NewOneToMany[*person, *thing](reg, relation.Check(func(*person, *thing) error {
		return full
	}))
	require.ErrorIs(t, r.Set(ps[0], ts[0]), full)
	assert.Equal(t, 0, r.Len())
}

func TestInverseValidatesWithSwappedArguments(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a")
	ts := things(t, reg, "1")

	var gotKey *person
	var gotValue *thing
	r := relation.NewManyToOne[*person, *thing](reg, relation.Validate(func(p *person, th *thing) bool {
		gotKey, gotValue = p, th
		return false
	}))

	require.NoError(t, r.Inverse().Set(ts[0], ps[0]))
	assert.Same(t, ps[0], gotKey)
	assert.Same(t, ts[0], gotValue)
	assert.Equal(t, 0, r.Len())
}

func TestValidatorTypeMismatch(t *testing.T) {
	reg := newRegistry()
	_, err := relation.New[*person, *thing](reg, apis.KindManyToMany, relation.Validate(func(*thing, *person) bool {
		return true
	}))
	require.ErrorIs(t, err, relation.ErrValidatorType)

	assert.Panics(t, func() {
		relation.NewOneToOne[*person, *thing](reg, relation.Validate(func(int, int) bool { return true }))
	})
}

func TestNew_Errors(t *testing.T) {
	_, err := relation.New[*person, *thing](nil, apis.KindOneToOne)
	require.ErrorIs(t, err, relation.ErrNilRegistry)

	_, err = relation.New[*person, *thing](newRegistry(), apis.KindUnknown)
	require.ErrorIs(t, err, apis.ErrUnknownKind)

	assert.PanicsWithValue(t, relation.ErrNilRegistry, func() {
		relation.NewManyToMany[*person, *thing](nil)
	})
}

func TestUnregisteredEntities(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a")
	stranger := &thing{"stranger"}
	r := relation.NewManyToMany[*person, *thing](reg)

	err := r.Set(ps[0], stranger)
	require.ErrorIs(t, err, registry.ErrNotRegistered)
	assert.False(t, r.Contains(apis.PairOf(ps[0], stranger)))
	r.Discard(apis.PairOf(ps[0], stranger)) // never fails
	_, err = r.Get(&person{"nobody"})
	require.ErrorIs(t, err, relation.ErrKeyNotFound)
}

func TestAutoRegister(t *testing.T) {
	reg := newRegistry(config.WithAutoRegister(true))
	r := relation.NewOneToOne[*person, *thing](reg)
	p, th := &person{"a"}, &thing{"1"}

	require.NoError(t, r.Set(p, th))
	_, ok := reg.Lookup(p)
	assert.True(t, ok)
	assert.True(t, r.Contains(apis.PairOf(p, th)))
}

func TestAutoRegister_RejectedSetRegistersNothing(t *testing.T) {
	reg := newRegistry(config.WithAutoRegister(true))
	r := relation.NewManyToMany[*person, *thing](reg, relation.Validate(func(*person, *thing) bool {
		return false
	}))

	require.NoError(t, r.Set(&person{"a"}, &thing{"1"}))
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, reg.Count())

	boom := errors.New("boom")
	failing := relation.NewManyToMany[*person, *thing](reg, relation.Check(func(*person, *thing) error {
		return boom
	}))
	require.ErrorIs(t, failing.Set(&person{"b"}, &thing{"2"}), boom)
	assert.Equal(t, 0, reg.Count())
}

func TestAutoRegister_TakenValueRegistersNothing(t *testing.T) {
	reg := newRegistry(config.WithAutoRegister(true))
	r := relation.NewOneToOne[*person, *thing](reg)
	hat := &thing{"hat"}
	require.NoError(t, r.Set(&person{"a"}, hat))
	require.Equal(t, 2, reg.Count())

	require.ErrorIs(t, r.Set(&person{"b"}, hat), relation.ErrValueTaken)
	assert.Equal(t, 2, reg.Count())
}

func TestAutoRegister_OwnedValueRegistersNothing(t *testing.T) {
	reg := newRegistry(config.WithAutoRegister(true))
	r := relation.NewOneToMany[*person, *thing](reg)
	ring := &thing{"ring"}
	require.NoError(t, r.Set(&person{"a"}, ring))

	require.ErrorIs(t, r.Set(&person{"b"}, ring), relation.ErrValueOwned)
	assert.Equal(t, 2, reg.Count())
}

func TestNilSentinel(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a")
	r := relation.NewManyToOne[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], nil))
	got, err := r.Get(ps[0])
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, r.Contains(apis.PairOf[*person, *thing](ps[0], nil)))

	holders, err := r.Inverse().Get(nil)
	require.NoError(t, err)
	assert.Equal(t, []*person{ps[0]}, holders)

	strictReg := newRegistry(config.WithAllowNil(false))
	sp := people(t, strictReg, "c")
	strict := relation.NewManyToOne[*person, *thing](strictReg)
	require.ErrorIs(t, strict.Set(sp[0], nil), relation.ErrNilNotAllowed)
	assert.False(t, strict.Contains(apis.PairOf[*person, *thing](sp[0], nil)))
}

func TestKeysValuesAllOrder(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a", "b", "c")
	ts := things(t, reg, "1", "2")
	r := relation.NewManyToMany[*person, *thing](reg)

	require.NoError(t, r.Set(ps[2], ts[1]))
	require.NoError(t, r.Set(ps[0], ts[1]))
	require.NoError(t, r.Set(ps[0], ts[0]))

	assert.Equal(t, []*person{ps[0], ps[2]}, slices.Collect(r.Keys()))
	assert.Equal(t, []*thing{ts[0], ts[1]}, slices.Collect(r.Values()))
	assert.Equal(t, []apis.Pair[*person, *thing]{
		apis.PairOf(ps[0], ts[0]),
		apis.PairOf(ps[0], ts[1]),
		apis.PairOf(ps[2], ts[1]),
	}, slices.Collect(r.All()))
}

func TestMutationDuringIteration(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a", "b", "c")
	ts := things(t, reg, "1")
	r := relation.NewManyToOne[*person, *thing](reg)
	for _, p := range ps {
		require.NoError(t, r.Set(p, ts[0]))
	}

	seen := 0
	for p := range r.Keys() {
		require.NoError(t, r.Delete(p))
		seen++
	}
	assert.Equal(t, 3, seen)
	assert.Equal(t, 0, r.Len())
}

func TestListingAndString(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "alice", "bob")
	ts := things(t, reg, "fireball", "heal")

	knows := relation.NewManyToMany[*person, *thing](reg,
		relation.WithName("knows"), relation.WithInverseName("known_by"))
	require.NoError(t, knows.Set(ps[0], ts[1]))
	require.NoError(t, knows.Set(ps[0], ts[0]))
	require.NoError(t, knows.Set(ps[1], ts[1]))

	assert.Equal(t, "ManyToMany knows{alice: [fireball, heal], bob: [heal]}", knows.String())
	assert.Equal(t, "ManyToMany known_by{fireball: [alice], heal: [alice, bob]}", knows.Inverse().String())
	assert.Equal(t, "known_by", knows.Inverse().Name())

	wears := relation.NewOneToOne[*person, *thing](reg)
	require.NoError(t, wears.Set(ps[1], ts[0]))
	l := wears.Listing()
	assert.Equal(t, apis.KindOneToOne, l.Kind)
	assert.Equal(t, []apis.ListingEntry{{Key: "bob", Values: []string{"fireball"}}}, l.Entries)
	assert.Equal(t, "OneToOne{bob: fireball}", wears.String())
}

func TestDeregisterPurgesPairs(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a", "b")
	ts := things(t, reg, "1", "2")
	r := relation.NewManyToMany[*person, *thing](reg)

	require.NoError(t, r.Set(ps[0], ts[0]))
	require.NoError(t, r.Set(ps[0], ts[1]))
	require.NoError(t, r.Set(ps[1], ts[1]))

	id, _ := reg.Lookup(ts[1])
	require.NoError(t, reg.Deregister(id))

	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Contains(apis.PairOf(ps[0], ts[0])))
	_, err := r.Inverse().Get(ts[1])
	require.ErrorIs(t, err, relation.ErrKeyNotFound)

	pid, _ := reg.Lookup(ps[0])
	require.NoError(t, reg.Deregister(pid))
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.Inverse().Len())
}

func TestCloseStopsPurging(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a")
	ts := things(t, reg, "1")
	r := relation.NewOneToOne[*person, *thing](reg)
	require.NoError(t, r.Set(ps[0], ts[0]))

	r.Inverse().Close()
	r.Close()

	id, _ := reg.Lookup(ps[0])
	require.NoError(t, reg.Deregister(id))
	assert.Equal(t, 0, r.Len(), "stale pairs are swept on access")
	assert.Equal(t, 0, r.Inverse().Len())
}

func TestCloseThenDeregisterKeepsReadsConsistent(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a", "b")
	ts := things(t, reg, "1", "2")
	r := relation.NewManyToOne[*person, *thing](reg)
	require.NoError(t, r.Set(ps[0], ts[0]))
	require.NoError(t, r.Set(ps[1], ts[1]))
	r.Close()

	vid, _ := reg.Lookup(ts[0])
	require.NoError(t, reg.Deregister(vid))

	_, err := r.Get(ps[0])
	require.ErrorIs(t, err, relation.ErrKeyNotFound)
	_, err = r.GetAll(ps[0])
	require.ErrorIs(t, err, relation.ErrKeyNotFound)

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, r.Len(), len(slices.Collect(r.All())))
	assert.Equal(t, []*thing{ts[1]}, slices.Collect(r.Values()))

	got, err := r.Get(ps[1])
	require.NoError(t, err)
	assert.Same(t, ts[1], got)
}

func TestDeregisterFromAnotherGoroutine(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a", "b", "c", "d")
	ts := things(t, reg, "1")
	r := relation.NewManyToMany[*person, *thing](reg)
	defer r.Close()
	for _, p := range ps {
		require.NoError(t, r.Set(p, ts[0]))
	}

	var wg sync.WaitGroup
	for _, p := range ps[1:] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := reg.Lookup(p)
			_ = reg.Deregister(id)
		}()
	}
	// Reads race with the deregistrations; storage is only changed here.
	for range 100 {
		_ = r.Len()
		_, _ = r.Inverse().Get(ts[0])
	}
	wg.Wait()

	holders, err := r.Inverse().Get(ts[0])
	require.NoError(t, err)
	assert.Equal(t, []*person{ps[0]}, holders)
}

func TestRelationsAreRelSets(t *testing.T) {
	reg := newRegistry()
	ps := people(t, reg, "a", "b")
	ts := things(t, reg, "1", "2")

	small := relation.NewManyToMany[*person, *thing](reg)
	big := relation.NewManyToMany[*person, *thing](reg)
	require.NoError(t, small.Set(ps[0], ts[0]))
	require.NoError(t, big.Set(ps[0], ts[0]))
	require.NoError(t, big.Set(ps[1], ts[1]))

	type pair = apis.Pair[*person, *thing]
	assert.True(t, relset.IsProperSubset[pair](small, big))
	require.NoError(t, relset.Update[pair](small, big))
	assert.True(t, relset.Equal[pair](small, big))

	relset.Clear[pair](small)
	assert.Equal(t, 0, small.Len())
	assert.Equal(t, 0, small.Inverse().Len())
}
