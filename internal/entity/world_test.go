package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type health struct {
	Value int
}

type name struct {
	Value string
}

type tag struct{}

func assertTablesAligned(t *testing.T, w *World) {
	t.Helper()
	for typ, n := range w.TableLens() {
		require.Equal(t, w.Len(), n, "table %s out of step with entity space", typ)
	}
}

func TestCreateEntitySequential(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		assert.Equal(t, Entity(i), w.CreateEntity())
	}
	assert.Equal(t, 5, w.Len())
	assert.Equal(t, []Entity{0, 1, 2, 3, 4}, w.Entities())
}

func TestDeleteEntityReusesId(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	AddComponent(w, b, health{10})

	w.DeleteEntity(b)
	assert.False(t, w.Alive(b))
	assert.False(t, HasComponent[health](w, b))

	c := w.CreateEntity()
	assert.Equal(t, b, c, "freed id should be handed out again")
	assert.True(t, w.Alive(c))
	assert.False(t, HasComponent[health](w, c), "reused id must start empty")
	assert.Equal(t, 2, w.Len(), "reuse must not grow the index space")
	assert.True(t, w.Alive(a))
}

func TestFreeListIsLIFO(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		w.CreateEntity()
	}
	w.DeleteEntity(1)
	w.DeleteEntity(3)
	assert.Equal(t, Entity(3), w.CreateEntity())
	assert.Equal(t, Entity(1), w.CreateEntity())
	assert.Equal(t, Entity(4), w.CreateEntity())
}

func TestAddComponentBackfills(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		w.CreateEntity()
	}
	AddComponent(w, 2, name{"late"})

	assertTablesAligned(t, w)
	for e := Entity(0); e < 2; e++ {
		assert.False(t, HasComponent[name](w, e))
	}
	got, ok := GetComponent[name](w, 2)
	require.True(t, ok)
	assert.Equal(t, "late", got.Value)

	w.CreateEntity()
	assertTablesAligned(t, w)
}

func TestAddComponentOverwrites(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	AddComponent(w, e, health{10})
	AddComponent(w, e, health{3})

	got, ok := GetComponent[health](w, e)
	require.True(t, ok)
	assert.Equal(t, 3, got.Value)
}

func TestGetComponentIsMutable(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	AddComponent(w, e, health{10})

	h, _ := GetComponent[health](w, e)
	h.Value -= 4

	again, _ := GetComponent[health](w, e)
	assert.Equal(t, 6, again.Value)
}

func TestRemoveComponentOnlyThatType(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	AddComponent(w, e, health{1})
	AddComponent(w, e, name{"x"})

	RemoveComponent[health](w, e)
	_, ok := GetComponent[health](w, e)
	assert.False(t, ok)
	assert.True(t, HasComponent[name](w, e))

	// Removing a type that was never registered is harmless.
	RemoveComponent[tag](w, e)
	assert.Equal(t, 2, w.TableCount())
}

func TestInvalidEntitiesAreSoft(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	AddComponent(w, e, health{5})

	for _, bad := range []Entity{-1, Nil, 1, 100} {
		assert.NotPanics(t, func() {
			AddComponent(w, bad, health{9})
			RemoveComponent[health](w, bad)
			w.DeleteEntity(bad)
			_, ok := GetComponent[health](w, bad)
			assert.False(t, ok)
		})
	}
	assert.Equal(t, 1, w.Len())
	assertTablesAligned(t, w)

	// Unknown component type reads as absent.
	_, ok := GetComponent[name](w, e)
	assert.False(t, ok)

	// A freed entity behaves as invalid until it is handed out again.
	w.DeleteEntity(e)
	AddComponent(w, e, health{7})
	assert.False(t, HasComponent[health](w, e))
	w.DeleteEntity(e)
	assert.Equal(t, e, w.CreateEntity())
	assert.Equal(t, 1, w.Len(), "double delete must not put the id on the free list twice")
}

func TestQueryAscendingOrder(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 6; i++ {
		w.CreateEntity()
	}
	for _, e := range []Entity{4, 1, 5} {
		AddComponent(w, e, health{int(e) * 10})
	}

	rows := Query[health](w)
	require.Len(t, rows, 3)
	for i, want := range []Entity{1, 4, 5} {
		assert.Equal(t, want, rows[i].Entity)
		assert.Equal(t, int(want)*10, rows[i].Component.Value)
	}

	assert.Nil(t, Query[name](w))
	assert.Empty(t, EntitiesWith[name](w))

	first, ok := First[health](w)
	assert.True(t, ok)
	assert.Equal(t, Entity(1), first)
	_, ok = First[name](w)
	assert.False(t, ok)
}

func TestMarkerComponents(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	AddComponent(w, a, tag{})
	AddComponent(w, b, tag{})

	assert.Equal(t, []Entity{a, b}, EntitiesWith[tag](w))
	RemoveComponent[tag](w, a)
	assert.Equal(t, []Entity{b}, EntitiesWith[tag](w))
}

func TestRandomOperationsKeepTablesAligned(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWorld()
	live := map[Entity]bool{}

	for step := 0; step < 2000; step++ {
		e := Entity(rng.Intn(w.Len() + 2))
		switch rng.Intn(6) {
		case 0:
			live[w.CreateEntity()] = true
		case 1:
			w.DeleteEntity(e)
			delete(live, e)
		case 2:
			AddComponent(w, e, health{step})
		case 3:
			AddComponent(w, e, name{"n"})
		case 4:
			RemoveComponent[health](w, e)
			_, ok := GetComponent[health](w, e)
			require.False(t, ok)
		case 5:
			AddComponent(w, e, tag{})
		}
		assertTablesAligned(t, w)
	}

	for e := Entity(0); int(e) < w.Len(); e++ {
		assert.Equal(t, live[e], w.Alive(e), "entity %d", e)
	}
}
