// internal/entity/world.go
package entity

import (
	"reflect"
)

// Entity names a row across all component tables.
type Entity int

// Nil is the "no entity" value used by components that optionally point at another entity.
const Nil Entity = -1

// table is the type-erased view of one component table that World needs for lifecycle work.
// Every table holds exactly one slot per allocated entity index, freed ones included.
type table interface {
	grow()
	clear(e Entity)
	size() int
	asAny() any
}

// column is the concrete table for component type T. A nil slot means "no component".
type column[T any] struct {
	slots []*T
}

func (c *column[T]) grow()          { c.slots = append(c.slots, nil) }
func (c *column[T]) clear(e Entity) { c.slots[e] = nil }
func (c *column[T]) size() int      { return len(c.slots) }
func (c *column[T]) asAny() any     { return c }

// World owns every entity and its components.
// All operations are fail-soft: an invalid entity turns writes into no-ops and reads into "absent".
type World struct {
	next   Entity
	free   []Entity
	freed  []bool
	tables map[reflect.Type]table
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		tables: make(map[reflect.Type]table),
	}
}

// CreateEntity reuses the most recently deleted id, or allocates the next index and
// extends every table by one empty slot.
func (w *World) CreateEntity() Entity {
	if n := len(w.free); n > 0 {
		e := w.free[n-1]
		w.free = w.free[:n-1]
		w.freed[e] = false
		return e
	}

	e := w.next
	w.next++
	w.freed = append(w.freed, false)
	for _, t := range w.tables {
		t.grow()
	}
	return e
}

// DeleteEntity clears e from every table and puts its id on the free list. Tables never shrink.
func (w *World) DeleteEntity(e Entity) {
	if !w.Alive(e) {
		return
	}
	for _, t := range w.tables {
		t.clear(e)
	}
	w.freed[e] = true
	w.free = append(w.free, e)
}

// Alive reports whether e is allocated and not on the free list.
func (w *World) Alive(e Entity) bool {
	return e >= 0 && e < w.next && !w.freed[e]
}

// Len returns the size of the entity index space, freed slots included.
func (w *World) Len() int {
	return int(w.next)
}

// Entities returns every live entity in ascending order.
func (w *World) Entities() []Entity {
	result := make([]Entity, 0, int(w.next)-len(w.free))
	for e := Entity(0); e < w.next; e++ {
		if !w.freed[e] {
			result = append(result, e)
		}
	}
	return result
}

// TableCount returns the number of registered component types.
func (w *World) TableCount() int {
	return len(w.tables)
}

// TableLens returns the slot count of every registered table, keyed by component type name.
func (w *World) TableLens() map[string]int {
	result := make(map[string]int, len(w.tables))
	for typ, t := range w.tables {
		result[typ.String()] = t.size()
	}
	return result
}

// lookup returns T's table, or nil if T was never added.
func lookup[T any](w *World) *column[T] {
	t, ok := w.tables[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil
	}
	return t.asAny().(*column[T])
}

// register returns T's table, creating it with one empty slot per existing entity index.
func register[T any](w *World) *column[T] {
	if c := lookup[T](w); c != nil {
		return c
	}
	c := &column[T]{slots: make([]*T, w.next)}
	w.tables[reflect.TypeOf((*T)(nil)).Elem()] = c
	return c
}

// AddComponent sets e's T, replacing any previous value.
func AddComponent[T any](w *World, e Entity, value T) {
	if !w.Alive(e) {
		return
	}
	c := register[T](w)
	c.slots[e] = &value
}

// GetComponent returns e's T. The pointer refers to the stored value, so writes through it
// update the world.
func GetComponent[T any](w *World, e Entity) (*T, bool) {
	if !w.Alive(e) {
		return nil, false
	}
	c := lookup[T](w)
	if c == nil || c.slots[e] == nil {
		return nil, false
	}
	return c.slots[e], true
}

// HasComponent reports whether e carries a T.
func HasComponent[T any](w *World, e Entity) bool {
	_, ok := GetComponent[T](w, e)
	return ok
}

// RemoveComponent clears e's T only.
func RemoveComponent[T any](w *World, e Entity) {
	if !w.Alive(e) {
		return
	}
	if c := lookup[T](w); c != nil {
		c.clear(e)
	}
}

// Row pairs an entity with one of its components.
type Row[T any] struct {
	Entity    Entity
	Component *T
}

// Query returns every entity carrying a T, in ascending entity order.
func Query[T any](w *World) []Row[T] {
	c := lookup[T](w)
	if c == nil {
		return nil
	}
	var result []Row[T]
	for i, slot := range c.slots {
		if slot != nil {
			result = append(result, Row[T]{Entity: Entity(i), Component: slot})
		}
	}
	return result
}

// EntitiesWith returns the ids from Query, for marker components that carry no payload.
func EntitiesWith[T any](w *World) []Entity {
	rows := Query[T](w)
	result := make([]Entity, len(rows))
	for i, row := range rows {
		result[i] = row.Entity
	}
	return result
}

// First returns the lowest entity carrying a T.
func First[T any](w *World) (Entity, bool) {
	c := lookup[T](w)
	if c == nil {
		return Nil, false
	}
	for i, slot := range c.slots {
		if slot != nil {
			return Entity(i), true
		}
	}
	return Nil, false
}
