package system

import (
	"github.com/sirupsen/logrus"

	"hex-tactics/internal/component"
	"hex-tactics/internal/entity"
	"hex-tactics/internal/event"
)

// moveUnit relocates the selected unit from one tile entity to another. Units have no identity
// of their own: their stats, state and team move from the source tile to the destination tile.
func (s *TacticsSystem) moveUnit(gs *component.GameState, from, to entity.Entity) {
	if !entity.HasComponent[component.InMovementRange](s.world, to) {
		return
	}
	fromPos, ok := entity.GetComponent[component.Position](s.world, from)
	if !ok {
		return
	}
	toPos, ok := entity.GetComponent[component.Position](s.world, to)
	if !ok {
		return
	}
	terrain, ok := entity.GetComponent[component.Terrain](s.world, to)
	if !ok {
		return
	}
	stats, ok := entity.GetComponent[component.UnitStats](s.world, from)
	if !ok {
		return
	}
	state, ok := entity.GetComponent[component.UnitState](s.world, from)
	if !ok {
		return
	}
	team, ok := entity.GetComponent[component.Team](s.world, from)
	if !ok {
		return
	}

	cost := terrain.Kind.MovementCost()
	if state.MovementLeft < cost {
		return
	}
	state.MovementLeft -= cost

	entity.AddComponent(s.world, to, *stats)
	entity.AddComponent(s.world, to, *state)
	entity.AddComponent(s.world, to, *team)
	entity.RemoveComponent[component.UnitStats](s.world, from)
	entity.RemoveComponent[component.UnitState](s.world, from)
	entity.RemoveComponent[component.Team](s.world, from)
	entity.RemoveComponent[component.Selected](s.world, from)

	left := state.MovementLeft
	s.log().WithFields(logrus.Fields{
		"from":          fromPos.Coord,
		"to":            toPos.Coord,
		"cost":          cost,
		"movement_left": left,
	}).Debug("unit moved")
	s.events.Dispatch(event.Event{Type: event.UnitMoved, Data: event.MoveData{
		From:         from,
		To:           to,
		FromHex:      fromPos.Coord,
		ToHex:        toPos.Coord,
		Cost:         cost,
		MovementLeft: left,
	}})

	if left <= 0 {
		gs.SelectedEntity = to
		s.deselect(gs)
		return
	}
	gs.SelectedEntity = to
	entity.AddComponent(s.world, to, component.Selected{})
	s.markRanges(to)
}
