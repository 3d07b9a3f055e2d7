package system

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hex-tactics/internal/component"
	"hex-tactics/internal/entity"
	"hex-tactics/internal/event"
	"hex-tactics/internal/scenario"
	"hex-tactics/pkg/hexmap"
	"hex-tactics/pkg/logger"
)

// PhaseKind is where the turn state machine currently is
type PhaseKind int

const (
	NoSelection PhaseKind = iota
	UnitSelected
	GameOver
)

func (k PhaseKind) String() string {
	switch k {
	case UnitSelected:
		return "UnitSelected"
	case GameOver:
		return "GameOver"
	}
	return "NoSelection"
}

// Phase is the state machine position derived from the game state singleton.
// Entity is set for UnitSelected, Winner for GameOver.
type Phase struct {
	Kind   PhaseKind
	Entity entity.Entity
	Winner component.TeamID
}

// TacticsSystem applies player input to the world: hover, selection, movement, attacks and turns.
// It is not safe for concurrent use; callers run one Update or EndTurn to completion before
// rendering or issuing the next one.
type TacticsSystem struct {
	world  *entity.World
	events *event.Dispatcher
	id     uuid.UUID
}

// NewTacticsSystem binds the engine to a world seeded by scenario.CreateMap. events may be nil.
func NewTacticsSystem(world *entity.World, events *event.Dispatcher) *TacticsSystem {
	return &TacticsSystem{
		world:  world,
		events: events,
		id:     uuid.New(),
	}
}

// ID identifies this game in logs.
func (s *TacticsSystem) ID() uuid.UUID {
	return s.id
}

func (s *TacticsSystem) log() *logrus.Entry {
	return logger.Log.WithField("game_id", s.id.String())
}

// State reports the current phase.
func (s *TacticsSystem) State() Phase {
	gs, ok := scenario.GameState(s.world)
	if !ok {
		return Phase{Kind: NoSelection, Entity: entity.Nil}
	}
	switch {
	case gs.GameOver:
		winner := component.TeamEnemy
		if gs.PlayerWon {
			winner = component.TeamPlayer
		}
		return Phase{Kind: GameOver, Entity: entity.Nil, Winner: winner}
	case gs.SelectedEntity != entity.Nil:
		return Phase{Kind: UnitSelected, Entity: gs.SelectedEntity}
	}
	return Phase{Kind: NoSelection, Entity: entity.Nil}
}

// Update processes one input cycle: the hover marker always follows the pointer, then a click
// (if any) on a board tile is routed to select, deselect, move or attack. Clicks are ignored
// once the game is over. Missing singletons make the whole cycle a no-op.
func (s *TacticsSystem) Update(pointer hexmap.Point, clicked bool) {
	gs, ok := scenario.GameState(s.world)
	if !ok {
		return
	}
	settings, ok := scenario.MapSettings(s.world)
	if !ok {
		return
	}

	tile, onBoard := s.updateHover(gs, settings, pointer)
	if !clicked || !onBoard || gs.GameOver {
		return
	}

	if gs.SelectedEntity == entity.Nil {
		s.selectTile(gs, tile)
		return
	}
	switch selected := gs.SelectedEntity; {
	case tile == selected:
		s.deselect(gs)
	case entity.HasComponent[component.InMovementRange](s.world, tile):
		s.moveUnit(gs, selected, tile)
	case entity.HasComponent[component.InAttackRange](s.world, tile):
		s.attackUnit(gs, selected, tile)
	default:
		s.selectTile(gs, tile)
	}
}

func (s *TacticsSystem) updateHover(gs *component.GameState, settings *component.MapSettings, pointer hexmap.Point) (entity.Entity, bool) {
	for _, e := range entity.EntitiesWith[component.Hovering](s.world) {
		entity.RemoveComponent[component.Hovering](s.world, e)
	}
	gs.HoverEntity = entity.Nil

	coord := hexmap.PixelToHex(pointer, settings.HexSize, settings.Origin)
	tile, ok := scenario.TileAt(s.world, coord)
	if !ok {
		return entity.Nil, false
	}
	entity.AddComponent(s.world, tile, component.Hovering{})
	gs.HoverEntity = tile
	return tile, true
}

// canSelect: a living unit of the side to move that still has movement and has not acted.
func (s *TacticsSystem) canSelect(gs *component.GameState, tile entity.Entity) bool {
	team, ok := scenario.LivingTeam(s.world, tile)
	if !ok || team != gs.CurrentTurn {
		return false
	}
	state, ok := entity.GetComponent[component.UnitState](s.world, tile)
	return ok && state.MovementLeft > 0 && !state.HasActed
}

func (s *TacticsSystem) selectTile(gs *component.GameState, tile entity.Entity) {
	if !s.canSelect(gs, tile) {
		return
	}
	if gs.SelectedEntity != entity.Nil {
		s.deselect(gs)
	}

	entity.AddComponent(s.world, tile, component.Selected{})
	gs.SelectedEntity = tile
	s.markRanges(tile)

	s.log().WithField("entity", tile).Debug("unit selected")
	s.events.Dispatch(event.Event{Type: event.UnitSelected, Data: event.SelectionData{Entity: tile}})
}

// deselect clears the selection and every selection-related marker.
func (s *TacticsSystem) deselect(gs *component.GameState) {
	previous := gs.SelectedEntity
	gs.SelectedEntity = entity.Nil

	for _, e := range entity.EntitiesWith[component.Selected](s.world) {
		entity.RemoveComponent[component.Selected](s.world, e)
	}
	s.clearRangeMarkers()

	if previous != entity.Nil {
		s.log().WithField("entity", previous).Debug("selection cleared")
		s.events.Dispatch(event.Event{Type: event.SelectionCleared, Data: event.SelectionData{Entity: previous}})
	}
}

func (s *TacticsSystem) clearRangeMarkers() {
	for _, e := range entity.EntitiesWith[component.InMovementRange](s.world) {
		entity.RemoveComponent[component.InMovementRange](s.world, e)
	}
	for _, e := range entity.EntitiesWith[component.InAttackRange](s.world) {
		entity.RemoveComponent[component.InAttackRange](s.world, e)
	}
}
