package system

import (
	"hex-tactics/internal/component"
	"hex-tactics/internal/entity"
	"hex-tactics/internal/scenario"
	"hex-tactics/pkg/hexmap"
)

// MovementRange returns every coordinate the unit on tile can reach with its remaining movement.
// Each step pays the entered tile's terrain cost; tiles held by a living enemy cannot be entered.
// The unit's own coordinate is not part of the result.
func (s *TacticsSystem) MovementRange(tile entity.Entity) map[hexmap.Hex]struct{} {
	result := make(map[hexmap.Hex]struct{})
	pos, ok := entity.GetComponent[component.Position](s.world, tile)
	if !ok {
		return result
	}
	state, ok := entity.GetComponent[component.UnitState](s.world, tile)
	if !ok {
		return result
	}
	team, ok := entity.GetComponent[component.Team](s.world, tile)
	if !ok {
		return result
	}

	tiles := scenario.HexEntityMap(s.world)
	cost := func(h hexmap.Hex) (int, bool) {
		e, ok := tiles[h]
		if !ok {
			return 0, false
		}
		terrain, ok := entity.GetComponent[component.Terrain](s.world, e)
		if !ok {
			return 0, false
		}
		if other, occupied := scenario.LivingTeam(s.world, e); occupied && other != team.ID {
			return 0, false
		}
		return terrain.Kind.MovementCost(), true
	}

	for h := range hexmap.Reachable(pos.Coord, state.MovementLeft, cost) {
		result[h] = struct{}{}
	}
	return result
}

// AttackRange returns every board coordinate within the unit's weapon range, excluding its own.
// Whether anything worth attacking stands there is decided when markers are attached.
func (s *TacticsSystem) AttackRange(tile entity.Entity) map[hexmap.Hex]struct{} {
	result := make(map[hexmap.Hex]struct{})
	pos, ok := entity.GetComponent[component.Position](s.world, tile)
	if !ok {
		return result
	}
	stats, ok := entity.GetComponent[component.UnitStats](s.world, tile)
	if !ok {
		return result
	}

	// Bounded by the board, whatever the range.
	for h := range scenario.HexEntityMap(s.world) {
		if d := h.Distance(pos.Coord); d > 0 && d <= stats.Range {
			result[h] = struct{}{}
		}
	}
	return result
}

// markRanges recomputes the range markers for the unit on tile. Movement markers skip tiles
// where another living unit stands; attack markers only go on living enemies.
func (s *TacticsSystem) markRanges(tile entity.Entity) {
	s.clearRangeMarkers()

	team, ok := scenario.LivingTeam(s.world, tile)
	if !ok {
		return
	}

	for h := range s.MovementRange(tile) {
		target, ok := scenario.TileAt(s.world, h)
		if !ok {
			continue
		}
		if _, occupied := scenario.LivingTeam(s.world, target); occupied {
			continue
		}
		entity.AddComponent(s.world, target, component.InMovementRange{})
	}

	for h := range s.AttackRange(tile) {
		target, ok := scenario.TileAt(s.world, h)
		if !ok {
			continue
		}
		if other, occupied := scenario.LivingTeam(s.world, target); occupied && other != team {
			entity.AddComponent(s.world, target, component.InAttackRange{})
		}
	}
}
