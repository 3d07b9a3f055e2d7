package scenario

import (
	"hex-tactics/internal/component"
	"hex-tactics/internal/entity"
	"hex-tactics/pkg/hexmap"
)

// GameStateEntity finds the game state singleton.
func GameStateEntity(w *entity.World) (entity.Entity, bool) {
	return entity.First[component.GameState](w)
}

// MapSettingsEntity finds the map settings singleton.
func MapSettingsEntity(w *entity.World) (entity.Entity, bool) {
	return entity.First[component.MapSettings](w)
}

// GameState returns the game state singleton's component.
func GameState(w *entity.World) (*component.GameState, bool) {
	e, ok := GameStateEntity(w)
	if !ok {
		return nil, false
	}
	return entity.GetComponent[component.GameState](w, e)
}

// MapSettings returns the map settings singleton's component.
func MapSettings(w *entity.World) (*component.MapSettings, bool) {
	e, ok := MapSettingsEntity(w)
	if !ok {
		return nil, false
	}
	return entity.GetComponent[component.MapSettings](w, e)
}

// HexEntityMap returns a copy of the coordinate to tile table. It is empty before CreateMap.
func HexEntityMap(w *entity.World) map[hexmap.Hex]entity.Entity {
	result := make(map[hexmap.Hex]entity.Entity)
	e, ok := MapSettingsEntity(w)
	if !ok {
		return result
	}
	if m, ok := entity.GetComponent[component.HexEntityMap](w, e); ok {
		for coord, tile := range m.Tiles {
			result[coord] = tile
		}
	}
	return result
}

// TileAt looks up the tile at coord without copying the table.
func TileAt(w *entity.World, coord hexmap.Hex) (entity.Entity, bool) {
	e, ok := MapSettingsEntity(w)
	if !ok {
		return entity.Nil, false
	}
	m, ok := entity.GetComponent[component.HexEntityMap](w, e)
	if !ok {
		return entity.Nil, false
	}
	tile, ok := m.Tiles[coord]
	return tile, ok
}

// LivingTeam reports the team of the unit standing on e. Tiles without a unit, or whose
// unit has been destroyed, report false.
func LivingTeam(w *entity.World, e entity.Entity) (component.TeamID, bool) {
	team, ok := entity.GetComponent[component.Team](w, e)
	if !ok {
		return 0, false
	}
	state, ok := entity.GetComponent[component.UnitState](w, e)
	if !ok || !state.Alive() {
		return 0, false
	}
	return team.ID, true
}

// ResetTeamUnitsForNewTurn refills movement and clears the acted flag for every unit of team.
func ResetTeamUnitsForNewTurn(w *entity.World, team component.TeamID) {
	for _, row := range entity.Query[component.Team](w) {
		if row.Component.ID != team {
			continue
		}
		stats, ok := entity.GetComponent[component.UnitStats](w, row.Entity)
		if !ok {
			continue
		}
		if state, ok := entity.GetComponent[component.UnitState](w, row.Entity); ok {
			state.MovementLeft = stats.Movement
			state.HasActed = false
		}
	}
}

// CountUnits counts team's units with health above zero.
func CountUnits(w *entity.World, team component.TeamID) int {
	count := 0
	for _, row := range entity.Query[component.Team](w) {
		if row.Component.ID != team {
			continue
		}
		if state, ok := entity.GetComponent[component.UnitState](w, row.Entity); ok && state.Alive() {
			count++
		}
	}
	return count
}

// CheckGameOver reports whether one side has no living units left, and if so whether the
// player is the side still standing.
func CheckGameOver(w *entity.World) (over bool, playerWon bool) {
	switch {
	case CountUnits(w, component.TeamPlayer) == 0:
		return true, false
	case CountUnits(w, component.TeamEnemy) == 0:
		return true, true
	}
	return false, false
}
