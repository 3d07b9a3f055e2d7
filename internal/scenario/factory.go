// Package scenario seeds a fresh world with the board, the two singletons and the starting armies,
// and answers the board-level questions the engine and the renderer share.
package scenario

import (
	"hex-tactics/internal/component"
	"hex-tactics/internal/defs"
	"hex-tactics/internal/entity"
	"hex-tactics/pkg/hexmap"
)

type options struct {
	pattern TerrainPattern
	seed    int64
	units   defs.UnitLibrary
}

// Option customises CreateMap.
type Option func(*options)

// WithTerrain selects how tile terrain is laid out.
func WithTerrain(p TerrainPattern) Option {
	return func(o *options) { o.pattern = p }
}

// WithSeed seeds the noise terrain pattern.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithUnits replaces the unit stat blocks.
func WithUnits(units defs.UnitLibrary) Option {
	return func(o *options) { o.units = units }
}

type placement struct {
	coord hexmap.Hex
	kind  component.UnitKind
	team  component.TeamID
}

// CreateMap populates w with a width x height board, the game state and map settings
// singletons, and three units per side placed relative to the map corners.
func CreateMap(w *entity.World, width, height int, hexSize float64, origin hexmap.Point, opts ...Option) {
	o := options{pattern: PatternStripes, units: defs.DefaultUnits()}
	for _, opt := range opts {
		opt(&o)
	}

	gameState := w.CreateEntity()
	entity.AddComponent(w, gameState, component.GameState{
		SelectedEntity: entity.Nil,
		HoverEntity:    entity.Nil,
		CurrentTurn:    component.TeamPlayer,
		TurnNumber:     1,
	})

	mapSettings := w.CreateEntity()
	entity.AddComponent(w, mapSettings, component.MapSettings{
		Width:   width,
		Height:  height,
		HexSize: hexSize,
		Origin:  origin,
	})

	terrainAt := o.pattern.generator(o.seed)
	tiles := make(map[hexmap.Hex]entity.Entity, width*height)
	for q := 0; q < width; q++ {
		for r := 0; r < height; r++ {
			coord := hexmap.Hex{Q: q, R: r}
			tile := w.CreateEntity()
			entity.AddComponent(w, tile, component.Position{Coord: coord})
			entity.AddComponent(w, tile, component.Terrain{Kind: terrainAt(coord)})
			tiles[coord] = tile
		}
	}
	entity.AddComponent(w, mapSettings, component.HexEntityMap{Tiles: tiles})

	for _, p := range []placement{
		{hexmap.Hex{Q: 1, R: 1}, component.Infantry, component.TeamPlayer},
		{hexmap.Hex{Q: 2, R: 2}, component.Archer, component.TeamPlayer},
		{hexmap.Hex{Q: 3, R: 1}, component.Cavalry, component.TeamPlayer},
		{hexmap.Hex{Q: width - 2, R: height - 2}, component.Infantry, component.TeamEnemy},
		{hexmap.Hex{Q: width - 3, R: height - 3}, component.Archer, component.TeamEnemy},
		{hexmap.Hex{Q: width - 4, R: height - 2}, component.Cavalry, component.TeamEnemy},
	} {
		def, ok := o.units[p.kind]
		if !ok {
			continue
		}
		if tile, ok := tiles[p.coord]; ok {
			PlaceUnit(w, tile, def.Stats(), p.team)
		}
	}
}

// PlaceUnit attaches a fresh unit of the given stats and team to a tile entity.
func PlaceUnit(w *entity.World, tile entity.Entity, stats component.UnitStats, team component.TeamID) {
	entity.AddComponent(w, tile, stats)
	entity.AddComponent(w, tile, component.UnitState{
		Health:       stats.MaxHealth,
		MovementLeft: stats.Movement,
	})
	entity.AddComponent(w, tile, component.Team{ID: team})
}
