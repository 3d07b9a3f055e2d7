package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hex-tactics/internal/component"
	"hex-tactics/internal/defs"
	"hex-tactics/internal/entity"
	"hex-tactics/pkg/hexmap"
)

var origin = hexmap.Point{X: 300, Y: 300}

func newBoard(t *testing.T, width, height int, opts ...Option) *entity.World {
	t.Helper()
	w := entity.NewWorld()
	CreateMap(w, width, height, 30, origin, opts...)
	return w
}

func TestCreateMapSingletons(t *testing.T) {
	w := newBoard(t, 8, 8)

	assert.Len(t, entity.EntitiesWith[component.GameState](w), 1)
	assert.Len(t, entity.EntitiesWith[component.MapSettings](w), 1)
	assert.Len(t, entity.EntitiesWith[component.HexEntityMap](w), 1)

	gs, ok := GameState(w)
	require.True(t, ok)
	assert.Equal(t, component.GameState{
		SelectedEntity: entity.Nil,
		HoverEntity:    entity.Nil,
		CurrentTurn:    component.TeamPlayer,
		TurnNumber:     1,
	}, *gs)

	settings, ok := MapSettings(w)
	require.True(t, ok)
	assert.Equal(t, 8, settings.Width)
	assert.Equal(t, 8, settings.Height)
	assert.Equal(t, 30.0, settings.HexSize)
	assert.Equal(t, origin, settings.Origin)
}

func TestCreateMapTilesBijective(t *testing.T) {
	w := newBoard(t, 8, 8)

	tiles := HexEntityMap(w)
	require.Len(t, tiles, 64)
	assert.Len(t, entity.EntitiesWith[component.Position](w), 64)

	seen := map[entity.Entity]bool{}
	for coord, tile := range tiles {
		assert.False(t, seen[tile], "tile %d mapped twice", tile)
		seen[tile] = true

		pos, ok := entity.GetComponent[component.Position](w, tile)
		require.True(t, ok)
		assert.Equal(t, coord, pos.Coord)
		assert.True(t, entity.HasComponent[component.Terrain](w, tile))

		got, ok := TileAt(w, coord)
		assert.True(t, ok)
		assert.Equal(t, tile, got)
	}

	_, ok := TileAt(w, hexmap.Hex{Q: 8, R: 0})
	assert.False(t, ok)
	_, ok = TileAt(w, hexmap.Hex{Q: -1, R: 3})
	assert.False(t, ok)
}

func TestHexEntityMapIsACopy(t *testing.T) {
	w := newBoard(t, 4, 4)
	tiles := HexEntityMap(w)
	delete(tiles, hexmap.Hex{Q: 0, R: 0})

	_, ok := TileAt(w, hexmap.Hex{Q: 0, R: 0})
	assert.True(t, ok)
	assert.Len(t, HexEntityMap(w), 16)
}

func TestCreateMapUnits(t *testing.T) {
	w := newBoard(t, 8, 8)
	units := defs.DefaultUnits()

	want := map[hexmap.Hex]struct {
		kind component.UnitKind
		team component.TeamID
	}{
		{Q: 1, R: 1}: {component.Infantry, component.TeamPlayer},
		{Q: 2, R: 2}: {component.Archer, component.TeamPlayer},
		{Q: 3, R: 1}: {component.Cavalry, component.TeamPlayer},
		{Q: 6, R: 6}: {component.Infantry, component.TeamEnemy},
		{Q: 5, R: 5}: {component.Archer, component.TeamEnemy},
		{Q: 4, R: 6}: {component.Cavalry, component.TeamEnemy},
	}

	rows := entity.Query[component.UnitStats](w)
	require.Len(t, rows, len(want))
	for _, row := range rows {
		pos, _ := entity.GetComponent[component.Position](w, row.Entity)
		expected, ok := want[pos.Coord]
		require.True(t, ok, "unexpected unit at %v", pos.Coord)

		assert.Equal(t, units[expected.kind].Stats(), *row.Component)
		team, ok := entity.GetComponent[component.Team](w, row.Entity)
		require.True(t, ok)
		assert.Equal(t, expected.team, team.ID)

		state, ok := entity.GetComponent[component.UnitState](w, row.Entity)
		require.True(t, ok)
		assert.Equal(t, row.Component.MaxHealth, state.Health)
		assert.Equal(t, row.Component.Movement, state.MovementLeft)
		assert.False(t, state.HasActed)
	}

	assert.Equal(t, 3, CountUnits(w, component.TeamPlayer))
	assert.Equal(t, 3, CountUnits(w, component.TeamEnemy))
}

func TestCreateMapSkipsOffBoardUnits(t *testing.T) {
	w := newBoard(t, 3, 3)

	// Enemy placements land at (1,1), (0,0) and (-1,1); (1,1) is also a player spot and the
	// enemy infantry is placed after it.
	assert.Equal(t, 1, CountUnits(w, component.TeamPlayer))
	assert.Equal(t, 2, CountUnits(w, component.TeamEnemy))
	assert.Len(t, HexEntityMap(w), 9)
}

func TestCreateMapWithUnits(t *testing.T) {
	units := defs.DefaultUnits()
	delete(units, component.Archer)
	inf := units[component.Infantry]
	inf.MaxHealth = 20
	units[component.Infantry] = inf

	w := newBoard(t, 8, 8, WithUnits(units))
	assert.Equal(t, 2, CountUnits(w, component.TeamPlayer))

	tile, _ := TileAt(w, hexmap.Hex{Q: 1, R: 1})
	state, ok := entity.GetComponent[component.UnitState](w, tile)
	require.True(t, ok)
	assert.Equal(t, 20, state.Health)
}

func TestStripeTerrain(t *testing.T) {
	w := newBoard(t, 8, 8)
	kinds := []component.TerrainKind{component.Plain, component.Forest, component.Mountain, component.Water}

	for coord, tile := range HexEntityMap(w) {
		terrain, ok := entity.GetComponent[component.Terrain](w, tile)
		require.True(t, ok)
		assert.Equal(t, kinds[(coord.Q+coord.R)%4], terrain.Kind, "at %v", coord)
	}
	assert.Equal(t, component.Water, stripeTerrain(hexmap.Hex{Q: -1, R: 0}))
}

func TestNoiseTerrainDeterministic(t *testing.T) {
	terrainOf := func(w *entity.World) map[hexmap.Hex]component.TerrainKind {
		result := map[hexmap.Hex]component.TerrainKind{}
		for coord, tile := range HexEntityMap(w) {
			terrain, _ := entity.GetComponent[component.Terrain](w, tile)
			result[coord] = terrain.Kind
		}
		return result
	}

	a := terrainOf(newBoard(t, 12, 12, WithTerrain(PatternNoise), WithSeed(7)))
	b := terrainOf(newBoard(t, 12, 12, WithTerrain(PatternNoise), WithSeed(7)))
	assert.Equal(t, a, b)

	for _, kind := range a {
		assert.Contains(t, []component.TerrainKind{component.Plain, component.Forest, component.Mountain, component.Water}, kind)
	}
}

func TestParseTerrainPattern(t *testing.T) {
	p, err := ParseTerrainPattern("noise")
	require.NoError(t, err)
	assert.Equal(t, PatternNoise, p)

	p, err = ParseTerrainPattern("stripes")
	require.NoError(t, err)
	assert.Equal(t, PatternStripes, p)

	_, err = ParseTerrainPattern("lava")
	assert.ErrorContains(t, err, "unknown terrain pattern")
}

func TestResetTeamUnitsForNewTurn(t *testing.T) {
	w := newBoard(t, 8, 8)
	for _, row := range entity.Query[component.UnitState](w) {
		row.Component.MovementLeft = 0
		row.Component.HasActed = true
	}

	ResetTeamUnitsForNewTurn(w, component.TeamEnemy)

	for _, row := range entity.Query[component.Team](w) {
		state, _ := entity.GetComponent[component.UnitState](w, row.Entity)
		stats, _ := entity.GetComponent[component.UnitStats](w, row.Entity)
		if row.Component.ID == component.TeamEnemy {
			assert.Equal(t, stats.Movement, state.MovementLeft)
			assert.False(t, state.HasActed)
		} else {
			assert.Equal(t, 0, state.MovementLeft)
			assert.True(t, state.HasActed)
		}
	}
}

func TestLivingTeam(t *testing.T) {
	w := newBoard(t, 8, 8)

	tile, _ := TileAt(w, hexmap.Hex{Q: 6, R: 6})
	team, ok := LivingTeam(w, tile)
	assert.True(t, ok)
	assert.Equal(t, component.TeamEnemy, team)

	empty, _ := TileAt(w, hexmap.Hex{Q: 4, R: 4})
	_, ok = LivingTeam(w, empty)
	assert.False(t, ok)

	state, _ := entity.GetComponent[component.UnitState](w, tile)
	state.Health = 0
	_, ok = LivingTeam(w, tile)
	assert.False(t, ok)
}

func TestCheckGameOver(t *testing.T) {
	kill := func(w *entity.World, team component.TeamID) {
		for _, row := range entity.Query[component.Team](w) {
			if row.Component.ID == team {
				state, _ := entity.GetComponent[component.UnitState](w, row.Entity)
				state.Health = -2
			}
		}
	}

	w := newBoard(t, 8, 8)
	over, _ := CheckGameOver(w)
	assert.False(t, over)

	kill(w, component.TeamEnemy)
	over, playerWon := CheckGameOver(w)
	assert.True(t, over)
	assert.True(t, playerWon)

	w = newBoard(t, 8, 8)
	kill(w, component.TeamPlayer)
	over, playerWon = CheckGameOver(w)
	assert.True(t, over)
	assert.False(t, playerWon)
}

func TestMissingSingletons(t *testing.T) {
	w := entity.NewWorld()

	_, ok := GameState(w)
	assert.False(t, ok)
	_, ok = MapSettings(w)
	assert.False(t, ok)
	_, ok = TileAt(w, hexmap.Hex{})
	assert.False(t, ok)
	assert.Empty(t, HexEntityMap(w))
}
