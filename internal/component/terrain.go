package component

import (
	"image/color"

	"hex-tactics/pkg/hexmap"
)

// TerrainKind is the terrain type of a tile
type TerrainKind int

const (
	Plain TerrainKind = iota
	Forest
	Mountain
	Water
)

// MovementCost is the movement spent entering a tile of this kind.
func (k TerrainKind) MovementCost() int {
	switch k {
	case Plain:
		return 1
	case Forest:
		return 2
	case Mountain:
		return 3
	case Water:
		return 5
	}
	return 1
}

func (k TerrainKind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Forest:
		return "Forest"
	case Mountain:
		return "Mountain"
	case Water:
		return "Water"
	}
	return "Unknown"
}

// Color is the fill used when drawing the tile.
func (k TerrainKind) Color() color.RGBA {
	switch k {
	case Forest:
		return color.RGBA{34, 139, 34, 255}
	case Mountain:
		return color.RGBA{128, 128, 128, 255}
	case Water:
		return color.RGBA{65, 105, 225, 255}
	}
	return color.RGBA{124, 252, 0, 255}
}

// Position is the axial coordinate of a tile
type Position struct {
	Coord hexmap.Hex
}

// Terrain is the terrain component of a tile
type Terrain struct {
	Kind TerrainKind
}
