package component

import (
	"hex-tactics/internal/entity"
	"hex-tactics/pkg/hexmap"
)

// GameState is the singleton holding whose turn it is and what the cursor is doing
type GameState struct {
	SelectedEntity entity.Entity // entity.Nil when nothing is selected
	HoverEntity    entity.Entity // entity.Nil when the cursor is off the board
	CurrentTurn    TeamID
	TurnNumber     int
	GameOver       bool
	PlayerWon      bool
}

// MapSettings is the singleton describing board dimensions and screen placement
type MapSettings struct {
	Width   int
	Height  int
	HexSize float64
	Origin  hexmap.Point
}

// HexEntityMap is the coordinate to tile lookup, attached to the map settings entity
type HexEntityMap struct {
	Tiles map[hexmap.Hex]entity.Entity
}
