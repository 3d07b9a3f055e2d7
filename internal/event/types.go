// internal/event/types.go
package event

import (
	"hex-tactics/internal/component"
	"hex-tactics/internal/entity"
	"hex-tactics/pkg/hexmap"
)

const (
	UnitSelected     EventType = "UnitSelected"
	SelectionCleared EventType = "SelectionCleared"
	UnitMoved        EventType = "UnitMoved"
	UnitAttacked     EventType = "UnitAttacked"
	UnitDestroyed    EventType = "UnitDestroyed"
	TurnEnded        EventType = "TurnEnded"
	GameOver         EventType = "GameOver"
)

// AllTypes lists every event type the engine publishes.
var AllTypes = []EventType{
	UnitSelected, SelectionCleared, UnitMoved, UnitAttacked, UnitDestroyed, TurnEnded, GameOver,
}

// SelectionData accompanies UnitSelected and SelectionCleared.
type SelectionData struct {
	Entity entity.Entity
}

// MoveData accompanies UnitMoved.
type MoveData struct {
	From, To       entity.Entity
	FromHex, ToHex hexmap.Hex
	Cost           int
	MovementLeft   int
}

// AttackData accompanies UnitAttacked and UnitDestroyed.
type AttackData struct {
	Attacker, Defender entity.Entity
	Damage             int
	DefenderHealth     int
}

// TurnData accompanies TurnEnded.
type TurnData struct {
	Team       component.TeamID
	TurnNumber int
}

// GameOverData accompanies GameOver.
type GameOverData struct {
	Winner component.TeamID
}
