package event

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Describe renders an event as a one-line message for the on-screen log.
// Selection events and unknown payloads return "".
func Describe(e Event) string {
	switch data := e.Data.(type) {
	case MoveData:
		return fmt.Sprintf("Moved (%d,%d) to (%d,%d), %s left",
			data.FromHex.Q, data.FromHex.R, data.ToHex.Q, data.ToHex.R, plural(data.MovementLeft, "move"))
	case AttackData:
		if e.Type == UnitDestroyed {
			return "Unit destroyed"
		}
		return fmt.Sprintf("Hit for %d, %d health left", data.Damage, max(0, data.DefenderHealth))
	case TurnData:
		return fmt.Sprintf("%s turn: %s", humanize.Ordinal(data.TurnNumber), data.Team)
	case GameOverData:
		return fmt.Sprintf("Game over, %s wins", data.Winner)
	}
	return ""
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
