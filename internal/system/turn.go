package system

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"hex-tactics/internal/event"
	"hex-tactics/internal/scenario"
)

// EndTurn hands play to the other side: it refills that side's units, bumps the turn counter
// and drops any selection. Nothing happens once the game is over.
func (s *TacticsSystem) EndTurn() {
	gs, ok := scenario.GameState(s.world)
	if !ok || gs.GameOver {
		return
	}

	next := gs.CurrentTurn.Opponent()
	gs.CurrentTurn = next
	gs.TurnNumber++
	scenario.ResetTeamUnitsForNewTurn(s.world, next)
	s.deselect(gs)

	s.log().WithFields(logrus.Fields{
		"team": next,
		"turn": humanize.Ordinal(gs.TurnNumber),
	}).Info("turn started")
	s.events.Dispatch(event.Event{Type: event.TurnEnded, Data: event.TurnData{Team: next, TurnNumber: gs.TurnNumber}})
}
