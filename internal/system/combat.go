package system

import (
	"github.com/sirupsen/logrus"

	"hex-tactics/internal/component"
	"hex-tactics/internal/entity"
	"hex-tactics/internal/event"
	"hex-tactics/internal/scenario"
)

// Damage is attack minus half the defense (rounded down), never less than 1.
func Damage(attack, defense int) int {
	return max(1, attack-defense/2)
}

// attackUnit resolves one attack. It always ends the attacker's turn and clears the selection.
func (s *TacticsSystem) attackUnit(gs *component.GameState, attacker, defender entity.Entity) {
	if !entity.HasComponent[component.InAttackRange](s.world, defender) {
		return
	}
	attackerStats, ok := entity.GetComponent[component.UnitStats](s.world, attacker)
	if !ok {
		return
	}
	defenderStats, ok := entity.GetComponent[component.UnitStats](s.world, defender)
	if !ok {
		return
	}
	defenderState, ok := entity.GetComponent[component.UnitState](s.world, defender)
	if !ok {
		return
	}

	damage := Damage(attackerStats.Attack, defenderStats.Defense)
	defenderState.Health -= damage
	if attackerState, ok := entity.GetComponent[component.UnitState](s.world, attacker); ok {
		attackerState.MovementLeft = 0
		attackerState.HasActed = true
	}

	data := event.AttackData{
		Attacker:       attacker,
		Defender:       defender,
		Damage:         damage,
		DefenderHealth: defenderState.Health,
	}
	s.log().WithFields(logrus.Fields{
		"attacker": attacker,
		"defender": defender,
		"damage":   damage,
		"health":   defenderState.Health,
	}).Debug("unit attacked")
	s.events.Dispatch(event.Event{Type: event.UnitAttacked, Data: data})

	if !defenderState.Alive() {
		s.log().WithField("entity", defender).Info("unit destroyed")
		s.events.Dispatch(event.Event{Type: event.UnitDestroyed, Data: data})
		s.checkGameOver(gs)
	}

	s.deselect(gs)
}

func (s *TacticsSystem) checkGameOver(gs *component.GameState) {
	over, playerWon := scenario.CheckGameOver(s.world)
	if !over {
		return
	}
	gs.GameOver = true
	gs.PlayerWon = playerWon

	winner := component.TeamEnemy
	if playerWon {
		winner = component.TeamPlayer
	}
	s.log().WithField("winner", winner).Info("game over")
	s.events.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Winner: winner}})
}
