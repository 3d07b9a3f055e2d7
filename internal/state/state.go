// internal/state/state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"hex-tactics/pkg/logger"
)

// State is one screen of the application. Enter and Exit bracket the frames it is active for.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine owns the active screen. A transition requested during Update takes effect
// immediately; the replaced screen receives no further calls.
type StateMachine struct {
	active State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState swaps the active screen, running Exit on the old one and Enter on the new one.
// A nil state leaves the machine idle.
func (sm *StateMachine) SetState(next State) {
	prev := sm.active
	if prev != nil {
		prev.Exit()
	}
	sm.active = next
	logger.Log.WithField("from", stateName(prev)).WithField("to", stateName(next)).Debug("screen changed")
	if next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.active == nil {
		return
	}
	sm.active.Update(deltaTime)
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.active == nil {
		return
	}
	sm.active.Draw(screen)
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
