// internal/state/game_over_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"hex-tactics/internal/component"
	"hex-tactics/internal/config"
	"hex-tactics/internal/system"
)

var _ State = (*GameOverState)(nil)

// GameOverState freezes the finished match under a result banner.
type GameOverState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewGameOverState(sm *StateMachine, prev *GameState) *GameOverState {
	return &GameOverState{
		stateMachine:  sm,
		previousState: prev,
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.stateMachine.SetState(s.previousState.Restart())
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.previousState.settings, s.previousState.units))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	title, c := "DEFEAT", color.Color(config.PlayerLostColor)
	if phase := s.previousState.engine.State(); phase.Kind == system.GameOver && phase.Winner == component.TeamPlayer {
		title, c = "VICTORY", config.PlayerWonColor
	}
	drawCentered(screen, title, config.ScreenHeight/2-10, c)
	drawCentered(screen, "R to play again, Esc for the menu", config.ScreenHeight/2+14, config.TextLightColor)
}

func (s *GameOverState) Exit() {}

func drawCentered(screen *ebiten.Image, msg string, y int, c color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (config.ScreenWidth-bounds.Dx())/2, y, c)
}
