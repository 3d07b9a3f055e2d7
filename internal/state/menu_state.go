// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hex-tactics/internal/config"
	"hex-tactics/internal/defs"
)

// MenuState is the title screen.
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	units    defs.UnitLibrary
}

func NewMenuState(sm *StateMachine, settings config.Settings, units defs.UnitLibrary) *MenuState {
	return &MenuState{sm: sm, settings: settings, units: units}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.settings, m.units))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, "HEX TACTICS", config.ScreenHeight/2-60, config.SelectedColor)
	drawCentered(screen, fmt.Sprintf("%dx%d board, %s terrain", m.settings.MapSize, m.settings.MapSize, m.settings.Terrain), config.ScreenHeight/2-30, config.TextLightColor)
	drawCentered(screen, "Click a unit to select it, click a blue tile to move, a red tile to attack", config.ScreenHeight/2, config.TextLightColor)
	drawCentered(screen, "E ends the turn, R restarts", config.ScreenHeight/2+20, config.TextLightColor)
	drawCentered(screen, "Press Space to start", config.ScreenHeight/2+60, config.TextLightColor)
}

func (m *MenuState) Exit() {}
