// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"hex-tactics/internal/config"
	"hex-tactics/internal/defs"
	"hex-tactics/internal/entity"
	"hex-tactics/internal/event"
	"hex-tactics/internal/scenario"
	"hex-tactics/internal/system"
	"hex-tactics/internal/ui"
	"hex-tactics/pkg/hexmap"
	"hex-tactics/pkg/logger"
	"hex-tactics/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState is one running match: it feeds mouse and keyboard input to the tactics engine
// and draws the board and HUD.
type GameState struct {
	sm       *StateMachine
	settings config.Settings
	units    defs.UnitLibrary
	world    *entity.World
	engine   *system.TacticsSystem
	renderer *render.HexRenderer
	hud      *ui.HUD
}

// NewGameState builds a fresh world from settings.
func NewGameState(sm *StateMachine, settings config.Settings, units defs.UnitLibrary) *GameState {
	world := entity.NewWorld()
	scenario.CreateMap(world, settings.MapSize, settings.MapSize, settings.HexSize,
		config.BoardOrigin(settings.MapSize, settings.MapSize, settings.HexSize),
		scenario.WithTerrain(settings.Terrain),
		scenario.WithSeed(settings.Seed),
		scenario.WithUnits(units),
	)

	dispatcher := event.NewDispatcher()
	engine := system.NewTacticsSystem(world, dispatcher)
	dispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		if data, ok := e.Data.(event.GameOverData); ok {
			logger.Log.WithFields(logrus.Fields{
				"game_id": engine.ID().String(),
				"winner":  data.Winner,
			}).Info("match finished")
		}
	}))

	palette := render.Palette{
		Background:  config.BackgroundColor,
		Hover:       config.HoverColor,
		Selected:    config.SelectedColor,
		Movement:    config.MovementColor,
		Attack:      config.AttackColor,
		Player:      config.PlayerColor,
		Enemy:       config.EnemyColor,
		HealthBack:  config.HealthBackColor,
		Health:      config.HealthColor,
		SpentAlpha:  config.SpentUnitDimAlpha,
		StrokeWidth: config.StrokeWidth,
	}

	return &GameState{
		sm:       sm,
		settings: settings,
		units:    units,
		world:    world,
		engine:   engine,
		renderer: render.NewHexRenderer(palette, config.UnitRadiusRatio, config.HealthBarHeight),
		hud:      ui.NewHUD(basicfont.Face7x13, dispatcher),
	}
}

func (g *GameState) Enter() {
	logger.Log.WithFields(logrus.Fields{
		"game_id": g.engine.ID().String(),
		"size":    g.settings.MapSize,
		"terrain": g.settings.Terrain,
		"tiles":   len(scenario.HexEntityMap(g.world)),
	}).Info("match started")
}

func (g *GameState) Update(deltaTime float64) {
	g.hud.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sm.SetState(g.Restart())
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.engine.EndTurn()
	}

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if clicked && g.hud.EndTurn.Contains(x, y) {
		g.engine.EndTurn()
		clicked = false
	}
	g.engine.Update(hexmap.Point{X: float64(x), Y: float64(y)}, clicked)

	if g.engine.State().Kind == system.GameOver {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	g.hud.Draw(screen, g.world)
}

func (g *GameState) Exit() {}

// Restart returns a new match with the same settings.
func (g *GameState) Restart() *GameState {
	return NewGameState(g.sm, g.settings, g.units)
}
