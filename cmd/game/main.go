// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"hex-tactics/internal/config"
	"hex-tactics/internal/defs"
	"hex-tactics/internal/state"
	"hex-tactics/pkg/logger"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := min(now.Sub(a.lastUpdateTime).Seconds(), config.MaxDeltaTime)
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger.Init()

	settings, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("bad command line")
	}

	units := defs.DefaultUnits()
	if settings.UnitsFile != "" {
		units, err = defs.LoadUnitDefinitions(settings.UnitsFile)
		if err != nil {
			logger.Log.WithError(err).Fatal("loading unit definitions")
		}
	}

	switch settings.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	logger.Log.WithFields(logrus.Fields{
		"size":    settings.MapSize,
		"hex":     settings.HexSize,
		"terrain": settings.Terrain,
		"seed":    settings.Seed,
		"units":   len(units),
	}).Info("starting")

	sm := state.NewStateMachine()
	if settings.SkipMenu {
		sm.SetState(state.NewGameState(sm, settings, units))
	} else {
		sm.SetState(state.NewMenuState(sm, settings, units))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Tactics")
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Error("game loop stopped")
	}
}
