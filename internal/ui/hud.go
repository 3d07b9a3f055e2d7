// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"hex-tactics/internal/component"
	"hex-tactics/internal/config"
	"hex-tactics/internal/entity"
	"hex-tactics/internal/event"
	"hex-tactics/internal/scenario"
	"hex-tactics/pkg/utils"
)

// HUD shows the turn banner, unit counts, the hovered unit and the most recent event.
// It subscribes to the dispatcher for its message line.
type HUD struct {
	font       font.Face
	EndTurn    *Button
	message    string
	messageTTL float64
}

// NewHUD creates the HUD and subscribes it to every engine event.
func NewHUD(face font.Face, dispatcher *event.Dispatcher) *HUD {
	rect := image.Rect(
		config.ScreenWidth-config.HUDMargin-config.EndTurnButtonW,
		config.ScreenHeight-config.HUDMargin-config.EndTurnButtonH,
		config.ScreenWidth-config.HUDMargin,
		config.ScreenHeight-config.HUDMargin,
	)
	h := &HUD{
		font:    face,
		EndTurn: NewButton(rect, "End turn (E)", face, config.TextLightColor, config.ButtonColor, config.ButtonHoverColor),
	}
	if dispatcher != nil {
		dispatcher.SubscribeAll(h)
	}
	return h
}

// OnEvent keeps the latest describable event on screen for a while.
func (h *HUD) OnEvent(e event.Event) {
	if msg := event.Describe(e); msg != "" {
		h.message = msg
		h.messageTTL = config.ToastDuration
	}
}

// Update ages the message line.
func (h *HUD) Update(deltaTime float64) {
	if h.messageTTL > 0 {
		h.messageTTL -= deltaTime
	}
}

// Draw renders the HUD over the board.
func (h *HUD) Draw(screen *ebiten.Image, w *entity.World) {
	gs, ok := scenario.GameState(w)
	if !ok {
		return
	}
	x, y := config.HUDMargin, config.HUDMargin+config.HUDLineHeight

	side := config.PlayerColor
	if gs.CurrentTurn == component.TeamEnemy {
		side = config.EnemyColor
	}
	h.line(screen, &y, x, fmt.Sprintf("%s turn: %s", humanize.Ordinal(gs.TurnNumber), gs.CurrentTurn), side)
	h.line(screen, &y, x, fmt.Sprintf("Player units: %d", scenario.CountUnits(w, component.TeamPlayer)), config.TextLightColor)
	h.line(screen, &y, x, fmt.Sprintf("Enemy units: %d", scenario.CountUnits(w, component.TeamEnemy)), config.TextLightColor)

	if info := describeTile(w, gs.HoverEntity); info != "" {
		h.line(screen, &y, x, info, config.TextLightColor)
	}

	if h.messageTTL > 0 {
		// Fade out over the last second.
		alpha := utils.Lerp(0, 255, min(1, h.messageTTL))
		c := config.TextLightColor
		c.A = uint8(alpha)
		text.Draw(screen, h.message, h.font, x, config.ScreenHeight-config.HUDMargin, color.NRGBA(c))
	}

	if !gs.GameOver {
		mx, my := ebiten.CursorPosition()
		h.EndTurn.Draw(screen, mx, my)
	}
}

func (h *HUD) line(screen *ebiten.Image, y *int, x int, s string, c color.Color) {
	text.Draw(screen, s, h.font, x, *y, c)
	*y += config.HUDLineHeight
}

// describeTile summarises the terrain and any living unit on a tile.
func describeTile(w *entity.World, tile entity.Entity) string {
	pos, ok := entity.GetComponent[component.Position](w, tile)
	if !ok {
		return ""
	}
	terrain, ok := entity.GetComponent[component.Terrain](w, tile)
	if !ok {
		return ""
	}
	s := fmt.Sprintf("(%d,%d) %s, cost %d", pos.Coord.Q, pos.Coord.R, terrain.Kind, terrain.Kind.MovementCost())

	team, ok := scenario.LivingTeam(w, tile)
	if !ok {
		return s
	}
	stats, _ := entity.GetComponent[component.UnitStats](w, tile)
	state, _ := entity.GetComponent[component.UnitState](w, tile)
	if stats == nil || state == nil {
		return s
	}
	return fmt.Sprintf("%s | %s %s hp %d/%d atk %d def %d mv %d/%d rng %d",
		s, team, stats.Kind, state.Health, stats.MaxHealth, stats.Attack, stats.Defense,
		state.MovementLeft, stats.Movement, stats.Range)
}
