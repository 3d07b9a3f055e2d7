package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hex-tactics/internal/component"
	"hex-tactics/internal/entity"
	"hex-tactics/internal/scenario"
	"hex-tactics/pkg/hexmap"
)

// HexRenderer draws the board straight from the world. It never mutates the world.
type HexRenderer struct {
	palette   Palette
	unitRatio float64
	barHeight float32
	fillImg   *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
}

// NewHexRenderer prepares the shared vertex buffers. unitRatio is the unit disc radius
// relative to the hex size.
func NewHexRenderer(palette Palette, unitRatio float64, barHeight float32) *HexRenderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)

	return &HexRenderer{
		palette:   palette,
		unitRatio: unitRatio,
		barHeight: barHeight,
		fillImg:   fillImg,
		fillVs:    make([]ebiten.Vertex, 0, 18),
		fillIs:    make([]uint16, 0, 18),
		strokeVs:  make([]ebiten.Vertex, 0, 36),
		strokeIs:  make([]uint16, 0, 36),
	}
}

// Draw renders terrain, markers and living units for every tile in the world.
func (r *HexRenderer) Draw(screen *ebiten.Image, w *entity.World) {
	screen.Fill(r.palette.Background)

	settings, ok := scenario.MapSettings(w)
	if !ok {
		return
	}

	rows := entity.Query[component.Position](w)
	for _, row := range rows {
		center := row.Component.Coord.ToPixel(settings.HexSize, settings.Origin)
		path := hexPath(center, settings.HexSize)

		fill := component.Plain.Color()
		if terrain, ok := entity.GetComponent[component.Terrain](w, row.Entity); ok {
			fill = terrain.Kind.Color()
		}
		r.fillPath(screen, path, fill)

		switch {
		case entity.HasComponent[component.InAttackRange](w, row.Entity):
			r.fillPath(screen, path, r.palette.Attack)
		case entity.HasComponent[component.InMovementRange](w, row.Entity):
			r.fillPath(screen, path, r.palette.Movement)
		}
		if entity.HasComponent[component.Hovering](w, row.Entity) {
			r.fillPath(screen, path, r.palette.Hover)
		}

		stroke := LightenColor(fill, 40)
		width := r.palette.StrokeWidth
		if entity.HasComponent[component.Selected](w, row.Entity) {
			stroke = r.palette.Selected
			width *= 2
		}
		r.strokePath(screen, path, stroke, width)
	}

	for _, row := range rows {
		r.drawUnit(screen, w, row.Entity, row.Component.Coord, settings)
	}
}

func (r *HexRenderer) drawUnit(screen *ebiten.Image, w *entity.World, tile entity.Entity, coord hexmap.Hex, settings *component.MapSettings) {
	team, ok := scenario.LivingTeam(w, tile)
	if !ok {
		return
	}
	stats, ok := entity.GetComponent[component.UnitStats](w, tile)
	if !ok {
		return
	}
	state, _ := entity.GetComponent[component.UnitState](w, tile)

	center := coord.ToPixel(settings.HexSize, settings.Origin)
	cx, cy := float32(center.X), float32(center.Y)
	radius := float32(settings.HexSize * r.unitRatio)

	body := r.palette.Player
	if team == component.TeamEnemy {
		body = r.palette.Enemy
	}
	if state.HasActed || state.MovementLeft <= 0 {
		body = WithAlpha(DarkenColor(body), r.palette.SpentAlpha)
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, body, true)
	vector.StrokeCircle(screen, cx, cy, radius, r.palette.StrokeWidth, LightenColor(body, 60), true)
	r.drawKindGlyph(screen, stats.Kind, cx, cy, radius*0.5)

	// Health bar under the disc.
	barW := radius * 2
	barX := cx - radius
	barY := cy + radius + 2
	vector.DrawFilledRect(screen, barX, barY, barW, r.barHeight, r.palette.HealthBack, false)
	if stats.MaxHealth > 0 {
		frac := min(1, max(0, float32(state.Health)/float32(stats.MaxHealth)))
		vector.DrawFilledRect(screen, barX, barY, barW*frac, r.barHeight, r.palette.Health, false)
	}
}

// drawKindGlyph marks the unit kind: a bar for infantry, a chevron for archers, a diamond for cavalry.
func (r *HexRenderer) drawKindGlyph(screen *ebiten.Image, kind component.UnitKind, cx, cy, size float32) {
	c := r.palette.Background
	width := r.palette.StrokeWidth * 1.5
	switch kind {
	case component.Infantry:
		vector.StrokeLine(screen, cx, cy-size, cx, cy+size, width, c, true)
	case component.Archer:
		vector.StrokeLine(screen, cx-size, cy+size/2, cx, cy-size/2, width, c, true)
		vector.StrokeLine(screen, cx, cy-size/2, cx+size, cy+size/2, width, c, true)
	case component.Cavalry:
		var path vector.Path
		path.MoveTo(cx, cy-size)
		path.LineTo(cx+size, cy)
		path.LineTo(cx, cy+size)
		path.LineTo(cx-size, cy)
		path.Close()
		r.strokePath(screen, &path, c, width)
	}
}

// hexPath traces the six corners of a flat-top hex.
func hexPath(center hexmap.Point, size float64) *vector.Path {
	path := &vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		px := center.X + size*math.Cos(angle)
		py := center.Y + size*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) strokePath(target *ebiten.Image, path *vector.Path, c color.RGBA, width float32) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// paint colors every vertex and points it at the center texel of the fill image.
func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
