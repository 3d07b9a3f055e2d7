// pkg/render/color.go
package render

import "image/color"

// Palette holds every color the board renderer needs beyond the terrain fills.
type Palette struct {
	Background  color.RGBA
	Hover       color.RGBA
	Selected    color.RGBA
	Movement    color.RGBA
	Attack      color.RGBA
	Player      color.RGBA
	Enemy       color.RGBA
	HealthBack  color.RGBA
	Health      color.RGBA
	SpentAlpha  uint8
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor brightens each channel by delta, clamped at 255.
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: 255,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
