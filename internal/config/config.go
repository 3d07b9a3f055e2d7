// internal/config/config.go
package config

import (
	"image/color"

	"hex-tactics/pkg/hexmap"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	MaxDeltaTime = 0.06

	DefaultMapSize = 8
	DefaultHexSize = 30.0
	MinMapSize     = 4
	MaxMapSize     = 24
	MinHexSize     = 8.0
	MaxHexSize     = 80.0

	HUDMargin       = 12
	HUDLineHeight   = 18
	ToastDuration   = 2.5 // seconds
	EndTurnButtonW  = 120
	EndTurnButtonH  = 32
	UnitRadiusRatio = 0.45
	HealthBarHeight = 4.0
	StrokeWidth     = 1.5
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	HoverColor        = color.RGBA{255, 255, 255, 90}
	SelectedColor     = color.RGBA{255, 215, 0, 255}
	MovementColor     = color.RGBA{80, 170, 255, 110}
	AttackColor       = color.RGBA{230, 60, 60, 130}
	PlayerColor       = color.RGBA{50, 120, 230, 255}
	EnemyColor        = color.RGBA{210, 50, 50, 255}
	HealthBackColor   = color.RGBA{40, 40, 40, 255}
	HealthColor       = color.RGBA{70, 220, 90, 255}
	ButtonColor       = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor  = color.RGBA{100, 160, 210, 240}
	OverlayColor      = color.RGBA{0, 0, 0, 150}
	PlayerWonColor    = color.RGBA{90, 220, 120, 255}
	PlayerLostColor   = color.RGBA{230, 80, 80, 255}
	SpentUnitDimAlpha = uint8(140)
)

// BoardOrigin returns the pixel origin that centers a width x height flat-top board on screen.
func BoardOrigin(width, height int, hexSize float64) hexmap.Point {
	// Pixel extent of the hex centers, from (0,0) to the far corner.
	spanX := 1.5 * hexSize * float64(width-1)
	spanY := hexmap.Sqrt3 * hexSize * (float64(height-1) + float64(width-1)/2)
	return hexmap.Point{
		X: float64(ScreenWidth)/2 - spanX/2,
		Y: float64(ScreenHeight)/2 - spanY/2,
	}
}
