package scenario

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"hex-tactics/internal/component"
	"hex-tactics/pkg/hexmap"
)

// TerrainPattern names a terrain layout.
type TerrainPattern string

const (
	// PatternStripes cycles Plain, Forest, Mountain, Water by (q+r) mod 4.
	PatternStripes TerrainPattern = "stripes"
	// PatternNoise thresholds seeded simplex noise into the four kinds.
	PatternNoise TerrainPattern = "noise"
)

const noiseFrequency = 0.18

// ParseTerrainPattern accepts the names used on the command line.
func ParseTerrainPattern(s string) (TerrainPattern, error) {
	switch p := TerrainPattern(s); p {
	case PatternStripes, PatternNoise:
		return p, nil
	}
	return "", fmt.Errorf("unknown terrain pattern %q (want %q or %q)", s, PatternStripes, PatternNoise)
}

func (p TerrainPattern) generator(seed int64) func(hexmap.Hex) component.TerrainKind {
	if p == PatternNoise {
		noise := opensimplex.NewNormalized(seed)
		return func(h hexmap.Hex) component.TerrainKind {
			return noiseTerrain(noise, h)
		}
	}
	return stripeTerrain
}

func stripeTerrain(h hexmap.Hex) component.TerrainKind {
	switch ((h.Q+h.R)%4 + 4) % 4 {
	case 0:
		return component.Plain
	case 1:
		return component.Forest
	case 2:
		return component.Mountain
	}
	return component.Water
}

func noiseTerrain(noise opensimplex.Noise, h hexmap.Hex) component.TerrainKind {
	// Axial to cartesian so neighboring tiles sample neighboring points.
	x := float64(h.Q) + float64(h.R)*0.5
	y := float64(h.R) * hexmap.Sqrt3 / 2
	v := noise.Eval2(x*noiseFrequency, y*noiseFrequency)
	switch {
	case v < 0.45:
		return component.Plain
	case v < 0.62:
		return component.Forest
	case v < 0.78:
		return component.Mountain
	}
	return component.Water
}
