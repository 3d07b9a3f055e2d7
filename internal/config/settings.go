package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"hex-tactics/internal/scenario"
)

// Settings are the per-run options taken from the command line.
type Settings struct {
	MapSize   int
	HexSize   float64
	Terrain   scenario.TerrainPattern
	Seed      int64
	UnitsFile string
	Profile   string
	SkipMenu  bool
}

// Defaults returns the settings used when no flags are given.
func Defaults() Settings {
	return Settings{
		MapSize: DefaultMapSize,
		HexSize: DefaultHexSize,
		Terrain: scenario.PatternStripes,
	}
}

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// ParseFlags reads settings from args (without the program name). Usage output goes to out.
func ParseFlags(args []string, out io.Writer) (Settings, error) {
	s := Defaults()
	var terrain string

	fs := flag.NewFlagSet("hex-tactics", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&s.MapSize, "size", s.MapSize, "board width and height in hexes")
	fs.Float64Var(&s.HexSize, "hex", s.HexSize, "hex radius in pixels")
	fs.StringVar(&terrain, "terrain", string(s.Terrain), "terrain layout: stripes or noise")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "seed for the noise terrain layout")
	fs.StringVar(&s.UnitsFile, "units", "", "JSON file overriding unit definitions")
	fs.StringVar(&s.Profile, "profile", "", "write a profile to the working directory: cpu, mem or trace")
	fs.BoolVar(&s.SkipMenu, "play", false, "skip the title screen")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	pattern, err := scenario.ParseTerrainPattern(terrain)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	s.Terrain = pattern

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the numeric ranges and the profile mode.
func (s Settings) Validate() error {
	if s.MapSize < MinMapSize || s.MapSize > MaxMapSize {
		return fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalidSettings, s.MapSize, MinMapSize, MaxMapSize)
	}
	if s.HexSize < MinHexSize || s.HexSize > MaxHexSize {
		return fmt.Errorf("%w: hex %.1f outside [%.0f, %.0f]", ErrInvalidSettings, s.HexSize, MinHexSize, MaxHexSize)
	}
	switch s.Profile {
	case "", "cpu", "mem", "trace":
	default:
		return fmt.Errorf("%w: unknown profile mode %q", ErrInvalidSettings, s.Profile)
	}
	return nil
}
