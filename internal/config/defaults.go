package config

import (
	_ "embed"
	"math"
	"time"
)

//go:embed defaults/logo.yaml
var defaultLogoYAML []byte

// DefaultLogoConfig returns the built-in logo configuration.
func DefaultLogoConfig() LogoConfig {
	return LogoConfig{
		Canvas: CanvasConfig{
			Width:  540,
			Height: 360,
			Title:  "RustTv",
		},
		Gear: GearConfig{
			PitchRadius: 69,
			Addendum:    3,
			Teeth:       32,
		},
		Rack: RackConfig{
			Width:    386,
			Height:   27,
			Addendum: 3,
			Teeth:    32,
			Gap:      6,
		},
		Epicyclic: EpicyclicConfig{
			Enabled:     false,
			PitchRadius: 33,
			Addendum:    3,
			Teeth:       16,
			Angle:       math.Pi / 3.68,
			Correction:  3, // Logo gear addendum: tucks the teeth together
		},
		Timing: TimingConfig{
			StartPause: 500 * time.Millisecond,
			Fade:       800 * time.Millisecond,
			Animation:  6 * time.Second,
			Rotation:   -360,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML document.
func GetDefaultYAML() []byte {
	return defaultLogoYAML
}
