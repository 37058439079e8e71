// Package config provides YAML-based configuration of the logo layout:
// gear and rack dimensions, the epicyclic gear orbit, canvas size and
// animation timings. Every literal of the logo lives here rather than in code.
package config

import "time"

// LogoConfig contains the complete configuration of one logo layout.
type LogoConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Gear      GearConfig      `yaml:"gear"`
	Rack      RackConfig      `yaml:"rack"`
	Epicyclic EpicyclicConfig `yaml:"epicyclic"`
	Timing    TimingConfig    `yaml:"timing"`
}

// CanvasConfig defines the drawing surface the layout is centred on.
type CanvasConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title,omitempty"`
}

// GearConfig defines the large logo gear.
type GearConfig struct {
	PitchRadius float64 `yaml:"pitch_radius"`
	Addendum    float64 `yaml:"addendum"`
	Teeth       int     `yaml:"teeth"`
}

// RackConfig defines the linear rack.
type RackConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Addendum float64 `yaml:"addendum"`
	Teeth    int     `yaml:"teeth"`
	Gap      float64 `yaml:"gap"` // Space between gear tooth tips and rack top
}

// EpicyclicConfig defines the small gear orbiting the logo gear.
type EpicyclicConfig struct {
	Enabled     bool    `yaml:"enabled"`
	PitchRadius float64 `yaml:"pitch_radius"`
	Addendum    float64 `yaml:"addendum"`
	Teeth       int     `yaml:"teeth"`
	Angle       float64 `yaml:"angle"`      // Orbit angle in radians from +X
	Correction  float64 `yaml:"correction"` // Subtracted from the pitch radii sum
}

// TimingConfig defines the animation timings.
type TimingConfig struct {
	StartPause time.Duration `yaml:"start_pause"`
	Fade       time.Duration `yaml:"fade"`
	Animation  time.Duration `yaml:"animation"`
	Rotation   float64       `yaml:"rotation"` // Degrees the white gear turns while rolling
}

// Overrides holds optional command-line adjustments applied on top of a
// loaded configuration. Nil fields leave the configuration untouched.
type Overrides struct {
	GearTeeth  *int
	RackTeeth  *int
	Angle      *float64
	Correction *float64
	Epicyclic  *bool
}
