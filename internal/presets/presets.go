// Package presets registers the built-in logo layouts.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/gearlogo/internal/presets"
package presets

import (
	"math"

	"github.com/vovakirdan/gearlogo/internal/config"
	"github.com/vovakirdan/gearlogo/internal/registry"
)

// Preset IDs.
const (
	Classic   = "classic"
	Epicyclic = "epicyclic"
	Meshed    = "meshed"
)

func init() {
	registry.Register(Classic, "Gear rolling along a rack", ClassicConfig)
	registry.Register(Epicyclic, "Classic with an orbiting gear", EpicyclicConfig)
	registry.Register(Meshed, "Rack sized to mesh with the gear", MeshedConfig)
}

// ClassicConfig is the logo gear and rack without the orbiting gear.
func ClassicConfig() config.LogoConfig {
	cfg := config.DefaultLogoConfig()
	cfg.Epicyclic.Enabled = false
	return cfg
}

// EpicyclicConfig adds the small gear orbiting the logo gear, tucked in by
// the logo gear's addendum.
func EpicyclicConfig() config.LogoConfig {
	cfg := config.DefaultLogoConfig()
	cfg.Epicyclic.Enabled = true
	cfg.Epicyclic.Correction = cfg.Gear.Addendum
	return cfg
}

// MeshedConfig widens the rack to the pitch circle circumference so the
// rack pitch equals the gear pitch and one full turn rolls exactly across it.
func MeshedConfig() config.LogoConfig {
	cfg := ClassicConfig()
	cfg.Rack.Teeth = cfg.Gear.Teeth
	cfg.Rack.Width = 2 * math.Pi * cfg.Gear.PitchRadius
	return cfg
}
