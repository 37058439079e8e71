package layout

import (
	"fmt"

	"github.com/vovakirdan/gearlogo/internal/gear"
)

// Measurement is one derived quantity of the scene geometry.
type Measurement struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit,omitempty"`
}

// FormatValue renders the value for display in its unit.
func (m Measurement) FormatValue() string {
	switch m.Unit {
	case "teeth":
		return fmt.Sprintf("%.0f", m.Value)
	case "%":
		return fmt.Sprintf("%.2f%%", m.Value)
	default:
		return fmt.Sprintf("%.4f", m.Value)
	}
}

// Measurements lists the derived quantities of the gear, the rack and,
// when present, the epicyclic gear. Lengths are in canvas units.
func (g Geometry) Measurements() []Measurement {
	ms := []Measurement{
		{Name: "gear.teeth", Value: float64(g.Gear.Teeth()), Unit: "teeth"},
		{Name: "gear.pitch_radius", Value: g.Gear.PitchCircleRadius()},
		{Name: "gear.addendum_radius", Value: g.Gear.AddendumCircleRadius()},
		{Name: "gear.outside_diameter", Value: g.Gear.OutsideDiameter()},
		{Name: "gear.pitch", Value: g.Gear.Pitch()},
		{Name: "rack.teeth", Value: float64(g.Rack.Teeth()), Unit: "teeth"},
		{Name: "rack.width", Value: g.Rack.Width()},
		{Name: "rack.pitch", Value: g.Rack.Pitch()},
		{Name: "rack.pitch_mismatch", Value: 100 * gear.PitchMismatch(g.Rack.Pitch(), g.Gear.Pitch()), Unit: "%"},
	}
	if !g.HasEpicyclic {
		return ms
	}
	return append(ms,
		Measurement{Name: "epicyclic.teeth", Value: float64(g.Epicyclic.Teeth()), Unit: "teeth"},
		Measurement{Name: "epicyclic.addendum_radius", Value: g.Epicyclic.AddendumCircleRadius()},
		Measurement{Name: "epicyclic.pitch", Value: g.Epicyclic.Pitch()},
		Measurement{Name: "epicyclic.pitch_mismatch", Value: 100 * gear.PitchMismatch(g.Epicyclic.Pitch(), g.Gear.Pitch()), Unit: "%"},
		Measurement{Name: "epicyclic.center_distance", Value: g.CenterDistance},
		Measurement{Name: "epicyclic.orbit_x", Value: g.Orbit.X},
		Measurement{Name: "epicyclic.orbit_y", Value: g.Orbit.Y},
	)
}

// Measurement returns the named measurement and whether it exists.
func (g Geometry) Measurement(name string) (Measurement, bool) {
	for _, m := range g.Measurements() {
		if m.Name == name {
			return m, true
		}
	}
	return Measurement{}, false
}
