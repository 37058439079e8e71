// Package gear models the gears and racks of the logo. It computes the
// derived measurements (addendum circle radius, circular and linear pitch,
// centre distance) that decide where each part must sit for the teeth to
// look meshed. Values are immutable once constructed and contain no
// rendering knowledge.
package gear

import (
	"math"
)

// Gear is a circular gear described by its pitch circle.
type Gear struct {
	pitchCircleRadius float64
	addendum          float64
	teeth             int
}

// NewGear validates the parameters and returns an immutable Gear.
// Fails with ErrInvalidConfiguration when pitchCircleRadius <= 0,
// addendum < 0, teeth <= 0 or any value is not finite.
func NewGear(pitchCircleRadius, addendum float64, teeth int) (Gear, error) {
	g := Gear{
		pitchCircleRadius: pitchCircleRadius,
		addendum:          addendum,
		teeth:             teeth,
	}
	if err := g.Validate(); err != nil {
		return Gear{}, err
	}
	return g, nil
}

// MustGear is like NewGear but panics on invalid parameters.
// Intended for package-level literals and tests.
func MustGear(pitchCircleRadius, addendum float64, teeth int) Gear {
	g, err := NewGear(pitchCircleRadius, addendum, teeth)
	if err != nil {
		panic(err)
	}
	return g
}

// Validate checks the gear invariants and reports every violation.
func (g Gear) Validate() error {
	var errs ValidationErrors
	if !finite(g.pitchCircleRadius) || g.pitchCircleRadius <= 0 {
		errs = append(errs, invalid("pitch_radius", "%v must be positive", g.pitchCircleRadius))
	}
	if !finite(g.addendum) || g.addendum < 0 {
		errs = append(errs, invalid("addendum", "%v must not be negative", g.addendum))
	}
	if g.teeth <= 0 {
		errs = append(errs, invalid("teeth", "%d must be positive", g.teeth))
	}
	return errs.orNil()
}

// PitchCircleRadius returns the radius of the pitch circle.
func (g Gear) PitchCircleRadius() float64 {
	return g.pitchCircleRadius
}

// Addendum returns the radial distance from the pitch circle to the tooth tip.
func (g Gear) Addendum() float64 {
	return g.addendum
}

// Teeth returns the number of teeth.
func (g Gear) Teeth() int {
	return g.teeth
}

// AddendumCircleRadius returns the radius of the circle through the tooth tips.
// Always >= PitchCircleRadius, equal only when the addendum is zero.
func (g Gear) AddendumCircleRadius() float64 {
	return g.pitchCircleRadius + g.addendum
}

// OutsideDiameter returns the tip-to-tip diameter, i.e. the sprite height
// of a gear drawn edge to edge.
func (g Gear) OutsideDiameter() float64 {
	return 2 * g.AddendumCircleRadius()
}

// Pitch returns the circular pitch: the arc length along the pitch circle
// taken by one tooth and one gap.
//
// Panics with a ValidationError on a zero-value Gear that bypassed NewGear.
func (g Gear) Pitch() float64 {
	guardTeeth(g.teeth)
	return 2 * math.Pi * g.pitchCircleRadius / float64(g.teeth)
}

// guardTeeth stops a division by a non-positive tooth count from leaking
// NaN or Inf into sprite placement.
func guardTeeth(teeth int) {
	if teeth <= 0 {
		panic(invalid("teeth", "%d must be positive", teeth))
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
