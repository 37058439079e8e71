package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/gearlogo/internal/gear"
)

// LogoGear constructs the validated logo gear.
func (c LogoConfig) LogoGear() (gear.Gear, error) {
	g, err := gear.NewGear(c.Gear.PitchRadius, c.Gear.Addendum, c.Gear.Teeth)
	if err != nil {
		return gear.Gear{}, fmt.Errorf("config: gear: %w", err)
	}
	return g, nil
}

// LogoRack constructs the validated rack.
func (c LogoConfig) LogoRack() (gear.Rack, error) {
	r, err := gear.NewRack(c.Rack.Width, c.Rack.Height, c.Rack.Addendum, c.Rack.Teeth)
	if err != nil {
		return gear.Rack{}, fmt.Errorf("config: rack: %w", err)
	}
	return r, nil
}

// EpicyclicGear constructs the validated orbiting gear.
// It ignores Epicyclic.Enabled.
func (c LogoConfig) EpicyclicGear() (gear.Gear, error) {
	e := c.Epicyclic
	g, err := gear.NewGear(e.PitchRadius, e.Addendum, e.Teeth)
	if err != nil {
		return gear.Gear{}, fmt.Errorf("config: epicyclic: %w", err)
	}
	return g, nil
}

// Validate checks the whole configuration and joins every failure.
// All failures match gear.ErrInvalidConfiguration.
func (c LogoConfig) Validate() error {
	var errs []error

	if _, err := c.LogoGear(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogoRack(); err != nil {
		errs = append(errs, err)
	}
	var fields gear.ValidationErrors

	if c.Epicyclic.Enabled {
		if _, err := c.EpicyclicGear(); err != nil {
			errs = append(errs, err)
		} else if d, ok := c.epicyclicDistance(); ok && d <= 0 {
			fields = append(fields, invalidField("epicyclic.correction",
				"%v leaves a centre distance of %v, must be positive", c.Epicyclic.Correction, d))
		}
	}

	if c.Canvas.Width <= 0 {
		fields = append(fields, invalidField("canvas.width", "%d must be positive", c.Canvas.Width))
	}
	if c.Canvas.Height <= 0 {
		fields = append(fields, invalidField("canvas.height", "%d must be positive", c.Canvas.Height))
	}
	if !finite(c.Rack.Gap) {
		fields = append(fields, invalidField("rack.gap", "%v must be finite", c.Rack.Gap))
	}
	if !finite(c.Epicyclic.Angle) {
		fields = append(fields, invalidField("epicyclic.angle", "%v must be finite", c.Epicyclic.Angle))
	}
	if !finite(c.Epicyclic.Correction) {
		fields = append(fields, invalidField("epicyclic.correction", "%v must be finite", c.Epicyclic.Correction))
	}
	if c.Timing.StartPause < 0 {
		fields = append(fields, invalidField("timing.start_pause", "%v must not be negative", c.Timing.StartPause))
	}
	if c.Timing.Fade <= 0 {
		fields = append(fields, invalidField("timing.fade", "%v must be positive", c.Timing.Fade))
	}
	if c.Timing.Animation <= 0 {
		fields = append(fields, invalidField("timing.animation", "%v must be positive", c.Timing.Animation))
	}
	if !finite(c.Timing.Rotation) {
		fields = append(fields, invalidField("timing.rotation", "%v must be finite", c.Timing.Rotation))
	}
	if len(fields) > 0 {
		errs = append(errs, fmt.Errorf("config: %w", fields))
	}

	return errors.Join(errs...)
}

// epicyclicDistance returns the corrected centre distance between the logo
// gear and the orbiting gear, or false when either gear is invalid.
func (c LogoConfig) epicyclicDistance() (float64, bool) {
	g, err := c.LogoGear()
	if err != nil {
		return 0, false
	}
	e, err := c.EpicyclicGear()
	if err != nil {
		return 0, false
	}
	return gear.CenterDistance(g, e, c.Epicyclic.Correction), true
}

func invalidField(field, format string, args ...any) gear.ValidationError {
	return gear.ValidationError{
		Code:    gear.CodeInvalidConfiguration,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
