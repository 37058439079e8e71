package gear

// Rack is a straight gear segment with teeth along its width.
type Rack struct {
	width    float64
	height   float64
	addendum float64
	teeth    int
}

// NewRack validates the parameters and returns an immutable Rack.
func NewRack(width, height, addendum float64, teeth int) (Rack, error) {
	r := Rack{
		width:    width,
		height:   height,
		addendum: addendum,
		teeth:    teeth,
	}
	if err := r.Validate(); err != nil {
		return Rack{}, err
	}
	return r, nil
}

// MustRack is like NewRack but panics on invalid parameters.
func MustRack(width, height, addendum float64, teeth int) Rack {
	r, err := NewRack(width, height, addendum, teeth)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks the rack invariants and reports every violation.
func (r Rack) Validate() error {
	var errs ValidationErrors
	if !finite(r.width) || r.width <= 0 {
		errs = append(errs, invalid("width", "%v must be positive", r.width))
	}
	if !finite(r.height) || r.height <= 0 {
		errs = append(errs, invalid("height", "%v must be positive", r.height))
	}
	if !finite(r.addendum) || r.addendum < 0 {
		errs = append(errs, invalid("addendum", "%v must not be negative", r.addendum))
	}
	if r.teeth <= 0 {
		errs = append(errs, invalid("teeth", "%d must be positive", r.teeth))
	}
	return errs.orNil()
}

// Width returns the rack length along its teeth.
func (r Rack) Width() float64 {
	return r.width
}

// Height returns the rack thickness including teeth.
func (r Rack) Height() float64 {
	return r.height
}

// Addendum returns the tooth depth above the pitch line.
func (r Rack) Addendum() float64 {
	return r.addendum
}

// Teeth returns the number of teeth along the width.
func (r Rack) Teeth() int {
	return r.teeth
}

// Pitch returns the linear pitch: the distance along the rack taken by one
// tooth and one gap.
//
// Panics with a ValidationError on a zero-value Rack that bypassed NewRack.
func (r Rack) Pitch() float64 {
	guardTeeth(r.teeth)
	return r.width / float64(r.teeth)
}
