// Package timeline describes what animates when, as data. A Timeline is a
// list of cues, each naming an element, a property, a start, a duration and
// an easing curve. Playing the cues and evaluating curves is left to the
// animation engine that consumes them.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/vovakirdan/gearlogo/internal/config"
	"github.com/vovakirdan/gearlogo/internal/core"
	"github.com/vovakirdan/gearlogo/internal/gear"
	"github.com/vovakirdan/gearlogo/internal/layout"
)

// Property is the element property a cue changes.
type Property string

const (
	Rotation    Property = "rotation"    // Degrees
	Translation Property = "translation" // Canvas units
	Opacity     Property = "opacity"     // 0..1
)

// Curve names the easing curve the engine should apply.
type Curve string

const (
	Linear       Curve = "linear"
	QuadraticOut Curve = "quadratic-out"
)

// Cue is one time-bounded property change.
type Cue struct {
	Element  layout.ElementID `yaml:"element"`
	Start    time.Duration    `yaml:"start"`
	Duration time.Duration    `yaml:"duration"`
	Property Property         `yaml:"property"`
	Curve    Curve            `yaml:"curve"`
	Value    float64          `yaml:"value,omitempty"`  // Target rotation or opacity
	Offset   core.Vec         `yaml:"offset,omitempty"` // Translation delta
	Relative bool             `yaml:"relative,omitempty"`
}

// End returns the instant the cue finishes.
func (c Cue) End() time.Duration {
	return c.Start + c.Duration
}

// ActiveAt reports whether t falls within [Start, End).
func (c Cue) ActiveAt(t time.Duration) bool {
	return t >= c.Start && t < c.End()
}

func (c Cue) String() string {
	switch c.Property {
	case Translation:
		return fmt.Sprintf("%s %s by (%.4g, %.4g) at %v for %v (%s)",
			c.Element, c.Property, c.Offset.X, c.Offset.Y, c.Start, c.Duration, c.Curve)
	default:
		return fmt.Sprintf("%s %s to %.4g at %v for %v (%s)",
			c.Element, c.Property, c.Value, c.Start, c.Duration, c.Curve)
	}
}

// Timeline is an immutable list of cues ordered by start time.
type Timeline struct {
	cues []Cue
}

// New returns a timeline of the given cues, stably sorted by start time
// and then by element.
func New(cues ...Cue) Timeline {
	sorted := make([]Cue, len(cues))
	copy(sorted, cues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].Element < sorted[j].Element
	})
	return Timeline{cues: sorted}
}

// Build produces the logo animation for a composed scene:
//
//  1. after start_pause, the white rack fades in;
//  2. once visible, the white gear rolls onto the black gear's spot,
//     turning by timing.rotation while it travels;
//  3. the white gear and rack fade out while every other element fades in.
func Build(cfg config.LogoConfig, scene layout.Scene) (Timeline, error) {
	pause, fade, anim := cfg.Timing.StartPause, cfg.Timing.Fade, cfg.Timing.Animation
	rollStart := pause + fade
	rollEnd := rollStart + anim

	white, ok := scene.Get(layout.GearWhite)
	if !ok {
		return Timeline{}, fmt.Errorf("timeline: scene has no %s element", layout.GearWhite)
	}

	cues := []Cue{
		{Element: layout.RackWhite, Start: pause, Duration: fade, Property: Opacity, Curve: QuadraticOut, Value: 1},
		{Element: layout.GearWhite, Start: rollStart, Duration: anim, Property: Rotation, Curve: Linear, Value: cfg.Timing.Rotation},
		{Element: layout.GearWhite, Start: rollStart, Duration: anim, Property: Translation, Curve: Linear, Offset: white.Travel, Relative: true},
		{Element: layout.GearWhite, Start: rollEnd, Duration: fade, Property: Opacity, Curve: QuadraticOut, Value: 0},
		{Element: layout.RackWhite, Start: rollEnd, Duration: fade, Property: Opacity, Curve: QuadraticOut, Value: 0},
	}

	for _, id := range []layout.ElementID{layout.GearBlack, layout.RackBlack, layout.Background, layout.Epicyclic} {
		if !scene.Has(id) {
			continue
		}
		cues = append(cues, Cue{Element: id, Start: rollEnd, Duration: fade, Property: Opacity, Curve: QuadraticOut, Value: 1})
	}

	tl := New(cues...)
	if err := tl.Validate(scene); err != nil {
		return Timeline{}, err
	}
	return tl, nil
}

// Cues returns a copy of the cues in start order.
func (tl Timeline) Cues() []Cue {
	out := make([]Cue, len(tl.cues))
	copy(out, tl.cues)
	return out
}

// Len returns the number of cues.
func (tl Timeline) Len() int {
	return len(tl.cues)
}

// End returns the instant the last cue finishes.
func (tl Timeline) End() time.Duration {
	var end time.Duration
	for _, c := range tl.cues {
		if c.End() > end {
			end = c.End()
		}
	}
	return end
}

// ActiveAt returns the cues running at t.
func (tl Timeline) ActiveAt(t time.Duration) []Cue {
	var out []Cue
	for _, c := range tl.cues {
		if c.ActiveAt(t) {
			out = append(out, c)
		}
	}
	return out
}

// ForElement returns the cues of one element in start order.
func (tl Timeline) ForElement(id layout.ElementID) []Cue {
	var out []Cue
	for _, c := range tl.cues {
		if c.Element == id {
			out = append(out, c)
		}
	}
	return out
}

// Validate checks that every cue starts at or after zero, lasts a positive
// duration, targets an element of the scene, and that no two cues change
// the same property of the same element at the same time.
func (tl Timeline) Validate(scene layout.Scene) error {
	for i, c := range tl.cues {
		if c.Start < 0 {
			return cueError(i, c, "start %v must not be negative", c.Start)
		}
		if c.Duration <= 0 {
			return cueError(i, c, "duration %v must be positive", c.Duration)
		}
		if !scene.Has(c.Element) {
			return cueError(i, c, "element is not in the scene")
		}
		if c.Property == Opacity && (c.Value < 0 || c.Value > 1) {
			return cueError(i, c, "opacity %v must be within [0, 1]", c.Value)
		}
		for j := i + 1; j < len(tl.cues); j++ {
			o := tl.cues[j]
			if o.Element == c.Element && o.Property == c.Property && o.Start < c.End() && c.Start < o.End() {
				return cueError(j, o, "overlaps cue %d on the same property", i)
			}
		}
	}
	return nil
}

func cueError(i int, c Cue, format string, args ...any) error {
	return fmt.Errorf("timeline: cue %d (%s %s): %w: %s",
		i, c.Element, c.Property, gear.ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
