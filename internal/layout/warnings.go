package layout

import (
	"fmt"

	"github.com/vovakirdan/gearlogo/internal/gear"
)

// PitchTolerance is the relative pitch difference above which the rack and
// the logo gear are reported as not meshing.
const PitchTolerance = 0.10

// Warning is an advisory finding about a composed scene. Warnings never
// block composition.
type Warning struct {
	Element ElementID
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Element, w.Message)
}

// Warnings inspects the scene for layouts that compose but will look wrong.
func (s Scene) Warnings() []Warning {
	var warnings []Warning

	for _, p := range s.Elements {
		if !s.Canvas.Intersects(p.FinalBounds()) {
			warnings = append(warnings, Warning{
				Element: p.ID,
				Message: "lies entirely outside the canvas at the end of the animation",
			})
		}
	}

	g, r := s.Geometry.Gear, s.Geometry.Rack
	if m := gear.PitchMismatch(g.Pitch(), r.Pitch()); m > PitchTolerance {
		warnings = append(warnings, Warning{
			Element: RackWhite,
			Message: fmt.Sprintf("rack pitch %.4f differs from gear pitch %.4f by %.1f%%",
				r.Pitch(), g.Pitch(), m*100),
		})
	}

	if s.Geometry.HasEpicyclic {
		epi, _ := s.Get(Epicyclic)
		rack, _ := s.Get(RackBlack)
		if epi.FinalBounds().Intersects(rack.FinalBounds()) {
			warnings = append(warnings, Warning{
				Element: Epicyclic,
				Message: "overlaps the rack",
			})
		}

		e := s.Geometry.Epicyclic
		if m := gear.PitchMismatch(g.Pitch(), e.Pitch()); m > PitchTolerance {
			warnings = append(warnings, Warning{
				Element: Epicyclic,
				Message: fmt.Sprintf("pitch %.4f differs from logo gear pitch %.4f by %.1f%%",
					e.Pitch(), g.Pitch(), m*100),
			})
		}
	}

	return warnings
}
