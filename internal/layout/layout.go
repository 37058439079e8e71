// Package layout composes a logo configuration into positioned elements.
// It is the single place where gear and rack measurements turn into
// sprite coordinates; nothing here knows about textures or drawing.
package layout

import (
	"fmt"

	"github.com/vovakirdan/gearlogo/internal/config"
	"github.com/vovakirdan/gearlogo/internal/core"
	"github.com/vovakirdan/gearlogo/internal/gear"
)

// ElementID names one positioned element of the logo.
type ElementID string

// Logo elements in draw order.
const (
	Background ElementID = "background"
	GearBlack  ElementID = "gear-black"
	GearWhite  ElementID = "gear-white"
	RackBlack  ElementID = "rack-black"
	RackWhite  ElementID = "rack-white"
	Epicyclic  ElementID = "epicyclic"
)

// assets maps elements to the image names the asset loader resolves.
var assets = map[ElementID]string{
	Background: "bg_white.png",
	GearBlack:  "rust.png",
	GearWhite:  "rust_white.png",
	RackBlack:  "rust_rack.png",
	RackWhite:  "rust_rack_white.png",
	Epicyclic:  "gear_epicyclic.png",
}

// Placement is the static state of one element before any cue runs.
type Placement struct {
	ID       ElementID `yaml:"id"`
	Asset    string    `yaml:"asset"`
	Position core.Vec  `yaml:"position"` // Centre of the element
	Size     core.Vec  `yaml:"size"`     // Bounding box width and height
	Rotation float64   `yaml:"rotation"` // Degrees
	Opacity  float64   `yaml:"opacity"`  // 0 transparent, 1 opaque
	Travel   core.Vec  `yaml:"travel,omitempty"`
}

// Bounds returns the bounding box at the initial position.
func (p Placement) Bounds() core.Rect {
	return core.RectAround(p.Position, p.Size.X, p.Size.Y)
}

// FinalBounds returns the bounding box once Travel has been applied.
func (p Placement) FinalBounds() core.Rect {
	return core.RectAround(p.Position.Add(p.Travel), p.Size.X, p.Size.Y)
}

// Geometry holds the validated model values and the derived measurements
// the placements were computed from.
type Geometry struct {
	Gear           gear.Gear
	Rack           gear.Rack
	Epicyclic      gear.Gear
	HasEpicyclic   bool
	CenterDistance float64  // Logo gear to epicyclic gear, correction applied
	Orbit          core.Vec // Epicyclic centre relative to the logo gear centre
}

// Scene is a composed logo: the canvas, the placements in draw order and
// the geometry behind them.
type Scene struct {
	Canvas   core.Rect
	Elements []Placement
	Geometry Geometry
}

// Compose validates cfg and places every element.
//
// The canvas centre c anchors the layout:
//   - background, black gear: at c
//   - white gear: at c + (rack width, 0), travelling back to c
//   - racks: at (c.X + width/2 - pitch, c.Y + outside diameter/2 + gap)
//   - epicyclic gear: at c + Polar(centre distance, angle)
func Compose(cfg config.LogoConfig) (Scene, error) {
	if err := cfg.Validate(); err != nil {
		return Scene{}, fmt.Errorf("layout: %w", err)
	}

	// Validate succeeded, so the constructors cannot fail.
	g, _ := cfg.LogoGear()
	r, _ := cfg.LogoRack()

	canvas := core.NewRect(0, 0, float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	c := canvas.Center()

	gearSize := core.V(g.OutsideDiameter(), g.OutsideDiameter())
	rackPos := core.V(
		c.X+r.Width()/2-r.Pitch(),
		c.Y+g.OutsideDiameter()/2+cfg.Rack.Gap,
	)
	rackSize := core.V(r.Width(), r.Height())

	scene := Scene{
		Canvas: canvas,
		Geometry: Geometry{
			Gear: g,
			Rack: r,
		},
	}

	scene.Elements = []Placement{
		place(Background, c, core.V(canvas.Width(), canvas.Height()), 0),
		place(GearBlack, c, gearSize, 0),
		{
			ID:       GearWhite,
			Asset:    assets[GearWhite],
			Position: c.Add(core.V(r.Width(), 0)),
			Size:     gearSize,
			Opacity:  1,
			Travel:   core.V(-r.Width(), 0),
		},
		place(RackBlack, rackPos, rackSize, 0),
		place(RackWhite, rackPos, rackSize, 0),
	}

	if cfg.Epicyclic.Enabled {
		e, _ := cfg.EpicyclicGear()
		orbit := EpicyclicOffset(g, e, cfg.Epicyclic.Correction, cfg.Epicyclic.Angle)

		scene.Geometry.Epicyclic = e
		scene.Geometry.HasEpicyclic = true
		scene.Geometry.CenterDistance = gear.CenterDistance(g, e, cfg.Epicyclic.Correction)
		scene.Geometry.Orbit = orbit

		size := core.V(e.OutsideDiameter(), e.OutsideDiameter())
		scene.Elements = append(scene.Elements, place(Epicyclic, c.Add(orbit), size, 0))
	}

	return scene, nil
}

// EpicyclicOffset returns the centre of the orbiting gear relative to the
// logo gear centre: the corrected centre distance turned by angle radians.
func EpicyclicOffset(logo, epicyclic gear.Gear, correction, angle float64) core.Vec {
	return core.Polar(gear.CenterDistance(logo, epicyclic, correction), angle)
}

func place(id ElementID, pos, size core.Vec, opacity float64) Placement {
	return Placement{
		ID:       id,
		Asset:    assets[id],
		Position: pos,
		Size:     size,
		Opacity:  opacity,
	}
}

// Get returns the placement of an element and whether it is in the scene.
func (s Scene) Get(id ElementID) (Placement, bool) {
	for _, p := range s.Elements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// Has reports whether the element is part of the scene.
func (s Scene) Has(id ElementID) bool {
	_, ok := s.Get(id)
	return ok
}

// Bounds returns the box covering every element at its initial and final
// positions.
func (s Scene) Bounds() core.Rect {
	b := s.Canvas
	for _, p := range s.Elements {
		b = b.Union(p.Bounds()).Union(p.FinalBounds())
	}
	return b
}
