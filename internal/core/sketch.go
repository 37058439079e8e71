package core

import (
	"math"
	"strings"
)

// Cell is one character of a sketch.
type Cell struct {
	Rune  rune
	Color Color
}

// Sketch is a character buffer that draws canvas-space shapes at terminal
// resolution. Terminal cells are roughly twice as tall as they are wide, so
// the projection halves the vertical scale.
type Sketch struct {
	width  int
	height int
	cells  [][]Cell
	scale  float64 // Cells per canvas unit, horizontally
	origin Vec     // Canvas point mapped to cell (0, 0)
}

// NewSketch creates a sketch of width x height cells showing the view
// rectangle of canvas space, scaled uniformly to fit.
func NewSketch(width, height int, view Rect) *Sketch {
	s := &Sketch{
		width:  max(width, 0),
		height: max(height, 0),
		origin: view.Min,
	}
	if view.Width() > 0 && view.Height() > 0 {
		s.scale = math.Min(float64(s.width)/view.Width(), 2*float64(s.height)/view.Height())
	}
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear()
	return s
}

// Width returns the sketch width in cells.
func (s *Sketch) Width() int {
	return s.width
}

// Height returns the sketch height in cells.
func (s *Sketch) Height() int {
	return s.height
}

// Clear fills the sketch with blank cells.
func (s *Sketch) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Project maps a canvas point to cell coordinates.
func (s *Sketch) Project(p Vec) (x, y int) {
	d := p.Sub(s.origin)
	return int(math.Floor(d.X * s.scale)), int(math.Floor(d.Y * s.scale / 2))
}

// Set places a rune at a cell. Out-of-bounds cells are silently ignored.
func (s *Sketch) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the cell at the given position, blank when out of bounds.
func (s *Sketch) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string starting at the cell of canvas point p.
func (s *Sketch) DrawText(p Vec, text string, c Color) {
	x, y := s.Project(p)
	for i, r := range []rune(text) {
		s.Set(x+i, y, r, c)
	}
}

// DrawBox outlines a canvas rectangle with box-drawing characters.
func (s *Sketch) DrawBox(r Rect, c Color) {
	x0, y0 := s.Project(r.Min)
	x1, y1 := s.Project(r.Max)
	x1, y1 = max(x1-1, x0), max(y1-1, y0)

	for x := x0 + 1; x < x1; x++ {
		s.Set(x, y0, '─', c)
		s.Set(x, y1, '─', c)
	}
	for y := y0 + 1; y < y1; y++ {
		s.Set(x0, y, '│', c)
		s.Set(x1, y, '│', c)
	}
	s.Set(x0, y0, '┌', c)
	s.Set(x1, y0, '┐', c)
	s.Set(x0, y1, '└', c)
	s.Set(x1, y1, '┘', c)
}

// DrawCircle outlines a canvas circle.
func (s *Sketch) DrawCircle(center Vec, radius float64, r rune, c Color) {
	// One step per cell along the circumference is enough to close the outline.
	steps := max(int(2*math.Pi*radius*s.scale), 8)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := s.Project(center.Add(Polar(radius, a)))
		s.Set(x, y, r, c)
	}
}

// DrawLine draws a straight canvas segment.
func (s *Sketch) DrawLine(from, to Vec, r rune, c Color) {
	x0, y0 := s.Project(from)
	x1, y1 := s.Project(to)
	steps := max(abs(x1-x0), abs(y1-y0), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.Set(x0+int(math.Round(float64(x1-x0)*t)), y0+int(math.Round(float64(y1-y0)*t)), r, c)
	}
}

// String returns the runes of the sketch, one line per row.
func (s *Sketch) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.width {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of one row.
func (s *Sketch) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
