package core

import (
	"strings"
	"testing"
)

func TestNewSketch(t *testing.T) {
	s := NewSketch(80, 24, NewRect(0, 0, 540, 360))

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if got := s.Row(y); got != strings.Repeat(" ", 80) {
			t.Fatalf("row %d not blank: %q", y, got)
		}
	}
}

func TestSketchNegativeSize(t *testing.T) {
	s := NewSketch(-1, -5, NewRect(0, 0, 10, 10))
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestSketchProject(t *testing.T) {
	// 100x50 canvas units on 20x5 cells: 0.2 cells per unit across, 0.1 down.
	s := NewSketch(20, 5, NewRect(0, 0, 100, 50))

	tests := []struct {
		p    Vec
		x, y int
	}{
		{V(0, 0), 0, 0},
		{V(50, 25), 10, 2},
		{V(99, 49), 19, 4},
		{V(-10, 0), -2, 0},
	}
	for _, tt := range tests {
		x, y := s.Project(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("Project(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestSketchProjectOffsetView(t *testing.T) {
	s := NewSketch(10, 5, NewRect(100, 100, 10, 10))
	if x, y := s.Project(V(100, 100)); x != 0 || y != 0 {
		t.Errorf("view origin projects to (%d, %d), expected (0, 0)", x, y)
	}
}

func TestSketchSetGet(t *testing.T) {
	s := NewSketch(10, 10, NewRect(0, 0, 10, 20))

	s.Set(5, 5, 'X', ColorGear)
	if got := s.Get(5, 5); got.Rune != 'X' || got.Color != ColorGear {
		t.Errorf("Get(5, 5) = %+v, expected X/gear", got)
	}

	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	if s.Get(-1, 0).Rune != ' ' || s.Get(0, 100).Rune != ' ' {
		t.Error("Out of bounds Get should return a blank cell")
	}
}

func TestSketchDrawBox(t *testing.T) {
	s := NewSketch(10, 5, NewRect(0, 0, 10, 10))
	s.DrawBox(NewRect(0, 0, 10, 10), ColorFrame)

	want := []string{
		"┌────────┐",
		"│        │",
		"│        │",
		"│        │",
		"└────────┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, expected %q", y, got, row)
		}
	}
}

func TestSketchDrawCircle(t *testing.T) {
	s := NewSketch(20, 10, NewRect(0, 0, 20, 20))
	s.DrawCircle(V(10, 10), 8, 'o', ColorGear)

	// Rightmost and leftmost points of the outline.
	if s.Get(18, 5).Rune != 'o' {
		t.Errorf("expected outline at (18, 5), got %q", s.Get(18, 5).Rune)
	}
	if s.Get(2, 5).Rune != 'o' {
		t.Errorf("expected outline at (2, 5), got %q", s.Get(2, 5).Rune)
	}
	// Centre stays empty.
	if s.Get(10, 5).Rune != ' ' {
		t.Errorf("expected empty centre, got %q", s.Get(10, 5).Rune)
	}
}

func TestSketchDrawLine(t *testing.T) {
	s := NewSketch(10, 5, NewRect(0, 0, 10, 10))
	s.DrawLine(V(0, 4), V(9, 4), '.', ColorTravel)

	if got := s.Row(2); got != ".........." {
		t.Errorf("row 2 = %q, expected a full line", got)
	}
}

func TestSketchDrawText(t *testing.T) {
	s := NewSketch(10, 3, NewRect(0, 0, 10, 6))
	s.DrawText(V(2, 2), "gear", ColorGear)

	if got := s.Row(1); got != "  gear    " {
		t.Errorf("row 1 = %q", got)
	}
	if s.Get(2, 1).Color != ColorGear {
		t.Error("text should carry its color")
	}
}

func TestSketchString(t *testing.T) {
	s := NewSketch(3, 2, NewRect(0, 0, 3, 4))
	s.Set(0, 0, 'a', ColorDefault)
	s.Set(2, 1, 'b', ColorDefault)

	if got, want := s.String(), "a  \n  b"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
