package gear

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestNewGearLogoScenario(t *testing.T) {
	g, err := NewGear(69, 3, 32)
	if err != nil {
		t.Fatalf("NewGear() failed: %v", err)
	}

	if got := g.AddendumCircleRadius(); got != 72 {
		t.Errorf("AddendumCircleRadius() = %v, want 72", got)
	}
	if got := g.OutsideDiameter(); got != 144 {
		t.Errorf("OutsideDiameter() = %v, want 144", got)
	}

	want := 2 * math.Pi * 69 / 32
	if got := g.Pitch(); math.Abs(got-want) > eps {
		t.Errorf("Pitch() = %v, want %v", got, want)
	}
	if got := g.Pitch(); math.Abs(got-13.5475) > 1e-3 {
		t.Errorf("Pitch() = %v, want about 13.5475", got)
	}
}

func TestNewGearInvalid(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		add    float64
		teeth  int
		fields []string
	}{
		{"zero teeth", 69, 3, 0, []string{"teeth"}},
		{"negative teeth", 69, 3, -4, []string{"teeth"}},
		{"zero radius", 0, 3, 32, []string{"pitch_radius"}},
		{"negative addendum", 69, -1, 32, []string{"addendum"}},
		{"NaN radius", math.NaN(), 3, 32, []string{"pitch_radius"}},
		{"infinite addendum", 69, math.Inf(1), 32, []string{"addendum"}},
		{"everything wrong", -1, -1, 0, []string{"pitch_radius", "addendum", "teeth"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGear(tc.radius, tc.add, tc.teeth)
			if err == nil {
				t.Fatal("NewGear() succeeded, expected error")
			}
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("error %v does not match ErrInvalidConfiguration", err)
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("error %T is not ValidationErrors", err)
			}
			if len(verrs) != len(tc.fields) {
				t.Fatalf("got %d violations, want %d: %v", len(verrs), len(tc.fields), verrs)
			}
			for i, f := range tc.fields {
				if verrs[i].Field != f {
					t.Errorf("violation %d field = %q, want %q", i, verrs[i].Field, f)
				}
				if verrs[i].Code != CodeInvalidConfiguration {
					t.Errorf("violation %d code = %q", i, verrs[i].Code)
				}
			}
		})
	}
}

func TestAddendumCircleRadiusBound(t *testing.T) {
	tests := []struct {
		radius, add float64
	}{
		{69, 3},
		{33, 0},
		{0.5, 10},
		{1000, 0.001},
	}

	for _, tc := range tests {
		g := MustGear(tc.radius, tc.add, 12)
		got := g.AddendumCircleRadius()
		if got < g.PitchCircleRadius() {
			t.Errorf("AddendumCircleRadius() = %v < pitch radius %v", got, g.PitchCircleRadius())
		}
		if (got == g.PitchCircleRadius()) != (tc.add == 0) {
			t.Errorf("equality with pitch radius should hold only for zero addendum (addendum %v)", tc.add)
		}
	}
}

func TestGearPitchDecreasesWithTeeth(t *testing.T) {
	prev := math.Inf(1)
	for teeth := 1; teeth <= 64; teeth++ {
		p := MustGear(69, 3, teeth).Pitch()
		if p >= prev {
			t.Fatalf("Pitch() with %d teeth = %v, not below %v", teeth, p, prev)
		}
		prev = p
	}
}

func TestGearPitchScales(t *testing.T) {
	base := MustGear(69, 3, 32).Pitch()
	for _, k := range []float64{0.1, 0.5, 2, 3.68, 10} {
		got := MustGear(69*k, 3, 32).Pitch()
		if math.Abs(got-k*base) > 1e-9*k*base {
			t.Errorf("scale %v: Pitch() = %v, want %v", k, got, k*base)
		}
	}
}

func TestZeroValueGearPitchPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Pitch() on zero Gear did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("panic value %v is not an invalid configuration error", r)
		}
	}()
	var g Gear
	_ = g.Pitch()
}

func TestZeroValueGearValidate(t *testing.T) {
	var g Gear
	if err := g.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Validate() = %v, want invalid configuration", err)
	}
}

func TestMustGearPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGear() with zero teeth did not panic")
		}
	}()
	MustGear(69, 3, 0)
}
