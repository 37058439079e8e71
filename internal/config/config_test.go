package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gearlogo/internal/gear"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultLogoConfig() {
		t.Errorf("embedded default differs from DefaultLogoConfig():\n%+v\n%+v", cfg, DefaultLogoConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultLogoConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultLogoConfig()

	g, err := cfg.LogoGear()
	if err != nil {
		t.Fatalf("LogoGear() failed: %v", err)
	}
	if g.AddendumCircleRadius() != 72 {
		t.Errorf("AddendumCircleRadius() = %v, want 72", g.AddendumCircleRadius())
	}

	r, err := cfg.LogoRack()
	if err != nil {
		t.Fatalf("LogoRack() failed: %v", err)
	}
	if r.Pitch() != 12.0625 {
		t.Errorf("rack Pitch() = %v, want 12.0625", r.Pitch())
	}

	e, err := cfg.EpicyclicGear()
	if err != nil {
		t.Fatalf("EpicyclicGear() failed: %v", err)
	}
	if d := gear.CenterDistance(g, e, cfg.Epicyclic.Correction); d != 99 {
		t.Errorf("CenterDistance() = %v, want 99", d)
	}
	if math.Abs(cfg.Epicyclic.Angle-math.Pi/3.68) > 1e-15 {
		t.Errorf("Angle = %v, want pi/3.68", cfg.Epicyclic.Angle)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	doc := `
gear:
  teeth: 24
timing:
  animation: 4.5s
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Gear.Teeth != 24 {
		t.Errorf("Gear.Teeth = %d, want 24", cfg.Gear.Teeth)
	}
	if cfg.Gear.PitchRadius != 69 {
		t.Errorf("Gear.PitchRadius = %v, want default 69", cfg.Gear.PitchRadius)
	}
	if cfg.Timing.Animation != 4500*time.Millisecond {
		t.Errorf("Timing.Animation = %v, want 4.5s", cfg.Timing.Animation)
	}
	if cfg.Timing.Fade != 800*time.Millisecond {
		t.Errorf("Timing.Fade = %v, want default 800ms", cfg.Timing.Fade)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("gear: [unclosed")); err == nil {
		t.Error("Parse() of broken YAML should fail")
	}
}

func TestMarshalRoundTripKeepsDurations(t *testing.T) {
	data, err := Marshal(DefaultLogoConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "start_pause: 500ms") {
		t.Errorf("durations should be written as strings, got:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != DefaultLogoConfig() {
		t.Errorf("round trip changed the config: %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("rack:\n  teeth: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rack.Teeth != 30 {
		t.Errorf("Rack.Teeth = %d, want 30", cfg.Rack.Teeth)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("canvas: {width: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of unparsable custom path should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".gearlogo", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "logo.yaml"), []byte("canvas:\n  width: 800\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Canvas.Width != 800 {
		t.Errorf("Canvas.Width = %d, want 800 from user config", cfg.Canvas.Width)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultLogoConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestValidateReportsEverySection(t *testing.T) {
	cfg := DefaultLogoConfig()
	cfg.Gear.Teeth = 0
	cfg.Rack.Teeth = -1
	cfg.Epicyclic.PitchRadius = 0
	cfg.Canvas.Width = 0
	cfg.Timing.Fade = 0

	err := cfg.Validate()
	if !errors.Is(err, gear.ErrInvalidConfiguration) {
		t.Fatalf("Validate() = %v, want invalid configuration", err)
	}
	for _, want := range []string{"config: gear", "config: rack", "config: epicyclic", "canvas.width", "timing.fade"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestValidateSkipsDisabledEpicyclic(t *testing.T) {
	cfg := DefaultLogoConfig()
	cfg.Epicyclic.Enabled = false
	cfg.Epicyclic.Teeth = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, disabled epicyclic gear should not be checked", err)
	}
}

func TestValidateRejectsOvercorrectedOrbit(t *testing.T) {
	tests := []struct {
		name       string
		correction float64
		enabled    bool
		wantErr    bool
	}{
		{"tucked", 3, true, false},
		{"just short of touching centres", 101.5, true, false},
		{"centres coincide", 102, true, true},
		{"past the logo gear centre", 150, true, true},
		{"disabled gear is not checked", 150, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLogoConfig()
			cfg.Epicyclic.Enabled = tc.enabled
			cfg.Epicyclic.Correction = tc.correction

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, gear.ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, want invalid configuration", err)
			}
			if !strings.Contains(err.Error(), "epicyclic.correction") {
				t.Errorf("error %q does not name epicyclic.correction", err)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultLogoConfig()
	teeth, angle, off := 20, math.Pi/4, false

	ApplyOverrides(&cfg, Overrides{GearTeeth: &teeth, Angle: &angle, Epicyclic: &off})

	if cfg.Gear.Teeth != 20 {
		t.Errorf("Gear.Teeth = %d, want 20", cfg.Gear.Teeth)
	}
	if cfg.Epicyclic.Angle != math.Pi/4 {
		t.Errorf("Epicyclic.Angle = %v, want pi/4", cfg.Epicyclic.Angle)
	}
	if cfg.Epicyclic.Enabled {
		t.Error("Epicyclic.Enabled should be false")
	}
	if cfg.Rack.Teeth != 32 || cfg.Epicyclic.Correction != 3 {
		t.Error("nil overrides must leave fields untouched")
	}
}
