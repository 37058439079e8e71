package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gearlogo/internal/config"
	"github.com/vovakirdan/gearlogo/internal/layout"
	"github.com/vovakirdan/gearlogo/internal/presets"
	"github.com/vovakirdan/gearlogo/internal/registry"
	"github.com/vovakirdan/gearlogo/internal/storage"
	"github.com/vovakirdan/gearlogo/internal/timeline"
)

func composeDefault(t *testing.T) layout.Scene {
	t.Helper()
	scene, err := layout.Compose(config.DefaultLogoConfig())
	if err != nil {
		t.Fatalf("Compose() failed: %v", err)
	}
	return scene
}

func TestBaseConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.yaml")
	if err := os.WriteFile(path, []byte("gear:\n  teeth: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := baseConfig("", path, "")
	if err != nil {
		t.Fatalf("baseConfig() failed: %v", err)
	}
	if cfg.Gear.Teeth != 24 {
		t.Errorf("Gear.Teeth = %d, want 24", cfg.Gear.Teeth)
	}
}

func TestBaseConfigBuiltinPreset(t *testing.T) {
	cfg, err := baseConfig(presets.Meshed, "", filepath.Join(t.TempDir(), "p.db"))
	if err != nil {
		t.Fatalf("baseConfig() failed: %v", err)
	}
	if cfg != presets.MeshedConfig() {
		t.Errorf("baseConfig(meshed) = %+v", cfg)
	}
}

func TestBaseConfigStoredPreset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "p.db")
	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	want := config.DefaultLogoConfig()
	want.Rack.Teeth = 40
	if _, err := store.SavePreset("mine", want); err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}
	store.Close()

	got, err := baseConfig("mine", "", db)
	if err != nil {
		t.Fatalf("baseConfig() failed: %v", err)
	}
	if got != want {
		t.Errorf("baseConfig(mine) = %+v, want %+v", got, want)
	}
}

func TestBaseConfigErrors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "p.db")

	if _, err := baseConfig("missing", "", db); err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("unknown preset error = %v", err)
	}
	if _, err := baseConfig(presets.Classic, "logo.yaml", db); err == nil {
		t.Error("--config with --preset should fail")
	}
}

func TestWriteMeasurements(t *testing.T) {
	var buf bytes.Buffer
	writeMeasurements(&buf, composeDefault(t).Geometry)

	out := buf.String()
	for _, want := range []string{"gear.addendum_radius", "72.0000", "rack.pitch", "12.0625", "10.97%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteLayoutText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeLayout(&buf, composeDefault(t), "text"); err != nil {
		t.Fatalf("writeLayout() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Canvas 540x360", "gear-white", "(656.0000, 180.0000)", "(-386.00, 0.00)", "warning: rack-white"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteLayoutYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeLayout(&buf, composeDefault(t), "yaml"); err != nil {
		t.Fatalf("writeLayout() failed: %v", err)
	}

	var doc layoutDocument
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if doc.Canvas.Width != 540 || doc.Canvas.Height != 360 {
		t.Errorf("canvas = %+v", doc.Canvas)
	}
	if len(doc.Elements) != 5 {
		t.Errorf("got %d elements, want 5", len(doc.Elements))
	}
	if doc.Elements[2].ID != layout.GearWhite || doc.Elements[2].Position.X != 656 {
		t.Errorf("white gear = %+v", doc.Elements[2])
	}
	if len(doc.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(doc.Warnings))
	}
}

func TestWriteLayoutUnknownFormat(t *testing.T) {
	if err := writeLayout(&bytes.Buffer{}, composeDefault(t), "json"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestWriteCues(t *testing.T) {
	scene := composeDefault(t)
	tl, err := timeline.Build(config.DefaultLogoConfig(), scene)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	var buf bytes.Buffer
	writeCues(&buf, tl.Cues(), tl.End())
	out := buf.String()
	for _, want := range []string{"rack-white", "quadratic-out", "by (-386, 0)", "Total 8.1s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	writeCues(&buf, tl.ActiveAt(10*time.Second), tl.End())
	if !strings.Contains(buf.String(), "No cues.") {
		t.Errorf("empty cue list output = %q", buf.String())
	}
}

func TestWritePresetList(t *testing.T) {
	var buf bytes.Buffer
	writePresetList(&buf, registry.List(), []storage.PresetEntry{{Name: "mine", UpdatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)}})

	out := buf.String()
	for _, want := range []string{presets.Classic, presets.Epicyclic, presets.Meshed, "mine", "Jan 02 15:04"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExecuteConfigWithOverrides(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"config",
		"--preset", presets.Epicyclic,
		"--gear-teeth", "24",
		"--db", filepath.Join(t.TempDir(), "p.db"),
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	cfg, err := config.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("output is not a config: %v\n%s", err, buf.String())
	}
	if cfg.Gear.Teeth != 24 {
		t.Errorf("Gear.Teeth = %d, want 24", cfg.Gear.Teeth)
	}
	if !cfg.Epicyclic.Enabled {
		t.Error("epicyclic preset not applied")
	}
	if cfg.Rack.Teeth != 32 {
		t.Errorf("Rack.Teeth = %d, want the untouched 32", cfg.Rack.Teeth)
	}
}
