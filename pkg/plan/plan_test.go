package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
)

func TestBoundsExtend(t *testing.T) {
	var b Bounds
	if b.Valid() {
		t.Error("zero bounds should not be valid")
	}
	b.Extend(geo.Pt(1, 2))
	if b.Valid() {
		t.Error("single point spans no area")
	}
	b.Extend(geo.Pt(5, 8))
	if !b.Valid() {
		t.Fatal("two distinct points should form valid bounds")
	}
	if b.Width() != 4 || b.Height() != 6 {
		t.Errorf("unexpected extent: %v x %v", b.Width(), b.Height())
	}
}

func TestBoundsIgnoresNonFinite(t *testing.T) {
	b := NewBounds(0, 0, 10, 10)
	b.Extend(geo.Pt(1e18, 1e18)) // finite, grows
	if b.MaxX != 1e18 {
		t.Error("finite point should extend bounds")
	}
	before := b
	b.Extend(geo.Point2D{X: 1, Y: floatNaN()})
	if b != before {
		t.Error("NaN point must not change bounds")
	}
}

func floatNaN() float64 {
	z := 0.0
	return z / z
}

func TestDefaultBounds(t *testing.T) {
	b := DefaultBounds()
	if !b.Valid() {
		t.Fatal("default bounds must be valid")
	}
	if b.Width() != 100 || b.Height() != 100 {
		t.Errorf("unexpected default extent: %v x %v", b.Width(), b.Height())
	}
}

func TestParamsWithDefaults(t *testing.T) {
	p := Params{}.WithDefaults()
	if p.TotalUnits != 50 {
		t.Errorf("TotalUnits default = %d", p.TotalUnits)
	}
	if p.EntranceClearance != 1.0 || p.MinUnitClearance != 0.5 {
		t.Errorf("clearance defaults = %v / %v", p.EntranceClearance, p.MinUnitClearance)
	}
	if p.MaxAttempts != 30 || p.CorridorWidth != 1.5 || p.GridResolution != 0.5 {
		t.Errorf("unexpected defaults: %+v", p)
	}

	// Explicit values survive.
	p = Params{TotalUnits: 10, CorridorWidth: 2.5}.WithDefaults()
	if p.TotalUnits != 10 || p.CorridorWidth != 2.5 {
		t.Errorf("explicit values overwritten: %+v", p)
	}
}

const layoutYAML = `
spec_version: "1.0"
name: test-floor
entities:
  - type: line
    layer: WALLS
    start: {x: 0, y: 0}
    end: {x: 10, y: 0}
  - type: circle
    center: {x: 5, y: 5}
    radius: 2
distribution:
  "1-3": 40
  "3-5": 60
params:
  total_units: 25
  seed: 7
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, []byte(layoutYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if spec.Name != "test-floor" {
		t.Errorf("name = %q", spec.Name)
	}
	if len(spec.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(spec.Entities))
	}
	e := spec.Entities[0]
	if e.Type != EntityLine || e.Layer != "WALLS" || e.Start == nil || e.End == nil {
		t.Errorf("line entity mis-parsed: %+v", e)
	}
	if e.End.X != 10 {
		t.Errorf("end.x = %v", e.End.X)
	}
	if spec.Entities[1].Radius != 2 {
		t.Errorf("circle radius = %v", spec.Entities[1].Radius)
	}
	if spec.Distribution["3-5"] != 60 {
		t.Errorf("distribution mis-parsed: %v", spec.Distribution)
	}
	if spec.Params.TotalUnits != 25 || spec.Params.Seed != 7 {
		t.Errorf("params mis-parsed: %+v", spec.Params)
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "layout.yaml"), []byte(layoutYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if spec.Name != "test-floor" {
		t.Errorf("name = %q", spec.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
