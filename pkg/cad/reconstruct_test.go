package cad

import (
	"math"
	"testing"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

func pt(x, y float64) *geo.Point2D {
	p := geo.Pt(x, y)
	return &p
}

func line(x1, y1, x2, y2 float64) plan.Entity {
	return plan.Entity{Type: plan.EntityLine, Start: pt(x1, y1), End: pt(x2, y2)}
}

func TestUnitSquareRoundTrip(t *testing.T) {
	// Four lines forming a unit square, supplied in arbitrary order.
	entities := []plan.Entity{
		line(1, 0, 1, 1),
		line(0, 1, 0, 0),
		line(0, 0, 1, 0),
		line(1, 1, 0, 1),
	}
	fp := Reconstruct(entities)

	if fp.Summary.ClosedPolygons != 1 {
		t.Fatalf("expected 1 closed polygon, got %d", fp.Summary.ClosedPolygons)
	}
	if len(fp.Walls) != 1 {
		t.Fatalf("expected 1 wall zone, got %d", len(fp.Walls))
	}
	poly := fp.Walls[0].Polygon
	if poly.Len() != 4 {
		t.Errorf("expected 4 vertices, got %d", poly.Len())
	}
	if a := poly.Area(); math.Abs(a-1.0) > 1e-6 {
		t.Errorf("expected area 1.0, got %f", a)
	}
	if fp.Summary.OpenChains != 0 {
		t.Errorf("expected no leftover segments, got %d", fp.Summary.OpenChains)
	}
}

func TestCircleTessellation(t *testing.T) {
	fp := Reconstruct([]plan.Entity{
		{Type: plan.EntityCircle, Center: pt(10, 10), Radius: 5},
	})
	// One chord per 10 degrees: 36 chords per full circle.
	if fp.Summary.Segments != 36 {
		t.Errorf("expected 36 chords, got %d", fp.Summary.Segments)
	}
	if fp.Summary.ClosedPolygons != 1 {
		t.Errorf("expected circle to chain into 1 polygon, got %d", fp.Summary.ClosedPolygons)
	}
	// Shoelace area of the 36-gon approximates the circle area.
	want := math.Pi * 25
	if len(fp.Walls) == 1 {
		got := fp.Walls[0].Polygon.Area()
		if math.Abs(got-want)/want > 0.01 {
			t.Errorf("polygon area %f too far from circle area %f", got, want)
		}
	}
}

func TestArcTessellation(t *testing.T) {
	fp := Reconstruct([]plan.Entity{
		{Type: plan.EntityArc, Center: pt(0, 0), Radius: 2, StartAngle: 0, EndAngle: 90},
	})
	// 90 degrees at 10 degrees per chord.
	if fp.Summary.Segments != 9 {
		t.Errorf("expected 9 chords, got %d", fp.Summary.Segments)
	}
}

func TestBulgeSemicircle(t *testing.T) {
	// Bulge 1 encodes a semicircle to the next vertex.
	fp := Reconstruct([]plan.Entity{
		{
			Type: plan.EntityPolyline,
			Vertices: []plan.PolyVertex{
				{X: 0, Y: 0, Bulge: 1},
				{X: 2, Y: 0},
			},
		},
	})
	if fp.Summary.Segments != 18 {
		t.Errorf("expected 18 chords for a semicircle, got %d", fp.Summary.Segments)
	}
	// The arc apex should reach (1, 1) for a CCW semicircle of radius 1.
	maxY := math.Inf(-1)
	for _, z := range fp.Walls {
		for _, v := range z.Polygon.Vertices {
			maxY = math.Max(maxY, v.Y)
		}
	}
	if math.Abs(maxY-1.0) > 0.02 {
		t.Errorf("expected arc apex near y=1, got %f", maxY)
	}
}

func TestMalformedEntitiesSkipped(t *testing.T) {
	// A missing endpoint, a NaN coordinate, a negative radius, and an
	// unsupported kind; only the last entity survives.
	entities := []plan.Entity{
		{Type: plan.EntityLine, Start: pt(0, 0)},
		{Type: plan.EntityLine, Start: pt(math.NaN(), 0), End: pt(1, 1)},
		{Type: plan.EntityCircle, Center: pt(0, 0), Radius: -1},
		{Type: "text"},
		line(0, 0, 5, 0),
	}
	fp := Reconstruct(entities)
	if fp.Summary.Skipped != 4 {
		t.Errorf("expected 4 skipped entities, got %d", fp.Summary.Skipped)
	}
	if fp.Summary.Segments != 1 {
		t.Errorf("expected 1 surviving segment, got %d", fp.Summary.Segments)
	}
}

func TestClassificationPriority(t *testing.T) {
	cases := []struct {
		name  string
		layer string
		color int
		want  plan.ZoneKind
	}{
		{"red is entrance", "", 1, plan.ZoneEntrance},
		{"blue is forbidden", "", 5, plan.ZoneForbidden},
		{"door layer", "DOORS_L1", 0, plan.ZoneEntrance},
		{"stair layer", "STAIRS", 0, plan.ZoneForbidden},
		{"entrance keyword beats forbidden color", "ENTREE", 5, plan.ZoneEntrance},
		{"default wall", "WALLS", 7, plan.ZoneWall},
	}
	for _, tc := range cases {
		if got := classify(tc.layer, tc.color); got != tc.want {
			t.Errorf("%s: classify(%q, %d) = %s, want %s", tc.name, tc.layer, tc.color, got, tc.want)
		}
	}
}

func TestLoneSegmentsClassifiedIndividually(t *testing.T) {
	e := line(0, 0, 2, 0)
	e.Color = 1
	fp := Reconstruct([]plan.Entity{e})

	if fp.Summary.OpenChains != 1 {
		t.Fatalf("expected 1 open chain, got %d", fp.Summary.OpenChains)
	}
	if len(fp.Entrances) != 1 {
		t.Fatalf("lone red segment should classify as entrance, got %d entrances", len(fp.Entrances))
	}
}

func TestRoomExtraction(t *testing.T) {
	square := plan.Entity{
		Type:   plan.EntityPolyline,
		Layer:  "WC_SOUTH",
		Closed: true,
		Vertices: []plan.PolyVertex{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		},
	}
	fp := Reconstruct([]plan.Entity{square})

	if len(fp.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(fp.Rooms))
	}
	r := fp.Rooms[0]
	if math.Abs(r.Area-16) > 1e-6 {
		t.Errorf("expected area 16, got %f", r.Area)
	}
	if r.Type != "sanitary" {
		t.Errorf("layer keyword should win over area band, got %q", r.Type)
	}
	if math.Abs(r.Centroid.X-2) > 1e-6 || math.Abs(r.Centroid.Y-2) > 1e-6 {
		t.Errorf("expected centroid (2,2), got %+v", r.Centroid)
	}
}

func TestRoomTypeAreaBands(t *testing.T) {
	cases := []struct {
		area float64
		want string
	}{
		{3, "storage"},
		{10, "office"},
		{25, "meeting_room"},
		{80, "open_space"},
	}
	for _, tc := range cases {
		if got := inferRoomType("", tc.area); got != tc.want {
			t.Errorf("inferRoomType(%v) = %q, want %q", tc.area, got, tc.want)
		}
	}
}

func TestDefaultBoundsWhenEmpty(t *testing.T) {
	fp := Reconstruct(nil)
	if !fp.Bounds.Valid() {
		t.Fatal("empty parse should fall back to default bounds")
	}
	if fp.Bounds.Width() != 100 || fp.Bounds.Height() != 100 {
		t.Errorf("unexpected default bounds: %+v", fp.Bounds)
	}
}

func TestBoundsAccumulate(t *testing.T) {
	fp := Reconstruct([]plan.Entity{
		line(-5, 2, 10, 2),
		line(0, -3, 0, 8),
	})
	b := fp.Bounds
	if b.MinX != -5 || b.MaxX != 10 || b.MinY != -3 || b.MaxY != 8 {
		t.Errorf("unexpected bounds: %+v", b)
	}
}

func TestChainStopsOnOpenGeometry(t *testing.T) {
	// A U shape never closes; all three segments stay unconsumed.
	fp := Reconstruct([]plan.Entity{
		line(0, 0, 0, 2),
		line(0, 2, 2, 2),
		line(2, 2, 2, 0),
	})
	if fp.Summary.ClosedPolygons != 0 {
		t.Errorf("open chain should not close, got %d polygons", fp.Summary.ClosedPolygons)
	}
	if fp.Summary.OpenChains != 3 {
		t.Errorf("expected 3 leftover segments, got %d", fp.Summary.OpenChains)
	}
}
