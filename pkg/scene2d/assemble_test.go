package scene2d

import (
	"testing"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/corridor"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/placement"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

func TestAssemble(t *testing.T) {
	fp := &plan.FloorPlan{
		Bounds: plan.NewBounds(0, 0, 20, 10),
		Walls: []plan.Zone{{
			Kind:    plan.ZoneWall,
			Polygon: geo.NewPolygon(geo.Pt(0, 0), geo.Pt(20, 0), geo.Pt(20, 10), geo.Pt(0, 10)),
		}},
		Entrances: []plan.Zone{{
			Kind:    plan.ZoneEntrance,
			Polygon: geo.NewPolygon(geo.Pt(0, 4), geo.Pt(1, 4), geo.Pt(1, 6)),
		}},
		Rooms: []plan.Room{{
			ID:      "room_0",
			Type:    "office",
			Polygon: geo.NewPolygon(geo.Pt(1, 1), geo.Pt(5, 1), geo.Pt(5, 4), geo.Pt(1, 4)),
			Area:    12,
		}},
	}
	units := []*placement.Unit{
		{ID: 0, X: 2, Y: 2, Width: 2, Height: 1.5, Area: 3, Type: "small", Capacity: 1},
	}
	bbox := geo.Rect{X1: 2, Y1: 5, X2: 18, Y2: 6.5}
	corridors := []corridor.Corridor{
		{ID: "corridor_000", Type: corridor.TypeMain, BBox: &bbox, Width: 1.5, Area: bbox.Area()},
		{ID: "corridor_001", Type: corridor.TypeRouted, Path: []geo.Point2D{geo.Pt(1, 1), geo.Pt(4, 4)}, Width: 1.5},
	}

	scene := Assemble("demo", fp, units, corridors)

	if scene.Metadata.Name != "demo" || scene.Metadata.UnitCount != 1 {
		t.Errorf("metadata = %+v", scene.Metadata)
	}
	if scene.Metadata.Bounds != [4]float64{0, 0, 20, 10} {
		t.Errorf("bounds = %v", scene.Metadata.Bounds)
	}
	if scene.Metadata.GeneratedAt == "" {
		t.Error("generated_at should be stamped")
	}

	if len(scene.Zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(scene.Zones))
	}
	if scene.Zones[0].Kind != "wall" || scene.Zones[0].Color != kindColors[plan.ZoneWall] {
		t.Errorf("wall zone = %+v", scene.Zones[0])
	}
	if scene.Zones[1].Kind != "entrance" {
		t.Errorf("entrance zone = %+v", scene.Zones[1])
	}

	if len(scene.Rooms) != 1 || scene.Rooms[0].ID != "room_0" || scene.Rooms[0].AreaM2 != 12 {
		t.Errorf("rooms = %+v", scene.Rooms)
	}

	if len(scene.Units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(scene.Units))
	}
	u := scene.Units[0]
	if u.Rect != [4]float64{2, 2, 4, 3.5} {
		t.Errorf("unit rect = %v", u.Rect)
	}
	if u.Color != unitColors["small"] {
		t.Errorf("unit color = %q", u.Color)
	}

	if len(scene.Corridors) != 2 {
		t.Fatalf("expected 2 corridors, got %d", len(scene.Corridors))
	}
	if scene.Corridors[0].BBox == nil || scene.Corridors[0].Path != nil {
		t.Errorf("main corridor should carry a bbox only: %+v", scene.Corridors[0])
	}
	if scene.Corridors[1].BBox != nil || len(scene.Corridors[1].Path) != 2 {
		t.Errorf("routed corridor should carry a path only: %+v", scene.Corridors[1])
	}
}
