// Package scene2d converts pipeline outputs into a plain-data 2D scene for
// external viewers and exporters.
package scene2d

import (
	"time"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/corridor"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/placement"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

// Display colors per element kind.
var kindColors = map[plan.ZoneKind]string{
	plan.ZoneWall:      "#2d3436",
	plan.ZoneForbidden: "#0984e3",
	plan.ZoneEntrance:  "#d63031",
}

var unitColors = map[string]string{
	"micro":    "#ffeaa7",
	"small":    "#fab1a0",
	"standard": "#fd79a8",
	"large":    "#e17055",
}

// Assemble converts solver outputs into a 2D scene.
func Assemble(name string, fp *plan.FloorPlan, units []*placement.Unit, corridors []corridor.Corridor) *Scene2D {
	scene := &Scene2D{
		Metadata: Metadata{
			Name:        name,
			Bounds:      [4]float64{fp.Bounds.MinX, fp.Bounds.MinY, fp.Bounds.MaxX, fp.Bounds.MaxY},
			UnitCount:   len(units),
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}

	for _, zones := range [][]plan.Zone{fp.Walls, fp.Forbidden, fp.Entrances} {
		for _, z := range zones {
			scene.Zones = append(scene.Zones, Zone2D{
				Kind:    string(z.Kind),
				Polygon: polygonCoords(z.Polygon),
				Color:   kindColors[z.Kind],
			})
		}
	}

	for _, r := range fp.Rooms {
		scene.Rooms = append(scene.Rooms, Room2D{
			ID:       r.ID,
			Type:     r.Type,
			Polygon:  polygonCoords(r.Polygon),
			Centroid: [2]float64{r.Centroid.X, r.Centroid.Y},
			AreaM2:   r.Area,
		})
	}

	for _, u := range units {
		r := u.Rect()
		scene.Units = append(scene.Units, Unit2D{
			ID:       u.ID,
			Type:     u.Type,
			Rect:     [4]float64{r.X1, r.Y1, r.X2, r.Y2},
			AreaM2:   u.Area,
			Capacity: u.Capacity,
			Color:    unitColors[u.Type],
		})
	}

	for _, c := range corridors {
		c2 := Corridor2D{
			ID:    c.ID,
			Type:  string(c.Type),
			Width: c.Width,
		}
		if c.BBox != nil {
			c2.BBox = &[4]float64{c.BBox.X1, c.BBox.Y1, c.BBox.X2, c.BBox.Y2}
		}
		if len(c.Path) > 0 {
			c2.Path = pathCoords(c.Path)
		}
		scene.Corridors = append(scene.Corridors, c2)
	}

	return scene
}

func polygonCoords(p geo.Polygon) [][2]float64 {
	out := make([][2]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = [2]float64{v.X, v.Y}
	}
	return out
}

func pathCoords(path []geo.Point2D) [][2]float64 {
	out := make([][2]float64, len(path))
	for i, v := range path {
		out[i] = [2]float64{v.X, v.Y}
	}
	return out
}
