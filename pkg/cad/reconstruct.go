package cad

import (
	"fmt"
	"math"
	"strings"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

const (
	// chainIterCap bounds the chain walk so near-closed or malformed
	// geometry cannot loop forever.
	chainIterCap = 5000

	// minRoomArea is the smallest closed-polygon area (m²) promoted to a
	// Room.
	minRoomArea = 1.0
)

// Reconstruct turns loose drawing entities into a classified floor plan.
// Malformed entities are skipped per-entity and counted in the summary;
// reconstruction itself never fails.
func Reconstruct(entities []plan.Entity) *plan.FloorPlan {
	fp := &plan.FloorPlan{}
	fp.Summary.Entities = len(entities)

	var segs []Segment
	for _, e := range entities {
		out, ok := tessellate(e)
		if !ok {
			fp.Summary.Skipped++
			continue
		}
		segs = append(segs, out...)
	}
	fp.Summary.Segments = len(segs)

	for _, s := range segs {
		fp.Bounds.Extend(s.Start)
		fp.Bounds.Extend(s.End)
	}
	if len(segs) == 0 {
		fp.Bounds = plan.DefaultBounds()
	}

	polygons, polySegs, leftovers := chainPolygons(segs)
	fp.Summary.ClosedPolygons = len(polygons)
	fp.Summary.OpenChains = len(leftovers)

	roomIdx := 0
	for i, poly := range polygons {
		rep := polySegs[i]
		zone := plan.Zone{Polygon: poly, Kind: classify(rep.Layer, rep.Color), Layer: rep.Layer}
		appendZone(fp, zone)

		if area := poly.Area(); area >= minRoomArea {
			minP, maxP := poly.BoundingBox()
			fp.Rooms = append(fp.Rooms, plan.Room{
				ID:       fmt.Sprintf("room_%03d", roomIdx),
				Polygon:  poly,
				Area:     area,
				Centroid: poly.Centroid(),
				BBox:     geo.Rect{X1: minP.X, Y1: minP.Y, X2: maxP.X, Y2: maxP.Y},
				Type:     inferRoomType(rep.Layer, area),
			})
			roomIdx++
		}
	}
	fp.Summary.Rooms = len(fp.Rooms)

	// Segments that never closed are classified individually as degenerate
	// two-vertex zones so entrances drawn as lone lines still apply.
	for _, s := range leftovers {
		zone := plan.Zone{
			Polygon: geo.NewPolygon(s.Start, s.End),
			Kind:    classify(s.Layer, s.Color),
			Layer:   s.Layer,
		}
		appendZone(fp, zone)
	}

	return fp
}

func appendZone(fp *plan.FloorPlan, z plan.Zone) {
	switch z.Kind {
	case plan.ZoneEntrance:
		fp.Entrances = append(fp.Entrances, z)
	case plan.ZoneForbidden:
		fp.Forbidden = append(fp.Forbidden, z)
	default:
		fp.Walls = append(fp.Walls, z)
	}
}

type snapKey struct {
	ix, iy int64
}

func snap(p geo.Point2D) snapKey {
	return snapKey{
		ix: int64(math.Round(p.X / snapTol)),
		iy: int64(math.Round(p.Y / snapTol)),
	}
}

// chainPolygons greedily walks the endpoint index, chaining segments into
// closed polygons. It returns the polygons, one representative segment per
// polygon (for classification), and the segments left unconsumed.
func chainPolygons(segs []Segment) ([]geo.Polygon, []Segment, []Segment) {
	index := make(map[snapKey][]int)
	for i, s := range segs {
		index[snap(s.Start)] = append(index[snap(s.Start)], i)
		index[snap(s.End)] = append(index[snap(s.End)], i)
	}

	used := make([]bool, len(segs))
	var polygons []geo.Polygon
	var reps []Segment

	for i := range segs {
		if used[i] {
			continue
		}
		verts := []geo.Point2D{segs[i].Start, segs[i].End}
		chain := []int{i}
		inChain := map[int]bool{i: true}
		tip := segs[i].End
		closed := false

		for iter := 0; iter < chainIterCap; iter++ {
			next := -1
			var nextTip geo.Point2D
			for _, j := range index[snap(tip)] {
				if used[j] || inChain[j] {
					continue
				}
				if tip.Distance(segs[j].Start) <= snapTol {
					next, nextTip = j, segs[j].End
					break
				}
				if tip.Distance(segs[j].End) <= snapTol {
					next, nextTip = j, segs[j].Start
					break
				}
			}
			if next < 0 {
				break
			}
			chain = append(chain, next)
			inChain[next] = true
			tip = nextTip

			if tip.Distance(verts[0]) <= snapTol {
				if len(verts) >= 3 {
					closed = true
				}
				break
			}
			verts = append(verts, tip)
		}

		if closed {
			for _, j := range chain {
				used[j] = true
			}
			polygons = append(polygons, geo.NewPolygon(verts...))
			reps = append(reps, segs[i])
		}
	}

	var leftovers []Segment
	for i, s := range segs {
		if !used[i] {
			leftovers = append(leftovers, s)
		}
	}
	return polygons, reps, leftovers
}

// classRule pairs a match predicate with the classification it yields.
type classRule struct {
	kind  plan.ZoneKind
	match func(layer string, color int) bool
}

// classRules is evaluated first-match-wins: entrance beats forbidden beats
// the wall default. Colors follow the drawing convention (1 = red
// entrances, 5 = blue forbidden areas).
var classRules = []classRule{
	{
		kind: plan.ZoneEntrance,
		match: func(layer string, color int) bool {
			return color == 1 ||
				layerHasAny(layer, "entrance", "entree", "door", "porte", "exit", "sortie")
		},
	},
	{
		kind: plan.ZoneForbidden,
		match: func(layer string, color int) bool {
			return color == 5 ||
				layerHasAny(layer, "forbidden", "interdit", "stair", "escalier",
					"elevator", "ascenseur", "shaft", "gaine", "no_entree")
		},
	},
}

func classify(layer string, color int) plan.ZoneKind {
	for _, rule := range classRules {
		if rule.match(layer, color) {
			return rule.kind
		}
	}
	return plan.ZoneWall
}

func layerHasAny(layer string, keywords ...string) bool {
	l := strings.ToLower(layer)
	for _, kw := range keywords {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

// inferRoomType names a room from its layer, falling back to area bands.
func inferRoomType(layer string, area float64) string {
	switch {
	case layerHasAny(layer, "bureau", "office"):
		return "office"
	case layerHasAny(layer, "reunion", "meeting", "conference"):
		return "meeting_room"
	case layerHasAny(layer, "sanitaire", "wc", "toilet"):
		return "sanitary"
	case layerHasAny(layer, "couloir", "corridor", "hall"):
		return "circulation"
	}
	switch {
	case area < 5:
		return "storage"
	case area < 15:
		return "office"
	case area < 40:
		return "meeting_room"
	default:
		return "open_space"
	}
}
