// Package corridor synthesizes the circulation network connecting placed
// units: rows of units are detected by vertical center, adjacent rows with
// enough facing gap get a rectangular main corridor, and tight gaps are
// routed per unit pair over an obstacle-aware occupancy grid, degrading to
// an L-shaped connector when no path exists.
package corridor

import (
	"fmt"
	"math"
	"sort"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/placement"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/validation"
)

// Type tags how a corridor was synthesized.
type Type string

const (
	// TypeMain is a rectangular corridor spanning two rows' facing gap.
	TypeMain Type = "main"
	// TypeRouted is a grid-pathfound corridor between two units.
	TypeRouted Type = "routed"
	// TypeConnecting is the L-shaped fallback when routing failed.
	TypeConnecting Type = "connecting"
)

// rowTolFraction scales the bounds height into the row-membership
// tolerance.
const rowTolFraction = 0.05

// marginalGapFactor: a facing gap below this multiple of the corridor
// width is clipped to the configured width and centered in the gap.
const marginalGapFactor = 1.25

// Corridor is one connective space. Rectangular corridors carry a BBox;
// routed ones carry the path polyline. Corridors are stateless derived
// products, regenerated wholesale when the unit set or width changes.
type Corridor struct {
	ID       string        `json:"id"`
	Type     Type          `json:"type"`
	BBox     *geo.Rect     `json:"bbox,omitempty"`
	Path     []geo.Point2D `json:"path,omitempty"`
	Width    float64       `json:"width"`
	Area     float64       `json:"area"`
	Connects []string      `json:"connects"`
}

// Result is the output of one corridor-generation run.
type Result struct {
	Corridors []Corridor         `json:"corridors"`
	Report    *validation.Report `json:"-"`
}

type row struct {
	units  []*placement.Unit
	avgY   float64           // running average of unit vertical centers
	top    float64           // max Y2 across units
	bottom float64           // min Y1 across units
	minX   float64
	maxX   float64
}

func (r *row) add(u *placement.Unit) {
	rect := u.Rect()
	r.avgY = (r.avgY*float64(len(r.units)) + rect.Center().Y) / float64(len(r.units)+1)
	r.units = append(r.units, u)
	r.top = math.Max(r.top, rect.Y2)
	r.bottom = math.Min(r.bottom, rect.Y1)
	r.minX = math.Min(r.minX, rect.X1)
	r.maxX = math.Max(r.maxX, rect.X2)
}

func newRow(u *placement.Unit) *row {
	rect := u.Rect()
	return &row{
		units:  []*placement.Unit{u},
		avgY:   rect.Center().Y,
		top:    rect.Y2,
		bottom: rect.Y1,
		minX:   rect.X1,
		maxX:   rect.X2,
	}
}

// Generate builds the corridor network for the placed units.
func Generate(fp *plan.FloorPlan, units []*placement.Unit, params plan.Params) *Result {
	params = params.WithDefaults()
	report := validation.NewReport()
	res := &Result{Report: report}

	if len(units) < 2 {
		report.AddInfo(validation.Result{
			Level:   validation.LevelRouting,
			Message: "fewer than two units; no corridors to generate",
		})
		return res
	}

	rows := detectRows(units, fp.Bounds)
	if len(rows) < 2 {
		report.AddInfo(validation.Result{
			Level:   validation.LevelRouting,
			Message: fmt.Sprintf("%d row detected; no row pairs to connect", len(rows)),
		})
		return res
	}

	var finder *pathfinder
	routedFails := 0
	idx := 0

	for i := 0; i < len(rows)-1; i++ {
		lower, upper := rows[i], rows[i+1]
		gap := upper.bottom - lower.top
		overlapX1 := math.Max(lower.minX, upper.minX)
		overlapX2 := math.Min(lower.maxX, upper.maxX)

		if gap >= params.CorridorWidth && overlapX2 > overlapX1 {
			y1, y2 := lower.top, upper.bottom
			if gap < params.CorridorWidth*marginalGapFactor {
				mid := (lower.top + upper.bottom) / 2
				y1 = mid - params.CorridorWidth/2
				y2 = mid + params.CorridorWidth/2
			}
			bbox := geo.Rect{X1: overlapX1, Y1: y1, X2: overlapX2, Y2: y2}
			res.Corridors = append(res.Corridors, Corridor{
				ID:       fmt.Sprintf("corridor_%03d", idx),
				Type:     TypeMain,
				BBox:     &bbox,
				Width:    y2 - y1,
				Area:     bbox.Area(),
				Connects: []string{fmt.Sprintf("row_%d", i), fmt.Sprintf("row_%d", i+1)},
			})
			idx++
			continue
		}

		// Tight or non-overlapping gap: route every cross-row unit pair.
		if finder == nil {
			finder = newPathfinder(fp.Bounds.Rect(), units, params)
		}
		for _, ua := range lower.units {
			for _, ub := range upper.units {
				c, ok := routePair(finder, ua, ub, params.CorridorWidth, idx)
				if !ok {
					routedFails++
				}
				res.Corridors = append(res.Corridors, c)
				idx++
			}
		}
	}

	counts := map[Type]int{}
	for _, c := range res.Corridors {
		counts[c.Type]++
	}
	if routedFails > 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelRouting,
			Message: fmt.Sprintf("%d unit pairs were unreachable; emitted L-shaped connectors instead", routedFails),
		})
	}
	report.AddInfo(validation.Result{
		Level: validation.LevelRouting,
		Message: fmt.Sprintf("generated %d corridors across %d rows: main=%d routed=%d connecting=%d",
			len(res.Corridors), len(rows), counts[TypeMain], counts[TypeRouted], counts[TypeConnecting]),
	})
	return res
}

// detectRows groups units into horizontal rows: sorted by vertical center,
// a unit joins the current row while its center stays within a
// bounds-relative tolerance of the row's running average.
func detectRows(units []*placement.Unit, bounds plan.Bounds) []*row {
	sorted := make([]*placement.Unit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Rect().Center(), sorted[j].Rect().Center()
		if ci.Y != cj.Y {
			return ci.Y < cj.Y
		}
		return ci.X < cj.X
	})

	tol := bounds.Height() * rowTolFraction
	var rows []*row
	for _, u := range sorted {
		cy := u.Rect().Center().Y
		if len(rows) > 0 && math.Abs(cy-rows[len(rows)-1].avgY) <= tol {
			rows[len(rows)-1].add(u)
			continue
		}
		rows = append(rows, newRow(u))
	}
	return rows
}

// routePair routes one cross-row unit pair, falling back to an L-shaped
// midline connector when the grid search fails.
func routePair(finder *pathfinder, ua, ub *placement.Unit, width float64, idx int) (Corridor, bool) {
	connects := []string{
		fmt.Sprintf("unit_%d", ua.ID),
		fmt.Sprintf("unit_%d", ub.ID),
	}
	start := ua.Rect().Center()
	goal := ub.Rect().Center()

	if path, ok := finder.findPath(start, goal); ok {
		return Corridor{
			ID:       fmt.Sprintf("corridor_%03d", idx),
			Type:     TypeRouted,
			Path:     path,
			Width:    width,
			Area:     polylineLength(path) * width,
			Connects: connects,
		}, true
	}

	// Minimal L along the midline between the two units.
	midY := (ua.Rect().Y2 + ub.Rect().Y1) / 2
	path := []geo.Point2D{
		start,
		geo.Pt(start.X, midY),
		geo.Pt(goal.X, midY),
		goal,
	}
	return Corridor{
		ID:       fmt.Sprintf("corridor_%03d", idx),
		Type:     TypeConnecting,
		Path:     path,
		Width:    width,
		Area:     polylineLength(path) * width,
		Connects: connects,
	}, false
}

func polylineLength(path []geo.Point2D) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += path[i-1].Distance(path[i])
	}
	return total
}
