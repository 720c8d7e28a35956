package placement

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/seq"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/spatial"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/validation"
)

// ErrNoBounds is returned when the floor plan has no derivable bounds.
// This is the other hard failure of the pipeline.
var ErrNoBounds = errors.New("floor plan has no derivable bounds")

// minScanStep floors the grid-scan step so tiny candidates cannot explode
// the position count.
const minScanStep = 0.25

// Result is the output of one placement run.
type Result struct {
	Units     []*Unit            `json:"units"`
	Requested int                `json:"requested"`
	Report    *validation.Report `json:"-"`
}

// engine carries the per-run state shared by the search and refinement.
type engine struct {
	fp     *plan.FloorPlan
	bounds geo.Rect
	params plan.Params
	index  *spatial.GridIndex
	rng    *seq.Sequence
	units  []*Unit
}

// Generate packs units into the floor plan according to the distribution.
// A candidate that exhausts its attempt budget is dropped; the run still
// succeeds with fewer units than requested.
func Generate(fp *plan.FloorPlan, dist plan.SizeDistribution, params plan.Params) (*Result, error) {
	params = params.WithDefaults()
	report := validation.NewReport()

	if !fp.Bounds.Valid() {
		return nil, ErrNoBounds
	}
	ranges, err := parseRanges(dist)
	if err != nil {
		return nil, err
	}

	rng := seq.New(params.Seed)
	counts := rangeCounts(ranges, params.TotalUnits)
	cands := generateDemand(ranges, counts, rng)

	bounds := fp.Bounds.Rect()
	cellSize := math.Max(1, math.Min(bounds.Width(), bounds.Height())/20)
	eng := &engine{
		fp:     fp,
		bounds: bounds,
		params: params,
		index:  spatial.NewGridIndex(bounds, cellSize),
		rng:    rng,
	}

	dropped := 0
	for _, c := range cands {
		pos, ok := eng.findPosition(c)
		if !ok {
			dropped++
			continue
		}
		u := &Unit{
			ID:       len(eng.units),
			X:        pos.X,
			Y:        pos.Y,
			Width:    c.width,
			Height:   c.height,
			Area:     c.area,
			Type:     unitType(c.area),
			Capacity: unitCapacity(c.area),
		}
		eng.units = append(eng.units, u)
		eng.index.Insert(u)
	}

	resolved, unresolved := eng.refine()

	if dropped > 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelPlacement,
			Message: fmt.Sprintf("dropped %d of %d candidates after exhausting placement attempts", dropped, len(cands)),
		})
	}
	if unresolved > 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelPlacement,
			Message: fmt.Sprintf("%d overlapping unit pairs left unresolved after refinement", unresolved),
		})
	}
	report.AddInfo(validation.Result{
		Level: validation.LevelPlacement,
		Message: fmt.Sprintf("placed %d of %d requested units (%d refined)",
			len(eng.units), len(cands), resolved),
	})

	return &Result{Units: eng.units, Requested: len(cands), Report: report}, nil
}

// findPosition runs the deterministic center-out grid scan, then the
// seeded randomized fallback under the attempt budget.
func (e *engine) findPosition(c candidate) (geo.Point2D, bool) {
	step := math.Max(minScanStep, math.Min(c.width, c.height)/2)

	type scanPos struct {
		pt   geo.Point2D
		dist float64
	}
	center := e.bounds.Center()
	var positions []scanPos
	for y := e.bounds.Y1; y+c.height <= e.bounds.Y2+1e-9; y += step {
		for x := e.bounds.X1; x+c.width <= e.bounds.X2+1e-9; x += step {
			rc := geo.Pt(x+c.width/2, y+c.height/2)
			positions = append(positions, scanPos{pt: geo.Pt(x, y), dist: rc.Distance(center)})
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].dist != positions[j].dist {
			return positions[i].dist < positions[j].dist
		}
		if positions[i].pt.X != positions[j].pt.X {
			return positions[i].pt.X < positions[j].pt.X
		}
		return positions[i].pt.Y < positions[j].pt.Y
	})
	for _, p := range positions {
		if e.canPlace(geo.NewRect(p.pt.X, p.pt.Y, c.width, c.height), nil) {
			return p.pt, true
		}
	}

	for attempt := 0; attempt < e.params.MaxAttempts; attempt++ {
		x := e.rng.Range(e.bounds.X1, math.Max(e.bounds.X1, e.bounds.X2-c.width))
		y := e.rng.Range(e.bounds.Y1, math.Max(e.bounds.Y1, e.bounds.Y2-c.height))
		if e.canPlace(geo.NewRect(x, y, c.width, c.height), nil) {
			return geo.Pt(x, y), true
		}
	}
	return geo.Point2D{}, false
}

// canPlace is the validity predicate: inside bounds, no forbidden-zone
// overlap, entrance clearance respected, no non-trivial wall overlap, and
// minimum clearance to every placed unit except ignore.
func (e *engine) canPlace(r geo.Rect, ignore *Unit) bool {
	if !e.bounds.ContainsRect(r) {
		return false
	}
	for i := range e.fp.Forbidden {
		if geo.RectIntersectsPolygon(r, e.fp.Forbidden[i].Polygon) {
			return false
		}
	}
	for i := range e.fp.Entrances {
		if r.DistanceToPolygon(e.fp.Entrances[i].Polygon) < e.params.EntranceClearance {
			return false
		}
	}
	// Edge touching against walls is allowed; more than one wall vertex
	// strictly inside the rect counts as real overlap.
	for i := range e.fp.Walls {
		interior := 0
		for _, v := range e.fp.Walls[i].Polygon.Vertices {
			if r.ContainsPointStrict(v, 1e-9) {
				interior++
				if interior > 1 {
					return false
				}
			}
		}
	}
	clearance := e.params.MinUnitClearance
	for _, item := range e.index.QueryRect(r, clearance) {
		u, ok := item.(*Unit)
		if !ok || u == ignore {
			continue
		}
		if r.Distance(u.Rect()) < clearance {
			return false
		}
	}
	return true
}

// rebuildIndex repopulates the broad-phase index after refinement moves.
func (e *engine) rebuildIndex() {
	e.index.Clear()
	for _, u := range e.units {
		e.index.Insert(u)
	}
}
