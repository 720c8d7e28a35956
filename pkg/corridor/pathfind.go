package corridor

import (
	"container/heap"
	"math"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/placement"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

// maxSnapRadius bounds the expanding search for a free cell, in cells.
const maxSnapRadius = 25

// pathfinder rasterizes the floor-plan bounds into a uniform occupancy
// grid and runs 8-connected A* over it. The resolution is an independent
// fidelity/performance knob, not derived from the corridor width.
type pathfinder struct {
	origin   geo.Point2D
	res      float64
	cols     int
	rows     int
	occupied []bool
}

// newPathfinder marks a cell occupied when its center lies within half the
// corridor width of any unit rectangle, so routed paths keep corridor-width
// clearance from unit faces.
func newPathfinder(bounds geo.Rect, units []*placement.Unit, params plan.Params) *pathfinder {
	res := params.GridResolution
	cols := int(math.Ceil(bounds.Width() / res))
	rows := int(math.Ceil(bounds.Height() / res))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	pf := &pathfinder{
		origin:   geo.Pt(bounds.X1, bounds.Y1),
		res:      res,
		cols:     cols,
		rows:     rows,
		occupied: make([]bool, cols*rows),
	}

	inflate := params.CorridorWidth / 2
	for _, u := range units {
		r := u.Rect()
		// Only rasterize the inflated footprint's cell range.
		infl := r.Expand(inflate)
		cx1, cy1 := pf.cellOf(geo.Pt(infl.X1, infl.Y1))
		cx2, cy2 := pf.cellOf(geo.Pt(infl.X2, infl.Y2))
		for cy := cy1; cy <= cy2; cy++ {
			for cx := cx1; cx <= cx2; cx++ {
				if !pf.inGrid(cx, cy) {
					continue
				}
				if r.DistanceToPoint(pf.centerOf(cx, cy)) <= inflate {
					pf.occupied[cy*pf.cols+cx] = true
				}
			}
		}
	}
	return pf
}

func (pf *pathfinder) cellOf(pt geo.Point2D) (int, int) {
	return int(math.Floor((pt.X - pf.origin.X) / pf.res)),
		int(math.Floor((pt.Y - pf.origin.Y) / pf.res))
}

func (pf *pathfinder) centerOf(cx, cy int) geo.Point2D {
	return geo.Pt(
		pf.origin.X+(float64(cx)+0.5)*pf.res,
		pf.origin.Y+(float64(cy)+0.5)*pf.res,
	)
}

func (pf *pathfinder) inGrid(cx, cy int) bool {
	return cx >= 0 && cx < pf.cols && cy >= 0 && cy < pf.rows
}

func (pf *pathfinder) free(cx, cy int) bool {
	return pf.inGrid(cx, cy) && !pf.occupied[cy*pf.cols+cx]
}

// snapFree returns the nearest free cell to (cx, cy) within an expanding
// radius, or false when everything nearby is occupied.
func (pf *pathfinder) snapFree(cx, cy int) (int, int, bool) {
	if pf.free(cx, cy) {
		return cx, cy, true
	}
	for radius := 1; radius <= maxSnapRadius; radius++ {
		bestD := math.Inf(1)
		bestX, bestY := -1, -1
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if max(absInt(dx), absInt(dy)) != radius {
					continue
				}
				nx, ny := cx+dx, cy+dy
				if !pf.free(nx, ny) {
					continue
				}
				d := math.Hypot(float64(dx), float64(dy))
				if d < bestD {
					bestD, bestX, bestY = d, nx, ny
				}
			}
		}
		if bestX >= 0 {
			return bestX, bestY, true
		}
	}
	return 0, 0, false
}

type pqItem struct {
	cell     int
	priority float64
	index    int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i]; pq[i].index = i; pq[j].index = j }
func (pq *priorityQueue) Push(x any)         { item := x.(*pqItem); item.index = len(*pq); *pq = append(*pq, item) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// findPath runs A* between two world points. Start and goal snap to the
// nearest free cell first; the result is the path as world-coordinate cell
// centers, or false when unreachable (including snap failure).
func (pf *pathfinder) findPath(start, goal geo.Point2D) ([]geo.Point2D, bool) {
	sx, sy := pf.cellOf(start)
	gx, gy := pf.cellOf(goal)
	sx = clampInt(sx, 0, pf.cols-1)
	sy = clampInt(sy, 0, pf.rows-1)
	gx = clampInt(gx, 0, pf.cols-1)
	gy = clampInt(gy, 0, pf.rows-1)

	var ok bool
	if sx, sy, ok = pf.snapFree(sx, sy); !ok {
		return nil, false
	}
	if gx, gy, ok = pf.snapFree(gx, gy); !ok {
		return nil, false
	}

	startIdx := sy*pf.cols + sx
	goalIdx := gy*pf.cols + gx

	gScore := make([]float64, pf.cols*pf.rows)
	cameFrom := make([]int, pf.cols*pf.rows)
	closed := make([]bool, pf.cols*pf.rows)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		cameFrom[i] = -1
	}
	gScore[startIdx] = 0

	heuristic := func(idx int) float64 {
		cx, cy := idx%pf.cols, idx/pf.cols
		return math.Hypot(float64(cx-gx), float64(cy-gy))
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{cell: startIdx, priority: heuristic(startIdx)})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*pqItem).cell
		if current == goalIdx {
			return pf.reconstruct(cameFrom, current), true
		}
		if closed[current] {
			continue
		}
		closed[current] = true
		cx, cy := current%pf.cols, current/pf.cols

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := cx+dx, cy+dy
				if !pf.free(nx, ny) {
					continue
				}
				// No corner cutting: diagonals need both orthogonal
				// neighbors free.
				if dx != 0 && dy != 0 && (!pf.free(cx+dx, cy) || !pf.free(cx, cy+dy)) {
					continue
				}
				next := ny*pf.cols + nx
				cost := 1.0
				if dx != 0 && dy != 0 {
					cost = math.Sqrt2
				}
				tentative := gScore[current] + cost
				if tentative < gScore[next] {
					gScore[next] = tentative
					cameFrom[next] = current
					heap.Push(pq, &pqItem{cell: next, priority: tentative + heuristic(next)})
				}
			}
		}
	}
	return nil, false
}

func (pf *pathfinder) reconstruct(cameFrom []int, idx int) []geo.Point2D {
	var rev []geo.Point2D
	for idx >= 0 {
		rev = append(rev, pf.centerOf(idx%pf.cols, idx/pf.cols))
		idx = cameFrom[idx]
	}
	path := make([]geo.Point2D, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
