package placement

import (
	"sort"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
)

// compassDirs are the eight displacement directions tried during
// refinement, before seeded permutation.
var compassDirs = [8]geo.Point2D{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
}

type overlapPair struct {
	a, b *Unit
	area float64
}

// refine resolves residual overlaps left by the randomized fallback. For
// each overlapping pair, largest overlap first, it displaces the smaller
// unit along a seeded permutation of the compass directions, then tries a
// single axis-aligned nudge toward the bounds center, and otherwise leaves
// the pair unresolved. Returns (resolved, unresolved) counts.
func (e *engine) refine() (int, int) {
	pairs := e.overlappingPairs()
	if len(pairs) == 0 {
		return 0, 0
	}

	resolved, unresolved := 0, 0
	for _, p := range pairs {
		// Earlier moves may have already cleared this pair.
		if p.a.Rect().OverlapArea(p.b.Rect()) <= 0 {
			continue
		}
		mover := p.a
		if p.b.Area < p.a.Area {
			mover = p.b
		}
		if e.displace(mover) {
			resolved++
		} else {
			unresolved++
		}
	}
	return resolved, unresolved
}

// overlappingPairs collects every overlapping unit pair via the broad-phase
// index, sorted by overlap area descending with stable ID tiebreaks.
func (e *engine) overlappingPairs() []overlapPair {
	var pairs []overlapPair
	for _, u := range e.units {
		for _, item := range e.index.QueryRect(u.Rect(), 0) {
			v, ok := item.(*Unit)
			if !ok || v.ID <= u.ID {
				continue
			}
			if area := u.Rect().OverlapArea(v.Rect()); area > 0 {
				pairs = append(pairs, overlapPair{a: u, b: v, area: area})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].area != pairs[j].area {
			return pairs[i].area > pairs[j].area
		}
		if pairs[i].a.ID != pairs[j].a.ID {
			return pairs[i].a.ID < pairs[j].a.ID
		}
		return pairs[i].b.ID < pairs[j].b.ID
	})
	return pairs
}

// displace tries to move u to a clear position. The step is proportional
// to the unit's own footprint.
func (e *engine) displace(u *Unit) bool {
	step := (u.Width+u.Height)/2 + e.params.MinUnitClearance
	origX, origY := u.X, u.Y

	try := func(x, y float64) bool {
		r := geo.NewRect(x, y, u.Width, u.Height)
		if !e.canPlace(r, u) {
			return false
		}
		u.X, u.Y = x, y
		e.rebuildIndex()
		return true
	}

	for _, di := range e.rng.Perm(len(compassDirs)) {
		d := compassDirs[di]
		if try(origX+d.X*step, origY+d.Y*step) {
			return true
		}
	}

	// One axis-aligned nudge toward the bounds center, along the dominant
	// offset axis.
	center := e.bounds.Center()
	uc := u.Rect().Center()
	dx, dy := center.X-uc.X, center.Y-uc.Y
	if abs(dx) >= abs(dy) {
		return try(origX+sign(dx)*step, origY)
	}
	return try(origX, origY+sign(dy)*step)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
