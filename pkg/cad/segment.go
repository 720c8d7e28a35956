// Package cad reconstructs classified floor-plan geometry from loose,
// already-parsed drawing entities: curved entities are tessellated into
// chordal segments, segments are chained into closed polygons through an
// endpoint index, and the results are classified into walls, forbidden
// zones, and entrances.
package cad

import (
	"math"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

const (
	// chordAngle is the angular increment of chordal approximation:
	// one chord per 10 degrees of arc, 36 chords per full circle.
	chordAngle = 10.0 * math.Pi / 180.0

	// snapTol is the endpoint-snapping tolerance for chaining.
	snapTol = 1e-3
)

// Segment is a straight edge derived from an entity.
type Segment struct {
	Start geo.Point2D
	End   geo.Point2D
	Layer string
	Color int
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// tessellate converts one entity into chordal segments. It returns nil and
// false for malformed entities (missing or non-finite geometry), which the
// caller skips without aborting the parse.
func tessellate(e plan.Entity) ([]Segment, bool) {
	switch e.Type {
	case plan.EntityLine:
		if e.Start == nil || e.End == nil || !e.Start.IsFinite() || !e.End.IsFinite() {
			return nil, false
		}
		return []Segment{{Start: *e.Start, End: *e.End, Layer: e.Layer, Color: e.Color}}, true

	case plan.EntityArc:
		if e.Center == nil || !e.Center.IsFinite() || !isFinite(e.Radius) || e.Radius <= 0 {
			return nil, false
		}
		start := e.StartAngle * math.Pi / 180
		end := e.EndAngle * math.Pi / 180
		if !isFinite(start) || !isFinite(end) {
			return nil, false
		}
		sweep := end - start
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
		return arcChords(*e.Center, e.Radius, start, sweep, e.Layer, e.Color), true

	case plan.EntityCircle:
		if e.Center == nil || !e.Center.IsFinite() || !isFinite(e.Radius) || e.Radius <= 0 {
			return nil, false
		}
		return arcChords(*e.Center, e.Radius, 0, 2*math.Pi, e.Layer, e.Color), true

	case plan.EntityPolyline, plan.EntityLWPolyline:
		return tessellatePolyline(e)
	}
	return nil, false
}

// arcChords emits chords along an arc at the fixed angular increment. The
// epsilon keeps exact multiples of the increment from rounding up a step.
func arcChords(center geo.Point2D, radius, start, sweep float64, layer string, color int) []Segment {
	steps := int(math.Ceil(math.Abs(sweep)/chordAngle - 1e-9))
	if steps < 1 {
		steps = 1
	}
	segs := make([]Segment, 0, steps)
	prev := pointOnCircle(center, radius, start)
	for i := 1; i <= steps; i++ {
		next := pointOnCircle(center, radius, start+sweep*float64(i)/float64(steps))
		segs = append(segs, Segment{Start: prev, End: next, Layer: layer, Color: color})
		prev = next
	}
	return segs
}

func tessellatePolyline(e plan.Entity) ([]Segment, bool) {
	if len(e.Vertices) < 2 {
		return nil, false
	}
	for _, v := range e.Vertices {
		if !v.Point().IsFinite() || !isFinite(v.Bulge) {
			return nil, false
		}
	}
	var segs []Segment
	n := len(e.Vertices)
	last := n - 1
	if e.Closed {
		last = n
	}
	for i := 0; i < last; i++ {
		v := e.Vertices[i]
		next := e.Vertices[(i+1)%n]
		a, b := v.Point(), next.Point()
		if a.Distance(b) < 1e-9 {
			continue
		}
		if math.Abs(v.Bulge) < 1e-9 {
			segs = append(segs, Segment{Start: a, End: b, Layer: e.Layer, Color: e.Color})
			continue
		}
		segs = append(segs, bulgeChords(a, b, v.Bulge, e.Layer, e.Color)...)
	}
	if len(segs) == 0 {
		return nil, false
	}
	return segs, true
}

// bulgeChords converts a bulge-carrying polyline edge into chords. The
// bulge is tan of a quarter of the included arc angle; its sign gives the
// arc direction (positive = counterclockwise).
func bulgeChords(a, b geo.Point2D, bulge float64, layer string, color int) []Segment {
	theta := 4 * math.Atan(bulge)
	chord := b.Sub(a)
	d := chord.Length()
	if d < 1e-9 || math.Abs(theta) < 1e-9 {
		return []Segment{{Start: a, End: b, Layer: layer, Color: color}}
	}
	radius := d / (2 * math.Sin(math.Abs(theta)/2))
	// Apothem from chord midpoint to arc center, on the left of the chord
	// for CCW arcs and on the right for CW.
	apothem := radius * math.Cos(math.Abs(theta)/2)
	left := geo.Pt(-chord.Y/d, chord.X/d)
	side := 1.0
	if bulge < 0 {
		side = -1
	}
	if math.Abs(theta) > math.Pi {
		side = -side
	}
	center := geo.MidPoint(a, b).Add(left.Scale(side * apothem))

	startAngle := math.Atan2(a.Y-center.Y, a.X-center.X)
	steps := int(math.Ceil(math.Abs(theta)/chordAngle - 1e-9))
	if steps < 1 {
		steps = 1
	}
	segs := make([]Segment, 0, steps)
	prev := a
	for i := 1; i <= steps; i++ {
		var next geo.Point2D
		if i == steps {
			next = b
		} else {
			next = pointOnCircle(center, radius, startAngle+theta*float64(i)/float64(steps))
		}
		segs = append(segs, Segment{Start: prev, End: next, Layer: layer, Color: color})
		prev = next
	}
	return segs
}

func pointOnCircle(center geo.Point2D, radius, angle float64) geo.Point2D {
	return geo.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
