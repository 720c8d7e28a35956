package geo

import "math"

// Rect is an axis-aligned rectangle with X1 <= X2 and Y1 <= Y2.
type Rect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// NewRect creates a rect from an origin and size, normalizing negatives.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Area returns the rect area.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Center returns the rect center point.
func (r Rect) Center() Point2D {
	return Point2D{(r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2}
}

// Corners returns the four corners in CCW order.
func (r Rect) Corners() [4]Point2D {
	return [4]Point2D{
		{r.X1, r.Y1},
		{r.X2, r.Y1},
		{r.X2, r.Y2},
		{r.X1, r.Y2},
	}
}

// Polygon returns the rect as a 4-vertex polygon.
func (r Rect) Polygon() Polygon {
	c := r.Corners()
	return NewPolygon(c[0], c[1], c[2], c[3])
}

// Expand returns the rect grown by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{X1: r.X1 - d, Y1: r.Y1 - d, X2: r.X2 + d, Y2: r.Y2 + d}
}

// ContainsPoint reports whether pt lies inside the rect (closed).
func (r Rect) ContainsPoint(pt Point2D) bool {
	return pt.X >= r.X1 && pt.X <= r.X2 && pt.Y >= r.Y1 && pt.Y <= r.Y2
}

// ContainsPointStrict reports whether pt lies strictly inside the rect,
// using eps as the boundary band.
func (r Rect) ContainsPointStrict(pt Point2D, eps float64) bool {
	return pt.X > r.X1+eps && pt.X < r.X2-eps && pt.Y > r.Y1+eps && pt.Y < r.Y2-eps
}

// ContainsRect reports whether other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X1 >= r.X1 && other.Y1 >= r.Y1 && other.X2 <= r.X2 && other.Y2 <= r.Y2
}

// OverlapArea returns the intersection area of two rects, 0 when disjoint
// or merely edge-touching.
func (r Rect) OverlapArea(other Rect) float64 {
	w := math.Min(r.X2, other.X2) - math.Max(r.X1, other.X1)
	h := math.Min(r.Y2, other.Y2) - math.Max(r.Y1, other.Y1)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Intersects reports whether the two rects share interior area.
func (r Rect) Intersects(other Rect) bool {
	return r.OverlapArea(other) > 0
}

// Distance returns the gap between two rects, 0 when they touch or overlap.
func (r Rect) Distance(other Rect) float64 {
	dx := math.Max(0, math.Max(other.X1-r.X2, r.X1-other.X2))
	dy := math.Max(0, math.Max(other.Y1-r.Y2, r.Y1-other.Y2))
	return math.Hypot(dx, dy)
}

// DistanceToPoint returns the distance from the rect to pt, 0 when inside.
func (r Rect) DistanceToPoint(pt Point2D) float64 {
	dx := math.Max(0, math.Max(r.X1-pt.X, pt.X-r.X2))
	dy := math.Max(0, math.Max(r.Y1-pt.Y, pt.Y-r.Y2))
	return math.Hypot(dx, dy)
}

// DistanceToPolygon returns the minimum distance from the rect to the
// polygon boundary, 0 when they touch or overlap.
func (r Rect) DistanceToPolygon(poly Polygon) float64 {
	n := len(poly.Vertices)
	if n == 0 {
		return math.Inf(1)
	}
	for _, v := range poly.Vertices {
		if r.ContainsPoint(v) {
			return 0
		}
	}
	if n >= 3 && poly.Contains(r.Center()) {
		return 0
	}
	best := math.Inf(1)
	corners := r.Corners()
	for i := 0; i < n; i++ {
		a := poly.Vertices[i]
		var b Point2D
		if n == 1 {
			b = a
		} else {
			b = poly.Vertices[(i+1)%n]
		}
		for j := 0; j < 4; j++ {
			c, d := corners[j], corners[(j+1)%4]
			if SegmentsIntersect(a, b, c, d) {
				return 0
			}
		}
		for _, c := range corners {
			if d := SegmentDistance(c, a, b); d < best {
				best = d
			}
		}
		if d := SegmentDistance(a, corners[0], corners[1]); d < best {
			best = d
		}
		if d := SegmentDistance(a, corners[1], corners[2]); d < best {
			best = d
		}
		if d := SegmentDistance(a, corners[2], corners[3]); d < best {
			best = d
		}
		if d := SegmentDistance(a, corners[3], corners[0]); d < best {
			best = d
		}
	}
	return best
}
