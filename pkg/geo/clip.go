package geo

import "math"

// ClipToRect clips the subject polygon to an axis-aligned rect using the
// Sutherland-Hodgman algorithm. The rect is convex, so the result is exact
// for convex subjects and a usable approximation for concave ones.
func ClipToRect(subject Polygon, r Rect) Polygon {
	if subject.IsEmpty() || r.Width() <= 0 || r.Height() <= 0 {
		return Polygon{}
	}
	clipper := r.Polygon()
	output := make([]Point2D, len(subject.Vertices))
	copy(output, subject.Vertices)

	clipN := len(clipper.Vertices)
	for i := 0; i < clipN; i++ {
		if len(output) == 0 {
			return Polygon{}
		}
		edgeStart := clipper.Vertices[i]
		edgeEnd := clipper.Vertices[(i+1)%clipN]
		input := output
		output = make([]Point2D, 0, len(input))

		for j := 0; j < len(input); j++ {
			current := input[j]
			next := input[(j+1)%len(input)]
			curInside := isInsideEdge(current, edgeStart, edgeEnd)
			nextInside := isInsideEdge(next, edgeStart, edgeEnd)

			if curInside && nextInside {
				output = append(output, next)
			} else if curInside && !nextInside {
				if ix, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					output = append(output, ix)
				}
			} else if !curInside && nextInside {
				if ix, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					output = append(output, ix)
				}
				output = append(output, next)
			}
		}
	}
	if len(output) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: output}
}

// isInsideEdge returns true if pt is on the left side of the directed edge.
func isInsideEdge(pt, edgeStart, edgeEnd Point2D) bool {
	return edgeEnd.Sub(edgeStart).Cross(pt.Sub(edgeStart)) >= 0
}

// lineIntersection returns the intersection of lines (p1,p2) and (p3,p4).
func lineIntersection(p1, p2, p3, p4 Point2D) (Point2D, bool) {
	d := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(d) < 1e-12 {
		return Point2D{}, false
	}
	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / d
	return Point2D{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
	}, true
}

// RectPolygonOverlapArea returns the overlap area between a rect and a
// polygon. The primary path clips the polygon to the rect and takes the
// shoelace area; if clipping degenerates (bad vertices, NaN area) it falls
// through to a vertex/edge test that only distinguishes zero from non-zero.
func RectPolygonOverlapArea(r Rect, poly Polygon) float64 {
	if poly.IsEmpty() || r.Area() <= 0 {
		return 0
	}
	if area, ok := clipOverlapArea(r, poly); ok {
		return area
	}
	if rectPolygonTouches(r, poly) {
		// Non-zero sentinel: exact area is unavailable on this path.
		return math.Min(r.Area(), poly.Area())
	}
	return 0
}

// RectIntersectsPolygon reports whether a rect and a polygon share area,
// treating pure edge/vertex touching as non-intersecting on the clip path.
func RectIntersectsPolygon(r Rect, poly Polygon) bool {
	return RectPolygonOverlapArea(r, poly) > 1e-9
}

func clipOverlapArea(r Rect, poly Polygon) (float64, bool) {
	for _, v := range poly.Vertices {
		if !v.IsFinite() {
			return 0, false
		}
	}
	minP, maxP := poly.BoundingBox()
	if maxP.X <= r.X1 || minP.X >= r.X2 || maxP.Y <= r.Y1 || minP.Y >= r.Y2 {
		return 0, true
	}
	clipped := ClipToRect(poly, r)
	area := clipped.Area()
	if math.IsNaN(area) || math.IsInf(area, 0) {
		return 0, false
	}
	return area, true
}

// rectPolygonTouches is the fallback intersection test: any polygon vertex
// strictly inside the rect, any rect corner inside the polygon, or any
// edge crossing counts as an overlap.
func rectPolygonTouches(r Rect, poly Polygon) bool {
	for _, v := range poly.Vertices {
		if v.IsFinite() && r.ContainsPointStrict(v, 1e-9) {
			return true
		}
	}
	for _, c := range r.Corners() {
		if poly.Contains(c) {
			return true
		}
	}
	n := len(poly.Vertices)
	corners := r.Corners()
	for i := 0; i < n; i++ {
		a, b := poly.Vertices[i], poly.Vertices[(i+1)%n]
		if !a.IsFinite() || !b.IsFinite() {
			continue
		}
		for j := 0; j < 4; j++ {
			if SegmentsIntersect(a, b, corners[j], corners[(j+1)%4]) {
				return true
			}
		}
	}
	return false
}
