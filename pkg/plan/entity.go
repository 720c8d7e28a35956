package plan

import "github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"

// Entity kinds accepted by the reconstructor. Anything else is skipped
// and counted in the parse summary.
const (
	EntityLine       = "line"
	EntityArc        = "arc"
	EntityCircle     = "circle"
	EntityPolyline   = "polyline"
	EntityLWPolyline = "lwpolyline"
)

// PolyVertex is a polyline vertex. A non-zero bulge encodes a circular arc
// to the next vertex (bulge = tan of a quarter of the included angle).
type PolyVertex struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Bulge float64 `yaml:"bulge,omitempty" json:"bulge,omitempty"`
}

// Point returns the vertex position.
func (v PolyVertex) Point() geo.Point2D {
	return geo.Pt(v.X, v.Y)
}

// Entity is one already-parsed drawing record. Geometry fields are pointers
// where absence must be distinguishable from the origin.
type Entity struct {
	Type       string       `yaml:"type" json:"type"`
	Layer      string       `yaml:"layer,omitempty" json:"layer,omitempty"`
	Color      int          `yaml:"color,omitempty" json:"color,omitempty"`
	Start      *geo.Point2D `yaml:"start,omitempty" json:"start,omitempty"`
	End        *geo.Point2D `yaml:"end,omitempty" json:"end,omitempty"`
	Center     *geo.Point2D `yaml:"center,omitempty" json:"center,omitempty"`
	Radius     float64      `yaml:"radius,omitempty" json:"radius,omitempty"`
	StartAngle float64      `yaml:"start_angle,omitempty" json:"start_angle,omitempty"` // degrees
	EndAngle   float64      `yaml:"end_angle,omitempty" json:"end_angle,omitempty"`     // degrees
	Vertices   []PolyVertex `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Closed     bool         `yaml:"closed,omitempty" json:"closed,omitempty"`
}
