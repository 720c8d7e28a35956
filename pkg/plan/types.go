// Package plan defines the shared data model of the layout pipeline: the
// classified floor plan produced by vector reconstruction, the size
// distribution driving placement, and the tuning parameters. A FloorPlan is
// built once per parse and read-only thereafter.
package plan

import (
	"math"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
)

// ZoneKind classifies a reconstructed polygon or segment.
type ZoneKind string

const (
	ZoneWall      ZoneKind = "wall"
	ZoneForbidden ZoneKind = "forbidden"
	ZoneEntrance  ZoneKind = "entrance"
)

// Zone is a classified region of the floor plan.
type Zone struct {
	Polygon geo.Polygon `json:"polygon"`
	Kind    ZoneKind    `json:"kind"`
	Layer   string      `json:"layer,omitempty"`
}

// Room is a closed region large enough to be usable space.
type Room struct {
	ID       string      `json:"id"`
	Polygon  geo.Polygon `json:"polygon"`
	Area     float64     `json:"area"`
	Centroid geo.Point2D `json:"centroid"`
	BBox     geo.Rect    `json:"bbox"`
	Type     string      `json:"type"`
}

// Bounds accumulates the extent of every finite coordinate seen during
// reconstruction.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
	seen bool
}

// NewBounds creates bounds spanning the given extent.
func NewBounds(minX, minY, maxX, maxY float64) Bounds {
	return Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, seen: true}
}

// DefaultBounds is the fallback extent used when a drawing contained no
// finite coordinates at all.
func DefaultBounds() Bounds {
	return NewBounds(0, 0, 100, 100)
}

// Extend grows the bounds to include pt. Non-finite points are ignored.
func (b *Bounds) Extend(pt geo.Point2D) {
	if !pt.IsFinite() {
		return
	}
	if !b.seen {
		b.MinX, b.MaxX = pt.X, pt.X
		b.MinY, b.MaxY = pt.Y, pt.Y
		b.seen = true
		return
	}
	b.MinX = math.Min(b.MinX, pt.X)
	b.MinY = math.Min(b.MinY, pt.Y)
	b.MaxX = math.Max(b.MaxX, pt.X)
	b.MaxY = math.Max(b.MaxY, pt.Y)
}

// Valid reports whether the bounds describe a non-empty area.
func (b Bounds) Valid() bool {
	return b.seen && b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Rect returns the bounds as a geo.Rect.
func (b Bounds) Rect() geo.Rect {
	return geo.Rect{X1: b.MinX, Y1: b.MinY, X2: b.MaxX, Y2: b.MaxY}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ParseSummary counts per-category reconstruction outcomes. It is purely
// diagnostic and never causes a parse to fail.
type ParseSummary struct {
	Entities       int `json:"entities"`
	Skipped        int `json:"skipped"`
	Segments       int `json:"segments"`
	ClosedPolygons int `json:"closed_polygons"`
	OpenChains     int `json:"open_chains"`
	Rooms          int `json:"rooms"`
}

// FloorPlan is the reconstructed, classified drawing.
type FloorPlan struct {
	Walls     []Zone       `json:"walls"`
	Forbidden []Zone       `json:"forbidden_zones"`
	Entrances []Zone       `json:"entrances"`
	Bounds    Bounds       `json:"bounds"`
	Rooms     []Room       `json:"rooms"`
	Summary   ParseSummary `json:"summary"`
}

// SizeDistribution maps an area-range label ("min-max", in m²) to a weight.
// Weights may sum to 1, to 100, be explicit unit counts, or be arbitrary
// proportions; demand generation normalizes them.
type SizeDistribution map[string]float64

// Params is the tuning-parameter bag for placement and routing.
type Params struct {
	TotalUnits        int     `yaml:"total_units" json:"total_units"`
	EntranceClearance float64 `yaml:"entrance_clearance" json:"entrance_clearance"`
	MinUnitClearance  float64 `yaml:"min_unit_clearance" json:"min_unit_clearance"`
	MaxAttempts       int     `yaml:"max_attempts" json:"max_attempts"`
	CorridorWidth     float64 `yaml:"corridor_width" json:"corridor_width"`
	GridResolution    float64 `yaml:"grid_resolution" json:"grid_resolution"`
	Seed              uint32  `yaml:"seed" json:"seed"`
}

// WithDefaults fills unset parameters with their defaults.
func (p Params) WithDefaults() Params {
	if p.TotalUnits <= 0 {
		p.TotalUnits = 50
	}
	if p.EntranceClearance <= 0 {
		p.EntranceClearance = 1.0
	}
	if p.MinUnitClearance <= 0 {
		p.MinUnitClearance = 0.5
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 30
	}
	if p.CorridorWidth <= 0 {
		p.CorridorWidth = 1.5
	}
	if p.GridResolution <= 0 {
		p.GridResolution = 0.5
	}
	return p
}
