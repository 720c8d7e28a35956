// Package analytics derives summary metrics from a finished layout:
// utilization, per-type unit counts, and corridor coverage. It consumes
// plain pipeline outputs and performs no I/O.
package analytics

import (
	"sort"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/corridor"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/placement"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

// TypeCount holds the unit count for one size bucket.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Metrics is the layout summary.
type Metrics struct {
	BoundsArea        float64     `json:"bounds_area_m2"`
	UnitCount         int         `json:"unit_count"`
	RequestedUnits    int         `json:"requested_units"`
	PlacementRate     float64     `json:"placement_rate"`
	TotalUnitArea     float64     `json:"total_unit_area_m2"`
	SpaceUtilization  float64     `json:"space_utilization"`
	TotalCapacity     int         `json:"total_capacity"`
	UnitsByType       []TypeCount `json:"units_by_type"`
	CorridorCount     int         `json:"corridor_count"`
	TotalCorridorArea float64     `json:"total_corridor_area_m2"`
	CirculationRatio  float64     `json:"circulation_ratio"`
	RoomCount         int         `json:"room_count"`
	ForbiddenArea     float64     `json:"forbidden_area_m2"`
}

// Summarize computes layout metrics from the pipeline outputs.
func Summarize(fp *plan.FloorPlan, placed *placement.Result, corridors []corridor.Corridor) Metrics {
	m := Metrics{
		BoundsArea:     fp.Bounds.Width() * fp.Bounds.Height(),
		UnitCount:      len(placed.Units),
		RequestedUnits: placed.Requested,
		CorridorCount:  len(corridors),
		RoomCount:      len(fp.Rooms),
	}

	byType := map[string]int{}
	for _, u := range placed.Units {
		m.TotalUnitArea += u.Area
		m.TotalCapacity += u.Capacity
		byType[u.Type]++
	}
	for t, n := range byType {
		m.UnitsByType = append(m.UnitsByType, TypeCount{Type: t, Count: n})
	}
	sort.Slice(m.UnitsByType, func(i, j int) bool {
		return m.UnitsByType[i].Type < m.UnitsByType[j].Type
	})

	for _, c := range corridors {
		m.TotalCorridorArea += c.Area
	}
	for _, z := range fp.Forbidden {
		m.ForbiddenArea += z.Polygon.Area()
	}

	if placed.Requested > 0 {
		m.PlacementRate = float64(m.UnitCount) / float64(placed.Requested)
	}
	if m.BoundsArea > 0 {
		m.SpaceUtilization = m.TotalUnitArea / m.BoundsArea
		m.CirculationRatio = m.TotalCorridorArea / m.BoundsArea
	}
	return m
}
