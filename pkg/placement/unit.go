// Package placement packs rectangular workspace units into a reconstructed
// floor plan under clearance constraints, using a deterministic center-out
// grid scan with a seeded randomized fallback, followed by a seeded
// overlap-refinement pass. All randomness flows through the caller's seed;
// identical inputs yield bit-identical layouts.
package placement

import (
	"math"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
)

// Unit is one placed workspace rectangle. Units live in an arena addressed
// by their stable integer ID; only the position mutates, and only during
// refinement.
type Unit struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Area     float64 `json:"area"`
	Type     string  `json:"type"`
	Capacity int     `json:"capacity"`
}

// Rect returns the unit footprint as an axis-aligned rect.
func (u *Unit) Rect() geo.Rect {
	return geo.NewRect(u.X, u.Y, u.Width, u.Height)
}

// Bounds implements spatial.Item.
func (u *Unit) Bounds() geo.Rect {
	return u.Rect()
}

// unitType buckets a unit by its area.
func unitType(area float64) string {
	switch {
	case area < 2:
		return "micro"
	case area < 5:
		return "small"
	case area < 10:
		return "standard"
	default:
		return "large"
	}
}

// unitCapacity estimates occupancy at roughly one person per 4 m².
func unitCapacity(area float64) int {
	c := int(math.Round(area / 4))
	if c < 1 {
		c = 1
	}
	return c
}
