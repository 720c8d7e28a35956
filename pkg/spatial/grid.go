// Package spatial implements a uniform-grid broad-phase index used to prune
// pairwise checks during placement and refinement. It is a pure filter:
// callers always re-verify exact overlap on the candidates it returns.
package spatial

import (
	"math"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/geo"
)

// Item is anything with an axis-aligned bounding rect.
type Item interface {
	Bounds() geo.Rect
}

type cellKey struct {
	cx, cy int
}

// GridIndex buckets items into uniform cells over a fixed extent.
type GridIndex struct {
	extent   geo.Rect
	cellSize float64
	cells    map[cellKey][]Item
}

// NewGridIndex creates an index over extent with the given cell size.
// Non-positive cell sizes fall back to 1.
func NewGridIndex(extent geo.Rect, cellSize float64) *GridIndex {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &GridIndex{
		extent:   extent,
		cellSize: cellSize,
		cells:    make(map[cellKey][]Item),
	}
}

func (g *GridIndex) cellRange(r geo.Rect) (int, int, int, int) {
	cx1 := int(math.Floor((r.X1 - g.extent.X1) / g.cellSize))
	cy1 := int(math.Floor((r.Y1 - g.extent.Y1) / g.cellSize))
	cx2 := int(math.Floor((r.X2 - g.extent.X1) / g.cellSize))
	cy2 := int(math.Floor((r.Y2 - g.extent.Y1) / g.cellSize))
	return cx1, cy1, cx2, cy2
}

// Insert adds an item to every cell its bounds touch.
func (g *GridIndex) Insert(item Item) {
	cx1, cy1, cx2, cy2 := g.cellRange(item.Bounds())
	for cx := cx1; cx <= cx2; cx++ {
		for cy := cy1; cy <= cy2; cy++ {
			k := cellKey{cx, cy}
			g.cells[k] = append(g.cells[k], item)
		}
	}
}

// QueryRect returns candidate items whose cells intersect the query rect
// expanded by pad. Items spanning several cells appear once.
func (g *GridIndex) QueryRect(r geo.Rect, pad float64) []Item {
	cx1, cy1, cx2, cy2 := g.cellRange(r.Expand(pad))
	seen := make(map[Item]struct{})
	var out []Item
	for cx := cx1; cx <= cx2; cx++ {
		for cy := cy1; cy <= cy2; cy++ {
			for _, item := range g.cells[cellKey{cx, cy}] {
				if _, ok := seen[item]; ok {
					continue
				}
				seen[item] = struct{}{}
				out = append(out, item)
			}
		}
	}
	return out
}

// Clear removes all items, keeping the extent and cell size.
func (g *GridIndex) Clear() {
	g.cells = make(map[cellKey][]Item)
}

// Len returns the number of occupied cells.
func (g *GridIndex) Len() int {
	return len(g.cells)
}
