package placement

import (
	"errors"
	"math"
	"sort"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/seq"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/validation"
)

// ErrNoValidRanges is returned when the size distribution contains no
// usable "min-max" ranges. This is one of the two hard failures of the
// pipeline.
var ErrNoValidRanges = errors.New("size distribution has no valid ranges")

// Aspect-ratio band for sampled unit footprints.
const (
	aspectMin = 1.2
	aspectMax = 2.0
)

type sizeRange struct {
	label  string
	min    float64
	max    float64
	weight float64
}

// candidate is a demanded unit awaiting placement.
type candidate struct {
	width  float64
	height float64
	area   float64
}

// parseRanges extracts the valid ranges from the distribution in a
// deterministic order (ascending by range minimum, then label).
func parseRanges(dist plan.SizeDistribution) ([]sizeRange, error) {
	var ranges []sizeRange
	for label, weight := range dist {
		min, max, ok := validation.ParseRangeLabel(label)
		if !ok || weight <= 0 {
			continue
		}
		ranges = append(ranges, sizeRange{label: label, min: min, max: max, weight: weight})
	}
	if len(ranges) == 0 {
		return nil, ErrNoValidRanges
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].min != ranges[j].min {
			return ranges[i].min < ranges[j].min
		}
		return ranges[i].label < ranges[j].label
	})
	return ranges, nil
}

// rangeCounts normalizes the weights into per-range unit counts. Explicit
// integer weights summing to the requested total pass through verbatim;
// everything else is treated proportionally, with the remainder distributed
// by largest fractional part.
func rangeCounts(ranges []sizeRange, total int) []int {
	counts := make([]int, len(ranges))
	sum := 0.0
	allInts := true
	for _, r := range ranges {
		sum += r.weight
		if r.weight != math.Trunc(r.weight) {
			allInts = false
		}
	}
	if sum <= 0 {
		return counts
	}
	if allInts && int(sum) == total {
		for i, r := range ranges {
			counts[i] = int(r.weight)
		}
		return counts
	}

	type frac struct {
		idx  int
		part float64
	}
	var fracs []frac
	assigned := 0
	for i, r := range ranges {
		exact := r.weight / sum * float64(total)
		counts[i] = int(math.Floor(exact))
		assigned += counts[i]
		fracs = append(fracs, frac{idx: i, part: exact - math.Floor(exact)})
	}
	sort.SliceStable(fracs, func(i, j int) bool {
		return fracs[i].part > fracs[j].part
	})
	for i := 0; i < total-assigned; i++ {
		counts[fracs[i%len(fracs)].idx]++
	}
	return counts
}

// generateDemand samples one candidate per requested unit: an area within
// its range and an aspect ratio within the fixed band, randomly oriented.
func generateDemand(ranges []sizeRange, counts []int, rng *seq.Sequence) []candidate {
	var cands []candidate
	for i, r := range ranges {
		for n := 0; n < counts[i]; n++ {
			area := rng.Range(r.min, r.max)
			if area <= 0 {
				area = r.max
			}
			aspect := rng.Range(aspectMin, aspectMax)
			w := math.Sqrt(area * aspect)
			h := area / w
			if rng.Float64() < 0.5 {
				w, h = h, w
			}
			cands = append(cands, candidate{width: w, height: h, area: area})
		}
	}
	// Largest-first packing reduces fragmentation.
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].area > cands[j].area
	})
	return cands
}
