package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

// ValidateSchema performs structural validation on a parsed layout spec
// before any computation runs.
func ValidateSchema(s *plan.LayoutSpec) *Report {
	r := NewReport()

	validateParams(s, r)
	validateDistribution(s, r)
	validateEntities(s, r)

	return r
}

func validateParams(s *plan.LayoutSpec, r *Report) {
	p := s.Params
	if p.TotalUnits < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "total_units must not be negative",
			SpecPath:    "params.total_units",
			ActualValue: p.TotalUnits,
			Expected:    ">= 0",
		})
	}
	nonNegative := map[string]float64{
		"entrance_clearance": p.EntranceClearance,
		"min_unit_clearance": p.MinUnitClearance,
		"corridor_width":     p.CorridorWidth,
		"grid_resolution":    p.GridResolution,
	}
	for name, v := range nonNegative {
		if v < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("params.%s must not be negative", name),
				SpecPath:    "params." + name,
				ActualValue: v,
				Expected:    ">= 0",
			})
		}
	}
}

func validateDistribution(s *plan.LayoutSpec, r *Report) {
	if len(s.Distribution) == 0 {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "distribution is empty; placement will have nothing to do",
			SpecPath: "distribution",
		})
		return
	}
	for label, weight := range s.Distribution {
		if _, _, ok := ParseRangeLabel(label); !ok {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("distribution label %q is not a valid \"min-max\" range", label),
				SpecPath:    "distribution." + label,
				ActualValue: label,
				Expected:    `"min-max" with min < max`,
			})
		}
		if weight <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("distribution weight for %q must be positive", label),
				SpecPath:    "distribution." + label,
				ActualValue: weight,
				Expected:    "> 0",
			})
		}
	}
}

func validateEntities(s *plan.LayoutSpec, r *Report) {
	if len(s.Entities) == 0 {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "no entities in layout spec; the default bounds will be used",
			SpecPath: "entities",
		})
	}
}

// ParseRangeLabel parses a "min-max" area-range label. It reports false for
// malformed labels, non-finite values, and inverted ranges.
func ParseRangeLabel(label string) (min, max float64, ok bool) {
	parts := strings.Split(strings.TrimSpace(label), "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	max, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || min < 0 || max <= min {
		return 0, 0, false
	}
	return min, max, true
}
