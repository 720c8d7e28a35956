package validation

import (
	"testing"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
)

func TestParseRangeLabel(t *testing.T) {
	cases := []struct {
		label string
		min   float64
		max   float64
		ok    bool
	}{
		{"0-1", 0, 1, true},
		{"5-10", 5, 10, true},
		{"1.5-3.5", 1.5, 3.5, true},
		{" 2 - 4 ", 2, 4, true},
		{"10", 0, 0, false},
		{"a-b", 0, 0, false},
		{"5-2", 0, 0, false},
		{"3-3", 0, 0, false},
		{"-1-2", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		min, max, ok := ParseRangeLabel(tc.label)
		if ok != tc.ok {
			t.Errorf("ParseRangeLabel(%q) ok = %v, want %v", tc.label, ok, tc.ok)
			continue
		}
		if ok && (min != tc.min || max != tc.max) {
			t.Errorf("ParseRangeLabel(%q) = (%v, %v), want (%v, %v)", tc.label, min, max, tc.min, tc.max)
		}
	}
}

func TestValidateSchemaClean(t *testing.T) {
	s := &plan.LayoutSpec{
		Distribution: plan.SizeDistribution{"1-3": 50, "3-5": 50},
		Entities:     []plan.Entity{{Type: plan.EntityLine}},
	}
	r := ValidateSchema(s)
	if !r.Valid {
		t.Fatalf("clean spec reported invalid: %s", r.Summary)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestValidateSchemaNegativeParams(t *testing.T) {
	s := &plan.LayoutSpec{
		Distribution: plan.SizeDistribution{"1-3": 50},
		Params:       plan.Params{TotalUnits: -1, CorridorWidth: -2},
	}
	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("negative params should invalidate the spec")
	}
	if len(r.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(r.Errors), r.Errors)
	}
}

func TestValidateSchemaBadDistribution(t *testing.T) {
	s := &plan.LayoutSpec{
		Distribution: plan.SizeDistribution{
			"nonsense": 10,
			"1-3":      -5,
		},
	}
	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("bad distribution should invalidate the spec")
	}
	if len(r.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(r.Errors), r.Errors)
	}
}

func TestValidateSchemaEmptyDistributionWarns(t *testing.T) {
	r := ValidateSchema(&plan.LayoutSpec{})
	if !r.Valid {
		t.Fatal("empty distribution is a warning, not an error")
	}
	if len(r.Warnings) != 2 {
		t.Errorf("expected warnings for distribution and entities, got %d", len(r.Warnings))
	}
}

func TestReportMerge(t *testing.T) {
	a := NewReport()
	a.AddInfo(Result{Level: LevelParse, Message: "parsed"})

	b := NewReport()
	b.AddError(Result{Level: LevelSchema, Message: "broken"})

	a.Merge(b)
	if a.Valid {
		t.Error("merging an invalid report should invalidate")
	}
	if len(a.Errors) != 1 || len(a.Info) != 1 {
		t.Errorf("merge lost results: %s", a.Summary)
	}
}

func TestReportSeverityStamping(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Level: LevelSchema})
	r.AddWarning(Result{Level: LevelSchema})
	r.AddInfo(Result{Level: LevelSchema})
	if r.Errors[0].Severity != SeverityError ||
		r.Warnings[0].Severity != SeverityWarning ||
		r.Info[0].Severity != SeverityInfo {
		t.Error("severity should be stamped by the add methods")
	}
}
