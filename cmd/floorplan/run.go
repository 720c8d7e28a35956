package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/analytics"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/cad"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/corridor"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/placement"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/scene2d"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/validation"
)

// loadAndValidate loads the layout spec and runs schema validation.
func loadAndValidate(projectPath string) (*plan.LayoutSpec, *validation.Report, error) {
	layoutSpec, err := plan.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading layout: %w", err)
	}
	return layoutSpec, validation.ValidateSchema(layoutSpec), nil
}

func runValidate(projectPath string) error {
	layoutSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	fp := cad.Reconstruct(layoutSpec.Entities)
	report.AddInfo(validation.Result{
		Level: validation.LevelParse,
		Message: fmt.Sprintf("reconstructed %d segments into %d closed polygons (%d entities skipped, %d rooms)",
			fp.Summary.Segments, fp.Summary.ClosedPolygons, fp.Summary.Skipped, fp.Summary.Rooms),
	})

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runSolve(projectPath string, sceneOnly bool) error {
	layoutSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("layout spec has validation errors")
	}

	log.Info("solving layout", "project", projectPath, "entities", len(layoutSpec.Entities))

	fp := cad.Reconstruct(layoutSpec.Entities)
	log.Info("reconstructed floor plan",
		"polygons", fp.Summary.ClosedPolygons,
		"rooms", fp.Summary.Rooms,
		"skipped", fp.Summary.Skipped)

	placed, err := placement.Generate(fp, layoutSpec.Distribution, layoutSpec.Params)
	if err != nil {
		return fmt.Errorf("placement: %w", err)
	}
	report.Merge(placed.Report)

	routed := corridor.Generate(fp, placed.Units, layoutSpec.Params)
	report.Merge(routed.Report)

	metrics := analytics.Summarize(fp, placed, routed.Corridors)
	scene := scene2d.Assemble(layoutSpec.Name, fp, placed.Units, routed.Corridors)

	log.Info("layout complete",
		"units", len(placed.Units),
		"corridors", len(routed.Corridors),
		"utilization", fmt.Sprintf("%.1f%%", metrics.SpaceUtilization*100))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if sceneOnly {
		return enc.Encode(scene)
	}
	return enc.Encode(map[string]any{
		"floor_plan": fp,
		"units":      placed.Units,
		"corridors":  routed.Corridors,
		"metrics":    metrics,
		"validation": report,
		"scene":      scene,
	})
}
