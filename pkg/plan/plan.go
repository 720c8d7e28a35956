package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LayoutSpec is the top-level project document: the parsed drawing
// entities, the requested unit-size distribution, and tuning parameters.
type LayoutSpec struct {
	SpecVersion  string           `yaml:"spec_version" json:"spec_version"`
	Name         string           `yaml:"name" json:"name"`
	Entities     []Entity         `yaml:"entities" json:"entities"`
	Distribution SizeDistribution `yaml:"distribution" json:"distribution"`
	Params       Params           `yaml:"params" json:"params"`
}

// Load reads a layout spec from a YAML file.
func Load(path string) (*LayoutSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	var spec LayoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing layout YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a layout spec from a project directory.
// It looks for layout.yaml in the given directory.
func LoadProject(projectDir string) (*LayoutSpec, error) {
	return Load(filepath.Join(projectDir, "layout.yaml"))
}
