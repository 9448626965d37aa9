// Package config loads the unit catalogue and battle scenarios from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default file names inside a config directory.
const (
	CatalogFile  = "units.yaml"
	ScenarioFile = "scenario.yaml"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// LoadCatalog reads and validates a unit catalogue.
func LoadCatalog(path string) (*CatalogConfig, error) {
	var cc CatalogConfig
	if err := loadYAML(path, &cc); err != nil {
		return nil, err
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	return &cc, nil
}

// LoadScenario reads a scenario. Unit types are checked later, against a
// catalogue, by ScenarioConfig.Armies.
func LoadScenario(path string) (*ScenarioConfig, error) {
	var sc ScenarioConfig
	if err := loadYAML(path, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadAll reads units.yaml and scenario.yaml from dir.
func LoadAll(dir string) (*CatalogConfig, *ScenarioConfig, error) {
	cc, err := LoadCatalog(filepath.Join(dir, CatalogFile))
	if err != nil {
		return nil, nil, err
	}
	sc, err := LoadScenario(filepath.Join(dir, ScenarioFile))
	if err != nil {
		return nil, nil, err
	}
	return cc, sc, nil
}
