package ioformat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robmoss/rusty-train-sub002/pkg/catalogue"
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/tilemap"
)

// SaveMap writes m's descriptor, under the given game name, to path as
// YAML.
func SaveMap(path, gameName string, m *tilemap.Map) error {
	d := tilemap.FromMap(gameName, m)
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshalling map descriptor: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing map descriptor %s: %w", path, err)
	}
	return nil
}

// LoadMap reads a map descriptor from path and builds a Map from it
// against coords and cat.
func LoadMap(path string, coords hexgeo.Coordinates, cat *catalogue.Catalogue) (*tilemap.Map, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading map descriptor %s: %w", path, err)
	}
	var d tilemap.Descr
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, "", fmt.Errorf("parsing map descriptor %s: %w", path, err)
	}
	m, err := tilemap.BuildMap(d, coords, cat)
	if err != nil {
		return nil, "", fmt.Errorf("building map from descriptor %s: %w", path, err)
	}
	return m, d.GameName, nil
}
