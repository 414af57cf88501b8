package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robmoss/rusty-train-sub002/pkg/route"
)

// Config drives a route search from the command line: which game and map
// to load, which company and phase are active, and which bonus options
// and conflict rules to apply.
type Config struct {
	// Game is the registered name of the Game implementation to use
	// (e.g. "Boxcars").
	Game string `yaml:"game"`

	// MapFile is the path to a saved map descriptor (see pkg/ioformat).
	// Empty means start from a fresh, empty map built from the game's
	// default Geometry.
	MapFile string `yaml:"map_file,omitempty"`

	// Company is the name of the operating company whose trains run the
	// search.
	Company string `yaml:"company"`

	// PhaseIx is the game phase active during the search.
	PhaseIx int `yaml:"phase_ix"`

	// Bonuses maps each of the game's BonusOption keys to whether it is
	// enabled.
	Bonuses map[string]bool `yaml:"bonuses,omitempty"`

	// ConflictRule and RouteConflictRule override the game's default
	// conflict rules when set; empty strings mean "use the game's
	// default".
	ConflictRule      string `yaml:"conflict_rule,omitempty"`
	RouteConflictRule string `yaml:"route_conflict_rule,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML configuration from a
// byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration's structural constraints. It does
// not check Game/Company names against a loaded Game, since Config is
// parsed before a Game is selected.
func (c *Config) Validate() error {
	if c.Game == "" {
		return fmt.Errorf("game must be specified")
	}
	if c.Company == "" {
		return fmt.Errorf("company must be specified")
	}
	if c.PhaseIx < 0 {
		return fmt.Errorf("phase_ix must be non-negative, got %d", c.PhaseIx)
	}
	if c.ConflictRule != "" {
		if _, err := route.ParseConflictRule(c.ConflictRule); err != nil {
			return fmt.Errorf("conflict_rule: %w", err)
		}
	}
	if c.RouteConflictRule != "" {
		if _, err := route.ParseConflictRule(c.RouteConflictRule); err != nil {
			return fmt.Errorf("route_conflict_rule: %w", err)
		}
	}
	return nil
}

// ResolveConflictRules returns the conflict rules the search should use:
// Config overrides where set, falling back to g's own defaults.
func (c *Config) ResolveConflictRules(g Game) (route.ConflictRule, route.ConflictRule, error) {
	single := g.SingleRouteConflicts()
	multi := g.MultipleRoutesConflicts()
	if c.ConflictRule != "" {
		r, err := route.ParseConflictRule(c.ConflictRule)
		if err != nil {
			return 0, 0, err
		}
		single = r
	}
	if c.RouteConflictRule != "" {
		r, err := route.ParseConflictRule(c.RouteConflictRule)
		if err != nil {
			return 0, 0, err
		}
		multi = r
	}
	return single, multi, nil
}
