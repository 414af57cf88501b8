package game

import (
	"fmt"

	"github.com/robmoss/rusty-train-sub002/pkg/catalogue"
	"github.com/robmoss/rusty-train-sub002/pkg/route"
	"github.com/robmoss/rusty-train-sub002/pkg/tilemap"
)

// Game is the polymorphic contract a specific title implements. Values
// are owned: one instance is active at a time. A phase change returns a
// new Map and also records the new phase in the Game, so that PhaseIx
// reports it afterwards.
type Game interface {
	// Name is the game's display name.
	Name() string
	// CreateMap builds a fresh, empty Map over the given geometry, using
	// the game's own tile catalogue and coordinate convention.
	CreateMap(geometry Geometry) *tilemap.Map
	// Companies lists every operating company.
	Companies() []Company
	// Trains lists every train a company may own, in the order they
	// become available.
	Trains() []route.Train
	// TileCatalogue returns the game's tile catalogue.
	TileCatalogue() *catalogue.Catalogue
	// BonusOptions lists the bonuses a player may toggle before a search.
	BonusOptions() []BonusOption
	// Bonuses resolves the currently active bonuses given which options
	// (by Key) are enabled.
	Bonuses(flags map[string]bool) []route.Bonus
	// SingleRouteConflicts is the conflict rule used within one path.
	SingleRouteConflicts() route.ConflictRule
	// MultipleRoutesConflicts is the (weaker or equal) conflict rule used
	// between two routes in the same company's Routes.
	MultipleRoutesConflicts() route.ConflictRule
	// PhaseIx returns the current phase's index into PhaseNames.
	PhaseIx() int
	// SetPhaseIx transitions m to phase ix, returning the updated map
	// (phase changes may trigger tile upgrades or newly available stock)
	// and an error if ix is out of range.
	SetPhaseIx(m *tilemap.Map, ix int) (*tilemap.Map, error)
	// PhaseNames lists every phase in order.
	PhaseNames() []string
}

// DitSkipper is an optional capability a Game may implement to override
// the default "keep every dit" SkipTowns policy. Use DitSkipPolicyFor to
// resolve it safely whether or not g implements this interface.
type DitSkipper interface {
	DitSkipPolicy() route.DitSkipPolicy
}

// DitSkipPolicyFor returns g's DitSkipPolicy if it implements DitSkipper
// and the returned policy is non-nil, otherwise route.KeepAllDits.
func DitSkipPolicyFor(g Game) route.DitSkipPolicy {
	if d, ok := g.(DitSkipper); ok {
		if p := d.DitSkipPolicy(); p != nil {
			return p
		}
	}
	return route.KeepAllDits
}

// TrainNames returns the display name of every train g.Trains() offers.
func TrainNames(g Game) []string {
	trains := g.Trains()
	names := make([]string, len(trains))
	for i, t := range trains {
		names[i] = t.Name
	}
	return names
}

// TryTrain looks up a train by name, returning ok=false if none matches.
func TryTrain(g Game, name string) (route.Train, bool) {
	for _, t := range g.Trains() {
		if t.Name == name {
			return t, true
		}
	}
	return route.Train{}, false
}

// GetTrain looks up a train by name, panicking if none matches -- callers
// that already validated the name (e.g. against TrainNames) use this to
// avoid re-checking ok at every call site.
func GetTrain(g Game, name string) route.Train {
	t, ok := TryTrain(g, name)
	if !ok {
		panic(fmt.Sprintf("game %q has no train named %q", g.Name(), name))
	}
	return t
}

// TryCompany looks up a company by name, returning ok=false if none
// matches.
func TryCompany(g Game, name string) (Company, bool) {
	for _, c := range g.Companies() {
		if c.Name == name {
			return c, true
		}
	}
	return Company{}, false
}

// GetCompany looks up a company by name, panicking if none matches.
func GetCompany(g Game, name string) Company {
	c, ok := TryCompany(g, name)
	if !ok {
		panic(fmt.Sprintf("game %q has no company named %q", g.Name(), name))
	}
	return c
}

// NextToken cycles to the operating company after current, wrapping
// around to the first company. Panics if current does not name a
// company, or if g has no companies.
func NextToken(g Game, current string) string {
	companies := g.Companies()
	if len(companies) == 0 {
		panic(fmt.Sprintf("game %q has no companies", g.Name()))
	}
	for i, c := range companies {
		if c.Name == current {
			return companies[(i+1)%len(companies)].Name
		}
	}
	panic(fmt.Sprintf("game %q has no company named %q", g.Name(), current))
}

// PrevToken cycles to the operating company before current, wrapping
// around to the last company.
func PrevToken(g Game, current string) string {
	companies := g.Companies()
	if len(companies) == 0 {
		panic(fmt.Sprintf("game %q has no companies", g.Name()))
	}
	for i, c := range companies {
		if c.Name == current {
			return companies[(i-1+len(companies))%len(companies)].Name
		}
	}
	panic(fmt.Sprintf("game %q has no company named %q", g.Name(), current))
}
