package route

import (
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

// Step is a single node of a realised path's walk: a connection (face,
// city, or dit) at a particular hex address.
type Step struct {
	Addr hexgeo.Address
	Conn tile.Connection
}

// Visit is one revenue stop along a path: a city or dit at some address,
// with the tile's base revenue for that stop.
type Visit struct {
	Addr     hexgeo.Address
	Revenue  int
	StopKind tile.ConnKind // tile.ConnCity or tile.ConnDit
	Index    int
}

// IsCity reports whether the visit is at a city (as opposed to a dit).
func (v Visit) IsCity() bool { return v.StopKind == tile.ConnCity }

// PathLimit bounds an enumerated path's size: optional maxima on the
// number of visits, cities, dits, and distinct hexes touched. A nil
// field means that dimension is unbounded.
type PathLimit struct {
	MaxVisits *int
	MaxCities *int
	MaxDits   *int
	MaxHexes  *int
}

func withinLimit(n int, max *int) bool {
	return max == nil || n <= *max
}

// Path is a single legal walk across the map-wide graph from a company's
// token: its ordered steps, the derived ordered visits, its conflict sets
// under both the intra-path and inter-route rules, aggregate counts, and
// the sum of its visits' base revenue.
type Path struct {
	Steps          []Step
	Visits         []Visit
	Conflicts      ConflictSet
	RouteConflicts ConflictSet

	NumVisits int
	NumCities int
	NumDits   int
	NumHexes  int
	Revenue   int
}

// numHexes counts the distinct addresses touched by steps.
func numHexes(steps []Step) int {
	seen := map[hexgeo.Address]bool{}
	for _, s := range steps {
		seen[s.Addr] = true
	}
	return len(seen)
}

func newPath(steps []Step, visits []Visit, conflicts, routeConflicts ConflictSet) Path {
	p := Path{
		Steps:          steps,
		Visits:         visits,
		Conflicts:      conflicts,
		RouteConflicts: routeConflicts,
		NumVisits:      len(visits),
		NumHexes:       numHexes(steps),
	}
	for _, v := range visits {
		p.Revenue += v.Revenue
		if v.IsCity() {
			p.NumCities++
		} else {
			p.NumDits++
		}
	}
	return p
}

// withinLimit reports whether the path's current counts satisfy limit
// (nil limit means unbounded in every dimension).
func (p Path) withinLimit(limit *PathLimit) bool {
	if limit == nil {
		return true
	}
	return withinLimit(p.NumVisits, limit.MaxVisits) &&
		withinLimit(p.NumCities, limit.MaxCities) &&
		withinLimit(p.NumDits, limit.MaxDits) &&
		withinLimit(p.NumHexes, limit.MaxHexes)
}
