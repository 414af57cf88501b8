package route

import "github.com/robmoss/rusty-train-sub002/pkg/hexgeo"

// Bonus is extra revenue a route may earn on top of its stops' base
// revenue. Implementations are value types so a game's bonus list can be
// built, filtered by the player's chosen options, and cloned cheaply.
type Bonus interface {
	// apply returns the bonus revenue earned by running train on path
	// with the given kept-visit index set (keys are indices into
	// path.Visits). Every bonus, including ConnectionBonus, is
	// conditioned on the kept stops: a stop that the path merely passes
	// through without being selected earns nothing.
	apply(train Train, path Path, kept map[int]bool) int
}

// VisitBonus adds a fixed amount if any kept stop is at Locn, regardless
// of which train runs the route.
type VisitBonus struct {
	Locn  hexgeo.Address
	Bonus int
}

func (b VisitBonus) apply(_ Train, path Path, kept map[int]bool) int {
	for ix := range kept {
		if path.Visits[ix].Addr == b.Locn {
			return b.Bonus
		}
	}
	return 0
}

// VisitWithTrainBonus adds a fixed amount only when the named train
// stops at Locn -- e.g. a private company whose bonus is restricted to
// a specific train.
type VisitWithTrainBonus struct {
	Locn  hexgeo.Address
	Train string
	Bonus int
}

func (b VisitWithTrainBonus) apply(train Train, path Path, kept map[int]bool) int {
	if train.Name != b.Train {
		return 0
	}
	for ix := range kept {
		if path.Visits[ix].Addr == b.Locn {
			return b.Bonus
		}
	}
	return 0
}

// ConnectionBonus adds a fixed amount when the kept stops include From
// and at least one address in ToAny. Because it depends on which stops
// are actually kept, not merely which ones the path passes through, it
// can make an otherwise low-revenue stop worth keeping.
type ConnectionBonus struct {
	From  hexgeo.Address
	ToAny []hexgeo.Address
	Bonus int
}

func (b ConnectionBonus) apply(_ Train, path Path, kept map[int]bool) int {
	hasFrom := false
	for i, v := range path.Visits {
		if kept[i] && v.Addr == b.From {
			hasFrom = true
			break
		}
	}
	if !hasFrom {
		return 0
	}
	for _, to := range b.ToAny {
		for i, v := range path.Visits {
			if kept[i] && v.Addr == to {
				return b.Bonus
			}
		}
	}
	return 0
}
