package game

import "github.com/robmoss/rusty-train-sub002/pkg/rng"

// RandomOperatingOrder returns g's companies in a deterministic pseudo-random
// order, derived from seed. 18xx games commonly randomise (or auction for)
// the first operating order at the start of a game; this reproduces that
// shuffle without disturbing Companies' own declared order, which remains
// the canonical listing used everywhere else (bonus resolution, token
// lookups, ...).
//
// The shuffle is seeded via pkg/rng's stage-derivation scheme rather than a
// bare math/rand source, so two callers asking for the same game and seed
// always agree -- useful for reproducible example fixtures and tests, not
// for anything the route search itself consumes.
func RandomOperatingOrder(g Game, seed uint64) []Company {
	companies := append([]Company(nil), g.Companies()...)
	r := rng.NewRNG(seed, "operating-order", []byte(g.Name()))
	r.Shuffle(len(companies), func(i, j int) {
		companies[i], companies[j] = companies[j], companies[i]
	})
	return companies
}
