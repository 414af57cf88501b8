package route

import (
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
	"github.com/robmoss/rusty-train-sub002/pkg/tilemap"
)

// CancelFunc is polled cooperatively at enumeration boundaries -- between
// seed expansions and between join-pair evaluations. A nil CancelFunc
// never cancels.
type CancelFunc func() bool

func (c CancelFunc) cancelled() bool { return c != nil && c() }

// halfPath is one arm of the walk from a seed city outward, before it has
// been joined with another arm (or left standing alone) to form a Path.
type halfPath struct {
	steps          []Step
	visits         []Visit
	conflicts      ConflictSet
	routeConflicts ConflictSet
}

func (h halfPath) toPath() Path {
	return newPath(h.steps, h.visits, h.conflicts, h.routeConflicts)
}

// Enumerate walks m's connectivity graph from every placement of
// criteria.Token, producing every legal path: one half path per DFS
// prefix ending at a city or dit, joined pairwise at the seed, and
// deduplicated across seeds that share more than one of the company's
// own tokens.
func Enumerate(m *tilemap.Map, criteria Criteria, cancel CancelFunc) ([]Path, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	placements := m.TokenPlacements(criteria.Token)
	seedOrder := make(map[tilemap.Placement]int, len(placements))
	for i, p := range placements {
		seedOrder[p] = i
	}
	posRank := ownPositionRanks(placements, seedOrder)

	var out []Path
	for _, seed := range placements {
		if cancel.cancelled() {
			break
		}
		halves, ok := walkFromSeed(m, criteria, seed)
		if !ok {
			continue
		}
		joined := joinHalfPaths(halves, seed, criteria, cancel)
		for _, p := range joined {
			if isCanonicalMultiTokenPath(p, seed, posRank) {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

// walkFromSeed runs the outward DFS from one placement of the token,
// returning every half-path (including the trivial singleton consisting
// of the seed city alone).
func walkFromSeed(m *tilemap.Map, criteria Criteria, seed tilemap.Placement) ([]halfPath, bool) {
	seedTile, _, ok := m.TileAt(seed.Addr)
	if !ok {
		return nil, false
	}
	startConn := tile.CityConn(seed.Space.CityIndex)

	var conflicts, routeConflicts ConflictSet
	if c, ok := cityConflict(criteria.ConflictRule, seed.Addr, seed.Space.CityIndex); ok {
		conflicts = conflicts.With(c)
	}
	if c, ok := cityConflict(criteria.RouteConflictRule, seed.Addr, seed.Space.CityIndex); ok {
		routeConflicts = routeConflicts.With(c)
	}

	seedVisit := Visit{
		Addr:     seed.Addr,
		Revenue:  seedTile.Cities[seed.Space.CityIndex].Revenue,
		StopKind: tile.ConnCity,
		Index:    seed.Space.CityIndex,
	}
	h := halfPath{
		steps:          []Step{{Addr: seed.Addr, Conn: startConn}},
		visits:         []Visit{seedVisit},
		conflicts:      conflicts,
		routeConflicts: routeConflicts,
	}

	out := []halfPath{h}
	extend(m, criteria, h, &out)
	return out, true
}

// extend explores every step reachable from h's current position --
// within-tile hops across a track, and (from a face) the crossing to the
// neighbouring hex -- recording each legal extension and, when it lands
// on a city or dit, emitting it as a newly valid half-path.
func extend(m *tilemap.Map, criteria Criteria, h halfPath, out *[]halfPath) {
	cur := h.steps[len(h.steps)-1]
	t, rot, ok := m.TileAt(cur.Addr)
	if !ok {
		return
	}
	for _, hop := range t.AdjacentHops(cur.Conn, rot) {
		track := hop.Track
		tryExtend(m, criteria, h, Step{Addr: cur.Addr, Conn: hop.To}, &track, out)
	}
	if cur.Conn.Kind == tile.ConnFace {
		if nbrAddr, oppFace, ok := m.NeighbourConnection(cur.Addr, cur.Conn.Face); ok {
			tryExtend(m, criteria, h, Step{Addr: nbrAddr, Conn: tile.FaceConn(oppFace)}, nil, out)
		}
	}
}

// tryExtend attempts to extend h with a single step to next, reached
// either via the named track (within next.Addr's tile) or, if track is
// nil, by crossing a hex boundary. It aborts the branch if either the
// track or the landing node repeats a conflict already in h; otherwise it
// records the extension, emits it if it lands on a city or dit and
// respects the path limit, and recurses.
func tryExtend(m *tilemap.Map, criteria Criteria, h halfPath, next Step, track *int, out *[]halfPath) {
	conflicts := h.conflicts
	routeConflicts := h.routeConflicts

	if track != nil {
		tc, _ := trackConflict(criteria.ConflictRule, next.Addr, *track)
		if conflicts.Has(tc) {
			return
		}
		conflicts = conflicts.With(tc)
		if trc, ok := trackConflict(criteria.RouteConflictRule, next.Addr, *track); ok {
			routeConflicts = routeConflicts.With(trc)
		}
	}

	nodeConf, nodeOK := nodeConflict(criteria.ConflictRule, next)
	if nodeOK {
		if conflicts.Has(nodeConf) {
			return
		}
		conflicts = conflicts.With(nodeConf)
	}
	if routeConf, ok := nodeConflict(criteria.RouteConflictRule, next); ok {
		routeConflicts = routeConflicts.With(routeConf)
	}

	steps := append(append([]Step(nil), h.steps...), next)
	visits := h.visits
	isStop := next.Conn.Kind == tile.ConnCity || next.Conn.Kind == tile.ConnDit
	if isStop {
		t, _, ok := m.TileAt(next.Addr)
		if !ok {
			return
		}
		var visit Visit
		if next.Conn.Kind == tile.ConnCity {
			visit = Visit{Addr: next.Addr, Revenue: t.Cities[next.Conn.Index].Revenue, StopKind: tile.ConnCity, Index: next.Conn.Index}
		} else {
			visit = Visit{Addr: next.Addr, Revenue: t.Dits[next.Conn.Index].Revenue, StopKind: tile.ConnDit, Index: next.Conn.Index}
		}
		visits = append(append([]Visit(nil), h.visits...), visit)
	}

	nh := halfPath{steps: steps, visits: visits, conflicts: conflicts, routeConflicts: routeConflicts}
	if !nh.toPath().withinLimit(criteria.Limit) {
		return
	}
	if isStop {
		*out = append(*out, nh)
	}
	extend(m, criteria, nh, out)
}

// nodeConflict dispatches to the conflict table row matching conn's kind.
func nodeConflict(rule ConflictRule, s Step) (Conflict, bool) {
	switch s.Conn.Kind {
	case tile.ConnFace:
		return faceConflict(rule, s.Addr, s.Conn.Face)
	case tile.ConnCity:
		return cityConflict(rule, s.Addr, s.Conn.Index)
	case tile.ConnDit:
		return ditConflict(rule, s.Addr, s.Conn.Index)
	default:
		return Conflict{}, false
	}
}

// joinHalfPaths joins every pair of half-paths (including a half-path
// paired with itself, which only survives the disjointness check when it
// is the trivial seed-only half-path) whose conflict sets agree only on
// the seed into a full Path.
func joinHalfPaths(halves []halfPath, seed tilemap.Placement, criteria Criteria, cancel CancelFunc) []Path {
	seedConf, hasSeedConf := cityConflict(criteria.ConflictRule, seed.Addr, seed.Space.CityIndex)

	restOf := func(cs ConflictSet) ConflictSet {
		if hasSeedConf {
			return cs.Without(seedConf)
		}
		return cs
	}

	var out []Path
	for i := 0; i < len(halves); i++ {
		if cancel.cancelled() {
			break
		}
		for j := i; j < len(halves); j++ {
			a, b := halves[i], halves[j]
			if !restOf(a.conflicts).Disjoint(restOf(b.conflicts)) {
				continue
			}
			joined := joinPair(a, b)
			p := joined.toPath()
			if !p.withinLimit(criteria.Limit) {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// joinPair reverses a and concatenates b onto it, dropping the duplicate
// shared seed step/visit, and merges the two conflict sets (which dedup
// their shared seed marker automatically).
func joinPair(a, b halfPath) halfPath {
	revSteps := reverseSteps(a.steps)
	steps := append(append([]Step(nil), revSteps[:len(revSteps)-1]...), b.steps...)

	revVisits := reverseVisits(a.visits)
	visits := append(append([]Visit(nil), revVisits[:len(revVisits)-1]...), b.visits...)

	return halfPath{
		steps:          steps,
		visits:         visits,
		conflicts:      a.conflicts.Merge(b.conflicts),
		routeConflicts: a.routeConflicts.Merge(b.routeConflicts),
	}
}

func reverseSteps(s []Step) []Step {
	out := make([]Step, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func reverseVisits(v []Visit) []Visit {
	out := make([]Visit, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}

// ownPosition identifies one distinct (address, city) location on the
// map, collapsing multiple token slots at the same city into one
// position for the purposes of the multi-token dedup ordering.
type ownPosition struct {
	addr hexgeo.Address
	city int
}

// ownPositionRanks maps each distinct own-token position to the lowest
// seedOrder rank of any placement occupying it.
func ownPositionRanks(placements []tilemap.Placement, seedOrder map[tilemap.Placement]int) map[ownPosition]int {
	ranks := map[ownPosition]int{}
	for _, p := range placements {
		key := ownPosition{addr: p.Addr, city: p.Space.CityIndex}
		if cur, ok := ranks[key]; !ok || seedOrder[p] < cur {
			ranks[key] = seedOrder[p]
		}
	}
	return ranks
}

// isCanonicalMultiTokenPath ensures a path that passes through more than
// one of the company's own token positions is kept only once, from the
// lowest-ranked of those positions.
func isCanonicalMultiTokenPath(p Path, seed tilemap.Placement, posRank map[ownPosition]int) bool {
	seedRank := posRank[ownPosition{addr: seed.Addr, city: seed.Space.CityIndex}]

	found := map[int]bool{}
	for _, v := range p.Visits {
		if !v.IsCity() {
			continue
		}
		if rank, ok := posRank[ownPosition{addr: v.Addr, city: v.Index}]; ok {
			found[rank] = true
		}
	}
	if len(found) <= 1 {
		return true
	}
	for rank := range found {
		if rank < seedRank {
			return false
		}
	}
	return true
}
