package route

import (
	"fmt"

	"github.com/google/uuid"
)

// DitSkipPolicy decides which of a SkipTowns train's dit stops to skip
// on a given path, letting a game override the default (keep every
// dit) when one of its bonuses rewards skipping a particular stop. The
// returned slice holds indices into path.Visits naming the dits to
// drop; any index that is not a dit is ignored.
type DitSkipPolicy func(train Train, path Path, bonuses []Bonus) []int

// KeepAllDits is the default DitSkipPolicy: a SkipTowns train always
// keeps every dit along its path.
func KeepAllDits(Train, Path, []Bonus) []int { return nil }

// Route is a path together with the stops a single train actually
// makes: Steps carries the full geometric traversal, Visits only the
// stops kept (in path order), and Revenue the earnings of that
// selection under the governing bonuses.
type Route struct {
	Steps   []Step
	Visits  []Visit
	Revenue int
}

// TrainRoute pairs one of a company's trains with the route it runs.
type TrainRoute struct {
	Train   Train
	Revenue int
	Route   Route
}

// Routes is the outcome of optimising a company's train assignment: the
// chosen (train, route) pairs and their combined revenue. A zero-value
// Routes (nil TrainRoutes, zero NetRevenue) means no train could make a
// valid route.
type Routes struct {
	ID          string
	NetRevenue  int
	TrainRoutes []TrainRoute
}

// pathClassKey identifies paths that are interchangeable for assignment
// purposes: identical kept-visit profile (so identical revenue under
// any train) and identical inter-route conflicts (so identical
// feasibility against any other path in the same assignment).
func pathClassKey(p Path) string {
	key := ""
	for _, v := range p.Visits {
		key += fmt.Sprintf("(%d,%d,%d,%d,%d)", v.Addr.Row, v.Addr.Col, v.Revenue, v.StopKind, v.Index)
	}
	key += "|"
	for _, c := range p.RouteConflicts {
		key += c.String() + ";"
	}
	return key
}

// trainClassKey identifies trains that are interchangeable for
// assignment purposes. Name is included because a VisitWithTrainBonus
// may single out one specific train by name.
func trainClassKey(t Train) string {
	maxStops := -1
	if t.MaxStops != nil {
		maxStops = *t.MaxStops
	}
	return fmt.Sprintf("%s|%d|%d|%d", t.Name, t.Type, maxStops, t.Multiplier)
}

func classIndices(keys []string) []int {
	classes := make([]int, len(keys))
	seen := map[string]int{}
	for i, k := range keys {
		id, ok := seen[k]
		if !ok {
			id = len(seen)
			seen[k] = id
		}
		classes[i] = id
	}
	return classes
}

// Optimise finds the assignment of trains to paths, and the stop
// selection each train makes, that maximises total net revenue. It
// tries every count of trains actually operated (0 up to
// min(len(trains), len(paths))), every class-deduplicated permutation of
// which trains and which paths fill those slots, and rejects any
// assignment whose chosen paths' inter-route conflicts are not pairwise
// disjoint. A nil ditPolicy defaults to KeepAllDits.
func Optimise(paths []Path, trains []Train, bonuses []Bonus, ditPolicy DitSkipPolicy, cancel CancelFunc) (*Routes, error) {
	if ditPolicy == nil {
		ditPolicy = KeepAllDits
	}
	if len(trains) == 0 || len(paths) == 0 {
		return &Routes{}, nil
	}

	pathKeys := make([]string, len(paths))
	for i, p := range paths {
		pathKeys[i] = pathClassKey(p)
	}
	pathClasses := classIndices(pathKeys)

	trainKeys := make([]string, len(trains))
	for i, t := range trains {
		trainKeys[i] = trainClassKey(t)
	}
	trainClasses := classIndices(trainKeys)

	maxK := len(trains)
	if len(paths) < maxK {
		maxK = len(paths)
	}

	best := &Routes{}
	bestRevenue := 0

	for k := 0; k <= maxK; k++ {
		if cancel.cancelled() {
			break
		}
		trainPerms := NewKPermutationsFilter(trainClasses, k)
		for tp, ok := trainPerms.Next(); ok; tp, ok = trainPerms.Next() {
			if cancel.cancelled() {
				break
			}
			pathPerms := NewKPermutationsFilter(pathClasses, k)
			for pp, ok2 := pathPerms.Next(); ok2; pp, ok2 = pathPerms.Next() {
				if !routeConflictsDisjoint(paths, pp) {
					continue
				}
				total, routes, feasible := assignmentRevenue(trains, paths, tp, pp, bonuses, ditPolicy)
				if !feasible {
					continue
				}
				if total > bestRevenue || best.TrainRoutes == nil {
					bestRevenue = total
					best = &Routes{NetRevenue: total, TrainRoutes: routes}
				}
			}
		}
	}

	if len(best.TrainRoutes) == 0 {
		return &Routes{}, nil
	}
	best.ID = uuid.New().String()
	return best, nil
}

func routeConflictsDisjoint(paths []Path, pp []int) bool {
	for i := 0; i < len(pp); i++ {
		for j := i + 1; j < len(pp); j++ {
			if !paths[pp[i]].RouteConflicts.Disjoint(paths[pp[j]].RouteConflicts) {
				return false
			}
		}
	}
	return true
}

func assignmentRevenue(trains []Train, paths []Path, tp, pp []int, bonuses []Bonus, ditPolicy DitSkipPolicy) (int, []TrainRoute, bool) {
	total := 0
	routes := make([]TrainRoute, 0, len(tp))
	for i := range tp {
		train := trains[tp[i]]
		path := paths[pp[i]]
		revenue, kept, ok := bestRouteFor(train, path, bonuses, ditPolicy)
		if !ok {
			return 0, nil, false
		}
		total += revenue
		routes = append(routes, TrainRoute{
			Train:   train,
			Revenue: revenue,
			Route:   buildRoute(path, kept, revenue),
		})
	}
	return total, routes, true
}

func buildRoute(path Path, kept map[int]bool, revenue int) Route {
	visits := make([]Visit, 0, len(kept))
	for i, v := range path.Visits {
		if kept[i] {
			visits = append(visits, v)
		}
	}
	return Route{Steps: path.Steps, Visits: visits, Revenue: revenue}
}

// bestRouteFor chooses the highest-revenue stop selection a train can
// make on path, dispatching on the train's TrainType. ok is false if the
// train cannot legally run path at all (too many mandatory stops for
// its MaxStops).
func bestRouteFor(train Train, path Path, bonuses []Bonus, ditPolicy DitSkipPolicy) (revenue int, kept map[int]bool, ok bool) {
	switch train.Type {
	case MustStop:
		if train.MaxStops != nil && path.NumVisits > *train.MaxStops {
			return 0, nil, false
		}
		k := allKept(path)
		return scoreStops(train, path, k, bonuses), k, true

	case SkipTowns:
		if train.MaxStops != nil && path.NumCities > *train.MaxStops {
			return 0, nil, false
		}
		skip := map[int]bool{}
		for _, ix := range ditPolicy(train, path, bonuses) {
			if ix >= 0 && ix < len(path.Visits) && !path.Visits[ix].IsCity() {
				skip[ix] = true
			}
		}
		k := map[int]bool{}
		for i, v := range path.Visits {
			if v.IsCity() || !skip[i] {
				k[i] = true
			}
		}
		return scoreStops(train, path, k, bonuses), k, true

	case SkipAny:
		return bestSkipAny(train, path, bonuses)

	default:
		return 0, nil, false
	}
}

func allKept(path Path) map[int]bool {
	k := make(map[int]bool, len(path.Visits))
	for i := range path.Visits {
		k[i] = true
	}
	return k
}

func scoreStops(train Train, path Path, kept map[int]bool, bonuses []Bonus) int {
	base := 0
	for ix := range kept {
		base += path.Visits[ix].Revenue
	}
	total := train.Multiplier * base
	for _, b := range bonuses {
		total += b.apply(train, path, kept)
	}
	return total
}

// bestSkipAny searches every interior-stop subset of a SkipAny train's
// path that has as many stops as the train's MaxStops allows, since a
// connection or visit bonus may make a lower-revenue subset the better
// choice; subsets with fewer interior stops are not tried. The path's
// first and last visit are always kept.
func bestSkipAny(train Train, path Path, bonuses []Bonus) (int, map[int]bool, bool) {
	n := path.NumVisits
	if n == 0 {
		return 0, nil, false
	}
	if n == 1 {
		kept := map[int]bool{0: true}
		return scoreStops(train, path, kept, bonuses), kept, true
	}

	maxStops := n
	if train.MaxStops != nil {
		maxStops = *train.MaxStops
	}
	if maxStops < 2 {
		return 0, nil, false
	}

	interior := make([]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		interior = append(interior, i)
	}
	maxInterior := min(len(interior), maxStops-2)

	bestRevenue := -1
	var bestKept map[int]bool
	forEachCombination(interior, maxInterior, func(chosen []int) {
		kept := map[int]bool{0: true, n - 1: true}
		for _, ix := range chosen {
			kept[ix] = true
		}
		rev := scoreStops(train, path, kept, bonuses)
		if rev > bestRevenue {
			bestRevenue = rev
			bestKept = kept
		}
	})
	if bestKept == nil {
		return 0, nil, false
	}
	return bestRevenue, bestKept, true
}

// forEachCombination calls fn with every size-k subset of items, each
// subset in ascending order of its elements.
func forEachCombination(items []int, k int, fn func([]int)) {
	if k == 0 {
		fn(nil)
		return
	}
	if k > len(items) {
		return
	}
	chosen := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			cp := append([]int(nil), chosen...)
			fn(cp)
			return
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			chosen[depth] = items[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}
