package route

import "github.com/robmoss/rusty-train-sub002/pkg/tilemap"

// Criteria bundles the path enumerator's inputs: which company token to
// search from, an optional size limit, and the two conflict rules
// (intra-path, and the weaker inter-route rule carried alongside each
// path for the optimiser's benefit).
type Criteria struct {
	Token             tilemap.Token
	Limit             *PathLimit
	ConflictRule      ConflictRule
	RouteConflictRule ConflictRule
}

// InvalidCriteria is returned when Criteria violates the invariant that
// RouteConflictRule must be no stricter than ConflictRule -- otherwise a
// single legal path would conflict with itself under the inter-route
// rule.
type InvalidCriteria struct {
	ConflictRule      ConflictRule
	RouteConflictRule ConflictRule
}

func (e InvalidCriteria) Error() string {
	return "route conflict rule " + e.RouteConflictRule.String() +
		" must be no stricter than conflict rule " + e.ConflictRule.String()
}

// Validate checks Criteria's invariant, returning InvalidCriteria if
// RouteConflictRule > ConflictRule.
func (c Criteria) Validate() error {
	if c.RouteConflictRule > c.ConflictRule {
		return InvalidCriteria{ConflictRule: c.ConflictRule, RouteConflictRule: c.RouteConflictRule}
	}
	return nil
}
