package search

import (
	"context"
	"time"

	"github.com/robmoss/rusty-train-sub002/pkg/route"
	"github.com/robmoss/rusty-train-sub002/pkg/tilemap"
)

// Request bundles one company's search inputs: the map snapshot to search
// over (the caller owns a clone, per spec.md §5, so a background search
// never races a UI mutating the live map), the path-enumeration criteria,
// and the trains/bonuses/dit policy the optimiser applies to the resulting
// path set.
type Request struct {
	Map       *tilemap.Map
	Criteria  route.Criteria
	Trains    []route.Train
	Bonuses   []route.Bonus
	DitPolicy route.DitSkipPolicy
}

// Result is what a Run call reports: the enumerated path set, the best
// Routes found over it (with no TrainRoutes if no train could run a valid
// route; nil only when Err is set), and any error. Ctx's cancellation or deadline is not itself an error: Result.Err
// is only set if enumeration rejected the Criteria (e.g. InvalidCriteria);
// a search stopped early by ctx still reports the best Routes found so
// far, per spec.md §5's "return the best result found so far" contract.
type Result struct {
	Paths  []route.Path
	Routes *route.Routes
	Err    error
}

// Run executes req on its own goroutine and blocks until it completes, ctx
// is cancelled, or ctx's deadline passes -- whichever comes first. On
// cancellation Run still waits for the goroutine's last cooperative-cancel
// poll so it can return the best-so-far Routes rather than abandoning the
// search goroutine to leak.
func Run(ctx context.Context, req Request) Result {
	done := make(chan Result, 1)
	go func() {
		done <- runSync(ctx, req)
	}()
	return <-done
}

// runSync performs the actual enumerate-then-optimise work, translating
// ctx into the CancelFunc both stages poll at their own boundaries (between
// seed expansions and join-pair evaluations in Enumerate; between
// assignment evaluations in Optimise).
func runSync(ctx context.Context, req Request) Result {
	cancel := route.CancelFunc(func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	})

	paths, err := route.Enumerate(req.Map, req.Criteria, cancel)
	if err != nil {
		return Result{Err: err}
	}

	routes, err := route.Optimise(paths, req.Trains, req.Bonuses, req.DitPolicy, cancel)
	if err != nil {
		return Result{Paths: paths, Err: err}
	}
	return Result{Paths: paths, Routes: routes}
}

// RunWithTimeout runs req with a deadline of timeout from now, a
// convenience over Run+context.WithTimeout for callers (e.g. the CLI) that
// don't need ctx for anything else.
func RunWithTimeout(timeout time.Duration, req Request) Result {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return Run(ctx, req)
}
