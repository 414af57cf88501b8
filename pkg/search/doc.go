// Package search wraps pkg/route's path enumerator and optimiser with the
// worker/cancellation contract spec.md §5 requires: a long search runs on a
// goroutine the caller does not otherwise manage, accepts a context.Context
// for cooperative cancellation and wall-clock deadlines, and communicates
// its result back over a single channel rather than through shared
// mutable state.
package search
