// Package rng provides deterministic random number generation for the route
// finder's non-search concerns: reproducible operating-order shuffles
// (pkg/game.RandomOperatingOrder) and randomly-scattered example fixtures,
// never the path enumerator or optimiser themselves, which are exhaustive
// and carry no randomness of their own.
//
// # Overview
//
// The RNG type derives stage-specific seeds from a master seed, so unrelated
// random decisions (which company goes first, how a test fixture scatters
// starting tokens) stay independent of one another while each remains
// reproducible from the same master seed.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed supplied by the caller
//   - stageName: identifies which concern is drawing randomness (e.g.
//     "operating-order")
//   - configHash: Hash of whatever input should perturb the sequence (a game
//     name, a config fingerprint, ...)
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each independent concern:
//
//	orderRNG := rng.NewRNG(seed, "operating-order", []byte(gameName))
//	fixtureRNG := rng.NewRNG(seed, "fixture-tokens", []byte(mapName))
//
// Use the RNG for all random decisions in that concern:
//
//	orderRNG.Shuffle(len(companies), func(i, j int) { companies[i], companies[j] = companies[j], companies[i] })
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. Create stage-specific RNGs before spawning goroutines and pass
// them explicitly.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient:
//   - Uint64(): ~2ns per call
//   - Intn():   ~3ns per call
//   - Float64(): ~2ns per call
//
// Creating a new RNG costs ~8µs due to SHA-256 computation.
// Reuse RNG instances within a stage for best performance.
package rng
