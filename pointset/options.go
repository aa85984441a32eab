// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// options.go — functional options for the pointset package.
//
// Contract (strict):
//   - Options are functional (type Option func(*generatorConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generator code itself MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through generatorConfig.

package pointset

import "math/rand"

// Option customizes the behavior of a constructor by mutating a
// generatorConfig instance before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and experiments to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for randomized constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("pointset: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithMaxAttempts overrides the resample ceiling for randomized
// constructors. Panics if attempts < 1.
func WithMaxAttempts(attempts int) Option {
	if attempts < 1 {
		panic("pointset: WithMaxAttempts(<1)")
	}
	return func(c *generatorConfig) {
		c.maxAttempts = attempts
	}
}

// WithCoordRange overrides the integer coordinate range [0,size]² used by
// Random. Panics if size < 1. The caller owns keeping the range large
// enough for the requested n; too small a range exhausts the resample
// ceiling.
func WithCoordRange(size int) Option {
	if size < 1 {
		panic("pointset: WithCoordRange(<1)")
	}
	return func(c *generatorConfig) {
		c.coordRange = size
	}
}

// WithoutUncrossed prunes edges with zero crossings from the built graph,
// shrinking downstream constraint models. See crossing.WithoutUncrossed
// for the caveat on cycle/coverage constraints.
func WithoutUncrossed() Option {
	return func(c *generatorConfig) {
		c.prune = true
	}
}
