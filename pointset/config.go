// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - generatorConfig is the single source of truth for all generator
//     knobs. Defaults are deterministic and documented; no globals.
//   - newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - rng         = nil   (deterministic constructors need none)
//   - maxAttempts = 1000  (full-set resamples before giving up)
//   - coordRange  = 0     (Random derives 10·n)
//   - prune       = false (keep uncrossed edges)

package pointset

import "math/rand"

// generatorConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type generatorConfig struct {
	// RNG for randomized constructors; nil means "no randomness".
	rng *rand.Rand

	// Ceiling on full-set resamples for randomized constructors.
	maxAttempts int

	// Coordinate range for Random; 0 derives the 10·n default.
	coordRange int

	// Whether Build prunes crossing-free edges from the result graph.
	prune bool
}

// Deterministic defaults (named, no magic numbers).
const (
	// defaultMaxAttempts bounds rejection resampling. Degenerate
	// configurations are measure-zero under continuous sampling, so any
	// generous constant works; 1000 keeps pathological integer-range
	// parameterizations from spinning forever.
	defaultMaxAttempts = 1000

	// coordRangeFactor scales the default integer coordinate range for
	// Random: size = coordRangeFactor·n keeps collision probability low.
	coordRangeFactor = 10
)

// newConfig constructs a config with deterministic defaults and applies
// all options in order. Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		rng:         nil,
		maxAttempts: defaultMaxAttempts,
		coordRange:  0,
		prune:       false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
