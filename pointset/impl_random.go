// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// impl_random.go — implementation of Random(n).
//
// Canonical definition:
//   - n points with integer coordinates drawn uniformly from [0,size]²,
//     size = 10·n unless overridden via WithCoordRange. The 10·n default
//     keeps the probability of collinear triples (and coordinate
//     collisions) low enough that a handful of resamples suffices.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewPoints).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Whole-set rejection resampling against the general-position check,
//     bounded by cfg.maxAttempts (ErrAttemptsExhausted); callers choosing
//     a tiny range via WithCoordRange see the ceiling, not a hang.
//
// Complexity: O(attempts · n³) dominated by the position check.
//
// Determinism: fixed seed ⇒ fixed sequence of candidate sets ⇒ fixed
// accepted set.

package pointset

import (
	"fmt"

	"github.com/jogo23/edge-partitions-cgg/geometry"
)

const (
	methodRandom    = "Random"
	minRandomPoints = 3
)

// Random returns a Constructor that samples n integer-coordinate points
// uniformly from [0,size]².
func Random(n int) Constructor {
	return func(cfg generatorConfig) ([]geometry.Point, error) {
		if n < minRandomPoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomPoints, ErrTooFewPoints)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		size := cfg.coordRange
		if size == 0 {
			size = coordRangeFactor * n
		}

		return sampleUntilGeneral(methodRandom, cfg, func() []geometry.Point {
			points := make([]geometry.Point, 0, n)
			for i := 0; i < n; i++ {
				points = append(points, geometry.Point{
					ID: i,
					X:  float64(cfg.rng.Intn(size + 1)),
					Y:  float64(cfg.rng.Intn(size + 1)),
				})
			}
			return points
		})
	}
}
