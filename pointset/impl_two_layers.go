// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// impl_two_layers.go — implementation of TwoConvexLayers(n).
//
// Canonical definition:
//   - ⌊n/2⌋ points at uniformly random angles on the unit circle (ids
//     0..⌊n/2⌋−1) and ⌈n/2⌉ points on the concentric circle of radius 4
//     (remaining ids), each layer sampled independently. For odd n the
//     extra point joins the outer layer.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewPoints): each layer needs at least two points
//     for the nesting to mean anything.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Whole-set rejection resampling bounded by cfg.maxAttempts.
//
// Complexity: O(attempts · n³) dominated by the position check.

package pointset

import (
	"fmt"
	"math"

	"github.com/jogo23/edge-partitions-cgg/geometry"
)

const (
	methodTwoConvexLayers = "TwoConvexLayers"
	minTwoLayerPoints     = 4

	// outerLayerRadius separates the layers far enough that the inner
	// hull lies strictly inside the outer one.
	outerLayerRadius = 4.0
)

// TwoConvexLayers returns a Constructor that samples two nested random
// convex layers: ⌊n/2⌋ points on radius 1, ⌈n/2⌉ on radius 4.
func TwoConvexLayers(n int) Constructor {
	return func(cfg generatorConfig) ([]geometry.Point, error) {
		if n < minTwoLayerPoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodTwoConvexLayers, n, minTwoLayerPoints, ErrTooFewPoints)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodTwoConvexLayers, ErrNeedRandSource)
		}

		inner := n / 2
		outer := n - inner

		return sampleUntilGeneral(methodTwoConvexLayers, cfg, func() []geometry.Point {
			points := make([]geometry.Point, 0, n)
			for i := 0; i < inner; i++ {
				points = append(points, onCircle(i, 1, cfg.rng.Float64()*2*math.Pi))
			}
			for i := 0; i < outer; i++ {
				points = append(points, onCircle(inner+i, outerLayerRadius, cfg.rng.Float64()*2*math.Pi))
			}
			return points
		})
	}
}
