// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// impl_convex.go — implementation of Convex(n).
//
// Canonical definition:
//   - n points evenly spaced on the unit circle, ids 0..n-1 in angular
//     order: pᵢ = (cos 2πi/n, sin 2πi/n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewPoints); fewer points span no triangle and no
//     crossing structure.
//   - Deterministic: no RNG consulted; always in general position (no
//     three points of a circle are collinear, and the spacing keeps every
//     triple far above the collinearity epsilon).
//
// Complexity: O(n) time, O(n) space.

package pointset

import (
	"fmt"
	"math"

	"github.com/jogo23/edge-partitions-cgg/geometry"
)

const (
	methodConvex    = "Convex"
	minConvexPoints = 3
)

// Convex returns a Constructor that places n points in convex position,
// evenly spaced on the unit circle.
func Convex(n int) Constructor {
	return func(_ generatorConfig) ([]geometry.Point, error) {
		if n < minConvexPoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodConvex, n, minConvexPoints, ErrTooFewPoints)
		}

		points := make([]geometry.Point, 0, n)
		for i := 0; i < n; i++ {
			points = append(points, onCircle(i, 1, 2*math.Pi/float64(n)*float64(i)))
		}

		return points, nil
	}
}
