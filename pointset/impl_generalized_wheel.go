// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// impl_generalized_wheel.go — implementation of GeneralizedWheel(sizes).
//
// Canonical definition:
//   - Like BumpyWheel, but spoke i carries sizes[i] points instead of a
//     uniform l: the hub at the origin plus, for each of the k =
//     len(sizes) groups, sizes[i] points at angles 2πi/k + j·ε (ε = 0.1,
//     no rotation offset).
//
// Contract:
//   - len(sizes) ≥ 3 and every size ≥ 1 (else ErrTooFewPoints).
//   - Deterministic; degenerate parameterizations surface from Build as
//     crossing.ErrDegeneratePointSet.
//
// Complexity: O(Σ sizes) time and space.

package pointset

import (
	"fmt"
	"math"

	"github.com/jogo23/edge-partitions-cgg/geometry"
)

const methodGeneralizedWheel = "GeneralizedWheel"

// GeneralizedWheel returns a Constructor that builds a wheel whose spokes
// have the given per-group sizes.
func GeneralizedWheel(sizes []int) Constructor {
	return func(_ generatorConfig) ([]geometry.Point, error) {
		k := len(sizes)
		if k < minWheelSpokes {
			return nil, fmt.Errorf("%s: %d groups < min=%d: %w", methodGeneralizedWheel, k, minWheelSpokes, ErrTooFewPoints)
		}

		total := 1
		for i, size := range sizes {
			if size < minGroupSize {
				return nil, fmt.Errorf("%s: sizes[%d]=%d < min=%d: %w", methodGeneralizedWheel, i, size, minGroupSize, ErrTooFewPoints)
			}
			total += size
		}

		points := make([]geometry.Point, 0, total)
		points = append(points, geometry.Point{ID: 0}) // hub at the origin

		for i := 0; i < k; i++ {
			for j := 0; j < sizes[i]; j++ {
				angle := 2*math.Pi/float64(k)*float64(i) + float64(j)*spokeEpsilon
				points = append(points, onCircle(len(points), 1, angle))
			}
		}

		return points, nil
	}
}
