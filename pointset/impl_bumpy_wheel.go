// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// impl_bumpy_wheel.go — implementation of BumpyWheel(k, l).
//
// Canonical definition:
//   - A hub at the origin (id 0) plus k groups of l points on the unit
//     circle. Group i's j-th point sits at angle 2πi/k + j·ε − π/2.55
//     with ε = 0.1: each spoke is a tight "bump" of l nearby vertices
//     rather than l coincident ones. The −π/2.55 rotation matches the
//     wheel orientation used throughout the accompanying write-up.
//
// Contract:
//   - k ≥ 3 and l ≥ 1 (else ErrTooFewPoints); a wheel needs at least a
//     triangle of spokes around the hub.
//   - Deterministic: no RNG. Even k with aligned bumps produces diametral
//     point pairs collinear with the hub — a parameterization bug that
//     surfaces as crossing.ErrDegeneratePointSet from Build, never a
//     silent retry.
//
// Complexity: O(k·l) time and space.

package pointset

import (
	"fmt"
	"math"

	"github.com/jogo23/edge-partitions-cgg/geometry"
)

const (
	methodBumpyWheel = "BumpyWheel"
	minWheelSpokes   = 3
	minGroupSize     = 1

	// spokeEpsilon is the angular spread between consecutive points of
	// one bump.
	spokeEpsilon = 0.1

	// bumpyWheelRotation aligns the wheel with the canonical orientation.
	bumpyWheelRotation = math.Pi / 2.55
)

// BumpyWheel returns a Constructor that builds the bumpy wheel BW_{k,l}:
// a hub plus k spokes of l clustered rim points each.
func BumpyWheel(k, l int) Constructor {
	return func(_ generatorConfig) ([]geometry.Point, error) {
		if k < minWheelSpokes {
			return nil, fmt.Errorf("%s: k=%d < min=%d: %w", methodBumpyWheel, k, minWheelSpokes, ErrTooFewPoints)
		}
		if l < minGroupSize {
			return nil, fmt.Errorf("%s: l=%d < min=%d: %w", methodBumpyWheel, l, minGroupSize, ErrTooFewPoints)
		}

		points := make([]geometry.Point, 0, k*l+1)
		points = append(points, geometry.Point{ID: 0}) // hub at the origin

		for i := 0; i < k; i++ {
			for j := 0; j < l; j++ {
				angle := 2*math.Pi/float64(k)*float64(i) + float64(j)*spokeEpsilon - bumpyWheelRotation
				points = append(points, onCircle(len(points), 1, angle))
			}
		}

		return points, nil
	}
}
