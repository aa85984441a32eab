// SPDX-License-Identifier: MIT
// Package: epcgg/cycles
//
// cycles.go — enumeration of all 3- and 4-cycles over a vertex range.
//
// Contract:
//   - Supported lengths are exactly 3 and 4; anything else is
//     ErrBadCycleLength, rejected before any enumeration work.
//   - Output order is deterministic: lengths in the given order, subsets
//     in combinatorial order, and for 4-subsets the natural labeling
//     first, then the two diagonal swaps.
//
// Complexity: O(n³) triangles + O(n⁴) quadrilaterals (×3 labelings).

package cycles

import (
	"errors"
	"fmt"
)

// ErrBadCycleLength indicates a requested cycle length outside {3,4}.
// Usage: if errors.Is(err, ErrBadCycleLength) { ... }.
var ErrBadCycleLength = errors.New("cycles: length must be 3 or 4")

const (
	// Triangle and Quadrilateral are the supported cycle lengths.
	Triangle      = 3
	Quadrilateral = 4
)

// All enumerates every simple cycle of the requested lengths over the
// vertex ids 0..n-1. Each cycle is a vertex-id tuple read cyclically.
// Every 3-subset yields one triangle; every 4-subset yields three
// Hamiltonian cycles that are pairwise distinct as edge sets, one per
// diagonal pairing.
func All(n int, lengths []int) ([][]int, error) {
	for _, l := range lengths {
		if l != Triangle && l != Quadrilateral {
			return nil, fmt.Errorf("All: length %d: %w", l, ErrBadCycleLength)
		}
	}

	var res [][]int
	for _, l := range lengths {
		switch l {
		case Triangle:
			for a := 0; a < n; a++ {
				for b := a + 1; b < n; b++ {
					for c := b + 1; c < n; c++ {
						res = append(res, []int{a, b, c})
					}
				}
			}
		case Quadrilateral:
			for a := 0; a < n; a++ {
				for b := a + 1; b < n; b++ {
					for c := b + 1; c < n; c++ {
						for d := c + 1; d < n; d++ {
							// The three diagonal labelings of {a,b,c,d}.
							res = append(res,
								[]int{a, b, c, d},
								[]int{a, b, d, c},
								[]int{a, d, b, c},
							)
						}
					}
				}
			}
		}
	}

	return res, nil
}
