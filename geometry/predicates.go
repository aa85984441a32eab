// SPDX-License-Identifier: MIT
// Package: epcgg/geometry
//
// predicates.go — orientation, collinearity, general-position and
// proper-crossing predicates.
//
// Contract (strict):
//   - Orientation compares the exact sign of the cross product against 0;
//     no tolerance (general position is assumed for the triple test).
//   - IsCollinear applies CollinearEps = 4×machine epsilon to absorb the
//     floating rounding of trigonometric point generation.
//   - SegmentsProperlyCross rejects shared endpoints (by ID) first; any
//     collinear orientation among the four tests answers false, never an
//     error, should a degenerate input slip through.
//
// Complexity:
//   - Orientation / IsCollinear / SegmentsProperlyCross: O(1).
//   - InGeneralPosition: O(n³) over all 3-combinations.
//
// Determinism:
//   - Pure functions of their arguments; no state, no RNG.

package geometry

import "math"

// Turn classifies the turn from segment p→q to segment q→r.
type Turn int

const (
	// Collinear means the three points lie on one line (exact zero sign).
	Collinear Turn = iota
	// Clockwise means a right turn (positive cross-product sign under the
	// y-down-free convention used here).
	Clockwise
	// CounterClockwise means a left turn (negative sign).
	CounterClockwise
)

// machineEpsilon is the spacing of float64 values at 1.0 (2⁻⁵²).
const machineEpsilon = 0x1p-52

// CollinearEps is the collinearity tolerance: 4×machine epsilon. Wide
// enough to absorb sin/cos rounding on unit-circle generators, narrow
// enough that any genuinely non-degenerate triple stays non-collinear.
const CollinearEps = 4 * machineEpsilon

// cross returns the cross-product expression (q−p) × (r−q) whose sign
// classifies the turn p→q→r. Shared by Orientation and IsCollinear so
// both predicates agree on the exact same arithmetic.
func cross(p, q, r Point) float64 {
	return (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
}

// Orientation classifies the turn from p→q to q→r.
// Exact sign comparison against zero; collinear is the measure-zero case
// that general position excludes.
func Orientation(p, q, r Point) Turn {
	val := cross(p, q, r)
	switch {
	case val > 0:
		return Clockwise
	case val < 0:
		return CounterClockwise
	default:
		return Collinear
	}
}

// IsCollinear reports whether the three points are collinear up to
// CollinearEps. This is the only tolerant predicate in the kernel.
func IsCollinear(p1, p2, p3 Point) bool {
	return math.Abs(cross(p1, p2, p3)) < CollinearEps
}

// InGeneralPosition reports whether no 3-combination of points is
// collinear. O(n³); n stays in the tens for this problem domain, so
// simplicity wins over asymptotic cleverness.
func InGeneralPosition(points []Point) bool {
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if IsCollinear(points[i], points[j], points[k]) {
					return false
				}
			}
		}
	}

	return true
}

// SegmentsProperlyCross reports whether the open segments p1—q1 and
// p2—q2 properly cross.
//
// Shared endpoints (compared by ID, the sole point identity) never count
// as a crossing in this problem domain. Otherwise the classic
// four-orientation test applies: the segments cross iff the endpoints of
// each segment straddle the supporting line of the other, with all four
// orientations strict. Any collinear orientation — impossible under
// general position — is answered with false.
func SegmentsProperlyCross(p1, q1, p2, q2 Point) bool {
	// Edges sharing an endpoint never cross.
	if p1.ID == p2.ID || p1.ID == q2.ID || q1.ID == p2.ID || q1.ID == q2.ID {
		return false
	}

	o1 := Orientation(p1, q1, p2)
	o2 := Orientation(p1, q1, q2)
	o3 := Orientation(p2, q2, p1)
	o4 := Orientation(p2, q2, q1)

	// Proper crossing: both straddle tests succeed and no orientation is
	// degenerate. The touching/overlapping boundary cases of the classic
	// algorithm are never exercised under general position; they fall
	// through to the single false return below.
	return o1 != Collinear && o2 != Collinear &&
		o3 != Collinear && o4 != Collinear &&
		o1 != o2 && o3 != o4
}
