// SPDX-License-Identifier: MIT
// Package: epcgg/geometry
//
// point.go — the Point value type.
//
// Contract:
//   - Points are immutable after creation; every mutation in the system
//     happens on edges, never on points.
//   - ID is the sole identity: unique non-negative, dense in [0,n) within
//     one point set. Coordinates may theoretically coincide only under a
//     buggy generator; the general-position check rules that out.

package geometry

// Point is a labeled point in the plane. The ID doubles as the index of
// the point inside its owning point set (dense, starting at 0).
type Point struct {
	ID int     // dense identity within one point set
	X  float64 // abscissa
	Y  float64 // ordinate
}
