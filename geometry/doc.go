// Package geometry is the numeric kernel of edge-partitions-cgg: the
// orientation, collinearity, general-position and proper-crossing
// predicates that every other package builds on.
//
// The package offers the following key components:
//
//   - Point:               an immutable labeled point; ID is the sole
//     identity (coordinates never participate in equality).
//   - Orientation:         sign of the cross product (q−p) × (r−q),
//     classified as Collinear / Clockwise / CounterClockwise.
//   - IsCollinear:         the same cross-product magnitude tested
//     against CollinearEps = 4×machine epsilon, absorbing the rounding
//     of trigonometric point generation.
//   - InGeneralPosition:   all C(n,3) triples non-collinear (O(n³);
//     acceptable since n stays in the tens).
//   - SegmentsProperlyCross: the four-orientation proper-crossing test,
//     with shared endpoints (by ID) never counting as a crossing.
//
// Guarantees:
//
//   - All predicates are total over well-formed input: no errors, no
//     panics, no NaN propagation for finite coordinates.
//   - Orientation compares the exact sign against zero; only the
//     collinearity check applies a tolerance.
//   - Degenerate (collinear) segment configurations — impossible under
//     general position — are answered with false, never with an error.
package geometry
