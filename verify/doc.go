// SPDX-License-Identifier: MIT
// Package: epcgg/verify
//
// Package verify checks colored crossing graphs against the plane
// spanning tree property, independently of how the coloring was
// produced.
//
// What lives here:
//   - IsPlaneSpanningTree: one color class spans all points as a tree.
//   - IsPSTPartition: every class of a k-coloring does.
//
// The checks are post-hoc by intent. A solver run may have been built
// without the cardinality or cycle families; verification never trusts
// the constraint configuration and re-derives everything from the edge
// colors and a disjoint-set connectivity pass. Plane-ness itself is not
// re-tested: the crossing constraint family owns it, and a k-planar run
// verifies under the same predicate.
//
// Determinism: pure functions of the graph; no allocation survives a
// call. Complexity is O(m·α(n)) per class.
package verify
