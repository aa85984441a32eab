// SPDX-License-Identifier: MIT
// Package: epcgg/crossing
//
// edge.go — the Edge arena entry.
//
// Contract:
//   - Endpoints are point ids with P < Q (fixed storage order; the edge
//     itself is geometrically unordered).
//   - Crossings holds ids of every edge this one properly crosses;
//     NumCrossings mirrors len(Crossings) at all times.
//   - Color starts at NoColor and is written exactly once, by the
//     post-solve assignment step. Everything else is read-only after
//     SetCrossings.

package crossing

// NoColor marks an edge whose color class has not been assigned yet.
const NoColor = -1

// Edge is one straight-line edge of the complete geometric graph.
type Edge struct {
	// ID is the dense edge id: the index of this edge in Graph.Edges.
	ID int

	// P and Q are the endpoint point ids, stored with P < Q.
	P, Q int

	// NumCrossings counts the edges this edge properly crosses. Kept in
	// lockstep with len(Crossings).
	NumCrossings int

	// Crossings lists the ids of every crossed edge (symmetric: e2 lists
	// e1 iff e1 lists e2).
	Crossings []int

	// Color is the color class assigned after solving; NoColor until then.
	Color int
}

// HasEndpoint reports whether point id v is one of the edge's endpoints.
func (e *Edge) HasEndpoint(v int) bool {
	return e.P == v || e.Q == v
}
