// SPDX-License-Identifier: MIT
// Package: epcgg/verify
//
// verify.go — spanning tree checks over colored crossing graphs.
//
// Contract:
//   - A color class passes when it has exactly n−1 edges and connects
//     all n points. Plane-ness is the solver's obligation (the crossing
//     constraint family); the check deliberately does not re-test it, so
//     k-planar runs verify the same way.
//   - With n−1 edges, connectivity already implies acyclicity, so the
//     disjoint-set pass doubles as the cycle check.
//   - The functions report, they never mutate.

package verify

import "github.com/jogo23/edge-partitions-cgg/crossing"

// IsPlaneSpanningTree reports whether the edges colored c span g's
// point set as a tree: exactly n−1 edges, all n points connected.
func IsPlaneSpanningTree(g *crossing.Graph, c int) bool {
	n := g.N()
	if n < 2 {
		return false
	}

	class := make([]int, 0, n-1)
	for e := range g.Edges {
		if g.Edges[e].Color == c {
			class = append(class, e)
		}
	}
	if len(class) != n-1 {
		return false
	}

	// Spanning: union-find with path compression and union by rank.
	// n−1 edges joining n components into one is exactly a tree.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	components := n
	for _, e := range class {
		ru, rv := find(g.Edges[e].P), find(g.Edges[e].Q)
		if ru == rv {
			// A repeated component means a cycle, hence disconnection
			// elsewhere.
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		components--
	}

	return components == 1
}

// IsPSTPartition reports whether the coloring of g partitions its edges
// into k plane spanning trees, one per color 0..k−1. False for k ≤ 0.
func IsPSTPartition(g *crossing.Graph, k int) bool {
	if k <= 0 {
		return false
	}
	for c := 0; c < k; c++ {
		if !IsPlaneSpanningTree(g, c) {
			return false
		}
	}

	return true
}
