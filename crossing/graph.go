// SPDX-License-Identifier: MIT
// Package: epcgg/crossing
//
// graph.go — edge enumeration, the pairwise crossing pass and pruning.
//
// Contract:
//   - NewGraph validates general position before any edge work; degenerate
//     input is rejected, never repaired.
//   - GenerateAllEdges emits one edge per unordered index pair (i<j) in
//     combinatorial order; ids are assigned densely from 0.
//   - SetCrossings runs exactly once per graph; a second call returns
//     ErrCrossingsSet rather than double-counting.
//   - RemoveUncrossedEdges preserves the crossing relationships among
//     retained edges; only ids and positions change.
//
// Complexity:
//   - GenerateAllEdges: O(n²). SetCrossings: O(m²) = O(n⁴), the dominant
//     cost. RemoveUncrossedEdges: O(m + Σ|crossings|).
//
// Determinism:
//   - Stable enumeration order (i asc, then j asc) everywhere; identical
//     input yields identical ids, lists and pruning results.

package crossing

import (
	"fmt"

	"github.com/jogo23/edge-partitions-cgg/geometry"
)

// Option customizes NewGraph. Applying N options costs O(N).
type Option func(*config)

// config collects the NewGraph knobs; passed by value, immutable after
// resolution.
type config struct {
	pruneUncrossed bool
}

// WithoutUncrossed prunes edges with zero crossings after the crossing
// pass. Used to shrink downstream constraint models; crossing
// relationships among retained edges are untouched. Note that pruning
// removes convex-hull edges, so cycle and coverage constraints over the
// full edge set require the unpruned graph.
func WithoutUncrossed() Option {
	return func(c *config) {
		c.pruneUncrossed = true
	}
}

// Graph is the crossing-annotated complete geometric graph: the point
// arena, the edge arena and the crossings-computed latch.
type Graph struct {
	// Points is the point arena; Points[i].ID == i.
	Points []geometry.Point

	// Edges is the edge arena; Edges[i].ID == i, before and after pruning.
	Edges []Edge

	// crossed latches whether the O(m²) crossing pass already ran.
	crossed bool
}

// NewGraph builds the complete crossing-annotated graph over points.
//
// Steps: reject empty or non-dense input, verify general position,
// enumerate all C(n,2) edges, compute all pairwise crossings, and prune
// crossing-free edges when requested.
//
// Errors: ErrNoPoints, ErrPointIDMismatch, ErrDegeneratePointSet.
func NewGraph(points []geometry.Point, opts ...Option) (*Graph, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("NewGraph: %w", ErrNoPoints)
	}
	for i := range points {
		if points[i].ID != i {
			return nil, fmt.Errorf("NewGraph: points[%d].ID=%d: %w", i, points[i].ID, ErrPointIDMismatch)
		}
	}
	if !geometry.InGeneralPosition(points) {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", len(points), ErrDegeneratePointSet)
	}

	g := &Graph{
		Points: points,
		Edges:  GenerateAllEdges(points),
	}
	if err := g.SetCrossings(); err != nil {
		// Unreachable on a fresh graph; surfaced for contract completeness.
		return nil, fmt.Errorf("NewGraph: %w", err)
	}
	if cfg.pruneUncrossed {
		g.RemoveUncrossedEdges()
	}

	return g, nil
}

// GenerateAllEdges emits one Edge per unordered point pair, ids assigned
// densely in combinatorial order of index pairs (i asc, then j asc).
// Crossing data is not populated; colors start at NoColor.
func GenerateAllEdges(points []geometry.Point) []Edge {
	n := len(points)
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{
				ID:    len(edges),
				P:     points[i].ID,
				Q:     points[j].ID,
				Color: NoColor,
			})
		}
	}

	return edges
}

// SetCrossings computes every pairwise proper crossing: for each crossing
// pair both counters are incremented and each edge is appended to the
// other's list (symmetry by construction). A second invocation returns
// ErrCrossingsSet — the pass is not idempotent and must run exactly once.
func (g *Graph) SetCrossings() error {
	if g.crossed {
		return fmt.Errorf("SetCrossings: %w", ErrCrossingsSet)
	}

	m := len(g.Edges)
	for i := 0; i < m; i++ {
		e1 := &g.Edges[i]
		for j := i + 1; j < m; j++ {
			e2 := &g.Edges[j]
			if !geometry.SegmentsProperlyCross(
				g.Points[e1.P], g.Points[e1.Q],
				g.Points[e2.P], g.Points[e2.Q],
			) {
				continue
			}
			e1.NumCrossings++
			e2.NumCrossings++
			e1.Crossings = append(e1.Crossings, e2.ID)
			e2.Crossings = append(e2.Crossings, e1.ID)
		}
	}
	g.crossed = true

	return nil
}

// RemoveUncrossedEdges drops every edge with an empty crossing list and
// renumbers the remaining edges densely from 0, preserving relative
// order. Crossing lists of retained edges are remapped to the new ids;
// their contents (as edge sets) are unchanged.
func (g *Graph) RemoveUncrossedEdges() {
	// First pass: decide survivors and their new ids.
	newID := make([]int, len(g.Edges))
	for i := range newID {
		newID[i] = -1
	}
	kept := make([]Edge, 0, len(g.Edges))
	for i := range g.Edges {
		if g.Edges[i].NumCrossings == 0 {
			continue
		}
		newID[i] = len(kept)
		kept = append(kept, g.Edges[i])
	}

	// Second pass: renumber and remap crossing lists in place. Every
	// crossed edge survives (it crosses something), so lookups never miss.
	for i := range kept {
		kept[i].ID = i
		for c, old := range kept[i].Crossings {
			kept[i].Crossings[c] = newID[old]
		}
	}
	g.Edges = kept
}

// N returns the number of points.
func (g *Graph) N() int { return len(g.Points) }

// M returns the number of edges (post-pruning if pruning ran).
func (g *Graph) M() int { return len(g.Edges) }

// IncidentEdgeIDs returns the ids of all edges incident to point v, in
// ascending id order.
func (g *Graph) IncidentEdgeIDs(v int) []int {
	var ids []int
	for i := range g.Edges {
		if g.Edges[i].HasEndpoint(v) {
			ids = append(ids, g.Edges[i].ID)
		}
	}

	return ids
}

// EdgeIDBetween returns the id of the edge joining points u and v, and
// whether such an edge exists (it may have been pruned away).
func (g *Graph) EdgeIDBetween(u, v int) (int, bool) {
	if u > v {
		u, v = v, u
	}
	for i := range g.Edges {
		if g.Edges[i].P == u && g.Edges[i].Q == v {
			return g.Edges[i].ID, true
		}
	}

	return 0, false
}

// ColorClassEdges returns copies of all edges assigned color c.
func (g *Graph) ColorClassEdges(c int) []Edge {
	var class []Edge
	for i := range g.Edges {
		if g.Edges[i].Color == c {
			class = append(class, g.Edges[i])
		}
	}

	return class
}
