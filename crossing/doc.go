// Package crossing builds and annotates the complete edge set over a
// point set in general position: every unordered point pair becomes an
// edge, and every pair of edges is tested for a proper geometric
// crossing.
//
// Storage follows a dense-id arena layout: points and edges live in flat
// slices indexed by their ids, and each edge's crossing list holds edge
// ids rather than pointers. Ownership is unambiguous and the structure
// survives pruning by a single renumber-and-remap pass.
//
// The package offers the following key components:
//
//   - Edge:                 endpoints (point ids, stored low-before-high),
//     a crossing counter, an id list of crossed edges and a color slot
//     (NoColor until assigned once after solving).
//   - Graph:                the arena of points and edges plus the
//     crossings-computed latch.
//   - NewGraph:             verify general position, enumerate all C(n,2)
//     edges in combinatorial index order, compute all crossings and
//     optionally prune crossing-free edges.
//   - SetCrossings:         the O(m²) pairwise crossing pass; guarded
//     against double invocation (ErrCrossingsSet).
//   - RemoveUncrossedEdges: drop crossing-free edges, renumber densely,
//     remap every retained crossing list.
//
// Guarantees:
//
//   - Crossing lists are symmetric and NumCrossings always equals the
//     list length.
//   - Edge ids form the contiguous range [0,m) before and after pruning.
//   - Edges sharing an endpoint never appear in each other's lists (the
//     kernel's crossing predicate enforces this).
//   - No spatial indexing: n stays in the tens, so the O(n⁴) pass is the
//     dominant but acceptable cost, and correctness stays trivial to
//     audit.
package crossing
