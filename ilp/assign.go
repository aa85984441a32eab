// SPDX-License-Identifier: MIT
// Package: epcgg/ilp
//
// assign.go — applying an optimal result back onto the crossing graph.
//
// Contract:
//   - Only StatusOptimal results are applied; anything else is ErrNotOptimal.
//   - The assignment must match the model exactly: one variable per
//     edge–color pair, exactly one set per edge.
//   - Each edge is colored at most once per run; a recolor attempt is
//     ErrColorConflict.

package ilp

import (
	"fmt"

	"github.com/jogo23/edge-partitions-cgg/crossing"
)

// AssignColors writes the colors selected by res onto g's edges.
//
// The model m must be the one BuildModel produced for g; the variable
// metadata (Edge, Color) drives the write-back. Errors leave g partially
// updated only on ErrColorConflict, which indicates a caller bug rather
// than a recoverable state.
func AssignColors(g *crossing.Graph, m *Model, res Result) error {
	if m == nil {
		return fmt.Errorf("AssignColors: %w", ErrNilModel)
	}
	if res.Status != StatusOptimal {
		return fmt.Errorf("AssignColors: status=%s: %w", res.Status, ErrNotOptimal)
	}
	if len(res.Assignment) != len(m.Vars) {
		return fmt.Errorf("AssignColors: %d values for %d variables: %w",
			len(res.Assignment), len(m.Vars), ErrBadAssignment)
	}

	// First pass: the assignment must pick exactly one color per edge.
	picked := make(map[int]int, g.M())
	for _, v := range m.Vars {
		if res.Assignment[v.ID] == 0 {
			continue
		}
		if _, dup := picked[v.Edge]; dup {
			return fmt.Errorf("AssignColors: edge %d has two colors: %w", v.Edge, ErrBadAssignment)
		}
		picked[v.Edge] = v.Color
	}
	if len(picked) != g.M() {
		return fmt.Errorf("AssignColors: %d of %d edges colored: %w",
			len(picked), g.M(), ErrBadAssignment)
	}

	// Second pass: write each color once.
	for e, c := range picked {
		if g.Edges[e].Color != crossing.NoColor {
			return fmt.Errorf("AssignColors: edge %d: %w", e, ErrColorConflict)
		}
		g.Edges[e].Color = c
	}

	return nil
}
