// SPDX-License-Identifier: MIT
// Package: epcgg/ilp
//
// build.go — translation of a crossing graph + rules into the model.
//
// Contract:
//   - Variable ids are x(e,c) = e·k + c; names are "x_{e}_{c}".
//   - Constraint families are emitted in a fixed order: exactly-one,
//     crossing (plane or k-planar), cardinality, forbidden cycles,
//     coverage; each family iterates edges/colors/cycles in ascending
//     order. Deterministic models for deterministic graphs.
//   - The builder only builds. It never invokes solving, never retries,
//     never relaxes on infeasibility.
//
// Complexity:
//   - Plane mode: O(Σ crossings · k) crossing constraints. K-planar
//     mode: O(m·k). Cycles: O(n³ + n⁴) enumeration via cycles.All.

package ilp

import (
	"fmt"

	"github.com/jogo23/edge-partitions-cgg/crossing"
	"github.com/jogo23/edge-partitions-cgg/cycles"
)

// BuildModel emits the fully-specified 0/1 program for coloring the
// graph's edges with rules.Colors colors under the enabled rule flags.
//
// Forbidden-cycle and coverage constraints range over the complete edge
// set; on a graph built WithoutUncrossed they fail with ErrMissingEdge.
func BuildModel(g *crossing.Graph, rules Rules) (*Model, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("BuildModel: %w", err)
	}

	n := g.N()
	m := g.M()
	k := rules.Colors

	model := &Model{Minimize: true}

	// Variables: x(e,c) = e·k + c, one per edge–color pair.
	model.Vars = make([]Var, 0, m*k)
	for e := 0; e < m; e++ {
		for c := 0; c < k; c++ {
			model.Vars = append(model.Vars, Var{
				ID:    e*k + c,
				Edge:  e,
				Color: c,
				Name:  fmt.Sprintf("x_%d_%d", e, c),
			})
		}
	}
	x := func(e, c int) int { return e*k + c }

	// Family 1 (mandatory): each edge receives exactly one color.
	for e := 0; e < m; e++ {
		terms := make([]Term, 0, k)
		for c := 0; c < k; c++ {
			terms = append(terms, Term{Var: x(e, c), Coeff: 1})
		}
		model.Constraints = append(model.Constraints, Constraint{
			Name:  fmt.Sprintf("edge_color_%d", e),
			Terms: terms,
			Sense: Equal,
			RHS:   1,
		})
	}

	// Family 2 (mandatory): crossing edges and colors.
	if rules.PlaneMode() {
		// Plane mode: a crossing pair never shares a color. Each
		// unordered pair is emitted once (symmetric lists, e1 < e2).
		for e1 := 0; e1 < m; e1++ {
			for _, e2 := range g.Edges[e1].Crossings {
				if e2 <= e1 {
					continue
				}
				for c := 0; c < k; c++ {
					model.Constraints = append(model.Constraints, Constraint{
						Name: fmt.Sprintf("plane_%d:%d_%d", e1, e2, c),
						Terms: []Term{
							{Var: x(e1, c), Coeff: 1},
							{Var: x(e2, c), Coeff: 1},
						},
						Sense: LessEq,
						RHS:   1,
					})
				}
			}
		}
	} else {
		// K-planar mode: when e takes color c, at most KPlanar of its
		// crossed edges may share c. Linearized with big-M = m:
		//   Σ_{e'∈crossed(e)} x(e',c) + M·x(e,c) ≤ KPlanar + M.
		// M = m is safe but loose; max crossing degree would tighten it
		// without changing semantics.
		bigM := float64(m)
		for c := 0; c < k; c++ {
			for e := 0; e < m; e++ {
				terms := make([]Term, 0, len(g.Edges[e].Crossings)+1)
				for _, e1 := range g.Edges[e].Crossings {
					terms = append(terms, Term{Var: x(e1, c), Coeff: 1})
				}
				terms = append(terms, Term{Var: x(e, c), Coeff: bigM})
				model.Constraints = append(model.Constraints, Constraint{
					Name:  fmt.Sprintf("kplanar_%d_%d", e, c),
					Terms: terms,
					Sense: LessEq,
					RHS:   float64(rules.KPlanar) + bigM,
				})
			}
		}
	}

	// Family 3 (optional): every color class has exactly n−1 edges.
	if rules.N1Constraints {
		for c := 0; c < k; c++ {
			terms := make([]Term, 0, m)
			for e := 0; e < m; e++ {
				terms = append(terms, Term{Var: x(e, c), Coeff: 1})
			}
			model.Constraints = append(model.Constraints, Constraint{
				Name:  fmt.Sprintf("cardinality_%d", c),
				Terms: terms,
				Sense: Equal,
				RHS:   float64(n - 1),
			})
		}
	}

	// Family 4 (optional): forbidden cycles must not be monochromatic.
	if len(rules.ForbiddenCycles) > 0 {
		allCycles, err := cycles.All(n, rules.ForbiddenCycles)
		if err != nil {
			// Unreachable after Validate; kept for contract completeness.
			return nil, fmt.Errorf("BuildModel: %w", err)
		}

		// Endpoint-pair → edge-id lookup over the full edge set.
		edgeID := make(map[[2]int]int, m)
		for e := 0; e < m; e++ {
			edgeID[[2]int{g.Edges[e].P, g.Edges[e].Q}] = e
		}

		for _, cycle := range allCycles {
			ids := make([]int, 0, len(cycle))
			for i := range cycle {
				u, v := cycle[i], cycle[(i+1)%len(cycle)]
				if u > v {
					u, v = v, u
				}
				id, ok := edgeID[[2]int{u, v}]
				if !ok {
					return nil, fmt.Errorf("BuildModel: cycle edge %d–%d: %w", u, v, ErrMissingEdge)
				}
				ids = append(ids, id)
			}

			// At most len−1 edges of the cycle may share any one color.
			for c := 0; c < k; c++ {
				terms := make([]Term, 0, len(ids))
				for _, e := range ids {
					terms = append(terms, Term{Var: x(e, c), Coeff: 1})
				}
				model.Constraints = append(model.Constraints, Constraint{
					Name:  fmt.Sprintf("cycle%d_%v_%d", len(cycle), cycle, c),
					Terms: terms,
					Sense: LessEq,
					RHS:   float64(len(cycle) - 1),
				})
			}
		}
	}

	// Family 5 (optional): every vertex sees every color.
	if rules.CoverAllVertices {
		for c := 0; c < k; c++ {
			for v := 0; v < n; v++ {
				incident := g.IncidentEdgeIDs(v)
				if len(incident) == 0 {
					return nil, fmt.Errorf("BuildModel: vertex %d has no edges: %w", v, ErrMissingEdge)
				}
				terms := make([]Term, 0, len(incident))
				for _, e := range incident {
					terms = append(terms, Term{Var: x(e, c), Coeff: 1})
				}
				model.Constraints = append(model.Constraints, Constraint{
					Name:  fmt.Sprintf("cover_%d_%d", v, c),
					Terms: terms,
					Sense: GreaterEq,
					RHS:   1,
				})
			}
		}
	}

	// Objective: minimize Σ x. Constant under the exactly-one family;
	// present for solver-interface completeness.
	model.Objective = make([]Term, 0, len(model.Vars))
	for i := range model.Vars {
		model.Objective = append(model.Objective, Term{Var: i, Coeff: 1})
	}

	return model, nil
}
