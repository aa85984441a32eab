// Package ilp translates a crossing-annotated geometric graph and a set
// of coloring rules into a 0/1 integer linear program, and defines the
// contract under which any ILP engine — external or the in-tree
// reference engine — solves it.
//
// The package offers the following key components:
//
//   - Model primitives:
//     – Var:        one binary decision variable x[e][c] ("edge e gets color c").
//     – Term:       a coefficient–variable product inside a linear expression.
//     – Constraint: Σ terms ⟨sense⟩ rhs with sense ∈ {≤, =, ≥}.
//     – Model:      variables, constraints and the minimization objective.
//   - Rules:        the recognized rule flags (color budget, exactly-n−1
//     cardinality, forbidden 3-/4-cycles, vertex coverage, k-planar
//     relaxation) with fail-fast validation before any model work.
//   - BuildModel:   emits the full constraint system — exactly-one-color,
//     plane or big-M k-planar crossing constraints, optional cardinality,
//     forbidden-cycle and coverage families, and the Σx objective.
//   - Solver:       the engine contract: context + optional wall-clock
//     limit in, exactly one of Optimal / Infeasible / Unknown out.
//   - BranchBound:  a small exact solver (DFS with per-constraint bound
//     propagation) sufficient for the point-set sizes this project
//     studies; external engines plug in behind the same interface.
//   - AssignColors: the single post-solve write of edge colors.
//
// Guarantees:
//
//   - The builder never solves, never retries and never relaxes
//     constraints on infeasibility — those decisions belong to callers.
//   - Model construction is deterministic: stable variable ids
//     (e·k + c), stable constraint emission order, stable names.
//   - Infeasible and Unknown are legitimate outcomes surfaced verbatim,
//     not errors.
package ilp
