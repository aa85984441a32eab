// SPDX-License-Identifier: MIT
// Package: epcgg/ilp
//
// errors.go — sentinel errors for the ilp package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Solver verdicts (Infeasible/Unknown) are NOT errors — they are
//     Status values. Errors here mean misuse or broken preconditions.

package ilp

import "errors"

// ErrInvalidRules indicates a rule configuration that conflicts with
// itself or leaves the recognized domain (non-positive color budget,
// k_planar below −1, a forbidden-cycle length outside {3,4}). Rejected at
// validation time, before any model construction work.
// Usage: if errors.Is(err, ErrInvalidRules) { ... }.
var ErrInvalidRules = errors.New("ilp: invalid rule configuration")

// ErrMissingEdge indicates that a constraint family needed an edge the
// graph no longer carries — forbidden-cycle and coverage constraints
// range over the complete edge set and are incompatible with a graph
// built WithoutUncrossed.
// Usage: if errors.Is(err, ErrMissingEdge) { ... }.
var ErrMissingEdge = errors.New("ilp: edge absent from graph (pruned?)")

// ErrNotOptimal indicates that AssignColors received a non-optimal
// result; only an optimal assignment carries per-edge colors.
// Usage: if errors.Is(err, ErrNotOptimal) { ... }.
var ErrNotOptimal = errors.New("ilp: result is not optimal")

// ErrBadAssignment indicates a result whose assignment vector does not
// match the model (wrong length, an edge with no color or two colors).
// Usage: if errors.Is(err, ErrBadAssignment) { ... }.
var ErrBadAssignment = errors.New("ilp: assignment does not match model")

// ErrColorConflict indicates an attempt to recolor an edge: colors are
// written exactly once per run.
// Usage: if errors.Is(err, ErrColorConflict) { ... }.
var ErrColorConflict = errors.New("ilp: edge already colored")

// ErrNilModel indicates that a solver received a nil model.
// Usage: if errors.Is(err, ErrNilModel) { ... }.
var ErrNilModel = errors.New("ilp: nil model")
