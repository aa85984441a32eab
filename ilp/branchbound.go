// SPDX-License-Identifier: MIT
// Package: epcgg/ilp
//
// branchbound.go — the in-tree exact 0/1 engine.
//
// Design:
//   - Depth-first search over variables in id order, branching 0/1, with
//     per-constraint bound propagation: each constraint tracks the sum
//     over assigned variables plus the minimum and maximum achievable
//     contribution of its unassigned variables; a branch dies as soon as
//     any touched constraint can no longer be satisfied.
//   - Objective bounding: once an incumbent exists, branches whose best
//     possible completion cannot strictly improve it are cut. The bound
//     counts only the unassigned variables' own coefficients; for the
//     all-positive Σx objective it fires late and the constraint
//     propagation does the real pruning.
//   - Abort: context cancellation and the wall-clock limit are polled
//     every few thousand nodes; an aborted search reports StatusUnknown.
//
// Scope: exact and deterministic, sized for the point sets this project
// studies (dozens of points). External engines handle anything larger
// behind the same Solver interface.

package ilp

import (
	"context"
	"fmt"
	"time"
)

// BranchBound is the reference exact solver. The zero value is ready to
// use; the type is stateless and safe for concurrent Solve calls (each
// call owns its search state exclusively).
type BranchBound struct{}

// Solver conformance.
var _ Solver = BranchBound{}

const (
	// feasTol absorbs floating rounding in constraint arithmetic.
	feasTol = 1e-6

	// abortCheckMask throttles context/deadline polling to every 4096
	// nodes.
	abortCheckMask = 1<<12 - 1
)

// Solve runs the branch-and-bound search. Infeasible and Unknown are
// Status values, not errors; the only error is misuse (nil model).
func (BranchBound) Solve(ctx context.Context, m *Model, opts ...SolveOption) (Result, error) {
	if m == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrNilModel)
	}

	cfg := newSolveConfig(opts...)
	if cfg.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeLimit)
		defer cancel()
	}

	start := time.Now()
	s := newSearch(m)
	status := s.run(ctx)

	res := Result{Status: status, Runtime: time.Since(start)}
	if status == StatusOptimal {
		res.Assignment = s.best
		res.Objective = s.bestObj
	}

	return res, nil
}

// conRef locates one occurrence of a variable inside a constraint.
type conRef struct {
	con   int
	coeff float64
}

// search is the mutable state of one branch-and-bound run.
type search struct {
	m *Model

	// varCons indexes, per variable, every constraint term touching it.
	varCons [][]conRef

	// Per-constraint propagation state: sum over assigned variables and
	// the min/max achievable contribution of the unassigned ones.
	sum    []float64
	minRem []float64
	maxRem []float64

	// Objective state. objCoeff is sign-adjusted so the search always
	// minimizes; objMinRem is the best possible completion of the
	// unassigned variables.
	objCoeff  []float64
	obj       float64
	objMinRem float64

	assign  []int8
	best    []int8
	bestObj float64
	found   bool

	nodes   int
	aborted bool
}

// newSearch precomputes the propagation tables.
func newSearch(m *Model) *search {
	s := &search{
		m:        m,
		varCons:  make([][]conRef, len(m.Vars)),
		sum:      make([]float64, len(m.Constraints)),
		minRem:   make([]float64, len(m.Constraints)),
		maxRem:   make([]float64, len(m.Constraints)),
		objCoeff: make([]float64, len(m.Vars)),
		assign:   make([]int8, len(m.Vars)),
	}

	for ci := range m.Constraints {
		for _, t := range m.Constraints[ci].Terms {
			s.varCons[t.Var] = append(s.varCons[t.Var], conRef{con: ci, coeff: t.Coeff})
			if t.Coeff > 0 {
				s.maxRem[ci] += t.Coeff
			} else {
				s.minRem[ci] += t.Coeff
			}
		}
	}

	sign := 1.0
	if !m.Minimize {
		sign = -1.0
	}
	for _, t := range m.Objective {
		s.objCoeff[t.Var] += sign * t.Coeff
	}
	for _, c := range s.objCoeff {
		if c < 0 {
			s.objMinRem += c
		}
	}

	return s
}

// run drives the search and maps its end state onto the verdict.
func (s *search) run(ctx context.Context) Status {
	// Root pruning: a constraint unsatisfiable with every variable still
	// free is unsatisfiable, full stop.
	for ci := range s.m.Constraints {
		if !s.constraintAlive(ci) {
			return StatusInfeasible
		}
	}

	s.dfs(ctx, 0)

	switch {
	case s.aborted:
		return StatusUnknown
	case s.found:
		return StatusOptimal
	default:
		return StatusInfeasible
	}
}

// constraintAlive reports whether constraint ci can still be satisfied
// given the current sums and remaining bounds.
func (s *search) constraintAlive(ci int) bool {
	con := &s.m.Constraints[ci]
	minPossible := s.sum[ci] + s.minRem[ci]
	maxPossible := s.sum[ci] + s.maxRem[ci]

	switch con.Sense {
	case LessEq:
		return minPossible <= con.RHS+feasTol
	case GreaterEq:
		return maxPossible >= con.RHS-feasTol
	default: // Equal
		return minPossible <= con.RHS+feasTol && maxPossible >= con.RHS-feasTol
	}
}

// dfs explores assignments for variables v..end.
func (s *search) dfs(ctx context.Context, v int) {
	if s.aborted {
		return
	}
	s.nodes++
	if s.nodes&abortCheckMask == 0 && ctx.Err() != nil {
		s.aborted = true
		return
	}

	// Objective bound: no strict improvement possible → cut.
	if s.found && s.obj+s.objMinRem >= s.bestObj-feasTol {
		return
	}

	if v == len(s.m.Vars) {
		// Leaf: every constraint was verified as its last member got
		// assigned, so this assignment is feasible.
		s.found = true
		s.bestObj = s.obj
		s.best = append(s.best[:0], s.assign...)
		return
	}

	// Branch in the objective-friendly order: the cheaper value first.
	values := [2]int8{0, 1}
	if s.objCoeff[v] < 0 {
		values = [2]int8{1, 0}
	}

	for _, b := range values {
		if s.push(v, b) {
			s.dfs(ctx, v+1)
		}
		s.pop(v, b)
		if s.aborted {
			return
		}
	}
}

// push assigns variable v := b, updates propagation state, and reports
// whether every touched constraint stays satisfiable.
func (s *search) push(v int, b int8) bool {
	ok := true
	for _, ref := range s.varCons[v] {
		s.sum[ref.con] += float64(b) * ref.coeff
		if ref.coeff > 0 {
			s.maxRem[ref.con] -= ref.coeff
		} else {
			s.minRem[ref.con] -= ref.coeff
		}
		if !s.constraintAlive(ref.con) {
			ok = false
		}
	}

	s.assign[v] = b
	s.obj += float64(b) * s.objCoeff[v]
	if s.objCoeff[v] < 0 {
		s.objMinRem -= s.objCoeff[v]
	}

	return ok
}

// pop undoes push(v, b).
func (s *search) pop(v int, b int8) {
	for _, ref := range s.varCons[v] {
		s.sum[ref.con] -= float64(b) * ref.coeff
		if ref.coeff > 0 {
			s.maxRem[ref.con] += ref.coeff
		} else {
			s.minRem[ref.con] += ref.coeff
		}
	}

	s.assign[v] = 0
	s.obj -= float64(b) * s.objCoeff[v]
	if s.objCoeff[v] < 0 {
		s.objMinRem += s.objCoeff[v]
	}
}
