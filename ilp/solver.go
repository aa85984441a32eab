// SPDX-License-Identifier: MIT
// Package: epcgg/ilp
//
// solver.go — the engine contract.
//
// Contract:
//   - Input: a fully-specified Model, a context, and an optional
//     wall-clock limit.
//   - Output: exactly one of Optimal (with a 0/1 assignment per
//     variable), Infeasible (proven), or Unknown (limit hit first).
//     Infeasible and Unknown travel in Result.Status, not in error;
//     error is reserved for misuse (nil model, broken invariants).

package ilp

import (
	"context"
	"time"
)

// Status is the verdict of a solve call.
type Status int

const (
	// StatusUnknown means the time limit or context cancellation ended
	// the search before a verdict.
	StatusUnknown Status = iota
	// StatusOptimal means an optimal feasible assignment was found.
	StatusOptimal
	// StatusInfeasible means the constraint system was proven infeasible.
	StatusInfeasible
)

// String renders the status for logs and result records.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Result is the outcome of one solve call.
type Result struct {
	// Status is the verdict; Assignment and Objective are meaningful
	// only for StatusOptimal.
	Status Status

	// Assignment holds 0/1 per variable, indexed by Var.ID.
	Assignment []int8

	// Objective is the objective value of the assignment.
	Objective float64

	// Runtime is the wall-clock time the search took.
	Runtime time.Duration
}

// SolveOption customizes one solve call.
type SolveOption func(*solveConfig)

// solveConfig collects per-call knobs.
type solveConfig struct {
	timeLimit time.Duration
}

// WithTimeLimit bounds the wall-clock search time; when it expires the
// engine returns StatusUnknown. Zero means no limit. Panics on negative
// durations (programmer error).
func WithTimeLimit(d time.Duration) SolveOption {
	if d < 0 {
		panic("ilp: WithTimeLimit(<0)")
	}
	return func(c *solveConfig) {
		c.timeLimit = d
	}
}

// newSolveConfig resolves per-call options with deterministic defaults.
func newSolveConfig(opts ...SolveOption) solveConfig {
	var cfg solveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Solver is the engine contract. The model builder never solves; any
// exact ILP engine — the in-tree BranchBound or an external system —
// plugs in here.
type Solver interface {
	Solve(ctx context.Context, m *Model, opts ...SolveOption) (Result, error)
}
