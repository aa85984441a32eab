// SPDX-License-Identifier: MIT
// Package: epcgg/solve
//
// engine.go — the run orchestrator.
//
// Contract:
//   - ComputeSolution builds exactly one model and solves it exactly
//     once; no retries, no constraint relaxation on infeasibility.
//   - Colors are written back only on an optimal verdict; on any other
//     verdict the graph keeps its NoColor edges.
//   - Errors mean misuse or I/O, never "no partition exists": that is
//     a Solution with StatusInfeasible.

package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jogo23/edge-partitions-cgg/crossing"
	"github.com/jogo23/edge-partitions-cgg/ilp"
	"github.com/jogo23/edge-partitions-cgg/result"
	"github.com/jogo23/edge-partitions-cgg/verify"
)

// ErrNilGraph indicates an engine constructed without a graph.
// Usage: if errors.Is(err, ErrNilGraph) { ... }.
var ErrNilGraph = errors.New("solve: nil graph")

// Config describes one partition run.
type Config struct {
	// Graph is the crossing graph to partition. Required.
	Graph *crossing.Graph

	// Rules selects the constraint families; see PSTRules and
	// SubgraphRules for the standard configurations.
	Rules ilp.Rules

	// TimeLimit bounds the solver's wall-clock time; zero means none.
	TimeLimit time.Duration

	// Command records the invocation for the result artifacts.
	Command string
}

// Engine computes a Solution for a configured run. Implementations
// other than ILPEngine may wrap external solver processes.
type Engine interface {
	ComputeSolution(ctx context.Context) (*Solution, error)
}

// Option customizes an ILPEngine.
type Option func(*ILPEngine)

// WithSolver swaps the underlying ilp.Solver. Panics on nil
// (programmer error).
func WithSolver(s ilp.Solver) Option {
	if s == nil {
		panic("solve: WithSolver(nil)")
	}
	return func(e *ILPEngine) {
		e.solver = s
	}
}

// ILPEngine is the built-in Engine: constraint model plus an exact
// 0/1 solver.
type ILPEngine struct {
	cfg    Config
	solver ilp.Solver
}

// Engine conformance.
var _ Engine = (*ILPEngine)(nil)

// NewILPEngine validates the configuration and resolves options.
// The default solver is the in-tree BranchBound.
func NewILPEngine(cfg Config, opts ...Option) (*ILPEngine, error) {
	if cfg.Graph == nil {
		return nil, fmt.Errorf("NewILPEngine: %w", ErrNilGraph)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("NewILPEngine: %w", err)
	}

	e := &ILPEngine{cfg: cfg, solver: ilp.BranchBound{}}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// ComputeSolution runs build → solve → assign and wraps the outcome.
func (e *ILPEngine) ComputeSolution(ctx context.Context) (*Solution, error) {
	model, err := ilp.BuildModel(e.cfg.Graph, e.cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("ComputeSolution: %w", err)
	}

	var opts []ilp.SolveOption
	if e.cfg.TimeLimit > 0 {
		opts = append(opts, ilp.WithTimeLimit(e.cfg.TimeLimit))
	}
	res, err := e.solver.Solve(ctx, model, opts...)
	if err != nil {
		return nil, fmt.Errorf("ComputeSolution: %w", err)
	}

	if res.Status == ilp.StatusOptimal {
		if err := ilp.AssignColors(e.cfg.Graph, model, res); err != nil {
			return nil, fmt.Errorf("ComputeSolution: %w", err)
		}
	}

	return &Solution{
		Graph:       e.cfg.Graph,
		Colors:      e.cfg.Rules.Colors,
		Status:      res.Status,
		Runtime:     res.Runtime,
		Command:     e.cfg.Command,
		Vars:        model.NumVars(),
		Constraints: model.NumConstraints(),
	}, nil
}

// Solution is the outcome of one run.
type Solution struct {
	// Graph is the partitioned graph; edge colors are set only when
	// Status is optimal.
	Graph *crossing.Graph

	// Colors is the color budget the run used.
	Colors int

	// Status and Runtime mirror the solver result.
	Status  ilp.Status
	Runtime time.Duration

	// Command is the recorded invocation.
	Command string

	// Vars and Constraints are the model dimensions, for logs and
	// records.
	Vars, Constraints int
}

// PSTPartition reports whether the run produced a verified partition
// into plane spanning trees. Always false off the optimal path.
func (s *Solution) PSTPartition() bool {
	return s.Status == ilp.StatusOptimal && verify.IsPSTPartition(s.Graph, s.Colors)
}

// Record renders the solution for persistence. generator names the
// point-set construction; params carries its shape parameters for the
// overview line (empty for coordinate-listing generators).
func (s *Solution) Record(generator, params string) result.Record {
	coords := make([][2]float64, s.Graph.N())
	for i := range s.Graph.Points {
		coords[i] = [2]float64{s.Graph.Points[i].X, s.Graph.Points[i].Y}
	}

	return result.Record{
		N:              s.Graph.N(),
		Coordinates:    coords,
		Generator:      generator,
		Params:         params,
		Command:        s.Command,
		Colors:         s.Colors,
		Status:         s.Status.String(),
		RuntimeSeconds: s.Runtime.Seconds(),
		PSTPartition:   s.PSTPartition(),
	}
}
