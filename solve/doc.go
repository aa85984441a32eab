// SPDX-License-Identifier: MIT
// Package: epcgg/solve
//
// Package solve orchestrates one partition run end to end: build the
// constraint model for a crossing graph, hand it to an engine, apply
// the colors, and expose the outcome as a Solution.
//
// The Engine interface is the strategy seam. ILPEngine is the built-in
// strategy over any ilp.Solver (the exact BranchBound by default);
// other solver families plug in behind the same interface without
// touching callers.
//
// Presets mirror the two partition regimes this project studies:
//   - PSTRules: partition into plane spanning trees (cardinality,
//     forbidden 3/4-cycles, vertex coverage).
//   - SubgraphRules: partition into plane subgraphs (crossing rule
//     only).
package solve
