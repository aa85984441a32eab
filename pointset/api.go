// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// api.go — thin public entry-point for the pointset package.
//
// Design contract (strict):
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs the
//     constructor, builds the crossing-annotated graph.
//   - All public factories are declared in impl_*.go files (one topology
//     per file, mirroring the generator catalog).
//   - Functional options (Option) resolve into an immutable
//     generatorConfig (no global state).
//   - Determinism: same constructor/options/seed ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors.

package pointset

import (
	"fmt"

	"github.com/jogo23/edge-partitions-cgg/crossing"
	"github.com/jogo23/edge-partitions-cgg/geometry"
)

// Constructor produces a point set from the resolved configuration.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Assign dense point ids 0..n-1 in emission order.
//   - For randomized topologies: resample the entire set on a
//     general-position failure, bounded by cfg.maxAttempts.
type Constructor func(cfg generatorConfig) ([]geometry.Point, error)

// Build resolves the generator configuration from opts, runs con, and
// hands the produced points to the crossing layer: general-position
// verification, full edge enumeration, the pairwise crossing pass and
// optional pruning. Generators therefore never hand back edges without
// crossing data populated.
//
// Errors:
//   - ErrNilConstructor for a nil con.
//   - Constructor sentinels (ErrTooFewPoints, ErrNeedRandSource,
//     ErrAttemptsExhausted) wrapped with "Build: ".
//   - crossing.ErrDegeneratePointSet when a deterministic constructor was
//     parameterized into a degenerate configuration (e.g. a bumpy wheel
//     with diametral spokes); such bugs surface, they are not resampled.
//
// Complexity: constructor cost + O(n³) position check + O(n⁴) crossings.
func Build(con Constructor, opts ...Option) (*crossing.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilConstructor)
	}

	cfg := newConfig(opts...)

	points, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	var copts []crossing.Option
	if cfg.prune {
		copts = append(copts, crossing.WithoutUncrossed())
	}

	g, err := crossing.NewGraph(points, copts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}
