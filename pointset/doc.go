// Package pointset provides the six point-set generators of
// edge-partitions-cgg behind "functional-options"-style building blocks.
// Every generator yields points in general position and hands back a
// fully crossing-annotated crossing.Graph — never bare points, never
// edges without crossing data.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:            a function that mutates generatorConfig before use.
//     – generatorConfig:   holds RNG, retry ceiling, coordinate range, pruning.
//   - Deterministic constructors:
//     – Convex(n):             n points evenly spaced on the unit circle.
//     – BumpyWheel(k, l):      a hub plus k bumpy spokes of l points each.
//     – GeneralizedWheel(sz):  like BumpyWheel with per-spoke group sizes.
//   - Randomized constructors (rejection resampling, bounded retries):
//     – Random(n):             integer coordinates uniform in [0,size]².
//     – RandomWheel(n):        a random convex ring plus one interior point.
//     – TwoConvexLayers(n):    two nested random circles (radius 1 and 4).
//   - Orchestration:
//     – Build(con, opts...):   resolve options, run the constructor, verify
//       general position and build the crossing graph.
//
// Guarantees:
//
//   - Determinism: identical constructor, options and seed produce an
//     identical graph (stable point ids, stable edge ids).
//   - Randomized constructors regenerate the entire candidate set on a
//     general-position failure (no partial repair) and give up with
//     ErrAttemptsExhausted after the configured ceiling instead of
//     looping forever.
//   - Deterministic constructors never resample: a degenerate output is a
//     parameterization bug and surfaces as ErrDegeneratePointSet from the
//     crossing layer.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; runtime code returns sentinel errors only.
package pointset
