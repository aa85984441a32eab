// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// errors.go — sentinel errors for the pointset package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context using %w; sentinels stay bare.
//   - Constructors never panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package pointset

import "errors"

// ErrTooFewPoints indicates that a numeric parameter (n, k, l, a group
// size) is below the minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid size */ }.
var ErrTooFewPoints = errors.New("pointset: parameter too small")

// ErrNeedRandSource indicates that a randomized constructor was invoked
// without an RNG in the resolved config (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("pointset: rng is required")

// ErrAttemptsExhausted indicates that a randomized constructor hit its
// resample ceiling without producing a point set in general position.
// Under continuous sampling this is practically unreachable; under
// integer sampling it signals a coordinate range too small for n.
// Usage: if errors.Is(err, ErrAttemptsExhausted) { /* widen the range */ }.
var ErrAttemptsExhausted = errors.New("pointset: resample attempts exhausted")

// ErrNilConstructor indicates that Build received a nil Constructor
// (programmer error surfaced as an error, not a panic).
// Usage: if errors.Is(err, ErrNilConstructor) { ... }.
var ErrNilConstructor = errors.New("pointset: nil constructor")
