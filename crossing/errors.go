// SPDX-License-Identifier: MIT
// Package: epcgg/crossing
//
// errors.go — sentinel errors for the crossing package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context via %w wrapping; sentinels stay bare.
//   - No panics at runtime.

package crossing

import "errors"

// ErrDegeneratePointSet indicates that the input point set failed the
// general-position check: some triple is collinear. Randomized generators
// resample on this; for deterministic generators it signals a
// parameterization bug and must surface to the caller.
// Usage: if errors.Is(err, ErrDegeneratePointSet) { ... }.
var ErrDegeneratePointSet = errors.New("crossing: point set not in general position")

// ErrCrossingsSet indicates that SetCrossings was invoked on a graph whose
// crossing data is already populated. Running the pass twice would
// double-count every crossing, so the second call is rejected instead.
// Usage: if errors.Is(err, ErrCrossingsSet) { ... }.
var ErrCrossingsSet = errors.New("crossing: crossings already computed")

// ErrNoPoints indicates that a graph was requested over an empty point set.
// Usage: if errors.Is(err, ErrNoPoints) { ... }.
var ErrNoPoints = errors.New("crossing: empty point set")

// ErrPointIDMismatch indicates that the input points are not densely
// labeled: points[i].ID must equal i so that point ids double as arena
// indices. Generators uphold this; a mismatch is a caller bug.
// Usage: if errors.Is(err, ErrPointIDMismatch) { ... }.
var ErrPointIDMismatch = errors.New("crossing: point ids not dense")
