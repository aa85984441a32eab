// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// impl_random_wheel.go — implementation of RandomWheel(n).
//
// Canonical definition:
//   - n−1 points at uniformly random angles on the unit circle (ids
//     0..n-2 in sampling order, forming a convex outer ring) plus one
//     interior point (id n−1) sampled uniformly inside the ring's convex
//     hull by rejection against its bounding box.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewPoints): the ring needs at least a triangle.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Both rejection loops (interior point vs. hull, whole set vs.
//     general position) are bounded by cfg.maxAttempts; a failed interior
//     search counts as a failed whole-set attempt.
//
// Complexity: O(attempts · (n³ + attempts·n)) worst case; in practice a
// handful of draws.

package pointset

import (
	"fmt"
	"math"
	"sort"

	"github.com/jogo23/edge-partitions-cgg/geometry"
)

const (
	methodRandomWheel    = "RandomWheel"
	minRandomWheelPoints = 4
)

// RandomWheel returns a Constructor that samples a random convex ring of
// n−1 points with one extra point inside its hull.
func RandomWheel(n int) Constructor {
	return func(cfg generatorConfig) ([]geometry.Point, error) {
		if n < minRandomWheelPoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomWheel, n, minRandomWheelPoints, ErrTooFewPoints)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomWheel, ErrNeedRandSource)
		}

		nOuter := n - 1
		for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
			// Outer ring: nOuter random unit-circle angles, ids in
			// sampling order (the hull order is recovered separately).
			ring := make([]geometry.Point, 0, nOuter)
			for i := 0; i < nOuter; i++ {
				ring = append(ring, onCircle(i, 1, cfg.rng.Float64()*2*math.Pi))
			}

			inner, ok := randomPointInHull(cfg, ring, n-1)
			if !ok {
				// Sliver hull starved the rejection loop; resample the ring.
				continue
			}

			points := append(ring, inner)
			if geometry.InGeneralPosition(points) {
				return points, nil
			}
		}

		return nil, fmt.Errorf("%s: gave up after %d resamples: %w", methodRandomWheel, cfg.maxAttempts, ErrAttemptsExhausted)
	}
}

// randomPointInHull samples a point (with the given id) uniformly inside
// the convex hull of ring by rejection against the hull's bounding box.
// All ring points lie on a circle, so the hull is the ring itself in
// angular order. Returns ok=false when cfg.maxAttempts draws all miss.
func randomPointInHull(cfg generatorConfig, ring []geometry.Point, id int) (geometry.Point, bool) {
	// Recover the hull (angular) order without disturbing ring ids.
	hull := make([]geometry.Point, len(ring))
	copy(hull, ring)
	sort.Slice(hull, func(i, j int) bool {
		return math.Atan2(hull[i].Y, hull[i].X) < math.Atan2(hull[j].Y, hull[j].X)
	})

	// Bounding box of the hull.
	minX, minY := hull[0].X, hull[0].Y
	maxX, maxY := minX, minY
	for _, p := range hull[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		candidate := geometry.Point{
			ID: id,
			X:  minX + cfg.rng.Float64()*(maxX-minX),
			Y:  minY + cfg.rng.Float64()*(maxY-minY),
		}
		if insideConvex(hull, candidate) {
			return candidate, true
		}
	}

	return geometry.Point{}, false
}

// insideConvex reports whether p lies strictly inside the convex polygon
// given in angular (counterclockwise) order: every hull edge must see p
// with the same strict turn.
func insideConvex(hull []geometry.Point, p geometry.Point) bool {
	var want geometry.Turn
	for i := range hull {
		turn := geometry.Orientation(hull[i], hull[(i+1)%len(hull)], p)
		if turn == geometry.Collinear {
			return false
		}
		if i == 0 {
			want = turn
			continue
		}
		if turn != want {
			return false
		}
	}

	return true
}
