// SPDX-License-Identifier: MIT
// Package: epcgg/pointset
//
// helpers.go — shared generation helpers: the bounded resample loop and
// circle placement.

package pointset

import (
	"fmt"
	"math"

	"github.com/jogo23/edge-partitions-cgg/geometry"
)

// sampleUntilGeneral runs sample() until the candidate set is in general
// position, regenerating the ENTIRE set on failure (no partial repair —
// degenerate configurations are measure-zero under continuous sampling,
// so the expected retry count is small). Gives up after cfg.maxAttempts
// with ErrAttemptsExhausted; method tags the error context.
func sampleUntilGeneral(method string, cfg generatorConfig, sample func() []geometry.Point) ([]geometry.Point, error) {
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		points := sample()
		if geometry.InGeneralPosition(points) {
			return points, nil
		}
	}

	return nil, fmt.Errorf("%s: gave up after %d resamples: %w", method, cfg.maxAttempts, ErrAttemptsExhausted)
}

// onCircle returns the point with the given id at the given angle on a
// circle of the given radius around the origin.
func onCircle(id int, radius, angle float64) geometry.Point {
	return geometry.Point{ID: id, X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}
