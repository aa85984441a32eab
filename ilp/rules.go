// SPDX-License-Identifier: MIT
// Package: epcgg/ilp
//
// rules.go — the recognized coloring rule flags and their validation.
//
// Contract:
//   - Validate runs before any model construction; an invalid
//     configuration never costs enumeration work.
//   - KPlanarOff (−1) selects plane mode: crossing edges may never share
//     a color. KPlanar ≥ 0 relaxes that to "at most KPlanar same-colored
//     crossings per edge".

package ilp

import "fmt"

// KPlanarOff disables the k-planar relaxation: plane mode.
const KPlanarOff = -1

// Rules is the rule configuration consumed by BuildModel.
type Rules struct {
	// Colors is the color budget k; variables are x[e][0..k).
	Colors int

	// N1Constraints forces every color class to exactly n−1 edges.
	N1Constraints bool

	// ForbiddenCycles lists cycle lengths (⊆ {3,4}) that may not be
	// monochromatic.
	ForbiddenCycles []int

	// CoverAllVertices forces every vertex to be incident to at least
	// one edge of every color.
	CoverAllVertices bool

	// KPlanar is the per-edge budget of same-colored crossings;
	// KPlanarOff selects plane mode.
	KPlanar int
}

// Validate rejects configurations outside the recognized domain.
// Errors wrap ErrInvalidRules with the offending field.
func (r Rules) Validate() error {
	if r.Colors < 1 {
		return fmt.Errorf("Rules: colors=%d < 1: %w", r.Colors, ErrInvalidRules)
	}
	if r.KPlanar < KPlanarOff {
		return fmt.Errorf("Rules: k_planar=%d < %d: %w", r.KPlanar, KPlanarOff, ErrInvalidRules)
	}
	for _, l := range r.ForbiddenCycles {
		if l != 3 && l != 4 {
			return fmt.Errorf("Rules: forbidden cycle length %d: %w", l, ErrInvalidRules)
		}
	}

	return nil
}

// PlaneMode reports whether the plane (no same-colored crossing) rule is
// active, as opposed to the k-planar relaxation.
func (r Rules) PlaneMode() bool { return r.KPlanar < 0 }
