// SPDX-License-Identifier: MIT
// Package: epcgg/solve
//
// presets.go — the two standard rule configurations.

package solve

import "github.com/jogo23/edge-partitions-cgg/ilp"

// DefaultColors is the standard color budget for n points. Half the
// points is the natural target: a partition into plane spanning trees
// of K_n needs at most ⌈n/2⌉ trees.
func DefaultColors(n int) int { return n / 2 }

// PSTRules configures a partition into plane spanning trees: n−1 edges
// per class, no monochromatic 3- or 4-cycles, every vertex in every
// class.
func PSTRules(n int) ilp.Rules {
	return ilp.Rules{
		Colors:           DefaultColors(n),
		N1Constraints:    true,
		ForbiddenCycles:  []int{3, 4},
		CoverAllVertices: true,
		KPlanar:          ilp.KPlanarOff,
	}
}

// SubgraphRules configures a partition into plane subgraphs: the
// crossing rule alone.
func SubgraphRules(n int) ilp.Rules {
	return ilp.Rules{
		Colors:  DefaultColors(n),
		KPlanar: ilp.KPlanarOff,
	}
}
