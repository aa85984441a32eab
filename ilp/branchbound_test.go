// SPDX-License-Identifier: MIT
// Package: epcgg/ilp
//
// branchbound_test.go — verdict tests for the exact engine and the
// color write-back.

package ilp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jogo23/edge-partitions-cgg/crossing"
	"github.com/jogo23/edge-partitions-cgg/ilp"
)

func TestSolve_NilModel(t *testing.T) {
	_, err := ilp.BranchBound{}.Solve(context.Background(), nil)
	require.ErrorIs(t, err, ilp.ErrNilModel)
}

func TestSolve_ConvexQuadTwoColors(t *testing.T) {
	// The diagonals of a convex quad cross; two colors suffice.
	g := convexGraph(t, 4)
	m, err := ilp.BuildModel(g, ilp.Rules{Colors: 2, KPlanar: ilp.KPlanarOff})
	require.NoError(t, err)

	res, err := ilp.BranchBound{}.Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, ilp.StatusOptimal, res.Status)
	require.Len(t, res.Assignment, m.NumVars())

	// Every edge takes exactly one color, so the objective equals m.
	assert.InDelta(t, float64(g.M()), res.Objective, 1e-9)
}

func TestSolve_PentagramNeedsThreeColors(t *testing.T) {
	// The five diagonals of a convex pentagon cross in a 5-cycle; plane
	// classes are a proper coloring of that odd cycle, so two colors
	// cannot work and three can.
	g := convexGraph(t, 5)

	two, err := ilp.BuildModel(g, ilp.Rules{Colors: 2, KPlanar: ilp.KPlanarOff})
	require.NoError(t, err)
	res, err := ilp.BranchBound{}.Solve(context.Background(), two)
	require.NoError(t, err)
	assert.Equal(t, ilp.StatusInfeasible, res.Status)
	assert.Nil(t, res.Assignment)

	three, err := ilp.BuildModel(g, ilp.Rules{Colors: 3, KPlanar: ilp.KPlanarOff})
	require.NoError(t, err)
	res, err = ilp.BranchBound{}.Solve(context.Background(), three)
	require.NoError(t, err)
	assert.Equal(t, ilp.StatusOptimal, res.Status)
}

func TestSolve_CardinalityCountingInfeasible(t *testing.T) {
	// Convex pentagon: 10 edges, but two classes of n−1=4 cover only 8.
	g := convexGraph(t, 5)
	m, err := ilp.BuildModel(g, ilp.Rules{
		Colors:        2,
		KPlanar:       ilp.KPlanarOff,
		N1Constraints: true,
	})
	require.NoError(t, err)

	res, err := ilp.BranchBound{}.Solve(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, ilp.StatusInfeasible, res.Status)
}

func TestSolve_QuadPlaneSpanningTreePartition(t *testing.T) {
	// K4 on convex-position points splits into two plane spanning trees.
	g := convexGraph(t, 4)
	rules := ilp.Rules{
		Colors:           2,
		KPlanar:          ilp.KPlanarOff,
		N1Constraints:    true,
		ForbiddenCycles:  []int{3, 4},
		CoverAllVertices: true,
	}
	m, err := ilp.BuildModel(g, rules)
	require.NoError(t, err)

	res, err := ilp.BranchBound{}.Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, ilp.StatusOptimal, res.Status)

	require.NoError(t, ilp.AssignColors(g, m, res))

	// Both classes carry n−1 edges, and the crossing diagonals land in
	// different classes.
	for c := 0; c < rules.Colors; c++ {
		assert.Len(t, g.ColorClassEdges(c), g.N()-1)
	}
	d1, _ := g.EdgeIDBetween(0, 2)
	d2, _ := g.EdgeIDBetween(1, 3)
	assert.NotEqual(t, g.Edges[d1].Color, g.Edges[d2].Color)
}

func TestSolve_CancelledContextIsUnknown(t *testing.T) {
	// Proving this counting infeasibility (21 edges, 3 classes of 6)
	// takes far more nodes than the abort-poll interval, so a cancelled
	// context ends the search without a verdict.
	g := convexGraph(t, 7)
	m, err := ilp.BuildModel(g, ilp.Rules{
		Colors:        3,
		KPlanar:       ilp.KPlanarOff,
		N1Constraints: true,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := ilp.BranchBound{}.Solve(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, ilp.StatusUnknown, res.Status)
	assert.Nil(t, res.Assignment)
}

func TestSolve_TimeLimitIsUnknown(t *testing.T) {
	g := convexGraph(t, 7)
	m, err := ilp.BuildModel(g, ilp.Rules{
		Colors:        3,
		KPlanar:       ilp.KPlanarOff,
		N1Constraints: true,
	})
	require.NoError(t, err)

	res, err := ilp.BranchBound{}.Solve(context.Background(), m,
		ilp.WithTimeLimit(20*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, ilp.StatusUnknown, res.Status)
	assert.GreaterOrEqual(t, res.Runtime, 20*time.Millisecond)
}

func TestWithTimeLimit_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { ilp.WithTimeLimit(-time.Second) })
}

func TestAssignColors_Misuse(t *testing.T) {
	g := convexGraph(t, 4)
	m, err := ilp.BuildModel(g, ilp.Rules{Colors: 2, KPlanar: ilp.KPlanarOff})
	require.NoError(t, err)

	t.Run("nil model", func(t *testing.T) {
		err := ilp.AssignColors(g, nil, ilp.Result{Status: ilp.StatusOptimal})
		assert.ErrorIs(t, err, ilp.ErrNilModel)
	})

	t.Run("non-optimal result", func(t *testing.T) {
		err := ilp.AssignColors(g, m, ilp.Result{Status: ilp.StatusInfeasible})
		assert.ErrorIs(t, err, ilp.ErrNotOptimal)
	})

	t.Run("wrong length", func(t *testing.T) {
		err := ilp.AssignColors(g, m, ilp.Result{
			Status:     ilp.StatusOptimal,
			Assignment: make([]int8, 3),
		})
		assert.ErrorIs(t, err, ilp.ErrBadAssignment)
	})

	t.Run("two colors on one edge", func(t *testing.T) {
		bad := make([]int8, m.NumVars())
		bad[0], bad[1] = 1, 1 // both colors of edge 0
		err := ilp.AssignColors(g, m, ilp.Result{Status: ilp.StatusOptimal, Assignment: bad})
		assert.ErrorIs(t, err, ilp.ErrBadAssignment)
	})

	t.Run("uncolored edge", func(t *testing.T) {
		partial := make([]int8, m.NumVars())
		partial[0] = 1 // edge 0 only
		err := ilp.AssignColors(g, m, ilp.Result{Status: ilp.StatusOptimal, Assignment: partial})
		assert.ErrorIs(t, err, ilp.ErrBadAssignment)
	})
}

func TestAssignColors_RecolorRejected(t *testing.T) {
	g := convexGraph(t, 4)
	m, err := ilp.BuildModel(g, ilp.Rules{Colors: 2, KPlanar: ilp.KPlanarOff})
	require.NoError(t, err)

	res, err := ilp.BranchBound{}.Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, ilp.StatusOptimal, res.Status)

	require.NoError(t, ilp.AssignColors(g, m, res))
	for e := range g.Edges {
		assert.NotEqual(t, crossing.NoColor, g.Edges[e].Color)
	}

	err = ilp.AssignColors(g, m, res)
	assert.ErrorIs(t, err, ilp.ErrColorConflict)
}
