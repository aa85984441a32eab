package pointset_test

import (
	"math"
	"testing"

	"github.com/jogo23/edge-partitions-cgg/crossing"
	"github.com/jogo23/edge-partitions-cgg/geometry"
	"github.com/jogo23/edge-partitions-cgg/pointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireWellFormed asserts the structural invariants every built graph
// must satisfy: dense point ids, dense edge ids, crossing symmetry and
// counter consistency.
func requireWellFormed(t *testing.T, g *crossing.Graph) {
	t.Helper()

	require.True(t, geometry.InGeneralPosition(g.Points))
	for i := range g.Points {
		require.Equal(t, i, g.Points[i].ID)
	}
	for i := range g.Edges {
		e := &g.Edges[i]
		require.Equal(t, i, e.ID)
		require.Equal(t, len(e.Crossings), e.NumCrossings)
		for _, id := range e.Crossings {
			require.Contains(t, g.Edges[id].Crossings, e.ID, "crossing symmetry")
		}
	}
}

// TestBuild_NilConstructor covers the orchestrator's defensive branch.
func TestBuild_NilConstructor(t *testing.T) {
	_, err := pointset.Build(nil)
	assert.ErrorIs(t, err, pointset.ErrNilConstructor)
}

// TestConvex verifies count, unit radius, angular order and the full
// C(n,2) edge set.
func TestConvex(t *testing.T) {
	g, err := pointset.Build(pointset.Convex(8))
	require.NoError(t, err)
	requireWellFormed(t, g)

	assert.Equal(t, 8, g.N())
	assert.Equal(t, 28, g.M())
	for _, p := range g.Points {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12, "point %d must sit on the unit circle", p.ID)
	}

	// Too few points.
	_, err = pointset.Build(pointset.Convex(2))
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)
}

// TestBumpyWheel verifies the hub, the group layout and the degenerate
// even-k parameterization surfacing as an error (not a retry).
func TestBumpyWheel(t *testing.T) {
	const k, l = 3, 3
	g, err := pointset.Build(pointset.BumpyWheel(k, l))
	require.NoError(t, err)
	requireWellFormed(t, g)

	require.Equal(t, k*l+1, g.N())

	// Hub at the origin.
	assert.Zero(t, g.Points[0].X)
	assert.Zero(t, g.Points[0].Y)

	// Rim points on the unit circle.
	for _, p := range g.Points[1:] {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12)
	}

	// Even k aligns opposite bumps through the hub: three collinear
	// points. A deterministic generator must raise, not resample.
	_, err = pointset.Build(pointset.BumpyWheel(4, 2))
	assert.ErrorIs(t, err, crossing.ErrDegeneratePointSet)

	// Parameter validation.
	_, err = pointset.Build(pointset.BumpyWheel(2, 3))
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)
	_, err = pointset.Build(pointset.BumpyWheel(3, 0))
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)
}

// TestGeneralizedWheel verifies per-group sizes and validation.
func TestGeneralizedWheel(t *testing.T) {
	sizes := []int{2, 3, 4}
	g, err := pointset.Build(pointset.GeneralizedWheel(sizes))
	require.NoError(t, err)
	requireWellFormed(t, g)
	assert.Equal(t, 1+2+3+4, g.N())

	_, err = pointset.Build(pointset.GeneralizedWheel([]int{3, 3}))
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)
	_, err = pointset.Build(pointset.GeneralizedWheel([]int{3, 0, 3}))
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)
}

// TestRandom verifies integer coordinates within range, determinism per
// seed, the RNG requirement and the resample ceiling on a hopeless range.
func TestRandom(t *testing.T) {
	const n = 10
	g, err := pointset.Build(pointset.Random(n), pointset.WithSeed(42))
	require.NoError(t, err)
	requireWellFormed(t, g)

	require.Equal(t, n, g.N())
	for _, p := range g.Points {
		assert.Equal(t, math.Trunc(p.X), p.X, "integer coordinate")
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, float64(10*n))
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, float64(10*n))
	}

	// Same seed ⇒ same set.
	g2, err := pointset.Build(pointset.Random(n), pointset.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, g.Points, g2.Points)

	// Missing RNG.
	_, err = pointset.Build(pointset.Random(n))
	assert.ErrorIs(t, err, pointset.ErrNeedRandSource)

	// A 1×1 integer grid cannot hold 10 points in general position:
	// the ceiling must trip instead of spinning forever.
	_, err = pointset.Build(pointset.Random(n),
		pointset.WithSeed(1), pointset.WithCoordRange(1), pointset.WithMaxAttempts(25))
	assert.ErrorIs(t, err, pointset.ErrAttemptsExhausted)
}

// TestRandomWheel verifies the ring/interior structure: n−1 points on the
// unit circle, one point strictly inside their hull.
func TestRandomWheel(t *testing.T) {
	const n = 9
	g, err := pointset.Build(pointset.RandomWheel(n), pointset.WithSeed(7))
	require.NoError(t, err)
	requireWellFormed(t, g)

	require.Equal(t, n, g.N())
	for _, p := range g.Points[:n-1] {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12, "ring point %d", p.ID)
	}
	center := g.Points[n-1]
	assert.Less(t, math.Hypot(center.X, center.Y), 1.0, "interior point must lie inside the unit circle")

	_, err = pointset.Build(pointset.RandomWheel(3), pointset.WithSeed(7))
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)
	_, err = pointset.Build(pointset.RandomWheel(n))
	assert.ErrorIs(t, err, pointset.ErrNeedRandSource)
}

// TestTwoConvexLayers verifies the layer split and radii, including the
// odd-n remainder joining the outer layer.
func TestTwoConvexLayers(t *testing.T) {
	for _, n := range []int{8, 9} {
		g, err := pointset.Build(pointset.TwoConvexLayers(n), pointset.WithSeed(3))
		require.NoError(t, err)
		requireWellFormed(t, g)
		require.Equal(t, n, g.N())

		inner := n / 2
		for _, p := range g.Points[:inner] {
			assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12)
		}
		for _, p := range g.Points[inner:] {
			assert.InDelta(t, 4.0, math.Hypot(p.X, p.Y), 1e-12)
		}
	}

	_, err := pointset.Build(pointset.TwoConvexLayers(3), pointset.WithSeed(3))
	assert.ErrorIs(t, err, pointset.ErrTooFewPoints)
	_, err = pointset.Build(pointset.TwoConvexLayers(8))
	assert.ErrorIs(t, err, pointset.ErrNeedRandSource)
}

// TestBuild_Pruning verifies that WithoutUncrossed drops exactly the
// crossing-free edges (convex position: all n hull sides).
func TestBuild_Pruning(t *testing.T) {
	const n = 6
	full, err := pointset.Build(pointset.Convex(n))
	require.NoError(t, err)
	pruned, err := pointset.Build(pointset.Convex(n), pointset.WithoutUncrossed())
	require.NoError(t, err)
	requireWellFormed(t, pruned)

	// C(6,2)=15 edges total, 6 uncrossed hull sides.
	assert.Equal(t, 15, full.M())
	assert.Equal(t, 9, pruned.M())
	for i := range pruned.Edges {
		assert.Positive(t, pruned.Edges[i].NumCrossings)
	}
}
