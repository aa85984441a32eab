package geometry_test

import (
	"math"
	"testing"

	"github.com/jogo23/edge-partitions-cgg/geometry"
	"github.com/stretchr/testify/assert"
)

// pt is a shorthand constructor for test points.
func pt(id int, x, y float64) geometry.Point {
	return geometry.Point{ID: id, X: x, Y: y}
}

// TestOrientation_BasicTurns checks the three turn classes on hand-picked
// triples: a left turn, a right turn and an exactly collinear triple.
func TestOrientation_BasicTurns(t *testing.T) {
	a := pt(0, 0, 0)
	b := pt(1, 1, 0)

	// c above the line a→b: (q−p)×(r−q) = (0)(−1)−(1)(1) < 0 → CounterClockwise.
	assert.Equal(t, geometry.CounterClockwise, geometry.Orientation(a, b, pt(2, 1, 1)))

	// c below the line a→b → Clockwise.
	assert.Equal(t, geometry.Clockwise, geometry.Orientation(a, b, pt(2, 1, -1)))

	// c on the line a→b → Collinear (exact zero).
	assert.Equal(t, geometry.Collinear, geometry.Orientation(a, b, pt(2, 2, 0)))
}

// TestOrientation_PermutationParity verifies that swapping two labels of a
// non-collinear triple flips the turn class, and that cyclic rotation
// preserves it — the sign/parity invariance of the cross product.
func TestOrientation_PermutationParity(t *testing.T) {
	p := pt(0, 0.2, -1.3)
	q := pt(1, 2.7, 0.4)
	r := pt(2, -0.9, 1.8)

	base := geometry.Orientation(p, q, r)
	assert.NotEqual(t, geometry.Collinear, base, "fixture triple must not be collinear")

	flip := geometry.Clockwise
	if base == geometry.Clockwise {
		flip = geometry.CounterClockwise
	}

	// Odd permutations (one transposition) flip the class.
	assert.Equal(t, flip, geometry.Orientation(q, p, r))
	assert.Equal(t, flip, geometry.Orientation(p, r, q))
	assert.Equal(t, flip, geometry.Orientation(r, q, p))

	// Even permutations (cyclic rotations) preserve it.
	assert.Equal(t, base, geometry.Orientation(q, r, p))
	assert.Equal(t, base, geometry.Orientation(r, p, q))
}

// TestIsCollinear_ToleranceWindow checks that exactly collinear triples and
// triples perturbed below the epsilon window are accepted, while clearly
// non-collinear triples are rejected.
func TestIsCollinear_ToleranceWindow(t *testing.T) {
	a := pt(0, 0, 0)
	b := pt(1, 1, 0)

	// Exact collinearity.
	assert.True(t, geometry.IsCollinear(a, b, pt(2, 2, 0)))

	// Perturbation below CollinearEps still reads as collinear.
	assert.True(t, geometry.IsCollinear(a, b, pt(2, 2, geometry.CollinearEps/8)))

	// A visible offset does not.
	assert.False(t, geometry.IsCollinear(a, b, pt(2, 2, 1e-9)))
}

// TestIsCollinear_FalseForGenericTriples spot-checks several triples in
// generic position; none may read as collinear.
func TestIsCollinear_FalseForGenericTriples(t *testing.T) {
	triples := [][3]geometry.Point{
		{pt(0, 0, 0), pt(1, 1, 0), pt(2, 0, 1)},
		{pt(0, -3.5, 2.25), pt(1, 0.5, -1.75), pt(2, 4.125, 4.125)},
		{pt(0, 1, 1), pt(1, 2, 4), pt(2, 3, 10)},
	}
	for _, tr := range triples {
		assert.False(t, geometry.IsCollinear(tr[0], tr[1], tr[2]))
		assert.NotEqual(t, geometry.Collinear, geometry.Orientation(tr[0], tr[1], tr[2]))
	}
}

// TestInGeneralPosition verifies the all-triples check on a degenerate and
// on a generic point set, including trigonometric unit-circle coordinates
// that exercise the epsilon window.
func TestInGeneralPosition(t *testing.T) {
	// Three collinear points poison any superset.
	degenerate := []geometry.Point{
		pt(0, 0, 0), pt(1, 1, 1), pt(2, 2, 2), pt(3, 5, -1),
	}
	assert.False(t, geometry.InGeneralPosition(degenerate))

	// Unit-circle positions with n=7 (odd: no antipodal-through-center
	// triples) are in general position despite sin/cos rounding.
	const n = 7
	circle := make([]geometry.Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi / n * float64(i)
		circle = append(circle, pt(i, math.Cos(angle), math.Sin(angle)))
	}
	assert.True(t, geometry.InGeneralPosition(circle))

	// Empty and tiny sets are trivially fine.
	assert.True(t, geometry.InGeneralPosition(nil))
	assert.True(t, geometry.InGeneralPosition(circle[:2]))
}

// TestSegmentsProperlyCross_SharedEndpoint asserts that two segments
// sharing an endpoint never cross, whatever the geometry.
func TestSegmentsProperlyCross_SharedEndpoint(t *testing.T) {
	o := pt(0, 0, 0)
	a := pt(1, 2, 0)
	b := pt(2, 0, 2)
	c := pt(3, -2, -2)

	// Fan of segments out of o: no pair crosses.
	assert.False(t, geometry.SegmentsProperlyCross(o, a, o, b))
	assert.False(t, geometry.SegmentsProperlyCross(o, a, b, o))
	assert.False(t, geometry.SegmentsProperlyCross(a, o, o, c))
	assert.False(t, geometry.SegmentsProperlyCross(a, o, c, o))
}

// TestSegmentsProperlyCross_ConvexQuadrilateral runs the canonical convex
// 4-point scenario: the two diagonals cross, no side pair does.
func TestSegmentsProperlyCross_ConvexQuadrilateral(t *testing.T) {
	// Square corners in angular order 0..3.
	p0 := pt(0, 0, 0)
	p1 := pt(1, 1, 0)
	p2 := pt(2, 1, 1)
	p3 := pt(3, 0, 1)

	// Diagonals 0—2 and 1—3 properly cross.
	assert.True(t, geometry.SegmentsProperlyCross(p0, p2, p1, p3))
	assert.True(t, geometry.SegmentsProperlyCross(p1, p3, p0, p2))

	// Opposite sides do not (and adjacent sides share endpoints).
	assert.False(t, geometry.SegmentsProperlyCross(p0, p1, p3, p2))
	assert.False(t, geometry.SegmentsProperlyCross(p1, p2, p0, p3))
}

// TestSegmentsProperlyCross_DisjointSegments checks that far-apart and
// parallel segments do not cross.
func TestSegmentsProperlyCross_DisjointSegments(t *testing.T) {
	assert.False(t, geometry.SegmentsProperlyCross(
		pt(0, 0, 0), pt(1, 1, 0),
		pt(2, 0, 5), pt(3, 1, 5),
	))
	assert.False(t, geometry.SegmentsProperlyCross(
		pt(0, 0, 0), pt(1, 1, 1),
		pt(2, 3, 0), pt(3, 4, 1),
	))
}
