package cycles_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/jogo23/edge-partitions-cgg/cycles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeSet renders a cycle as its canonical edge set (sorted endpoint
// pairs), the representation under which the three 4-cycle labelings
// must be pairwise distinct.
func edgeSet(cycle []int) string {
	pairs := make([]string, 0, len(cycle))
	for i := range cycle {
		u, v := cycle[i], cycle[(i+1)%len(cycle)]
		if u > v {
			u, v = v, u
		}
		pairs = append(pairs, fmt.Sprintf("%d-%d", u, v))
	}
	sort.Strings(pairs)

	return fmt.Sprint(pairs)
}

// TestAll_RejectsBadLengths covers the validation sentinel.
func TestAll_RejectsBadLengths(t *testing.T) {
	for _, l := range []int{2, 5, 0, -3} {
		_, err := cycles.All(6, []int{l})
		assert.ErrorIs(t, err, cycles.ErrBadCycleLength, "length %d", l)
	}

	// Valid lengths mixed with an invalid one still fail as a whole.
	_, err := cycles.All(6, []int{3, 5})
	assert.ErrorIs(t, err, cycles.ErrBadCycleLength)
}

// TestAll_Triangles verifies the C(n,3) count and plain subset output.
func TestAll_Triangles(t *testing.T) {
	res, err := cycles.All(5, []int{cycles.Triangle})
	require.NoError(t, err)

	// C(5,3) = 10 triangles.
	require.Len(t, res, 10)
	assert.Equal(t, []int{0, 1, 2}, res[0])
	assert.Equal(t, []int{2, 3, 4}, res[9])
	for _, c := range res {
		assert.Len(t, c, 3)
	}
}

// TestAll_QuadrilateralLabelings verifies that each 4-subset yields
// exactly 3 cycles, each Hamiltonian on the subset, pairwise distinct as
// edge sets.
func TestAll_QuadrilateralLabelings(t *testing.T) {
	res, err := cycles.All(4, []int{cycles.Quadrilateral})
	require.NoError(t, err)
	require.Len(t, res, 3)

	seen := make(map[string]bool, 3)
	for _, c := range res {
		require.Len(t, c, 4)

		// Hamiltonian on {0,1,2,3}: every vertex exactly once.
		visits := map[int]int{}
		for _, v := range c {
			visits[v]++
		}
		assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, visits)

		seen[edgeSet(c)] = true
	}
	assert.Len(t, seen, 3, "the three labelings must be pairwise distinct as edge sets")
}

// TestAll_CountsAndOrder checks totals for a mixed request: lengths are
// emitted in the requested order, 3·C(n,4) quadrilaterals follow C(n,3)
// triangles.
func TestAll_CountsAndOrder(t *testing.T) {
	const n = 6
	res, err := cycles.All(n, []int{cycles.Triangle, cycles.Quadrilateral})
	require.NoError(t, err)

	triangles := 20    // C(6,3)
	quads := 3 * 15    // 3·C(6,4)
	require.Len(t, res, triangles+quads)
	for _, c := range res[:triangles] {
		assert.Len(t, c, 3)
	}
	for _, c := range res[triangles:] {
		assert.Len(t, c, 4)
	}
}

// TestAll_Empty verifies that no lengths means no cycles.
func TestAll_Empty(t *testing.T) {
	res, err := cycles.All(10, nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}
