// Package models_test contains unit tests for the canonical random-graph
// constructors.
package models_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netgenlab/synthnet/matrix"
	"github.com/netgenlab/synthnet/models"
)

// edgeCount is a shorthand that fails the test on any matrix error.
func edgeCount(t *testing.T, a *matrix.Dense) int {
	t.Helper()

	m, err := matrix.EdgeCount(a)
	require.NoError(t, err)

	return m
}

// TestErdosRenyiGNPBoundaries covers the deterministic endpoints p ∈ {0,1}.
func TestErdosRenyiGNPBoundaries(t *testing.T) {
	empty, err := models.ErdosRenyiGNP(6, 0, nil) // p=0 needs no RNG
	require.NoError(t, err)
	require.Zero(t, edgeCount(t, empty)) // no edges at p=0

	full, err := models.ErdosRenyiGNP(6, 1, nil) // p=1 needs no RNG
	require.NoError(t, err)
	require.Equal(t, 15, edgeCount(t, full)) // complete graph at p=1
	require.NoError(t, matrix.ValidateAdjacency(full))
}

// TestErdosRenyiGNPSampling checks structure and a loose density bound for
// a seeded stochastic run.
func TestErdosRenyiGNPSampling(t *testing.T) {
	a, err := models.ErdosRenyiGNP(20, 0.3, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(a)) // symmetric, binary, zero diagonal

	// 190 pairs at p=0.3: expectation 57, and a fixed seed keeps this stable.
	m := edgeCount(t, a)
	require.Greater(t, m, 30)
	require.Less(t, m, 90)
}

// TestErdosRenyiGNPErrors exercises the parameter taxonomy.
func TestErdosRenyiGNPErrors(t *testing.T) {
	_, err := models.ErdosRenyiGNP(0, 0.5, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, models.ErrTooFewNodes)

	_, err = models.ErdosRenyiGNP(5, 1.5, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, models.ErrInvalidProbability)

	_, err = models.ErdosRenyiGNP(5, 0.5, nil) // true sampling without RNG
	require.ErrorIs(t, err, models.ErrNeedRandSource)
}

// TestErdosRenyiGNM verifies the exact edge count and boundaries.
func TestErdosRenyiGNM(t *testing.T) {
	a, err := models.ErdosRenyiGNM(8, 11, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	require.Equal(t, 11, edgeCount(t, a)) // exactly m distinct pairs
	require.NoError(t, matrix.ValidateAdjacency(a))

	empty, err := models.ErdosRenyiGNM(8, 0, nil) // deterministic boundary
	require.NoError(t, err)
	require.Zero(t, edgeCount(t, empty))

	full, err := models.ErdosRenyiGNM(5, 10, nil) // deterministic boundary
	require.NoError(t, err)
	require.Equal(t, 10, edgeCount(t, full))

	_, err = models.ErdosRenyiGNM(5, 11, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, models.ErrTooManyEdges)

	_, err = models.ErdosRenyiGNM(5, 3, nil)
	require.ErrorIs(t, err, models.ErrNeedRandSource)
}

// TestWattsStrogatzLattice verifies the beta=0 pure ring lattice.
func TestWattsStrogatzLattice(t *testing.T) {
	a, err := models.WattsStrogatz(10, 4, 0, nil) // no rewiring, no RNG needed
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(a))
	require.Equal(t, 20, edgeCount(t, a)) // n·k/2 lattice edges

	// Every node touches exactly its k/2 neighbors on each side.
	for i := 0; i < 10; i++ {
		var deg int
		for j := 0; j < 10; j++ {
			if i == j {
				continue
			}
			ok, hasErr := matrix.HasEdge(a, i, j)
			require.NoError(t, hasErr)
			if ok {
				deg++
			}
		}
		require.Equal(t, 4, deg) // regular ring of degree k
	}
}

// TestWattsStrogatzRewiring verifies that rewiring preserves the edge count
// and structural policy.
func TestWattsStrogatzRewiring(t *testing.T) {
	a, err := models.WattsStrogatz(16, 4, 1, rand.New(rand.NewSource(9))) // rewire every edge
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(a))
	require.Equal(t, 32, edgeCount(t, a)) // each rewire moves an edge, never drops one
}

// TestWattsStrogatzErrors exercises the parameter taxonomy.
func TestWattsStrogatzErrors(t *testing.T) {
	_, err := models.WattsStrogatz(2, 2, 0.1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, models.ErrTooFewNodes)

	_, err = models.WattsStrogatz(10, 3, 0.1, rand.New(rand.NewSource(1))) // odd k
	require.ErrorIs(t, err, models.ErrInvalidDegree)

	_, err = models.WattsStrogatz(10, 10, 0.1, rand.New(rand.NewSource(1))) // k ≥ n
	require.ErrorIs(t, err, models.ErrInvalidDegree)

	_, err = models.WattsStrogatz(10, 4, 2, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, models.ErrInvalidProbability)

	_, err = models.WattsStrogatz(10, 4, 0.5, nil)
	require.ErrorIs(t, err, models.ErrNeedRandSource)
}

// TestBarabasiAlbert verifies seed + growth edge accounting and minimum
// newcomer degree.
func TestBarabasiAlbert(t *testing.T) {
	a, err := models.BarabasiAlbert(10, 3, 2, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(a))

	// C(3,2)=3 seed edges plus 2 per each of the 7 newcomers.
	require.Equal(t, 3+7*2, edgeCount(t, a))

	// Every newcomer attached exactly m distinct targets.
	for i := 3; i < 10; i++ {
		var deg int
		for j := 0; j < 10; j++ {
			if i == j {
				continue
			}
			ok, hasErr := matrix.HasEdge(a, i, j)
			require.NoError(t, hasErr)
			if ok {
				deg++
			}
		}
		require.GreaterOrEqual(t, deg, 2) // m edges placed, possibly more received later
	}
}

// TestBarabasiAlbertErrors exercises the parameter taxonomy.
func TestBarabasiAlbertErrors(t *testing.T) {
	_, err := models.BarabasiAlbert(0, 1, 1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, models.ErrTooFewNodes)

	_, err = models.BarabasiAlbert(10, 3, 4, rand.New(rand.NewSource(1))) // m > m0
	require.ErrorIs(t, err, models.ErrInvalidSeedGraph)

	_, err = models.BarabasiAlbert(5, 6, 2, rand.New(rand.NewSource(1))) // m0 > n
	require.ErrorIs(t, err, models.ErrInvalidSeedGraph)

	_, err = models.BarabasiAlbert(10, 3, 2, nil)
	require.ErrorIs(t, err, models.ErrNeedRandSource)
}

// TestStochasticBlockExtremes verifies the p_in=1, p_out=0 block-diagonal
// boundary, where the result is a disjoint union of cliques.
func TestStochasticBlockExtremes(t *testing.T) {
	sizes := []int{3, 4}
	p := [][]float64{{1, 0}, {0, 1}}

	a, err := models.StochasticBlock(sizes, p, rand.New(rand.NewSource(6)))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(a))

	// C(3,2)+C(4,2) in-block edges, zero between blocks.
	require.Equal(t, 3+6, edgeCount(t, a))
	ok, err := matrix.HasEdge(a, 0, 5) // nodes from different blocks
	require.NoError(t, err)
	require.False(t, ok)
}

// TestStochasticBlockErrors exercises the block-structure taxonomy.
func TestStochasticBlockErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := models.StochasticBlock(nil, nil, rng)
	require.ErrorIs(t, err, models.ErrBlockShape)

	_, err = models.StochasticBlock([]int{2, 0}, [][]float64{{1, 0}, {0, 1}}, rng)
	require.ErrorIs(t, err, models.ErrBlockShape) // empty block

	_, err = models.StochasticBlock([]int{2, 2}, [][]float64{{1, 0}}, rng)
	require.ErrorIs(t, err, models.ErrBlockShape) // wrong table shape

	_, err = models.StochasticBlock([]int{2, 2}, [][]float64{{1, 0.2}, {0.3, 1}}, rng)
	require.ErrorIs(t, err, models.ErrBlockShape) // asymmetric table

	_, err = models.StochasticBlock([]int{2, 2}, [][]float64{{1, 2}, {2, 1}}, rng)
	require.ErrorIs(t, err, models.ErrInvalidProbability)

	_, err = models.StochasticBlock([]int{2, 2}, [][]float64{{1, 0}, {0, 1}}, nil)
	require.ErrorIs(t, err, models.ErrNeedRandSource)
}

// TestRandomGeometric verifies threshold connectivity on a unit square.
func TestRandomGeometric(t *testing.T) {
	coords := [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}

	// Radius 1 connects the four sides but not the √2 diagonals.
	a, err := models.RandomGeometric(coords, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(a))
	require.Equal(t, 4, edgeCount(t, a))

	ok, err := matrix.HasEdge(a, 0, 3) // diagonal pair
	require.NoError(t, err)
	require.False(t, ok)

	// Radius 1.5 covers the diagonals too: complete graph.
	full, err := models.RandomGeometric(coords, 1.5)
	require.NoError(t, err)
	require.Equal(t, 6, edgeCount(t, full))

	// Radius 0 keeps distinct points disconnected.
	lone, err := models.RandomGeometric(coords, 0)
	require.NoError(t, err)
	require.Zero(t, edgeCount(t, lone))
}

// TestRandomGeometricErrors exercises the coordinate/radius taxonomy.
func TestRandomGeometricErrors(t *testing.T) {
	_, err := models.RandomGeometric(nil, 1)
	require.ErrorIs(t, err, models.ErrTooFewNodes)

	_, err = models.RandomGeometric([][]float64{{0, 0}, {1}}, 1)
	require.ErrorIs(t, err, models.ErrRaggedCoordinates)

	_, err = models.RandomGeometric([][]float64{{0, 0}, {1, 1}}, -0.5)
	require.ErrorIs(t, err, models.ErrInvalidRadius)
}

// TestConstructorDeterminism verifies fixed seed ⇒ identical graphs across
// the stochastic constructors.
func TestConstructorDeterminism(t *testing.T) {
	build := func(seed int64) []string {
		gnp, err := models.ErdosRenyiGNP(12, 0.4, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		gnm, err := models.ErdosRenyiGNM(12, 20, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		ws, err := models.WattsStrogatz(12, 4, 0.3, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		ba, err := models.BarabasiAlbert(12, 3, 2, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		return []string{gnp.String(), gnm.String(), ws.String(), ba.String()}
	}

	require.Equal(t, build(11), build(11)) // same seed, same graphs
}
