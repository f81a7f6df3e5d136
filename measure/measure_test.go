// Package measure_test contains unit tests for the structural measures.
package measure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netgenlab/synthnet/matrix"
	"github.com/netgenlab/synthnet/measure"
)

// adjacency builds an n×n adjacency matrix from an undirected edge list.
func adjacency(t *testing.T, n int, edges [][2]int) *matrix.Dense {
	t.Helper()

	a, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, matrix.SetEdge(a, e[0], e[1]))
	}

	return a
}

// TestDegrees verifies the degree sequence of the path 0—1—2—3.
func TestDegrees(t *testing.T) {
	a := adjacency(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	deg, err := measure.Degrees(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 2, 1}, deg) // endpoints 1, interior 2
}

// TestDegreesRejectsBadInput ensures the adjacency policy is enforced.
func TestDegreesRejectsBadInput(t *testing.T) {
	_, err := measure.Degrees(nil) // nil matrix
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	bad, err := matrix.NewSquare(2) // weighted entries violate the binary policy
	require.NoError(t, err)
	require.NoError(t, bad.Set(0, 1, 2))
	require.NoError(t, bad.Set(1, 0, 2))
	_, err = measure.Degrees(bad)
	require.ErrorIs(t, err, matrix.ErrNonBinary)
}

// TestClustering verifies local clustering on a triangle with a pendant node.
func TestClustering(t *testing.T) {
	// Triangle 0-1-2 plus pendant edge 2—3.
	a := adjacency(t, 4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}})

	cc, err := measure.Clustering(a)
	require.NoError(t, err)

	require.Equal(t, 1.0, cc[0])             // both neighbors of 0 are linked
	require.Equal(t, 1.0, cc[1])             // both neighbors of 1 are linked
	require.InDelta(t, 1.0/3.0, cc[2], 1e-12) // one of three neighbor pairs linked
	require.Zero(t, cc[3])                   // degree 1 scores 0 by convention
}

// TestClusteringEmptyNetwork verifies the all-zero boundary.
func TestClusteringEmptyNetwork(t *testing.T) {
	a := adjacency(t, 5, nil)

	cc, err := measure.Clustering(a)
	require.NoError(t, err)
	require.Equal(t, make([]float64, 5), cc) // every coefficient is 0
}

// TestBetweenness verifies Brandes centrality on the path 0—1—2—3.
func TestBetweenness(t *testing.T) {
	a := adjacency(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	bc, err := measure.Betweenness(a)
	require.NoError(t, err)
	require.Len(t, bc, 4)

	require.Zero(t, bc[0])           // endpoints lie on no interior paths
	require.Zero(t, bc[3])           // endpoints lie on no interior paths
	require.Positive(t, bc[1])       // interior nodes carry shortest paths
	require.Equal(t, bc[1], bc[2])   // the path is symmetric
}

// TestBetweennessTriangle verifies that a complete graph has no betweenness.
func TestBetweennessTriangle(t *testing.T) {
	a := adjacency(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	bc, err := measure.Betweenness(a)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, bc) // every pair is directly connected
}

// TestEdgeLengths verifies per-edge distance extraction in pair order.
func TestEdgeLengths(t *testing.T) {
	a := adjacency(t, 3, [][2]int{{0, 1}, {1, 2}})

	d, err := matrix.NewSquare(3)
	require.NoError(t, err)
	set := func(i, j int, v float64) {
		require.NoError(t, d.Set(i, j, v))
		require.NoError(t, d.Set(j, i, v))
	}
	set(0, 1, 1.5)
	set(0, 2, 9.0)
	set(1, 2, 2.5)

	lengths, err := measure.EdgeLengths(a, d)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 2.5}, lengths) // upper-triangle order, one value per edge
}

// TestEdgeLengthsBoundariesAndErrors covers the edgeless case and the
// dimension-mismatch precondition.
func TestEdgeLengthsBoundariesAndErrors(t *testing.T) {
	a := adjacency(t, 3, nil)
	d, err := matrix.NewSquare(3)
	require.NoError(t, err)

	lengths, err := measure.EdgeLengths(a, d) // edgeless network
	require.NoError(t, err)
	require.Empty(t, lengths) // empty, not nil panic

	small, err := matrix.NewSquare(2) // mismatched distance matrix
	require.NoError(t, err)
	_, err = measure.EdgeLengths(a, small)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
