// Package dataset_test contains unit tests for the delimited loaders.
package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netgenlab/synthnet/dataset"
	"github.com/netgenlab/synthnet/matrix"
)

// writeFile drops content into a fresh temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestLoadEdgeList verifies 1-indexed pairs land as mirrored 0-indexed edges.
func TestLoadEdgeList(t *testing.T) {
	path := writeFile(t, "edges.txt", "1,2\n2,3\n4,1\n")

	a, err := dataset.LoadEdgeList(path, 4)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(a)) // symmetric, binary, zero diagonal

	m, err := matrix.EdgeCount(a)
	require.NoError(t, err)
	require.Equal(t, 3, m) // three file rows, three edges

	ok, err := matrix.HasEdge(a, 0, 3) // file row "4,1" mirrored to (0,3)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestLoadEdgeListErrors exercises the malformed-content taxonomy.
func TestLoadEdgeListErrors(t *testing.T) {
	_, err := dataset.LoadEdgeList(writeFile(t, "bad.txt", "1,2,3\n"), 4)
	require.ErrorIs(t, err, dataset.ErrMalformedRow) // wrong field count

	_, err = dataset.LoadEdgeList(writeFile(t, "bad.txt", "1,x\n"), 4)
	require.ErrorIs(t, err, dataset.ErrMalformedRow) // non-numeric identifier

	_, err = dataset.LoadEdgeList(writeFile(t, "bad.txt", "1,9\n"), 4)
	require.ErrorIs(t, err, dataset.ErrNodeOutOfRange) // identifier beyond n

	_, err = dataset.LoadEdgeList(writeFile(t, "bad.txt", "0,2\n"), 4)
	require.ErrorIs(t, err, dataset.ErrNodeOutOfRange) // identifiers are 1-indexed

	_, err = dataset.LoadEdgeList(writeFile(t, "bad.txt", "2,2\n"), 4)
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal) // self-loop row

	_, err = dataset.LoadEdgeList(writeFile(t, "ok.txt", "1,2\n"), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // bad n fails before I/O

	_, err = dataset.LoadEdgeList(filepath.Join(t.TempDir(), "missing.txt"), 4)
	require.Error(t, err) // underlying I/O error passes through
}

// TestLoadCoordinates verifies table shape and parsed values.
func TestLoadCoordinates(t *testing.T) {
	path := writeFile(t, "coords.txt", "0,0\n3,4\n-1,2.5\n")

	coords, err := dataset.LoadCoordinates(path)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {3, 4}, {-1, 2.5}}, coords)
}

// TestLoadCoordinatesErrors exercises the table taxonomy.
func TestLoadCoordinatesErrors(t *testing.T) {
	_, err := dataset.LoadCoordinates(writeFile(t, "empty.txt", ""))
	require.ErrorIs(t, err, dataset.ErrNoRows)

	_, err = dataset.LoadCoordinates(writeFile(t, "ragged.txt", "0,0\n1\n"))
	require.ErrorIs(t, err, dataset.ErrRaggedRows)

	_, err = dataset.LoadCoordinates(writeFile(t, "bad.txt", "0,zero\n"))
	require.ErrorIs(t, err, dataset.ErrMalformedRow)
}

// TestDistances verifies the Euclidean matrix on a 3-4-5 triangle.
func TestDistances(t *testing.T) {
	coords := [][]float64{{0, 0}, {3, 0}, {3, 4}}

	d, err := dataset.Distances(coords)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateDistance(d)) // symmetric, finite, non-negative

	v, err := d.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v) // horizontal leg

	v, err = d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v) // vertical leg

	v, err = d.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v) // hypotenuse

	v, err = d.At(2, 2)
	require.NoError(t, err)
	require.Zero(t, v) // diagonal stays zero
}

// TestDistancesErrors exercises the coordinate taxonomy.
func TestDistancesErrors(t *testing.T) {
	_, err := dataset.Distances(nil)
	require.ErrorIs(t, err, dataset.ErrNoRows)

	_, err = dataset.Distances([][]float64{{0, 0}, {1}})
	require.ErrorIs(t, err, dataset.ErrRaggedRows)
}
