// SPDX-License-Identifier: MIT
// Package: dataset
//
// dataset.go — delimited loading and distance derivation.
//
// Contract:
//   - LoadEdgeList: comma-separated 1-indexed pairs, one per line, into an
//     n×n symmetric binary adjacency matrix.
//   - LoadCoordinates: comma-separated reals, one node per line, uniform
//     column count.
//   - Distances: symmetric Euclidean distance matrix from a coordinate
//     table; diagonal stays zero.
//   - Only sentinel errors (own, matrix, or wrapped I/O) are returned.
//
// Determinism:
//   - Rows are consumed in file order; outputs depend only on file content.

package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/netgenlab/synthnet/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opLoadEdgeList    = "LoadEdgeList"
	opLoadCoordinates = "LoadCoordinates"
	opDistances       = "Distances"
)

// edgeListFields is the exact per-row field count of an edge list.
const edgeListFields = 2

// LoadEdgeList reads a comma-separated edge list of 1-indexed node pairs
// from path into an n×n symmetric binary adjacency matrix.
// Complexity: O(n² + rows).
func LoadEdgeList(path string, n int) (*matrix.Dense, error) {
	// Stage 1 (Prepare): allocate the target matrix first so a bad n fails
	// before any I/O happens.
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoadEdgeList, err)
	}

	records, err := readAll(path, edgeListFields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoadEdgeList, err)
	}

	// Stage 2 (Execute): parse and mirror each edge.
	for row, rec := range records {
		u, uErr := strconv.Atoi(rec[0])
		v, vErr := strconv.Atoi(rec[1])
		if uErr != nil || vErr != nil {
			return nil, fmt.Errorf("%s: row %d %q: %w", opLoadEdgeList, row, rec, ErrMalformedRow)
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("%s: row %d (%d,%d) outside 1..%d: %w",
				opLoadEdgeList, row, u, v, n, ErrNodeOutOfRange)
		}
		// 1-indexed file convention → 0-indexed node set. Self-loop rows
		// surface matrix.ErrNonZeroDiagonal from SetEdge.
		if err = matrix.SetEdge(a, u-1, v-1); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opLoadEdgeList, row, err)
		}
	}

	return a, nil
}

// LoadCoordinates reads a comma-separated coordinate table from path:
// one node per row, every row with the same column count.
// Complexity: O(rows·cols).
func LoadCoordinates(path string) ([][]float64, error) {
	records, err := readAll(path, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoadCoordinates, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %q: %w", opLoadCoordinates, path, ErrNoRows)
	}

	dim := len(records[0])
	coords := make([][]float64, len(records))
	for row, rec := range records {
		if len(rec) != dim {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				opLoadCoordinates, row, len(rec), dim, ErrRaggedRows)
		}
		coords[row] = make([]float64, dim)
		for col, field := range rec {
			v, parseErr := strconv.ParseFloat(field, 64)
			if parseErr != nil {
				return nil, fmt.Errorf("%s: row %d col %d %q: %w",
					opLoadCoordinates, row, col, field, ErrMalformedRow)
			}
			coords[row][col] = v
		}
	}

	return coords, nil
}

// Distances builds the symmetric Euclidean distance matrix of a coordinate
// table. The diagonal stays zero.
// Complexity: O(n²·dim).
func Distances(coords [][]float64) (*matrix.Dense, error) {
	n := len(coords)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opDistances, ErrNoRows)
	}
	dim := len(coords[0])
	for row := 1; row < n; row++ {
		if len(coords[row]) != dim {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				opDistances, row, len(coords[row]), dim, ErrRaggedRows)
		}
	}

	d, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistances, err)
	}
	var i, j, c int
	var sum, diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sum = 0
			for c = 0; c < dim; c++ {
				diff = coords[i][c] - coords[j][c]
				sum += diff * diff
			}
			dist := math.Sqrt(sum)
			if err = d.Set(i, j, dist); err != nil {
				return nil, fmt.Errorf("%s: %w", opDistances, err)
			}
			if err = d.Set(j, i, dist); err != nil {
				return nil, fmt.Errorf("%s: %w", opDistances, err)
			}
		}
	}

	return d, nil
}

// readAll opens path and reads every CSV record. fields > 0 enforces an
// exact per-row field count; 0 leaves the count to the caller's checks.
func readAll(path string, fields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field-count policy enforced by callers/sentinels
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if fields > 0 {
		for row, rec := range records {
			if len(rec) != fields {
				return nil, fmt.Errorf("row %d has %d fields, want %d: %w",
					row, len(rec), fields, ErrMalformedRow)
			}
		}
	}

	return records, nil
}
