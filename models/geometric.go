// SPDX-License-Identifier: MIT
// Package: models
//
// geometric.go - random geometric graph constructor.
//
// Canonical model:
//   - Nodes carry fixed coordinates (typically sampled by the caller); two
//     nodes are connected iff their Euclidean distance is at most radius.
//   - The construction itself is deterministic: the randomness of a "random
//     geometric graph" lives entirely in the caller-supplied coordinates.
//
// Contract:
//   - coords non-empty, rows non-empty and of uniform length
//     (else ErrTooFewNodes / ErrRaggedCoordinates).
//   - radius ≥ 0 and finite (else ErrInvalidRadius).

package models

import (
	"fmt"
	"math"

	"github.com/netgenlab/synthnet/matrix"
)

// methodRandomGeometric tags error wrapping for this constructor.
const methodRandomGeometric = "RandomGeometric"

// RandomGeometric connects every pair of coordinate rows whose Euclidean
// distance is at most radius.
// Complexity: O(n²·dim).
func RandomGeometric(coords [][]float64, radius float64) (*matrix.Dense, error) {
	// 1) Validate the coordinate table and radius.
	n := len(coords)
	if n < minNodes {
		return nil, fmt.Errorf("%s: no coordinates: %w", methodRandomGeometric, ErrTooFewNodes)
	}
	dim := len(coords[0])
	if dim == 0 {
		return nil, fmt.Errorf("%s: empty coordinate row 0: %w", methodRandomGeometric, ErrRaggedCoordinates)
	}
	for r := 1; r < n; r++ {
		if len(coords[r]) != dim {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				methodRandomGeometric, r, len(coords[r]), dim, ErrRaggedCoordinates)
		}
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrInvalidRadius)
	}

	// 2) Connect pairs within the radius, in stable order.
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGeometric, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if euclidean(coords[i], coords[j]) <= radius {
				if err = matrix.SetEdge(a, i, j); err != nil {
					return nil, fmt.Errorf("%s: %w", methodRandomGeometric, err)
				}
			}
		}
	}

	return a, nil
}

// euclidean returns the Euclidean distance between two equal-length rows.
// Complexity: O(dim).
func euclidean(x, y []float64) float64 {
	var sum float64
	for d := range x {
		diff := x[d] - y[d]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}
