// SPDX-License-Identifier: MIT
// Package: measure
//
// measure.go — per-node degree and clustering, per-edge length extraction.
//
// Contract:
//   - A must satisfy the adjacency policy (matrix.ValidateAdjacency).
//   - EdgeLengths requires D to be an equally sized distance matrix.
//   - Inputs are never mutated; only sentinel errors are returned.
//
// Determinism:
//   - Fixed i asc, j asc traversal; stable output order (node index /
//     upper-triangle pair order).

package measure

import (
	"fmt"

	"github.com/netgenlab/synthnet/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opDegrees     = "Degrees"
	opClustering  = "Clustering"
	opEdgeLengths = "EdgeLengths"
)

// minClusteringDegree is the smallest degree with a defined neighborhood
// density; below it the local clustering coefficient is 0 by convention.
const minClusteringDegree = 2

// Degrees returns the per-node degree sequence of the binary adjacency
// matrix a, indexed by node.
// Complexity: O(n²).
func Degrees(a *matrix.Dense) ([]float64, error) {
	// Stage 1 (Validate): full adjacency policy.
	if err := matrix.ValidateAdjacency(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opDegrees, err)
	}

	// Stage 2 (Execute): row sums in fixed order.
	n := a.Rows()
	degrees := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ := a.At(i, j) // in range by construction
			degrees[i] += v
		}
	}

	return degrees, nil
}

// Clustering returns the per-node local clustering coefficient of a:
// 2·T_i / (k_i·(k_i−1)) where T_i is the number of links among the
// neighbors of node i. Nodes with degree < 2 score 0.
// Complexity: O(n³) worst case (dense neighborhoods).
func Clustering(a *matrix.Dense) ([]float64, error) {
	// Stage 1 (Validate): full adjacency policy.
	if err := matrix.ValidateAdjacency(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opClustering, err)
	}

	// Stage 2 (Prepare): collect neighbor lists once, in stable order.
	n := a.Rows()
	neighbors := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, _ := a.At(i, j); v != 0 {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}

	// Stage 3 (Execute): count links inside each neighborhood.
	coeffs := make([]float64, n)
	var u, w int
	for i = 0; i < n; i++ {
		k := len(neighbors[i])
		if k < minClusteringDegree {
			continue // coefficient stays 0 for isolated and leaf nodes
		}
		var links int
		for u = 0; u < k; u++ {
			for w = u + 1; w < k; w++ {
				if v, _ := a.At(neighbors[i][u], neighbors[i][w]); v != 0 {
					links++
				}
			}
		}
		coeffs[i] = 2 * float64(links) / float64(k*(k-1))
	}

	return coeffs, nil
}

// EdgeLengths returns the distance values of the edges of a: D(i,j) for
// every strict-upper-triangle pair with a(i,j) = 1, in pair order. Each
// undirected edge contributes exactly once. The result is empty (non-nil)
// for an edgeless network.
// Complexity: O(n²).
func EdgeLengths(a, d *matrix.Dense) ([]float64, error) {
	// Stage 1 (Validate): adjacency policy, distance policy, shape match.
	if err := matrix.ValidateAdjacency(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opEdgeLengths, err)
	}
	if err := matrix.ValidateDistance(d); err != nil {
		return nil, fmt.Errorf("%s: %w", opEdgeLengths, err)
	}
	if err := matrix.ValidateSameShape(a, d); err != nil {
		return nil, fmt.Errorf("%s: %w", opEdgeLengths, err)
	}

	// Stage 2 (Execute): walk the strict upper triangle once.
	n := a.Rows()
	lengths := make([]float64, 0, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v, _ := a.At(i, j); v != 0 {
				dist, _ := d.At(i, j) // in range by construction
				lengths = append(lengths, dist)
			}
		}
	}

	return lengths, nil
}
