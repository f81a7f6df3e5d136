// SPDX-License-Identifier: MIT
// Package: measure
//
// betweenness.go — Brandes betweenness centrality via gonum.
//
// Contract:
//   - A must satisfy the adjacency policy (matrix.ValidateAdjacency).
//   - Values are gonum's raw (unnormalized) undirected Brandes scores; both
//     networks in an energy comparison share the same n, so the KS statistic
//     over raw scores equals the statistic over normalized ones.
//   - gonum reports only non-zero centralities; missing nodes score 0 here.

package measure

import (
	"fmt"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/netgenlab/synthnet/matrix"
)

// opBetweenness tags error wrapping for this facade.
const opBetweenness = "Betweenness"

// Betweenness returns the per-node betweenness centrality of the binary
// adjacency matrix a, indexed by node.
// Complexity: O(n·m) for m edges (Brandes, unweighted).
func Betweenness(a *matrix.Dense) ([]float64, error) {
	// Stage 1 (Validate): full adjacency policy.
	if err := matrix.ValidateAdjacency(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opBetweenness, err)
	}

	// Stage 2 (Prepare): mirror a into a gonum undirected graph. Nodes are
	// added up front so isolated nodes exist in the graph too.
	n := a.Rows()
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v, _ := a.At(i, j); v != 0 {
				g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
			}
		}
	}

	// Stage 3 (Execute): Brandes via gonum; densify the sparse result.
	sparse := network.Betweenness(g)
	scores := make([]float64, n)
	for i = 0; i < n; i++ {
		scores[i] = sparse[int64(i)] // absent keys yield 0 by map semantics
	}

	return scores, nil
}
