// SPDX-License-Identifier: MIT
// Package: models
//
// barabasi_albert.go - preferential-attachment constructor.
//
// Canonical model:
//   - Seed: the complete graph on the first m0 nodes.
//   - Growth: each incoming node i (m0 ≤ i < n) attaches m edges to
//     distinct existing nodes, each drawn with probability proportional to
//     its current degree ("rich get richer").
//   - Degrees are updated only after node i placed all m edges, matching
//     the standard formulation (within-step draws use the pre-step degrees).
//
// Contract:
//   - 1 ≤ m ≤ m0 ≤ n (else ErrInvalidSeedGraph); n ≥ 1 (else ErrTooFewNodes).
//   - rng required when n > m0 (growth involves sampling).
//
// Determinism:
//   - Stable seed construction and growth order; rejection draws for
//     distinctness consume the stream in fixed order ⇒ fixed seed
//     reproduces the graph.

package models

import (
	"fmt"
	"math/rand"

	"github.com/netgenlab/synthnet/matrix"
)

// methodBarabasiAlbert tags error wrapping for this constructor.
const methodBarabasiAlbert = "BarabasiAlbert"

// BarabasiAlbert samples the scale-free preferential-attachment model:
// a complete seed of m0 nodes grown to n nodes, each newcomer attaching
// m degree-proportional edges.
// Complexity: O(m0²) seed + O((n−m0)·m·n) growth.
func BarabasiAlbert(n, m0, m int, rng *rand.Rand) (*matrix.Dense, error) {
	// 1) Validate parameters early.
	if n < minNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBarabasiAlbert, n, minNodes, ErrTooFewNodes)
	}
	if m < 1 || m > m0 || m0 > n {
		return nil, fmt.Errorf("%s: m=%d, m0=%d, n=%d violate 1 ≤ m ≤ m0 ≤ n: %w",
			methodBarabasiAlbert, m, m0, n, ErrInvalidSeedGraph)
	}
	if rng == nil && n > m0 {
		return nil, fmt.Errorf("%s: rng is required: %w", methodBarabasiAlbert, ErrNeedRandSource)
	}

	// 2) Seed: complete graph on nodes 0..m0-1; track degrees incrementally.
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBarabasiAlbert, err)
	}
	degree := make([]int, n)
	var i, j int
	for i = 0; i < m0; i++ {
		for j = i + 1; j < m0; j++ {
			if err = matrix.SetEdge(a, i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", methodBarabasiAlbert, err)
			}
			degree[i]++
			degree[j]++
		}
	}

	// 3) Growth: attach each newcomer with m degree-proportional edges.
	chosen := make([]int, 0, m)
	for i = m0; i < n; i++ {
		chosen = chosen[:0]
		for len(chosen) < m {
			t := drawByDegree(degree, i, chosen, rng)
			chosen = append(chosen, t)
		}
		// Commit after the draws so within-step selection used the
		// pre-step degree distribution.
		for _, t := range chosen {
			if err = matrix.SetEdge(a, i, t); err != nil {
				return nil, fmt.Errorf("%s: %w", methodBarabasiAlbert, err)
			}
			degree[i]++
			degree[t]++
		}
	}

	return a, nil
}

// drawByDegree picks one node among 0..limit-1 with probability proportional
// to degree, excluding already-chosen targets. The m0 == 1 boundary (a seed
// with zero total degree) falls back to a uniform pick so the first edge can
// form at all. Complexity: O(limit) per draw.
func drawByDegree(degree []int, limit int, exclude []int, rng *rand.Rand) int {
	skip := func(w int) bool {
		for _, e := range exclude {
			if e == w {
				return true
			}
		}
		return false
	}

	// Total degree mass over admissible targets.
	var total int
	for w := 0; w < limit; w++ {
		if !skip(w) {
			total += degree[w]
		}
	}
	if total == 0 {
		// Degenerate seed: pick uniformly among admissible nodes.
		for {
			w := rng.Intn(limit)
			if !skip(w) {
				return w
			}
		}
	}

	// Cumulative walk in stable node order.
	target := rng.Intn(total)
	var cum int
	for w := 0; w < limit; w++ {
		if skip(w) {
			continue
		}
		cum += degree[w]
		if target < cum {
			return w
		}
	}

	// Unreachable when total > 0; kept for loop-shape clarity.
	return limit - 1
}
