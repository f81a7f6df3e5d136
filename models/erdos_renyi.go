// SPDX-License-Identifier: MIT
// Package: models
//
// erdos_renyi.go - G(n,p) and G(n,m) constructors.
//
// Canonical models:
//   - G(n,p): include each unordered pair {i,j}, i<j, independently with
//     probability p (one Bernoulli trial per pair, stable trial order).
//   - G(n,m): draw m distinct pairs uniformly without replacement via a
//     partial Fisher–Yates shuffle of the enumerated pair list.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - G(n,p): 0 ≤ p ≤ 1 (else ErrInvalidProbability); rng required for
//     0 < p < 1 — the endpoints are deterministic (empty/complete graph).
//   - G(n,m): 0 ≤ m ≤ n(n-1)/2 (else ErrTooManyEdges); rng required for
//     0 < m < n(n-1)/2 — the endpoints are deterministic.
//
// Determinism:
//   - Stable pair enumeration (i asc, j>i asc); fixed seed ⇒ identical graph.

package models

import (
	"fmt"
	"math/rand"

	"github.com/netgenlab/synthnet/matrix"
)

// File-local constants (no magic literals; stable method tags and domains).
const (
	methodGNP = "ErdosRenyiGNP"
	methodGNM = "ErdosRenyiGNM"

	minNodes = 1
	probMin  = 0.0
	probMax  = 1.0
)

// ErdosRenyiGNP samples G(n,p): an n-node graph where every unordered pair
// is an edge independently with probability p.
// Complexity: O(n²) Bernoulli trials.
func ErdosRenyiGNP(n int, p float64, rng *rand.Rand) (*matrix.Dense, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < minNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodGNP, n, minNodes, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodGNP, p, probMin, probMax, ErrInvalidProbability)
	}
	// RNG is only required for true stochastic sampling (0 < p < 1).
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodGNP, ErrNeedRandSource)
	}

	// 2) Allocate the zero adjacency matrix.
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGNP, err)
	}

	// 3) One Bernoulli trial per unordered pair, in stable order.
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if p == probMax || (rng != nil && rng.Float64() < p) {
				if err = matrix.SetEdge(a, i, j); err != nil {
					return nil, fmt.Errorf("%s: %w", methodGNP, err)
				}
			}
		}
	}

	return a, nil
}

// ErdosRenyiGNM samples G(n,m): an n-node graph with exactly m edges drawn
// uniformly without replacement from the unordered pairs.
// Complexity: O(n²) enumeration + O(m) partial shuffle.
func ErdosRenyiGNM(n, m int, rng *rand.Rand) (*matrix.Dense, error) {
	// 1) Validate parameters.
	if n < minNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodGNM, n, minNodes, ErrTooFewNodes)
	}
	pairTotal := n * (n - 1) / 2
	if m < 0 || m > pairTotal {
		return nil, fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodGNM, m, pairTotal, ErrTooManyEdges)
	}
	// Endpoints are deterministic: the empty and the complete graph.
	if rng == nil && m > 0 && m < pairTotal {
		return nil, fmt.Errorf("%s: rng is required: %w", methodGNM, ErrNeedRandSource)
	}

	// 2) Enumerate all pairs in stable order.
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGNM, err)
	}
	rowOf := make([]int, pairTotal)
	colOf := make([]int, pairTotal)
	order := make([]int, pairTotal)
	var i, j, p int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			rowOf[p], colOf[p] = i, j
			order[p] = p
			p++
		}
	}

	// 3) Partial Fisher–Yates: position t receives a uniform pick from the
	// untouched tail, yielding m distinct pairs without replacement.
	var t, pick int
	for t = 0; t < m; t++ {
		if rng != nil && t < pairTotal-1 {
			pick = t + rng.Intn(pairTotal-t)
			order[t], order[pick] = order[pick], order[t]
		}
		if err = matrix.SetEdge(a, rowOf[order[t]], colOf[order[t]]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGNM, err)
		}
	}

	return a, nil
}
