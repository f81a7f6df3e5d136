// SPDX-License-Identifier: MIT
// Package: models
//
// stochastic_block.go - community-structure constructor.
//
// Canonical model:
//   - Node i belongs to the block whose size interval covers i (sizes are
//     consumed in order: block 0 holds nodes 0..sizes[0]-1, and so on).
//   - Each unordered pair {i,j} is an edge independently with probability
//     p[block(i)][block(j)].
//
// Contract:
//   - sizes non-empty with every entry ≥ 1 (else ErrBlockShape).
//   - p is a symmetric B×B table with entries in [0,1]
//     (else ErrBlockShape / ErrInvalidProbability).
//   - rng required (every pair is a Bernoulli trial).
//
// Determinism:
//   - Stable pair-trial order (i asc, j>i asc); fixed seed ⇒ identical graph.

package models

import (
	"fmt"
	"math/rand"

	"github.com/netgenlab/synthnet/matrix"
)

// methodStochasticBlock tags error wrapping for this constructor.
const methodStochasticBlock = "StochasticBlock"

// StochasticBlock samples a stochastic block model: blocks of the given
// sizes with pairwise edge probabilities from the symmetric table p.
// Complexity: O(n²) Bernoulli trials.
func StochasticBlock(sizes []int, p [][]float64, rng *rand.Rand) (*matrix.Dense, error) {
	// 1) Validate the block structure.
	blocks := len(sizes)
	if blocks == 0 {
		return nil, fmt.Errorf("%s: no blocks: %w", methodStochasticBlock, ErrBlockShape)
	}
	var n int
	for b, size := range sizes {
		if size < 1 {
			return nil, fmt.Errorf("%s: sizes[%d]=%d < 1: %w", methodStochasticBlock, b, size, ErrBlockShape)
		}
		n += size
	}
	if len(p) != blocks {
		return nil, fmt.Errorf("%s: p has %d rows, want %d: %w", methodStochasticBlock, len(p), blocks, ErrBlockShape)
	}
	for r := range p {
		if len(p[r]) != blocks {
			return nil, fmt.Errorf("%s: p[%d] has %d cols, want %d: %w",
				methodStochasticBlock, r, len(p[r]), blocks, ErrBlockShape)
		}
		for c := range p[r] {
			if p[r][c] < probMin || p[r][c] > probMax {
				return nil, fmt.Errorf("%s: p[%d][%d]=%.6f not in [%.1f,%.1f]: %w",
					methodStochasticBlock, r, c, p[r][c], probMin, probMax, ErrInvalidProbability)
			}
			if p[c][r] != p[r][c] {
				return nil, fmt.Errorf("%s: p[%d][%d] != p[%d][%d]: %w",
					methodStochasticBlock, r, c, c, r, ErrBlockShape)
			}
		}
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodStochasticBlock, ErrNeedRandSource)
	}

	// 2) Resolve block membership per node (stable: sizes consumed in order).
	membership := make([]int, n)
	var node int
	for b, size := range sizes {
		for s := 0; s < size; s++ {
			membership[node] = b
			node++
		}
	}

	// 3) One Bernoulli trial per unordered pair.
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStochasticBlock, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() < p[membership[i]][membership[j]] {
				if err = matrix.SetEdge(a, i, j); err != nil {
					return nil, fmt.Errorf("%s: %w", methodStochasticBlock, err)
				}
			}
		}
	}

	return a, nil
}
