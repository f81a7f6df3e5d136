// SPDX-License-Identifier: MIT
// Package: models
//
// watts_strogatz.go - small-world constructor.
//
// Canonical model:
//   - Start from the ring lattice where node i is connected to its k/2
//     nearest neighbors on each side (k even).
//   - Visit every lattice edge (i, i+lag mod n) in stable order; with
//     probability beta, detach its far endpoint and reattach to a uniform
//     target that is neither i, nor i itself, nor already adjacent to i.
//   - A node adjacent to all others has no admissible target; its edges
//     keep their lattice endpoints (standard convention).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - k even, 0 < k < n (else ErrInvalidDegree).
//   - 0 ≤ beta ≤ 1 (else ErrInvalidProbability); rng required when beta > 0.
//
// Determinism:
//   - Stable edge-visit order (i asc, lag asc); rejection sampling consumes
//     draws in a fixed order, so a fixed seed reproduces the graph.

package models

import (
	"fmt"
	"math/rand"

	"github.com/netgenlab/synthnet/matrix"
)

// File-local constants (stable method tag and domains).
const (
	methodWattsStrogatz = "WattsStrogatz"
	minRingNodes        = 3
	ringDegreeStep      = 2 // k must split evenly across both ring sides
)

// WattsStrogatz samples the small-world model: an n-node ring lattice of
// even degree k whose lattice edges are independently rewired with
// probability beta.
// Complexity: O(n·k) lattice construction + O(n·k) rewiring trials.
func WattsStrogatz(n, k int, beta float64, rng *rand.Rand) (*matrix.Dense, error) {
	// 1) Validate parameters early.
	if n < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWattsStrogatz, n, minRingNodes, ErrTooFewNodes)
	}
	if k <= 0 || k >= n || k%ringDegreeStep != 0 {
		return nil, fmt.Errorf("%s: k=%d invalid for n=%d: %w", methodWattsStrogatz, k, n, ErrInvalidDegree)
	}
	if beta < probMin || beta > probMax {
		return nil, fmt.Errorf("%s: beta=%.6f not in [%.1f,%.1f]: %w",
			methodWattsStrogatz, beta, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && beta > probMin {
		return nil, fmt.Errorf("%s: rng is required: %w", methodWattsStrogatz, ErrNeedRandSource)
	}

	// 2) Build the ring lattice: i connects to its k/2 successors; the
	// predecessors arrive symmetrically from smaller i.
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWattsStrogatz, err)
	}
	half := k / ringDegreeStep
	var i, lag int
	for i = 0; i < n; i++ {
		for lag = 1; lag <= half; lag++ {
			if err = matrix.SetEdge(a, i, (i+lag)%n); err != nil {
				return nil, fmt.Errorf("%s: %w", methodWattsStrogatz, err)
			}
		}
	}
	if beta == probMin {
		// Pure lattice: nothing to rewire.
		return a, nil
	}

	// 3) Rewiring pass in stable lattice-edge order.
	var target int
	for i = 0; i < n; i++ {
		for lag = 1; lag <= half; lag++ {
			if rng.Float64() >= beta {
				continue // this lattice edge keeps its endpoint
			}
			old := (i + lag) % n
			present, hasErr := matrix.HasEdge(a, i, old)
			if hasErr != nil {
				return nil, fmt.Errorf("%s: %w", methodWattsStrogatz, hasErr)
			}
			if !present {
				continue // slot no longer holds its lattice edge
			}
			target, err = rewireTarget(a, i, rng)
			if err != nil {
				continue // node i is saturated; keep the lattice edge
			}
			if err = matrix.UnsetEdge(a, i, old); err != nil {
				return nil, fmt.Errorf("%s: %w", methodWattsStrogatz, err)
			}
			if err = matrix.SetEdge(a, i, target); err != nil {
				return nil, fmt.Errorf("%s: %w", methodWattsStrogatz, err)
			}
		}
	}

	return a, nil
}

// rewireTarget draws a uniform node that is neither i nor adjacent to i.
// Returns ErrInvalidDegree when no admissible target exists (i is adjacent
// to every other node). Complexity: O(n) per call.
func rewireTarget(a *matrix.Dense, i int, rng *rand.Rand) (int, error) {
	// Collect admissible targets in stable order; uniform pick among them
	// keeps the draw exact (no open-ended rejection loop).
	n := a.Rows()
	admissible := make([]int, 0, n)
	for w := 0; w < n; w++ {
		if w == i {
			continue
		}
		present, err := matrix.HasEdge(a, i, w)
		if err != nil {
			return 0, err
		}
		if !present {
			admissible = append(admissible, w)
		}
	}
	if len(admissible) == 0 {
		return 0, ErrInvalidDegree // saturated node; caller keeps the lattice edge
	}

	return admissible[rng.Intn(len(admissible))], nil
}
