// SPDX-License-Identifier: MIT
// Package: gen
//
// gen.go - implementation of Generate and TargetEdges.
//
// Canonical model:
//   - Quasi-dynamic growth: start from the empty graph on 0..n-1 and add one
//     edge per iteration until mTarget edges exist.
//   - Sampling weight of a remaining pair {i,j}:
//     w(i,j) = D(i,j)^eta · (CN(i,j)+1)^gamma
//     where CN counts common neighbors in the synthetic network built so far.
//     The +1 offset keeps weights strictly positive on the empty graph.
//   - gamma == 0 short-circuits the topological recount: weights are static
//     and only the remaining-candidate set shrinks between draws.
//
// Contract:
//   - D must satisfy the distance policy (square, finite, symmetric,
//     non-negative); mirrors matrix.ValidateDistance.
//   - 0 ≤ mTarget ≤ n(n-1)/2 (else ErrNegativeTarget / ErrTargetTooLarge).
//   - cfg.rng must be non-nil whenever mTarget > 0 (ErrNeedRandSource).
//   - eta < 0 with a zero off-diagonal distance is rejected up front
//     (ErrZeroDistance) — never silently producing Inf/NaN weights.
//   - Returns only sentinel errors (own or pass-through matrix sentinels);
//     never panics at runtime. D is never mutated.
//
// Determinism:
//   - Stable pair order: i asc, then j>i asc, for enumeration and draws.
//   - Deterministic outcomes for a fixed seed and fixed inputs.

package gen

import (
	"fmt"
	"math"

	"github.com/netgenlab/synthnet/matrix"
)

// File-local constants (no magic literals; stable method tags).
const (
	methodGenerate    = "Generate"
	methodTargetEdges = "TargetEdges"

	// cnOffset keeps the topological term positive on pairs with no shared
	// neighbors: K = CN + 1.
	cnOffset = 1.0

	// minTarget is the smallest admissible edge count.
	minTarget = 0
)

// Generate grows a synthetic symmetric binary adjacency matrix with exactly
// mTarget edges over the n nodes implied by the n×n distance matrix D.
// Edge selection at each step is proportional to D^eta · (CN+1)^gamma over
// the remaining candidate pairs. See the package documentation for the full
// model description and error taxonomy.
func Generate(D *matrix.Dense, mTarget int, opts ...Option) (*matrix.Dense, error) {
	// 1) Resolve options into an immutable config (deterministic defaults).
	cfg := newConfig(opts...)

	// 2) Validate inputs early (fail fast, zero side-effects on invalid input).

	// Distance policy: non-nil, square, finite, symmetric, non-negative.
	if err := matrix.ValidateDistance(D); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	n := D.Rows()
	pairTotal := n * (n - 1) / 2 // number of unordered candidate pairs

	// Target domain: 0 ≤ mTarget ≤ pairTotal.
	if mTarget < minTarget {
		return nil, fmt.Errorf("%s: mTarget=%d: %w", methodGenerate, mTarget, ErrNegativeTarget)
	}
	if mTarget > pairTotal {
		return nil, fmt.Errorf("%s: mTarget=%d > pairs=%d: %w",
			methodGenerate, mTarget, pairTotal, ErrTargetTooLarge)
	}

	// A negative exponent turns a zero distance into an infinite weight;
	// reject the combination as a precondition violation.
	if cfg.eta < 0 {
		if err := rejectZeroDistances(D); err != nil {
			return nil, err
		}
	}

	// RNG is required for any stochastic draw (mTarget > 0).
	if cfg.rng == nil && mTarget > minTarget {
		return nil, fmt.Errorf("%s: rng is required: %w", methodGenerate, ErrNeedRandSource)
	}

	// 3) Prepare the candidate set and the static spatial term.
	synthetic, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if mTarget == minTarget {
		// Boundary: nothing to add; the all-zero matrix is the result.
		return synthetic, nil
	}

	// Pair p ↔ {rowOf[p], colOf[p]} in stable (i asc, j>i) order.
	rowOf := make([]int, pairTotal)
	colOf := make([]int, pairTotal)
	spatial := make([]float64, pairTotal) // D(i,j)^eta, fixed for the whole run
	alive := make([]bool, pairTotal)      // remaining-candidate flags
	weight := make([]float64, pairTotal)  // current sampling weights

	var i, j, p int
	var dij float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			rowOf[p], colOf[p] = i, j
			dij, _ = D.At(i, j) // indices are in range by construction
			spatial[p] = math.Pow(dij, cfg.eta)
			weight[p] = spatial[p] // gamma==0 path never recomputes this
			alive[p] = true
			p++
		}
	}

	// 4) Sequential growth: one weighted draw per iteration.
	topological := cfg.gamma != 0
	var added int
	var cn *matrix.Dense
	for added = 0; added < mTarget; added++ {
		// With the topological term active, refresh weights from the
		// shared-neighbor counts of the current synthetic network.
		if topological {
			cn, err = matrix.CommonNeighbors(synthetic)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodGenerate, err)
			}
			for p = 0; p < pairTotal; p++ {
				if !alive[p] {
					continue
				}
				v, _ := cn.At(rowOf[p], colOf[p]) // in range by construction
				k := v + cnOffset
				weight[p] = spatial[p] * math.Pow(k, cfg.gamma)
			}
		}

		// Draw one remaining pair with probability proportional to weight.
		p, err = drawWeighted(cfg, weight, alive)
		if err != nil {
			return nil, err
		}

		// Commit: mirrored edge insertion, retire the pair.
		if err = matrix.SetEdge(synthetic, rowOf[p], colOf[p]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		alive[p] = false
		weight[p] = 0 // static-weight path relies on this zeroing
	}

	// 5) Success: exactly mTarget mirrored edges, zero diagonal, D untouched.
	return synthetic, nil
}

// TargetEdges returns the edge count of the observed network a — the mTarget
// that makes a synthetic network match its density. The input must satisfy
// the full adjacency policy.
// Complexity: O(n²).
func TargetEdges(a *matrix.Dense) (int, error) {
	if err := matrix.ValidateAdjacency(a); err != nil {
		return 0, fmt.Errorf("%s: %w", methodTargetEdges, err)
	}
	m, err := matrix.EdgeCount(a)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodTargetEdges, err)
	}

	return m, nil
}

// rejectZeroDistances scans the strict upper triangle of D for zero (within
// Epsilon) entries. Called only when eta < 0. Complexity: O(n²).
func rejectZeroDistances(D *matrix.Dense) error {
	n := D.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ := D.At(i, j) // in range by construction
			if v <= matrix.Epsilon {
				return fmt.Errorf("%s: D(%d,%d)=%g: %w",
					methodGenerate, i, j, v, ErrZeroDistance)
			}
		}
	}

	return nil
}

// drawWeighted selects one alive index with probability proportional to its
// weight, walking the cumulative sum in stable pair order. The last alive
// index absorbs floating-point rounding of the final partial sum.
// Complexity: O(P).
func drawWeighted(cfg config, weight []float64, alive []bool) (int, error) {
	// Total mass over the remaining candidates.
	var total float64
	var p, last int
	last = -1
	for p = 0; p < len(weight); p++ {
		if alive[p] {
			total += weight[p]
			last = p
		}
	}
	if !(total > 0) || last < 0 {
		return 0, fmt.Errorf("%s: %w", methodGenerate, ErrVanishingWeights)
	}

	// Cumulative walk: the draw lands in the half-open weight interval of
	// exactly one candidate.
	target := cfg.rng.Float64() * total
	var cum float64
	for p = 0; p < len(weight); p++ {
		if !alive[p] {
			continue
		}
		cum += weight[p]
		if target < cum {
			return p, nil
		}
	}

	// Rounding pushed the target past the last interval; select the final
	// remaining candidate.
	return last, nil
}
