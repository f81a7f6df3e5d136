// SPDX-License-Identifier: MIT
// Package: eval
//
// eval.go — the four-measure KS energy evaluator.
//
// Contract:
//   - Evaluate(A, A′, D): A and A′ satisfy the adjacency policy, D the
//     distance policy, and all three share one n×n shape.
//   - Pure computation: inputs are never mutated, no randomness, the same
//     inputs always produce the same Result.
//   - Degenerate-sample convention (documented in doc.go): KS(∅,∅) = 0,
//     KS(∅, nonempty) = 1.
//
// Determinism:
//   - Measures come from fixed-order traversals; KS sorts copies of its
//     samples; no map iteration affects any returned value.

package eval

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/netgenlab/synthnet/matrix"
	"github.com/netgenlab/synthnet/measure"
)

// opEvaluate tags error wrapping for the facade.
const opEvaluate = "Evaluate"

// KS bounds and degenerate-sample conventions (named, no magic numbers).
const (
	// ksPerfectMatch is the statistic for indistinguishable samples,
	// including the two-empty-samples case.
	ksPerfectMatch = 0.0

	// ksMaximalMismatch is the statistic when exactly one sample is empty:
	// one empirical CDF exists and the other does not, treated as the
	// worst possible distributional disagreement.
	ksMaximalMismatch = 1.0
)

// Result holds the four per-measure KS statistics and their maximum.
// Every field lies in [0,1]; lower is better.
type Result struct {
	Degree      float64 // KS over per-node degree sequences
	Clustering  float64 // KS over per-node local clustering coefficients
	Betweenness float64 // KS over per-node betweenness centralities
	EdgeLength  float64 // KS over per-edge distance values
	Energy      float64 // max of the four; the model-fitting target
}

// Evaluate compares the observed network against the synthetic network
// across degree, clustering, betweenness and edge-length distributions and
// reduces the comparison to a single worst-case energy.
// Complexity: dominated by betweenness, O(n·m) per network.
func Evaluate(observed, synthetic, d *matrix.Dense) (Result, error) {
	// Stage 1 (Validate): shape agreement up front; the structural policies
	// are enforced by the measure calls below.
	if err := matrix.ValidateNotNil(observed); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	if err := matrix.ValidateNotNil(synthetic); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	if err := matrix.ValidateSameShape(observed, synthetic); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}

	// Stage 2 (Measure): the four distributions for both networks.
	obsDeg, err := measure.Degrees(observed)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	synDeg, err := measure.Degrees(synthetic)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	obsCC, err := measure.Clustering(observed)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	synCC, err := measure.Clustering(synthetic)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	obsBC, err := measure.Betweenness(observed)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	synBC, err := measure.Betweenness(synthetic)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	obsLen, err := measure.EdgeLengths(observed, d)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	synLen, err := measure.EdgeLengths(synthetic, d)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}

	// Stage 3 (Score): one KS statistic per measure, energy = worst case.
	res := Result{
		Degree:      KS(obsDeg, synDeg),
		Clustering:  KS(obsCC, synCC),
		Betweenness: KS(obsBC, synBC),
		EdgeLength:  KS(obsLen, synLen),
	}
	res.Energy = max(res.Degree, res.Clustering, res.Betweenness, res.EdgeLength)

	return res, nil
}

// KS returns the two-sample Kolmogorov–Smirnov statistic between x and y:
// the maximum absolute difference between their empirical CDFs, in [0,1].
// The samples may differ in length; neither is mutated. Degenerate inputs
// follow the documented convention: both empty → 0, exactly one empty → 1.
// Complexity: O(len·log len) for the sort.
func KS(x, y []float64) float64 {
	// Degenerate-sample convention, applied before delegating to gonum
	// (stat.KolmogorovSmirnov requires non-empty sorted samples).
	switch {
	case len(x) == 0 && len(y) == 0:
		return ksPerfectMatch
	case len(x) == 0 || len(y) == 0:
		return ksMaximalMismatch
	}

	// Sort copies: gonum's contract, and callers keep their slices intact.
	xs := append([]float64(nil), x...)
	ys := append([]float64(nil), y...)
	sort.Float64s(xs)
	sort.Float64s(ys)

	return stat.KolmogorovSmirnov(xs, nil, ys, nil)
}
