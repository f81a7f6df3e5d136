// SPDX-License-Identifier: MIT
// Package: models
//
// errors.go — sentinel errors for the models package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context (parameter values, method tag) via %w
//     wrapping; sentinels themselves stay parameter-free.
//   - Constructors never panic at runtime.

package models

import "errors"

var (
	// ErrTooFewNodes is returned when n is below the constructor's minimum.
	ErrTooFewNodes = errors.New("models: too few nodes")

	// ErrInvalidProbability is returned when a probability lies outside [0,1].
	ErrInvalidProbability = errors.New("models: probability outside [0,1]")

	// ErrNeedRandSource is returned when a stochastic constructor receives a
	// nil random source but must sample.
	ErrNeedRandSource = errors.New("models: random source required")

	// ErrTooManyEdges is returned when a requested edge count exceeds the
	// number of unordered pairs n(n-1)/2.
	ErrTooManyEdges = errors.New("models: edge count exceeds candidate pairs")

	// ErrInvalidDegree is returned when the Watts–Strogatz ring degree k is
	// odd, non-positive, or at least n.
	ErrInvalidDegree = errors.New("models: invalid ring degree")

	// ErrInvalidSeedGraph is returned when the Barabási–Albert seed size m0
	// or per-node edge count m violates 1 ≤ m ≤ m0 ≤ n.
	ErrInvalidSeedGraph = errors.New("models: invalid preferential-attachment seed")

	// ErrBlockShape is returned when the stochastic block sizes are empty or
	// non-positive, or the probability matrix is not a symmetric B×B table.
	ErrBlockShape = errors.New("models: invalid block structure")

	// ErrInvalidRadius is returned when the geometric connection radius is
	// negative or not finite.
	ErrInvalidRadius = errors.New("models: invalid radius")

	// ErrRaggedCoordinates is returned when coordinate rows are empty or
	// differ in length.
	ErrRaggedCoordinates = errors.New("models: ragged coordinate table")
)
