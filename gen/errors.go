// SPDX-License-Identifier: MIT
// Package: gen
//
// errors.go — sentinel errors for the gen package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via %w wrapping at the facade; matrix
//     validator sentinels pass through unwrapped so errors.Is still matches.
//   - Generate never panics at runtime; validation panics are confined to
//     option constructors (WithX...).

package gen

import "errors"

var (
	// ErrNegativeTarget is returned when the requested edge count is negative.
	ErrNegativeTarget = errors.New("gen: target edge count is negative")

	// ErrTargetTooLarge is returned when the requested edge count exceeds the
	// number of unordered candidate pairs n(n-1)/2; looping further would
	// never terminate.
	ErrTargetTooLarge = errors.New("gen: target edge count exceeds candidate pairs")

	// ErrZeroDistance is returned when an off-diagonal distance is zero while
	// eta is negative: the spatial weight D^eta would be infinite. The caller
	// must repair the distance matrix or choose a non-negative exponent.
	ErrZeroDistance = errors.New("gen: zero off-diagonal distance with negative eta")

	// ErrNeedRandSource is returned when a stochastic draw is required but no
	// random source was supplied (see WithRand / WithSeed).
	ErrNeedRandSource = errors.New("gen: random source required")

	// ErrVanishingWeights is returned when every remaining candidate weight is
	// zero (numeric underflow of D^eta·K^gamma); the sampling distribution is
	// undefined and generation stops with no result.
	ErrVanishingWeights = errors.New("gen: all candidate weights vanished")
)
