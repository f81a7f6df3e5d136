// SPDX-License-Identifier: MIT
// Package: gen
//
// options.go — functional options for the generative model.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error); Generate itself never panics.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through config.

package gen

import (
	"math/rand" // RNG source for the weighted draws
)

// Option customizes a Generate run by mutating a config instance before
// generation begins. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all model knobs. It is resolved once per Generate call
// and passed by value (immutable to callers).
type config struct {
	eta   float64    // exponent on the distance term D(i,j)^eta
	gamma float64    // exponent on the topological term K(i,j)^gamma; 0 disables it
	rng   *rand.Rand // random source; nil means "no randomness available"
}

// Deterministic defaults (named, no magic numbers).
const (
	// defaultEta applies no spatial preference: D^0 = 1 for every pair.
	defaultEta = 0.0

	// defaultGamma disables the topological term (pure spatial mode).
	defaultGamma = 0.0
)

// newConfig constructs a config with deterministic defaults and applies all
// options in order; last-wins semantics. Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		eta:   defaultEta,   // no distance preference unless configured
		gamma: defaultGamma, // pure spatial mode unless configured
		rng:   nil,          // no RNG unless explicitly set
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEta sets the distance exponent. Typical connectome fits use negative
// values (long connections are penalized). Any finite real is accepted.
func WithEta(eta float64) Option {
	return func(c *config) {
		c.eta = eta
	}
}

// WithGamma sets the shared-neighbor exponent. Zero keeps the model purely
// spatial; positive values bias edge formation toward pairs that already
// share neighbors in the growing network.
func WithGamma(gamma float64) Option {
	return func(c *config) {
		c.gamma = gamma
	}
}

// WithRand provides an explicit RNG for the weighted draws.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("gen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and parameter sweeps to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}
