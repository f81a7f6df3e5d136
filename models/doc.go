// Package models provides the canonical random-graph constructors of
// network science, each returning a symmetric binary adjacency matrix over
// the node set 0..n-1:
//
//   - ErdosRenyiGNP — G(n,p): every unordered pair is an edge independently
//     with probability p.
//   - ErdosRenyiGNM — G(n,m): m distinct pairs drawn uniformly without
//     replacement.
//   - WattsStrogatz — small-world: an even-degree ring lattice whose edges
//     are rewired independently with probability beta.
//   - BarabasiAlbert — scale-free: preferential attachment of m edges per
//     incoming node onto a complete seed of m0 nodes.
//   - StochasticBlock — community structure: per-pair edge probability
//     determined by the block membership of the endpoints.
//   - RandomGeometric — spatial: nodes with coordinates are connected
//     whenever their Euclidean distance is at most a radius (deterministic,
//     no random source).
//
// Contract (shared by every constructor)
//
//   - Parameters are validated early and violations return sentinel errors;
//     constructors never panic at runtime.
//   - Stochastic constructors take an explicit *rand.Rand and return
//     ErrNeedRandSource when it is nil but randomness is required; a fixed
//     seed reproduces the same graph exactly thanks to stable pair order
//     (i asc, j>i asc) in every sampling loop.
//   - Results always satisfy the matrix package's adjacency policy:
//     symmetric, binary, zero diagonal.
//
// These models are the baselines a spatial/topological generative fit is
// compared against; see the gen and eval packages.
package models
