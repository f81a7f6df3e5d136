// Package gen implements the quasi-dynamic spatial/topological generative
// model for synthetic networks: a synthetic adjacency matrix is grown
// edge-by-edge, each candidate pair drawn with probability proportional to
// a spatial affinity D(i,j)^eta times an optional shared-neighbor affinity
// K(i,j)^gamma that evolves with the network being built.
//
// What
//
//   - Generate(D, mTarget, opts...) grows a symmetric binary adjacency
//     matrix with exactly mTarget edges over the node set 0..n-1 implied
//     by the n×n distance matrix D.
//   - TargetEdges(A) derives mTarget from an observed network so the
//     synthetic network matches its edge count — the usual calling pattern
//     when fitting model parameters against empirical data.
//   - Options: WithEta (distance exponent, typically negative to penalize
//     long connections), WithGamma (shared-neighbor exponent; zero disables
//     the topological term entirely), WithRand / WithSeed (explicit random
//     source; fixed seed ⇒ identical output).
//
// Algorithm Outline
//
//  1. Enumerate the unordered candidate pairs {i,j}, i<j.
//  2. Compute the static spatial weight D(i,j)^eta per pair.
//  3. Each iteration, the sampling weight of a remaining pair is
//     spatial(i,j) · (common-neighbors(i,j)+1)^gamma, where common
//     neighbors are counted in the synthetic network built so far
//     (the off-diagonal of A′·A′). With gamma = 0 the weights are static
//     and only the remaining-candidate set shrinks.
//  4. Draw one pair with probability proportional to its weight, add the
//     mirrored edge, and retire the pair from the candidate set.
//  5. Repeat until exactly mTarget edges exist.
//
// The loop is strictly sequential: every draw depends on the candidate set
// (and, with gamma ≠ 0, the topology) left by the previous draw.
// Independent runs are trivially parallel — give each its own rand.Rand.
//
// Determinism
//
//	Pairs are enumerated in fixed (i asc, j>i asc) order and the cumulative
//	draw walks that order, so a fixed seed and fixed inputs reproduce the
//	same synthetic network exactly.
//
// Complexity (n nodes, P = n(n−1)/2 pairs, m = mTarget)
//
//   - gamma = 0: O(n²) setup + O(m·P) sampling.
//   - gamma ≠ 0: O(m·n³) — one shared-neighbor recount per added edge
//     dominates.
//   - Memory: O(n²).
//
// Errors
//
//   - ErrNegativeTarget    — mTarget < 0.
//   - ErrTargetTooLarge    — mTarget exceeds the number of candidate pairs.
//   - ErrZeroDistance      — an off-diagonal zero distance combined with a
//     negative eta (the weight would be infinite); a usage precondition
//     violation, never silently absorbed.
//   - ErrNeedRandSource    — mTarget > 0 without a random source.
//   - ErrVanishingWeights  — all remaining candidate weights underflowed to
//     zero, so no well-defined draw exists.
//   - Wrapped matrix sentinels (ErrNonSquare, ErrAsymmetry, ErrNegativeEntry,
//     ErrNaNInf, ...) when D violates the distance-matrix policy.
package gen
