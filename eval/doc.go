// Package eval scores how well a synthetic network reproduces the structure
// of an observed network: four two-sample Kolmogorov–Smirnov statistics —
// degree, local clustering, betweenness centrality, and edge length — are
// reduced to a single worst-case energy in [0,1].
//
// What
//
//   - Evaluate(A, A′, D) computes the four per-measure distributions for
//     both networks (delegating to the measure package), takes the KS
//     statistic of each observed/synthetic pair, and returns them in a
//     Result together with Energy = max of the four.
//   - KS(x, y) exposes the two-sample statistic itself: the maximum
//     absolute difference between the empirical CDFs of x and y. It is
//     symmetric in its arguments and delegates to gonum's
//     stat.KolmogorovSmirnov over sorted copies.
//
// Energy semantics
//
//	Lower is better: 0 means a perfect distributional match on all four
//	measures (identical networks always score 0), and the maximum-of-KS
//	construction bounds the energy above by 1. The energy is the fitness
//	target when sweeping the generative model's (eta, gamma) plane.
//
// Degenerate samples
//
//	The KS statistic over empty samples is a documented convention rather
//	than an upstream definition: two empty samples are indistinguishable
//	(KS = 0), while an empty sample against a non-empty one is a maximal
//	mismatch (KS = 1). This arises when comparing edgeless networks, whose
//	edge-length distributions are empty.
//
// Errors
//
//	Both adjacency matrices must satisfy the matrix package's adjacency
//	policy and share one dimension with each other and with D; violations
//	surface the matrix sentinels via errors.Is. Inputs are never mutated.
package eval
