// Package measure computes the per-node and per-edge structural measures
// that the energy evaluator compares across networks: degree sequences,
// local clustering coefficients, betweenness centrality, and edge-length
// distributions.
//
// What
//
//   - Degrees(A): per-node degree (row sums of the binary adjacency matrix).
//   - Clustering(A): per-node local clustering coefficient
//     2·T_i / (k_i·(k_i−1)), where T_i counts links among the neighbors of
//     node i; nodes with fewer than two neighbors score 0.
//   - Betweenness(A): per-node Brandes betweenness centrality, delegated to
//     gonum's graph/network package over a simple undirected graph built
//     from A. Nodes absent from gonum's sparse result map score 0.
//   - EdgeLengths(A, D): the distance values D(i,j) over the strict upper
//     triangle wherever A(i,j) = 1 — each undirected edge contributes once.
//
// Why
//
//	These four distributions are the fingerprint the generative-model
//	energy is scored against: a synthetic network that reproduces all four
//	of an observed connectome is considered a good fit.
//
// Determinism
//
//	All loops traverse in fixed i→j order; Betweenness values come from
//	Brandes' algorithm, which is deterministic for a fixed graph.
//
// Errors
//
//	Inputs are validated against the matrix package's adjacency policy
//	(square, symmetric, zero diagonal, binary); EdgeLengths additionally
//	requires D to match A's dimension. All failures surface the matrix
//	sentinels via errors.Is.
package measure
