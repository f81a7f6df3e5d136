// Package dataset loads the two delimited input files an empirical network
// comparison needs — an edge list and a node coordinate table — and derives
// the Euclidean distance matrix the spatial generative model consumes.
//
// File formats
//
//   - Edge list: one edge per line, two comma-separated 1-indexed integer
//     node identifiers (the convention of the source datasets). Loaded into
//     an n×n symmetric binary adjacency matrix; identifiers outside 1..n,
//     self-loops, and malformed rows are errors.
//   - Coordinate table: one node per line, comma-separated real-valued
//     coordinates, every row with the same column count.
//
// Errors
//
//	Malformed content surfaces package sentinels (ErrMalformedRow,
//	ErrNodeOutOfRange, ErrRaggedRows, ErrNoRows) via errors.Is; I/O
//	failures pass through the underlying os/csv errors wrapped with the
//	operation tag. Structural violations of the resulting matrices surface
//	the matrix package sentinels.
package dataset
