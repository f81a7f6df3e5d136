// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric core shared by every synthnet
// component: row-major float64 storage with safe accessors, canonical
// structural validators, and adjacency-specific kernels.
//
// What
//
//   - Dense: a concrete row-major matrix with error-returning At/Set,
//     deep Clone, and a stable String rendering.
//   - Validators: a single source of truth for nil/shape/symmetry/
//     zero-diagonal/binary/finiteness checks, returning plain sentinel
//     errors that facades wrap with operation context.
//   - Adjacency kernels: EdgeCount (upper-triangle edge total),
//     SetEdge/HasEdge (mirrored binary writes/reads), and CommonNeighbors
//     (the off-diagonal entries of A·A used by the topological term of
//     the generative model).
//
// Why
//
//	The data model of the whole library is matrix-shaped: observed and
//	synthetic networks are symmetric binary adjacency matrices with zero
//	diagonals, and spatial affinity is a symmetric non-negative distance
//	matrix. Centralizing storage and structural policy here keeps the
//	model and evaluation packages free of ad hoc guard logic.
//
// Determinism
//
//	All loops traverse in fixed i→j order; there is no map iteration and
//	no randomness anywhere in this package.
//
// Errors
//
//   - ErrInvalidDimensions — non-positive construction shape.
//   - ErrNilMatrix        — nil receiver or argument.
//   - ErrOutOfRange       — index outside [0,Rows)×[0,Cols).
//   - ErrDimensionMismatch — incompatible operand shapes.
//   - ErrNonSquare        — square matrix required.
//   - ErrAsymmetry        — symmetry violated beyond Epsilon.
//   - ErrNonZeroDiagonal  — diagonal entry beyond Epsilon.
//   - ErrNonBinary        — entry other than 0 or 1 where binary required.
//   - ErrNegativeEntry    — negative entry where non-negative required.
//   - ErrNaNInf           — NaN or ±Inf where finite values required.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     validators: O(n²) worst case; CommonNeighbors: O(n³).
package matrix
