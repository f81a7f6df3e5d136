// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go — structural kernels over binary adjacency matrices.
//
// Contract:
//   - All kernels treat the input as a symmetric binary matrix with a zero
//     diagonal; callers that cannot guarantee this should run
//     ValidateAdjacency first.
//   - Kernels never mutate their inputs (SetEdge mutates its receiver
//     argument by design and is documented as such).
//   - Only sentinel errors are returned; no panics at runtime.
//
// Determinism:
//   - Fixed i asc, j>i traversal everywhere; results are reproducible.

package matrix

// Operation name constants for unified error wrapping.
const (
	opEdgeCount       = "EdgeCount"
	opSetEdge         = "SetEdge"
	opUnsetEdge       = "UnsetEdge"
	opHasEdge         = "HasEdge"
	opCommonNeighbors = "CommonNeighbors"
)

// Stored values for present and absent edges.
const (
	adjacencyOne  = 1.0
	adjacencyZero = 0.0
)

// EdgeCount returns the number of undirected edges in a: the count of
// non-zero entries in the strict upper triangle.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func EdgeCount(a *Dense) (int, error) {
	// Stage 1 (Validate): presence and squareness.
	if err := ValidateNotNil(a); err != nil {
		return 0, validatorErrorf(opEdgeCount, err)
	}
	if err := ValidateSquare(a); err != nil {
		return 0, validatorErrorf(opEdgeCount, err)
	}

	// Stage 2 (Execute): count the strict upper triangle in fixed order.
	n := a.Rows()
	var i, j, count int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a.at(i, j) != 0 {
				count++
			}
		}
	}

	return count, nil
}

// SetEdge writes the mirrored pair a[i,j] = a[j,i] = 1.
// Self-loops (i == j) are rejected with ErrNonZeroDiagonal to preserve the
// zero-diagonal invariant.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNonZeroDiagonal.
// Complexity: O(1).
func SetEdge(a *Dense, i, j int) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(opSetEdge, err)
	}
	if i == j {
		return validatorErrorf(opSetEdge, ErrNonZeroDiagonal)
	}
	// Both writes go through the checked accessor so a single ErrOutOfRange
	// surfaces before any mutation of the mirrored entry.
	if i < 0 || i >= a.Rows() || j < 0 || j >= a.Cols() {
		return denseErrorf(opSetEdge, i, j, ErrOutOfRange)
	}
	a.set(i, j, adjacencyOne)
	a.set(j, i, adjacencyOne)

	return nil
}

// UnsetEdge clears the mirrored pair a[i,j] = a[j,i] = 0. Clearing an
// absent edge is a no-op. Self-loops are rejected for symmetry with SetEdge.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNonZeroDiagonal.
// Complexity: O(1).
func UnsetEdge(a *Dense, i, j int) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(opUnsetEdge, err)
	}
	if i == j {
		return validatorErrorf(opUnsetEdge, ErrNonZeroDiagonal)
	}
	if i < 0 || i >= a.Rows() || j < 0 || j >= a.Cols() {
		return denseErrorf(opUnsetEdge, i, j, ErrOutOfRange)
	}
	a.set(i, j, adjacencyZero)
	a.set(j, i, adjacencyZero)

	return nil
}

// HasEdge reports whether a[i,j] is non-zero.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func HasEdge(a *Dense, i, j int) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, validatorErrorf(opHasEdge, err)
	}
	v, err := a.At(i, j)
	if err != nil {
		return false, validatorErrorf(opHasEdge, err)
	}

	return v != 0, nil
}

// CommonNeighbors returns the matrix C where C[i,j] is the number of nodes
// adjacent to both i and j in a — the (i,j) entry of A·A. The diagonal of
// the result holds node degrees (Σ_l a[i,l]²) and is typically ignored by
// callers, which only read off-diagonal entries.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) time, O(n²) space.
func CommonNeighbors(a *Dense) (*Dense, error) {
	// Stage 1 (Validate): presence and squareness.
	if err := ValidateNotNil(a); err != nil {
		return nil, validatorErrorf(opCommonNeighbors, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, validatorErrorf(opCommonNeighbors, err)
	}

	// Stage 2 (Prepare): allocate the result.
	n := a.Rows()
	out, err := NewSquare(n)
	if err != nil {
		return nil, validatorErrorf(opCommonNeighbors, err)
	}

	// Stage 3 (Execute): flat-buffer triple loop in i→l→j order; the l-major
	// inner structure keeps both row walks contiguous for cache friendliness.
	var i, l, j int
	var ail float64
	for i = 0; i < n; i++ {
		for l = 0; l < n; l++ {
			ail = a.at(i, l)
			if ail == 0 {
				continue // sparse rows skip the inner walk entirely
			}
			for j = 0; j < n; j++ {
				out.data[i*n+j] += ail * a.at(l, j)
			}
		}
	}

	return out, nil
}
