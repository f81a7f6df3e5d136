// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// indices, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Returns ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: O(r*c) zero-init.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape before allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the flat buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix; shorthand for NewDense(n, n).
// Returns ErrInvalidDimensions when n<=0.
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At retrieves the element at position (i, j).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns the value v at position (i, j).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// at reads (i,j) without bounds checks; for package-internal kernels whose
// loop bounds already guarantee validity.
func (d *Dense) at(i, j int) float64 { return d.data[i*d.c+j] }

// set writes (i,j) without bounds checks; kernel counterpart of at.
func (d *Dense) set(i, j int, v float64) { d.data[i*d.c+j] = v }

// Clone returns a deep copy of the matrix; the result shares no storage
// with the receiver. Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &Dense{r: d.r, c: d.c, data: buf}
}

// String renders the matrix one bracketed row per line, e.g. "[0, 1]\n[1, 0]\n".
// Stable output order makes it safe for golden tests. Complexity: O(r*c).
func (d *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j = 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			sb.WriteString(fmt.Sprintf("%g", d.data[i*d.c+j]))
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
