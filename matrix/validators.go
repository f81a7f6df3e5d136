// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/shape/structure checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and tests can branch with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry and diagonal checks run O(n²) on the upper triangle only.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape → Structure).

package matrix

import (
	"fmt"
	"math"
)

// Epsilon is the non-negative tolerance used by structural checks
// (symmetry, zero diagonal, binary entries).
const Epsilon = 1e-9

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if d == nil. Complexity: O(1).
func ValidateNotNil(d *Dense) error {
	if d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are non-nil (caller must ensure). Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that d is square (Rows == Cols). Complexity: O(1).
func ValidateSquare(d *Dense) error {
	if d.Rows() != d.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |d[i,j] − d[j,i]| ≤ Epsilon over the upper triangle.
// Assumes d is non-nil and square. Complexity: O(n²).
func ValidateSymmetric(d *Dense) error {
	n := d.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(d.at(i, j)-d.at(j, i)) > Epsilon {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |d[i,i]| ≤ Epsilon for every i.
// Assumes d is non-nil and square. Complexity: O(n).
func ValidateZeroDiagonal(d *Dense) error {
	n := d.Rows()
	for i := 0; i < n; i++ {
		if math.Abs(d.at(i, i)) > Epsilon {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateBinary checks every entry is 0 or 1 (within Epsilon).
// Assumes d is non-nil. Complexity: O(r*c).
func ValidateBinary(d *Dense) error {
	for _, v := range d.data {
		if math.Abs(v) > Epsilon && math.Abs(v-1) > Epsilon {
			return validatorErrorf("ValidateBinary", ErrNonBinary)
		}
	}

	return nil
}

// ValidateNonNegative checks every entry is ≥ 0.
// Assumes d is non-nil. Complexity: O(r*c).
func ValidateNonNegative(d *Dense) error {
	for _, v := range d.data {
		if v < 0 {
			return validatorErrorf("ValidateNonNegative", ErrNegativeEntry)
		}
	}

	return nil
}

// ValidateFinite checks no entry is NaN or ±Inf.
// Assumes d is non-nil. Complexity: O(r*c).
func ValidateFinite(d *Dense) error {
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateAdjacency runs the full structural policy for a binary adjacency
// matrix: NotNil → Square → Symmetric → ZeroDiagonal → Binary.
// Complexity: O(n²).
func ValidateAdjacency(d *Dense) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	if err := ValidateSquare(d); err != nil {
		return err
	}
	if err := ValidateSymmetric(d); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(d); err != nil {
		return err
	}

	return ValidateBinary(d)
}

// ValidateDistance runs the full structural policy for a distance matrix:
// NotNil → Square → Finite → Symmetric → NonNegative.
// Complexity: O(n²).
func ValidateDistance(d *Dense) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	if err := ValidateSquare(d); err != nil {
		return err
	}
	if err := ValidateFinite(d); err != nil {
		return err
	}
	if err := ValidateSymmetric(d); err != nil {
		return err
	}

	return ValidateNonNegative(d)
}
