// SPDX-License-Identifier: MIT
// Package: dataset
//
// errors.go — sentinel errors for the dataset package.

package dataset

import "errors"

var (
	// ErrMalformedRow is returned when a row cannot be parsed into the
	// expected fields (wrong count or non-numeric content).
	ErrMalformedRow = errors.New("dataset: malformed row")

	// ErrNodeOutOfRange is returned when an edge-list identifier falls
	// outside the declared 1..n range.
	ErrNodeOutOfRange = errors.New("dataset: node identifier out of range")

	// ErrRaggedRows is returned when coordinate rows differ in length.
	ErrRaggedRows = errors.New("dataset: ragged coordinate rows")

	// ErrNoRows is returned when a coordinate table contains no rows.
	ErrNoRows = errors.New("dataset: empty table")
)
