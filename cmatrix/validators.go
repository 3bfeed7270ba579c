// SPDX-License-Identifier: MIT
// Package: cmatrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/finite checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on the happy path.
//  - Rectangularity check runs O(R) over row headers only.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Use ValidateBinarySameShape for Add/Sub kernels; ValidateMulCompatible for Mul.
//  - Shape-mismatch wraps carry BOTH offending shapes for direct diagnosis.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package cmatrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps a shape-related sentinel with the validator tag and both
// offending shapes, e.g. "ValidateSameShape: 2x2 vs 3x1: cmatrix: shape mismatch".
// The sentinel stays matchable via errors.Is; the message names the shapes.
func shapeErrorf(tag string, a, b Shape, err error) error {
	return fmt.Errorf("%s: %s vs %s: %w", tag, a, b, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// isNonFiniteComplex reports whether either component of z is NaN or ±Inf.
// Complexity: O(1).
func isNonFiniteComplex(z complex128) bool {
	return isNonFinite(real(z)) || isNonFinite(imag(z))
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values.
// Return: nil or wrapped ErrShapeMismatch naming both shapes.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels and compatibility guards.
func ValidateSameShape(a, b Matrix) error {
	// Execute comparison on both axes at once; the wrap names both shapes.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return shapeErrorf("ValidateSameShape", ShapeOf(a), ShapeOf(b), ErrShapeMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrShapeMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (wrap names both shapes).
// Complexity: O(1).
// AI-Hints: Use for general matrix multiplication compatibility.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return shapeErrorf("ValidateMulCompatible", ShapeOf(a), ShapeOf(b), ErrShapeMismatch)
	}

	return nil
}

// ValidateRectangular – Ensures a literal grid is non-empty with equal-length,
// non-empty rows. This is the construction-time gate for FromRows/FromParts.
//
// Inputs: rows as a slice of row slices.
// Errors: ErrInvalidDimensions (no rows, or empty first row),
// ErrNonRectangular (any later row length differs from the first).
// Complexity: O(R) over row headers; element values are not inspected.
func ValidateRectangular[T any](rows [][]T) error {
	// Reject an empty grid outright.
	if len(rows) == 0 {
		return validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	// The first row fixes C; it must be non-empty.
	cols := len(rows[0])
	if cols == 0 {
		return validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	// Every subsequent row must match the first row's length.
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return validatorErrorf("ValidateRectangular", ErrNonRectangular)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the column count of m.
//
// Errors: ErrNilMatrix (nil m or nil x), ErrShapeMismatch (the wrap names the
// matrix shape and the offending vector length, e.g. "2x3 vs len 4").
// Time: O(1). Space: O(1).
func ValidateVecLen(m Matrix, x []complex128) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVecLen", err)
	}
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length; the wrap names both offenders.
	if len(x) != m.Cols() {
		return fmt.Errorf("ValidateVecLen: %s vs len %d: %w", ShapeOf(m), len(x), ErrShapeMismatch)
	}

	return nil
}

// ValidateFiniteValues scans a flat component slice under the numeric policy.
// When validate is false the scan is skipped entirely (ingestion relaxed).
//
// Inputs: data as the row-major backing slice; validate from resolved Options.
// Errors: ErrNaNInf on the first non-finite component (fixed scan order).
// Complexity: O(n) worst case, O(1) when validation is disabled.
func ValidateFiniteValues(data []complex128, validate bool) error {
	if !validate {
		return nil // policy relaxed at construction
	}
	for idx := 0; idx < len(data); idx++ { // deterministic 0..n-1 scan
		if isNonFiniteComplex(data[idx]) {
			return validatorErrorf("ValidateFiniteValues", ErrNaNInf)
		}
	}

	return nil
}
