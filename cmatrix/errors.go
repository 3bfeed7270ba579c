// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the cmatrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// Shape mismatches additionally carry both offending shapes in the wrapped
// message ("Add: 2x2 vs 3x1: cmatrix: shape mismatch") via shapeErrorf.
//
// Non-square input to IsHermitian/IsUnitary is NOT an error: the predicates
// stay total and report false. There is deliberately no ErrNotSquare here.

var (
	// ErrShapeMismatch indicates incompatible shapes between operands:
	// Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	// The wrapped message names both shapes.
	ErrShapeMismatch = errors.New("cmatrix: shape mismatch")

	// ErrNonRectangular is returned at construction when the input rows
	// do not all share the same length.
	ErrNonRectangular = errors.New("cmatrix: all rows must have the same length")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors validate before allocation.
	ErrInvalidDimensions = errors.New("cmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf component was encountered where finite
	// values are required by the numeric policy (ingestion).
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")
)
