// SPDX-License-Identifier: MIT

// Package cmatrix: domain types shared across constructors and kernels.
// This file intentionally contains ONLY domain-facing types — the read-only
// Matrix interface and the Shape value pair. Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package cmatrix

import "fmt"

// Shape is the (rows, columns) pair of a matrix, reported by accessors and
// carried inside shape-mismatch error messages. Immutable value.
type Shape struct {
	Rows int // row count R ≥ 1
	Cols int // column count C ≥ 1
}

// String renders the shape as "RxC" ("2x3"). Deterministic; used verbatim
// in wrapped ErrShapeMismatch messages.
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Square reports whether Rows == Cols.
// Complexity: O(1).
func (s Shape) Square() bool {
	return s.Rows == s.Cols
}

// Matrix represents a two-dimensional read-only array of complex128 values.
// There is NO Set in this interface: values are immutable after construction
// and every operation allocates a fresh result. Kernels fast-path on the
// concrete *Dense and fall back to At for foreign implementations.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (complex128, error)

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// ShapeOf returns the Shape of m. Callers must pass a non-nil Matrix;
// kernels validate nil before reaching here.
// Complexity: O(1).
func ShapeOf(m Matrix) Shape {
	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}
