// SPDX-License-Identifier: MIT
// Package cmatrix provides core linear algebra primitives for complex-valued
// computations. Dense is the concrete, row-major implementation of the Matrix
// interface, storing elements in a flat slice for performance and cache
// friendliness. Dense values are immutable: there is no public mutator, and
// every operation in this package allocates a fresh result.

package cmatrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The backing slice is owned exclusively by this value and never exposed;
// constructors copy their inputs, so later mutation of a source grid cannot
// alias into an existing Dense.
type Dense struct {
	r, c int          // number of rows and columns, fixed at construction
	data []complex128 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]complex128, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense from a rectangular literal grid of complex values.
// This is the primary constructor: the grid is validated and COPIED, so the
// caller keeps ownership of the input slices.
//
// Implementation:
//   - Stage 1: resolve options; ValidateRectangular on the row headers.
//   - Stage 2: copy rows into a fresh flat row-major slice.
//   - Stage 3: ValidateFiniteValues under the resolved numeric policy.
//
// Inputs:
//   - rows: non-empty grid; every row must share the first row's length.
//   - opts: numeric policy overrides (WithNoValidateNaNInf to admit non-finite).
//
// Returns:
//   - *Dense: freshly allocated matrix with copied values.
//
// Errors:
//   - ErrInvalidDimensions (empty grid or empty first row).
//   - ErrNonRectangular    (ragged rows).
//   - ErrNaNInf            (non-finite component under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Literal fixtures read best as [][]complex128{{1 + 1i, 2 - 1i}, {3, 4 + 1i}}.
func FromRows(rows [][]complex128, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	// Validate shape before any allocation.
	if err := ValidateRectangular(rows); err != nil {
		return nil, err
	}

	// Copy row-major into a flat backing slice.
	r, c := len(rows), len(rows[0])
	data := make([]complex128, r*c)
	for i := 0; i < r; i++ { // fixed i order
		copy(data[i*c:(i+1)*c], rows[i])
	}

	// Enforce the numeric policy on the copied values.
	if err := ValidateFiniteValues(data, o.validateNaNInf); err != nil {
		return nil, err
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// FromParts builds a Dense from separate real and imaginary planes.
// The im plane may be nil, producing a purely real matrix; otherwise both
// planes must agree in shape.
//
// Errors:
//   - ErrInvalidDimensions / ErrNonRectangular (plane validation).
//   - ErrShapeMismatch (planes disagree; wrap names both plane shapes).
//   - ErrNaNInf (non-finite component under the default policy).
//
// Complexity: O(r*c).
func FromParts(re, im [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	// The real plane fixes the shape.
	if err := ValidateRectangular(re); err != nil {
		return nil, err
	}
	r, c := len(re), len(re[0])

	// The imaginary plane, when present, must match exactly.
	if im != nil {
		if err := ValidateRectangular(im); err != nil {
			return nil, err
		}
		if len(im) != r || len(im[0]) != c {
			return nil, shapeErrorf("FromParts", Shape{Rows: r, Cols: c}, Shape{Rows: len(im), Cols: len(im[0])}, ErrShapeMismatch)
		}
	}

	// Assemble components row-major.
	data := make([]complex128, r*c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if im != nil {
				data[i*c+j] = complex(re[i][j], im[i][j])
			} else {
				data[i*c+j] = complex(re[i][j], 0)
			}
		}
	}

	// Enforce the numeric policy on the assembled values.
	if err := ValidateFiniteValues(data, o.validateNaNInf); err != nil {
		return nil, err
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// ColumnVector builds an n×1 Dense from a value slice (a vector is a
// degenerate matrix; no separate vector type exists).
// Errors: ErrInvalidDimensions (empty input), ErrNaNInf (policy).
// Complexity: O(n).
func ColumnVector(vals []complex128, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	// Copy to decouple from the caller's slice.
	data := make([]complex128, len(vals))
	copy(data, vals)
	if err := ValidateFiniteValues(data, o.validateNaNInf); err != nil {
		return nil, err
	}

	return &Dense{r: len(vals), c: 1, data: data}, nil
}

// RowVector builds a 1×n Dense from a value slice.
// Errors: ErrInvalidDimensions (empty input), ErrNaNInf (policy).
// Complexity: O(n).
func RowVector(vals []complex128, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]complex128, len(vals))
	copy(data, vals)
	if err := ValidateFiniteValues(data, o.validateNaNInf); err != nil {
		return nil, err
	}

	return &Dense{r: 1, c: len(vals), data: data}, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the reference operand for IsUnitary-style comparisons.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1 // direct write; the value is still under construction
	}

	// Return the identity matrix.
	return I, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// Shape returns the (rows, cols) pair as a Shape value.
// Complexity: O(1).
func (m *Dense) Shape() Shape {
	return Shape{Rows: m.r, Cols: m.c}
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]complex128, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer with the deterministic `re±imi` rendering
// of FormatComplex, one bracketed row per line.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')         // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(FormatComplex(m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
