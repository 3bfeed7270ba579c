// SPDX-License-Identifier: MIT
// Package cmatrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, negation, scalar scaling,
// transpose, conjugation, adjoint, matrix multiplication and the tensor
// (Kronecker) product. All functions perform strict fail-fast validation and
// return clear errors on shape mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result and never mutates operands;
//     this is the package's value-semantics contract.
//   - All kernels use central validators and return sentinels wrapped via
//     cmatrixErrorf at the operation boundary.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// zeroSum is the additive identity for accumulation loops.
const zeroSum complex128 = 0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opConj      = "Conj"
	opAdjoint   = "Adjoint"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opKron      = "Kron"
)

// cmatrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across kernels. Use only when err != nil to avoid creating a
// non-nil wrapper around a nil cause.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, cmatrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical op* constants to simplify log/search pipelines.
func cmatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation, allocation,
// and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At reads with fixed i→j order, direct result writes.
//
// Behavior highlights:
//   - Deterministic loop orders (flat in fast-path; i→j in fallback).
//   - Single result allocation; no inner-loop temps beyond scalars.
//   - Inputs remain immutable.
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same rows/cols).
//   - sign: +1 for Add, −1 for Sub (callers must enforce).
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Returns:
//   - *Dense: newly allocated result.
//   - error : validation failures wrapped with opAdd/opSub.
//
// Errors:
//   - ErrNilMatrix     (from ValidateBinarySameShape when a or b is nil).
//   - ErrShapeMismatch (from ValidateBinarySameShape when shapes differ;
//     the wrap names both shapes).
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// AI-Hints:
//   - To trigger fast-path, pass concrete *Dense operands (avoid interface wrappers).
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// direct element-wise combination on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface reads with fixed i→j order; writes go straight into
	// the freshly allocated backing slice (the result is still under construction).
	var i, j int          // loop iterators (deterministic order)
	var av, bv complex128 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, cmatrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, cmatrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			res.data[i*cols+j] = av + sign*bv
		}
	}

	// Return result
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Commutative and associative; shapes must be identical.
//
// Errors: ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch, both
// shapes named in the wrap).
// Determinism: flat 0..n-1 for *Dense; i→j for the generic path.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete
//     types (e.g., via wrappers) to force the fallback path in tests.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense
// result. Identical validation and traversal as Add.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// scaleBy computes out = s·m into a fresh Dense. Internal helper shared by
// Scale and Neg so both keep one validation/allocation/traversal path.
//
// Determinism: flat 0..n-1 fast path; i→j fallback.
// Complexity: Time O(r*c), Space O(r*c).
func scaleBy(m Matrix, s complex128, opTag string) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = s * dm.data[idx]
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, cmatrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = s * v
		}
	}

	// Return result
	return res, nil
}

// Scale returns a new matrix whose elements are s·m[i,j] for a complex scalar s.
// Distributes over Add: Scale(Add(A,B), s) equals Add(Scale(A,s), Scale(B,s)).
// The original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - s may be any complex128; NaN/Inf in s propagate into the result by design
//     (the ingestion policy guards construction, not arithmetic).
func Scale(m Matrix, s complex128) (*Dense, error) { return scaleBy(m, s, opScale) }

// Neg returns the element-wise negation -m[i,j].
// Guarantee: Add(A, Neg(A)) is the zero matrix of the same shape.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Neg(m Matrix) (*Dense, error) { return scaleBy(m, -1, opNeg) }

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Involution: Transpose(Transpose(A)) equals A exactly (no rounding occurs).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Errors: ErrNilMatrix.
// Determinism: fixed traversal orders independent of data values.
// Complexity: Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - If you need conj(mᵀ), call Adjoint directly: it is one pass, not two.
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, cmatrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, cmatrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	// Return result
	return res, nil
}

// Conj returns the element-wise complex conjugate: result[i,j] = conj(m[i,j]).
// Involution: Conj(Conj(A)) equals A exactly. A is unchanged by Conj iff every
// component is real-valued.
//
// Errors: ErrNilMatrix.
// Determinism: flat 0..n-1 fast path; i→j fallback.
// Complexity: Time O(r*c), Space O(r*c).
func Conj(m Matrix) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opConj, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, cmatrixErrorf(opConj, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = cmplx.Conj(dm.data[idx])
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, cmatrixErrorf(opConj, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = cmplx.Conj(v)
		}
	}

	// Return result
	return res, nil
}

// Adjoint returns the conjugate transpose m† in a single pass:
// result[j,i] = conj(m[i,j]). Equal to Conj(Transpose(m)) and to
// Transpose(Conj(m)); involution: Adjoint(Adjoint(A)) equals A exactly.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: Fused transpose+conjugate mapping (one allocation, one pass),
//     fast path on *Dense; generic i→j fallback otherwise.
//
// Errors: ErrNilMatrix.
// Determinism: fixed i→j traversal.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer Adjoint over composing Conj and Transpose manually: the fused
//     kernel saves one intermediate allocation.
func Adjoint(m Matrix) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opAdjoint, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, cmatrixErrorf(opAdjoint, err)
	}

	// Fast-path for Dense → Dense: fused conjugate-transpose mapping.
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = cmplx.Conj(dm.data[baseSrc+j])
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, cmatrixErrorf(opAdjoint, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = cmplx.Conj(v)
		}
	}

	// Return result
	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Matrix-vector action is the degenerate case where B has a single column.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip
//     exact zeros; otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch; the wrap
//     names both operand shapes).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - If you can keep A as *Dense and cache-friendly by rows, you unlock the best path here.
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current complex128
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = zeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, cmatrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, cmatrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			res.data[i*bCols+j] = current
		}
	}

	// Return result
	return res, nil
}

// MatVec computes y = m * x for a column vector given as a value slice.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Skipping zero x[j] helps when x is sparse-ish.
//   - For the matrix-as-vector form, build a ColumnVector and call Mul instead.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns
	if err := ValidateVecLen(m, x); err != nil {
		return nil, cmatrixErrorf(opMatVec, err)
	}
	// Prepare result vector y with length rows.
	rows, cols := m.Rows(), m.Cols()
	y := make([]complex128, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int // indices and row base offset
		var acc, xv complex128
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = zeroSum             // reset accumulator per row
			base = i * d.c            // compute flat base offset for row i
			for j = 0; j < d.c; j++ { // iterate columns
				xv = x[j]    // read x(j) once per iteration
				if xv != 0 { // micro-optimization: skip zero multiplications
					acc += d.data[base+j] * xv // accumulate a(i,j)*x(j)
				}
			}
			y[i] = acc // store y(i)
		}

		return y, nil // return on fast-path
	}

	// Fallback: interface-based dot-products via At.
	var i, j int      // loop indices
	var mv complex128 // temporary to hold m(i,j)
	var err error
	for i = 0; i < rows; i++ { // iterate rows
		y[i] = zeroSum             // initialize y(i) to zero
		for j = 0; j < cols; j++ { // iterate columns
			mv, err = m.At(i, j) // read m(i,j)
			if err != nil {
				return nil, cmatrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j] // accumulate
		}
	}

	return y, nil // return computed vector
}

// Kron computes the tensor (Kronecker) product A ⊗ B for any operand shapes.
// The result has shape (A.R·B.R)×(A.C·B.C); block (i,j) equals A[i,j]·B placed
// at block position (i,j). The outer product of vectors and the Kronecker
// product of matrices are the degenerate and general cases of this single
// operation.
//
// Implementation:
//   - Stage 1: Validate both operands non-nil. Allocate Dense(aR*bR, aC*bC).
//   - Stage 2: Fixed i→j→p→q loop order writes each scaled copy of B into its
//     block; fast path reads both operands through flat slices, fallback via At.
//
// Behavior highlights:
//   - Zero A[i,j] skips the whole block (the destination is already zeroed).
//
// Inputs:
//   - a: left operand (aR × aC), any shape.
//   - b: right operand (bR × bC), any shape.
//
// Returns:
//   - *Dense: the (aR·bR)×(aC·bC) tensor product.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Determinism:
//   - Fixed i→j→p→q traversal independent of data values.
//
// Complexity:
//   - Time O(aR·aC·bR·bC), Space O(aR·bR·aC·bC) for the result.
//
// AI-Hints:
//   - Compose multi-factor products left to right: Kron(Kron(a,b),c) — the
//     operation is associative, so grouping affects only intermediate sizes.
func Kron(a, b Matrix) (*Dense, error) {
	// Validate both operands non-nil.
	if err := ValidateNotNil(a); err != nil {
		return nil, cmatrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, cmatrixErrorf(opKron, err)
	}

	// Allocate the block-structured result.
	aR, aC := a.Rows(), a.Cols()
	bR, bC := b.Rows(), b.Cols()
	res, err := NewDense(aR*bR, aC*bC)
	if err != nil {
		return nil, cmatrixErrorf(opKron, err)
	}

	resCols := aC * bC // row stride of the result
	var (
		i, j, p, q int        // loop iterators: a-row, a-col, b-row, b-col
		av         complex128 // current scaling factor A[i,j]
		rowBase    int        // flat row offset of the (i,p) result row
	)

	// Fast-path for two Dense operands: flat reads, flat writes.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aR; i++ {
				for j = 0; j < aC; j++ {
					av = da.data[i*aC+j]
					if av == 0 {
						continue // whole block stays zero
					}
					for p = 0; p < bR; p++ {
						rowBase = (i*bR+p)*resCols + j*bC
						for q = 0; q < bC; q++ {
							res.data[rowBase+q] = av * db.data[p*bC+q]
						}
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: interface reads with the same fixed traversal.
	var bv complex128
	for i = 0; i < aR; i++ {
		for j = 0; j < aC; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, cmatrixErrorf(opKron, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if av == 0 {
				continue // whole block stays zero
			}
			for p = 0; p < bR; p++ {
				rowBase = (i*bR+p)*resCols + j*bC
				for q = 0; q < bC; q++ {
					bv, err = b.At(p, q)
					if err != nil {
						return nil, cmatrixErrorf(opKron, fmt.Errorf("At(%d,%d): %w", p, q, err))
					}
					res.data[rowBase+q] = av * bv
				}
			}
		}
	}

	// Return result
	return res, nil
}
