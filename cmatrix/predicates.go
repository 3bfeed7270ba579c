// SPDX-License-Identifier: MIT
// Package cmatrix predicates: exact and tolerant equality plus structural
// property checks (Hermitian, unitary).
//
// Purpose:
//   - Provide total, non-erroring answers for well-formed inputs: a predicate
//     asked about a matrix outside its domain (e.g. a non-square operand for
//     IsHermitian) reports false rather than failing.
//   - Centralize the tolerance policy: one component-wise closeness helper,
//     configured via functional options (WithEpsilon).
//
// Notes:
//   - All comparisons are component-wise on (re, im) with an absolute epsilon;
//     NaN components are never close to anything, including themselves.
//   - Errors are reserved for malformed calls (nil operands, failed reads).

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Predicate operation tags for unified error wrapping.
const (
	opEqual       = "Equal"
	opAllClose    = "AllClose"
	opIsHermitian = "IsHermitian"
	opIsUnitary   = "IsUnitary"
)

// closeScalar reports whether two complex values agree component-wise within
// the absolute tolerance eps: |re(a)−re(b)| ≤ eps and |im(a)−im(b)| ≤ eps.
// NaN in any component yields false (NaN compares unordered).
//
// Complexity: O(1).
func closeScalar(a, b complex128, eps float64) bool {
	dRe := math.Abs(real(a) - real(b))
	dIm := math.Abs(imag(a) - imag(b))
	// NaN propagates through Abs and fails both comparisons.
	return dRe <= eps && dIm <= eps
}

// Equal reports whether two matrices have identical shapes and exactly equal
// elements (bit-for-bit complex128 comparison, no tolerance).
//
// Behavior highlights:
//   - Shape difference is an answer, not an error: (false, nil).
//   - NaN components make Equal false (IEEE-754 NaN != NaN).
//
// Errors: ErrNilMatrix (nil input).
// Determinism: flat 0..n-1 fast path; i→j fallback.
// Complexity: Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use Equal for involution/round-trip checks where results must be exact;
//     use AllClose after arithmetic that may accumulate rounding.
func Equal(a, b Matrix) (bool, error) {
	// Validate both operands non-nil.
	if err := ValidateNotNil(a); err != nil {
		return false, cmatrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, cmatrixErrorf(opEqual, err)
	}

	// Shape difference answers the question.
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false, nil
	}

	// Fast path: *Dense with *Dense → single flat comparison loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				if da.data[idx] != db.data[idx] {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Fallback: interface reads with fixed i→j order.
	var i, j int
	var av, bv complex128
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, cmatrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, cmatrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllClose reports whether two matrices have identical shapes and agree
// element-wise within an absolute tolerance, compared independently on the
// real and imaginary components.
//
// Implementation:
//   - Stage 1: Validate both operands non-nil; resolve options (DefaultEpsilon
//     unless WithEpsilon overrides).
//   - Stage 2: Shape difference → (false, nil). Otherwise compare every
//     element via closeScalar in a fixed traversal order.
//
// Behavior highlights:
//   - Absolute epsilon per component: |Δre| ≤ eps AND |Δim| ≤ eps.
//   - eps = 0 degenerates to exact comparison (still false for NaN).
//   - A NaN component on either side makes the answer false, never an error.
//
// Inputs:
//   - a, b : operands (non-nil; any shapes).
//   - opts : optional WithEpsilon(eps) to override DefaultEpsilon.
//
// Returns:
//   - bool : true iff shapes match and all components are within eps.
//   - error: ErrNilMatrix on nil input; read failures wrapped with "AllClose".
//
// Determinism: flat 0..n-1 fast path; i→j fallback.
// Complexity: Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Tune eps to your arithmetic depth: chains of Mul/Kron may need a looser
//     bound than the default 1e-9.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	// Validate both operands non-nil.
	if err := ValidateNotNil(a); err != nil {
		return false, cmatrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, cmatrixErrorf(opAllClose, err)
	}
	cfg := gatherOptions(opts...) // resolve tolerance once

	// Shape difference answers the question.
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false, nil
	}

	// Fast path: *Dense with *Dense → single flat comparison loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				if !closeScalar(da.data[idx], db.data[idx], cfg.eps) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Fallback: interface reads with fixed i→j order.
	var i, j int
	var av, bv complex128
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, cmatrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, cmatrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !closeScalar(av, bv, cfg.eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsHermitian reports whether m equals its own adjoint within tolerance:
// m[i,j] ≈ conj(m[j,i]) for all i,j. Diagonal entries must therefore have a
// near-zero imaginary part.
//
// Implementation:
//   - Stage 1: Validate non-nil; resolve options. Non-square → (false, nil).
//   - Stage 2: Scan the upper triangle including the diagonal; each visit
//     settles the mirrored pair in one comparison, so every element is read
//     at most once.
//
// Behavior highlights:
//   - Non-square input is outside the predicate's domain and reports false;
//     it is not an error.
//   - No intermediate adjoint is materialized.
//
// Inputs:
//   - m    : candidate matrix (non-nil).
//   - opts : optional WithEpsilon(eps).
//
// Returns:
//   - bool : true iff m is square and Hermitian within eps.
//   - error: ErrNilMatrix on nil input; read failures wrapped.
//
// Determinism: fixed i→j upper-triangle scan.
// Complexity: Time O(n²), Space O(1).
//
// AI-Hints:
//   - Hermitian matrices have real eigenvalues; this check is the cheap gate
//     before spending effort on spectral code.
func IsHermitian(m Matrix, opts ...Option) (bool, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return false, cmatrixErrorf(opIsHermitian, err)
	}
	cfg := gatherOptions(opts...)

	// Non-square input is outside the domain: answer false.
	n := m.Rows()
	if n != m.Cols() {
		return false, nil
	}

	var i, j int
	// Fast path: *Dense flat reads over the upper triangle.
	if d, ok := m.(*Dense); ok {
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				if !closeScalar(d.data[i*n+j], cmplx.Conj(d.data[j*n+i]), cfg.eps) {
					return false, nil
				}
			}
		}
		return true, nil
	}

	// Fallback: interface reads with the same triangle scan.
	var upper, lower complex128
	var err error
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			upper, err = m.At(i, j)
			if err != nil {
				return false, cmatrixErrorf(opIsHermitian, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			lower, err = m.At(j, i)
			if err != nil {
				return false, cmatrixErrorf(opIsHermitian, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			if !closeScalar(upper, cmplx.Conj(lower), cfg.eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsUnitary reports whether m·m† equals the identity within tolerance, i.e.
// whether the columns of m form an orthonormal set under the complex inner
// product.
//
// Implementation:
//   - Stage 1: Validate non-nil; resolve options. Non-square → (false, nil).
//   - Stage 2: Materialize P = Mul(m, Adjoint(m)), then compare P against the
//     implicit identity: diagonal ≈ 1+0i, off-diagonal ≈ 0+0i.
//
// Behavior highlights:
//   - For square m, m·m† ≈ I implies m†·m ≈ I, so one product suffices.
//   - Non-square input reports false without error (domain answer).
//
// Inputs:
//   - m    : candidate matrix (non-nil).
//   - opts : optional WithEpsilon(eps).
//
// Returns:
//   - bool : true iff m is square and m·m† ≈ I within eps.
//   - error: ErrNilMatrix on nil input; kernel failures wrapped with "IsUnitary".
//
// Determinism: one Mul plus a fixed i→j comparison scan.
// Complexity: Time O(n³) dominated by the product, Space O(n²) for P.
//
// AI-Hints:
//   - Unitary matrices preserve vector norms; use this check to validate gate
//     or rotation constructions before applying them in bulk.
func IsUnitary(m Matrix, opts ...Option) (bool, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return false, cmatrixErrorf(opIsUnitary, err)
	}
	cfg := gatherOptions(opts...)

	// Non-square input is outside the domain: answer false.
	n := m.Rows()
	if n != m.Cols() {
		return false, nil
	}

	// P = m · m†.
	adj, err := Adjoint(m)
	if err != nil {
		return false, cmatrixErrorf(opIsUnitary, err)
	}
	prod, err := Mul(m, adj)
	if err != nil {
		return false, cmatrixErrorf(opIsUnitary, err)
	}

	// Compare P against the implicit identity, component-wise.
	var i, j int
	var want complex128
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if !closeScalar(prod.data[i*n+j], want, cfg.eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
