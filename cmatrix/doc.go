// SPDX-License-Identifier: MIT

// Package cmatrix offers immutable dense matrices over complex128 scalars.
//
// The cmatrix package provides:
//
//   - Value-semantics construction (FromRows, FromParts, NewIdentity,
//     ColumnVector, RowVector): inputs are copied, results are fresh, and no
//     operation ever mutates an operand.
//   - Element-wise algebra (Add, Sub, Neg, Scale) and structural transforms
//     (Transpose, Conj, Adjoint) with exact involution guarantees.
//   - Matrix and matrix-vector products (Mul, MatVec) and the tensor
//     (Kronecker) product Kron for composing operators on product spaces.
//   - Tolerant comparison (AllClose) and structural predicates (IsHermitian,
//     IsUnitary) driven by one absolute per-component epsilon
//     (DefaultEpsilon, overridable via WithEpsilon).
//   - Deterministic rendering (String, FormatComplex) in "re±im·i" form, so
//     equal values always print identically.
//
// Shape errors are fail-fast and carry both operand shapes; asking a
// predicate about a matrix outside its domain (a non-square operand for
// IsHermitian or IsUnitary) answers false rather than erroring.
//
// Dense stores one flat row-major []complex128 and is best for the small and
// mid-sized operators this package targets; O(r·c) memory per value is the
// cost of immutability.
//
// See the examples in this package and qstate for usage patterns.
package cmatrix
