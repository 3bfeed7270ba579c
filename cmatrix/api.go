// SPDX-License-Identifier: MIT
// Package cmatrix public facade: aliases and convenience wrappers over the
// canonical kernels, kept thin so each facade documents intent rather than
// re-implementing semantics.
//
// Purpose:
//   - Offer familiar names (Sum, Product, T, Dagger, TensorProduct) for
//     callers who prefer textbook vocabulary over kernel names.
//   - Offer shape-derived constructors (ZerosLike, IdentityLike) that pair
//     naturally with the value-semantics kernels.
//
// Notes:
//   - Every facade delegates 1:1; error text still carries the kernel's
//     operation tag (e.g. "Mul: ..." from Product).

package cmatrix

// NewZeros returns a rows×cols all-zero matrix.
// Alias of NewDense; present for readability at call sites that also use
// NewIdentity.
//
// Errors: ErrInvalidDimensions (rows <= 0 or cols <= 0).
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns an all-zero matrix with the same shape as m.
//
// Errors: ErrNilMatrix (nil input).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("ZerosLike", err)
	}
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns an identity matrix with the same row count as m.
// The source must be square; a non-square m has no identity of "its" order.
//
// Errors: ErrNilMatrix (nil input), ErrShapeMismatch (non-square m; the wrap
// names the offending shape twice to keep the vs-form uniform).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("IdentityLike", err)
	}
	s := ShapeOf(m)
	if !s.Square() {
		return nil, shapeErrorf("IdentityLike", s, s, ErrShapeMismatch)
	}
	return NewIdentity(s.Rows)
}

// CloneMatrix returns a deep, independent copy of m as a *Dense.
// Unlike the Matrix.Clone method this facade also normalizes any
// implementation to the package's dense representation.
//
// Errors: ErrNilMatrix (nil input); read failures wrapped with "CloneMatrix".
func CloneMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("CloneMatrix", err)
	}
	// Scale by one: same validation, same traversal, fresh backing slice.
	return scaleBy(m, 1, "CloneMatrix")
}

// Sum is the textbook alias of Add: C = A + B.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is the textbook alias of Sub: C = A - B.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is the textbook alias of Mul: C = A × B.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is the compact alias of Transpose: mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is the argument-flipped alias of Scale for fluent call sites:
// ScaleBy(s, m) == Scale(m, s).
func ScaleBy(s complex128, m Matrix) (*Dense, error) { return Scale(m, s) }

// ConjugateTranspose is the long-form alias of Adjoint: m†.
func ConjugateTranspose(m Matrix) (*Dense, error) { return Adjoint(m) }

// Dagger is the physics-notation alias of Adjoint: m†.
func Dagger(m Matrix) (*Dense, error) { return Adjoint(m) }

// TensorProduct is the long-form alias of Kron: A ⊗ B.
func TensorProduct(a, b Matrix) (*Dense, error) { return Kron(a, b) }

// MatVecMul is the long-form alias of MatVec: y = m·x.
func MatVecMul(m Matrix, x []complex128) ([]complex128, error) { return MatVec(m, x) }
