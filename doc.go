// Package braket is a small, self-contained playground for complex dense
// linear algebra — the vector and matrix arithmetic that quantum-computing
// intuition is built on.
//
// 🚀 What is braket?
//
//	A pure-value library that brings together:
//		• Immutable complex matrices: construct once, never mutate
//		• Textbook kernels: Add, Neg, Scale, Transpose, Conj, Adjoint, Mul
//		• Tensor (Kronecker) products for composing subsystems
//		• Tolerant predicates: IsHermitian, IsUnitary, AllClose
//		• State vectors and the standard gate set on top of the kernels
//
// ✨ Why choose braket?
//
//   - Value semantics – every operation returns a fresh matrix, no aliasing
//   - Total predicates – "is this Hermitian?" answers false, never panics
//   - Pure Go core – no cgo, deterministic results and rendering
//   - Checked construction – ragged or non-finite input is rejected up front
//
// Under the hood, everything is organized under two subpackages plus a demo:
//
//	cmatrix/        — the dense complex matrix type and every kernel/predicate
//	qstate/         — pure-state vectors, Born-rule observables, gates
//	cmd/braketdemo/ — worked examples and measurement-probability plots
//
// Quick ket example:
//
//	    |0⟩ ──H──●──
//	             │
//	    |0⟩ ─────X──   ⇒   (|00⟩ + |11⟩)/√2
//
//	two gates take a blank register to the Bell state.
//
// Dive into DESIGN.md for the package-by-package rationale, and the runnable
// examples in cmatrix and qstate for usage patterns.
//
//	go get github.com/katalvlaran/braket
package braket
