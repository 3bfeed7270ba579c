// SPDX-License-Identifier: MIT

// Package qstate offers immutable pure-state vectors and standard gates on
// top of cmatrix.
//
// The qstate package provides:
//
//   - State, a dim×1 amplitude column with value semantics: Apply, Normalize
//     and Tensor return fresh states and never touch the receiver.
//   - Constructors New (verbatim amplitudes) and Zero (|0...0⟩ on n qubits).
//   - Born-rule observables: Norm, Probabilities, InnerProduct, Fidelity.
//   - The textbook gate set (Pauli X/Y/Z, Hadamard, Phase/S/T, CNOT, CZ,
//     Swap, Identity) as plain cmatrix operators, so gates compose with
//     cmatrix.Kron and validate with cmatrix.IsUnitary.
//   - Ket-notation rendering: (a)|01⟩ + (b)|10⟩ with deterministic labels.
//
// States are honest vectors, not circuits: there is no qubit addressing, no
// measurement sampling, and no in-place gate application. Compose operators
// with cmatrix.Kron and apply them whole.
//
// See the examples in this package and cmatrix for usage patterns.
package qstate
