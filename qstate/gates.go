// SPDX-License-Identifier: MIT
// Package qstate: standard gate constructors as cmatrix operators.
//
// Purpose:
//   - Provide the textbook single- and two-qubit gates as plain matrices so
//     that State.Apply, cmatrix.Kron and the cmatrix predicates compose them
//     like any other operator.
//
// Notes:
//   - Constructors return fresh matrices; callers may cache them, and sharing
//     is safe because cmatrix.Dense is immutable.
//   - Every gate here passes cmatrix.IsUnitary under the default tolerance;
//     the Paulis and Hadamard additionally pass cmatrix.IsHermitian.

package qstate

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/braket/cmatrix"
)

// Gate operation tags for unified error wrapping.
const (
	opIdentity = "Identity"
	opPhase    = "Phase"
)

// Identity returns the identity operator on nQubits qubits: I with dimension
// 2^nQubits. Useful as the neutral factor in Kron compositions, e.g.
// Kron(H, Identity(1)) acts on the first qubit of a pair.
//
// Errors: ErrInvalidQubits (nQubits outside [0, MaxQubits]).
func Identity(nQubits int) (*cmatrix.Dense, error) {
	if nQubits < 0 || nQubits > MaxQubits {
		return nil, qstateErrorf(opIdentity, ErrInvalidQubits)
	}

	id, err := cmatrix.NewIdentity(1 << nQubits)
	if err != nil {
		return nil, qstateErrorf(opIdentity, err)
	}

	return id, nil
}

// PauliX returns the bit-flip gate X = [[0,1],[1,0]]: X|0⟩ = |1⟩.
func PauliX() (*cmatrix.Dense, error) {
	return cmatrix.FromRows([][]complex128{
		{0, 1},
		{1, 0},
	})
}

// PauliY returns Y = [[0,−i],[i,0]]: a bit flip with a ±i phase.
func PauliY() (*cmatrix.Dense, error) {
	return cmatrix.FromRows([][]complex128{
		{0, -1i},
		{1i, 0},
	})
}

// PauliZ returns the phase-flip gate Z = [[1,0],[0,−1]]: Z|1⟩ = −|1⟩.
func PauliZ() (*cmatrix.Dense, error) {
	return cmatrix.FromRows([][]complex128{
		{1, 0},
		{0, -1},
	})
}

// Hadamard returns H = (1/√2)·[[1,1],[1,−1]], mapping basis states onto equal
// superpositions: H|0⟩ = (|0⟩+|1⟩)/√2.
func Hadamard() (*cmatrix.Dense, error) {
	h := complex(1/math.Sqrt2, 0)

	return cmatrix.FromRows([][]complex128{
		{h, h},
		{h, -h},
	})
}

// Phase returns the relative-phase gate P(θ) = [[1,0],[0,e^{iθ}]].
// S and T are its θ=π/2 and θ=π/4 specializations.
//
// Errors: cmatrix.ErrNaNInf when θ is NaN or ±Inf (e^{iθ} is then undefined).
func Phase(theta float64) (*cmatrix.Dense, error) {
	m, err := cmatrix.FromRows([][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, theta))},
	})
	if err != nil {
		return nil, qstateErrorf(opPhase, err)
	}

	return m, nil
}

// SGate returns S = P(π/2), the quarter-turn phase gate.
func SGate() (*cmatrix.Dense, error) { return Phase(math.Pi / 2) }

// TGate returns T = P(π/4), the eighth-turn phase gate.
func TGate() (*cmatrix.Dense, error) { return Phase(math.Pi / 4) }

// CNOT returns the controlled-X gate on two qubits (control on the high-order
// qubit of the Kron layout): |10⟩ ↔ |11⟩, |00⟩ and |01⟩ fixed.
func CNOT() (*cmatrix.Dense, error) {
	return cmatrix.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
}

// CZ returns the controlled-Z gate: |11⟩ picks up a −1 phase, all other basis
// states are fixed. Symmetric in control and target.
func CZ() (*cmatrix.Dense, error) {
	return cmatrix.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	})
}

// Swap returns the two-qubit SWAP gate: |01⟩ ↔ |10⟩.
func Swap() (*cmatrix.Dense, error) {
	return cmatrix.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
}
