// SPDX-License-Identifier: MIT
package qstate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/braket/cmatrix"
	"github.com/katalvlaran/braket/qstate"
)

// invSqrt2 is the amplitude of an equal two-way superposition.
const invSqrt2 = 1 / math.Sqrt2

// TestNew_EmptyState verifies that New rejects an empty amplitude slice
// with ErrEmptyState.
func TestNew_EmptyState(t *testing.T) {
	_, err := qstate.New(nil)
	assert.ErrorIs(t, err, qstate.ErrEmptyState, "nil amplitude slice must error")

	_, err = qstate.New([]complex128{})
	assert.ErrorIs(t, err, qstate.ErrEmptyState, "empty amplitude slice must error")
}

// TestNew_CopiesAmplitudes ensures the constructor copies its input, so later
// mutation of the caller's slice cannot reach the state.
func TestNew_CopiesAmplitudes(t *testing.T) {
	amps := []complex128{1, 0}
	s, err := qstate.New(amps)
	require.NoError(t, err, "construction must succeed")

	amps[0] = 99 // caller scribbles on its own slice

	a, err := s.Amplitude(0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), a, "state must hold the value seen at construction")
}

// TestNew_NaNPolicy verifies that the cmatrix ingestion policy flows through:
// NaN amplitudes are rejected by default and admitted under the opt-out.
func TestNew_NaNPolicy(t *testing.T) {
	bad := []complex128{complex(math.NaN(), 0)}

	_, err := qstate.New(bad)
	assert.ErrorIs(t, err, cmatrix.ErrNaNInf, "NaN amplitude must be rejected by default")

	s, err := qstate.New(bad, cmatrix.WithNoValidateNaNInf())
	require.NoError(t, err, "opt-out must admit the value")
	a, err := s.Amplitude(0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(real(a)), "NaN must be preserved under opt-out")
}

// TestZero_BasisState checks that Zero builds |0...0⟩: dimension 2^n,
// unit amplitude at index 0, and a normalized Born distribution.
func TestZero_BasisState(t *testing.T) {
	s, err := qstate.Zero(2)
	require.NoError(t, err, "Zero(2) must succeed")

	assert.Equal(t, 4, s.Dim(), "two qubits span four basis states")

	n, ok := s.Qubits()
	assert.True(t, ok, "dimension 4 is a qubit register")
	assert.Equal(t, 2, n, "dimension 4 means two qubits")

	probs := s.Probabilities()
	require.Len(t, probs, 4)
	assert.Equal(t, 1.0, probs[0], "all probability mass on |00⟩")
	assert.Equal(t, 0.0, probs[1]+probs[2]+probs[3], "no mass elsewhere")

	assert.True(t, s.IsNormalized(), "basis states are unit vectors")
}

// TestZero_TrivialAndInvalid covers the 0-qubit edge and the range guard.
func TestZero_TrivialAndInvalid(t *testing.T) {
	s, err := qstate.Zero(0)
	require.NoError(t, err, "zero qubits is the trivial one-dimensional state")
	assert.Equal(t, 1, s.Dim())

	_, err = qstate.Zero(-1)
	assert.ErrorIs(t, err, qstate.ErrInvalidQubits, "negative qubit count must error")

	_, err = qstate.Zero(qstate.MaxQubits + 1)
	assert.ErrorIs(t, err, qstate.ErrInvalidQubits, "counts beyond MaxQubits must error")
}

// TestQubits_NonPowerOfTwo verifies that qutrit-like dimensions report ok=false.
func TestQubits_NonPowerOfTwo(t *testing.T) {
	s, err := qstate.New([]complex128{1, 0, 0})
	require.NoError(t, err)

	_, ok := s.Qubits()
	assert.False(t, ok, "dimension 3 is not a qubit register")
}

// TestAmplitude_OutOfRange ensures basis-index bounds surface the cmatrix
// range sentinel.
func TestAmplitude_OutOfRange(t *testing.T) {
	s, err := qstate.Zero(1)
	require.NoError(t, err)

	_, err = s.Amplitude(-1)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	_, err = s.Amplitude(2)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
}

// TestAmplitudes_FreshCopy ensures the accessor hands out an independent slice.
func TestAmplitudes_FreshCopy(t *testing.T) {
	s, err := qstate.New([]complex128{1i, 0})
	require.NoError(t, err)

	amps := s.Amplitudes()
	require.Len(t, amps, 2)
	amps[0] = 42 // mutate the copy

	a, err := s.Amplitude(0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1i), a, "the state must not observe copy mutation")
}

// TestNorm_And_Probabilities checks ‖ψ‖ and the Born distribution on a 3-4-5
// style amplitude pair.
func TestNorm_And_Probabilities(t *testing.T) {
	s, err := qstate.New([]complex128{3, 4i})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, s.Norm(), 1e-12, "‖(3,4i)‖ = 5")

	probs := s.Probabilities()
	require.Len(t, probs, 2)
	assert.InDelta(t, 9.0, probs[0], 1e-12, "|3|² = 9")
	assert.InDelta(t, 16.0, probs[1], 1e-12, "|4i|² = 16")
}

// TestIsNormalized_Tolerance exercises the default and overridden epsilon.
func TestIsNormalized_Tolerance(t *testing.T) {
	unit, err := qstate.New([]complex128{1})
	require.NoError(t, err)
	assert.True(t, unit.IsNormalized(), "|0⟩ has unit norm")

	long, err := qstate.New([]complex128{1, 1})
	require.NoError(t, err)
	assert.False(t, long.IsNormalized(), "‖(1,1)‖ = √2 is not 1 at the default epsilon")
	assert.True(t, long.IsNormalized(cmatrix.WithEpsilon(1)), "a unit-wide window accepts √2")
}

// TestNormalize_ScalesToUnit verifies direction-preserving scaling and that
// the receiver is untouched.
func TestNormalize_ScalesToUnit(t *testing.T) {
	s, err := qstate.New([]complex128{3, 4i})
	require.NoError(t, err)

	u, err := s.Normalize()
	require.NoError(t, err, "nonzero states normalize")

	assert.True(t, u.IsNormalized(), "result must have unit norm")
	a0, err := u.Amplitude(0)
	require.NoError(t, err)
	a1, err := u.Amplitude(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, real(a0), 1e-12, "3/5")
	assert.InDelta(t, 0.8, imag(a1), 1e-12, "4/5 on the imaginary axis")

	// Receiver unchanged.
	assert.InDelta(t, 5.0, s.Norm(), 1e-12, "original keeps its norm")
}

// TestNormalize_Idempotent ensures normalizing twice changes nothing beyond
// rounding.
func TestNormalize_Idempotent(t *testing.T) {
	s, err := qstate.New([]complex128{1 + 1i, 2 - 1i, 0.5i})
	require.NoError(t, err)

	once, err := s.Normalize()
	require.NoError(t, err)
	twice, err := once.Normalize()
	require.NoError(t, err)

	ok, err := cmatrix.AllClose(once.Vector(), twice.Vector())
	require.NoError(t, err)
	assert.True(t, ok, "normalization must be idempotent within tolerance")
}

// TestNormalize_ZeroNorm verifies the undefined-direction guard.
func TestNormalize_ZeroNorm(t *testing.T) {
	s, err := qstate.New([]complex128{0, 0, 0})
	require.NoError(t, err, "the zero vector is constructible")

	_, err = s.Normalize()
	assert.ErrorIs(t, err, qstate.ErrZeroNorm, "the zero vector has no direction")
}

// TestApply_HadamardOnZero runs the canonical superposition: H|0⟩ has equal
// probability on both basis states.
func TestApply_HadamardOnZero(t *testing.T) {
	zero, err := qstate.Zero(1)
	require.NoError(t, err)
	h, err := qstate.Hadamard()
	require.NoError(t, err)

	plus, err := zero.Apply(h)
	require.NoError(t, err, "H is 2×2, the state is dim 2")

	probs := plus.Probabilities()
	require.Len(t, probs, 2)
	assert.InDelta(t, 0.5, probs[0], 1e-12, "P(0) = 1/2")
	assert.InDelta(t, 0.5, probs[1], 1e-12, "P(1) = 1/2")
	assert.True(t, plus.IsNormalized(), "unitaries preserve the norm")
}

// TestApply_ShapeMismatch ensures operator/state dimension conflicts surface
// the cmatrix shape sentinel.
func TestApply_ShapeMismatch(t *testing.T) {
	s, err := qstate.Zero(2) // dim 4
	require.NoError(t, err)
	h, err := qstate.Hadamard() // 2×2
	require.NoError(t, err)

	_, err = s.Apply(h)
	assert.ErrorIs(t, err, cmatrix.ErrShapeMismatch, "2×2 gate cannot act on dim 4")

	_, err = s.Apply(nil)
	assert.ErrorIs(t, err, cmatrix.ErrNilMatrix, "nil operator must error")
}

// TestApply_RectangularOperator verifies that non-square operators are legal
// and change the dimension (here: the ⟨0| projector row).
func TestApply_RectangularOperator(t *testing.T) {
	s, err := qstate.New([]complex128{complex(invSqrt2, 0), complex(invSqrt2, 0)})
	require.NoError(t, err)

	bra0, err := cmatrix.RowVector([]complex128{1, 0})
	require.NoError(t, err)

	comp, err := s.Apply(bra0)
	require.NoError(t, err, "1×2 operator on a dim-2 state")
	assert.Equal(t, 1, comp.Dim(), "the projection is one-dimensional")

	a, err := comp.Amplitude(0)
	require.NoError(t, err)
	assert.InDelta(t, invSqrt2, real(a), 1e-12, "⟨0|+⟩ = 1/√2")
}

// TestInnerProduct_Properties checks the defining algebra: ⟨ψ|ψ⟩ = ‖ψ‖²,
// orthogonality of distinct basis states, and conjugate symmetry.
func TestInnerProduct_Properties(t *testing.T) {
	psi, err := qstate.New([]complex128{1 + 1i, 2 - 1i})
	require.NoError(t, err)
	phi, err := qstate.New([]complex128{0.5i, 1})
	require.NoError(t, err)

	// ⟨ψ|ψ⟩ is real and equals the squared norm.
	self, err := psi.InnerProduct(psi)
	require.NoError(t, err)
	assert.InDelta(t, psi.Norm()*psi.Norm(), real(self), 1e-12, "⟨ψ|ψ⟩ = ‖ψ‖²")
	assert.InDelta(t, 0.0, imag(self), 1e-12, "self inner product is real")

	// Distinct basis states are orthogonal.
	e0, err := qstate.New([]complex128{1, 0})
	require.NoError(t, err)
	e1, err := qstate.New([]complex128{0, 1})
	require.NoError(t, err)
	ortho, err := e0.InnerProduct(e1)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), ortho, "⟨0|1⟩ = 0")

	// Conjugate symmetry: ⟨ψ|φ⟩ = conj(⟨φ|ψ⟩).
	ab, err := psi.InnerProduct(phi)
	require.NoError(t, err)
	ba, err := phi.InnerProduct(psi)
	require.NoError(t, err)
	assert.InDelta(t, real(ab), real(ba), 1e-12, "real parts agree")
	assert.InDelta(t, imag(ab), -imag(ba), 1e-12, "imaginary parts flip")
}

// TestInnerProduct_Errors covers nil and dimension-mismatch operands.
func TestInnerProduct_Errors(t *testing.T) {
	psi, err := qstate.Zero(1)
	require.NoError(t, err)
	big, err := qstate.Zero(2)
	require.NoError(t, err)

	_, err = psi.InnerProduct(nil)
	assert.ErrorIs(t, err, qstate.ErrNilState, "nil other must error")

	_, err = psi.InnerProduct(big)
	assert.ErrorIs(t, err, cmatrix.ErrShapeMismatch, "dim 2 vs dim 4 must error")
}

// TestFidelity_Extremes verifies overlap 1 for identical states and 0 for
// orthogonal ones.
func TestFidelity_Extremes(t *testing.T) {
	e0, err := qstate.New([]complex128{1, 0})
	require.NoError(t, err)
	e1, err := qstate.New([]complex128{0, 1})
	require.NoError(t, err)

	same, err := e0.Fidelity(e0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-12, "a state overlaps itself perfectly")

	none, err := e0.Fidelity(e1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, none, 1e-12, "orthogonal states never overlap")
}

// TestTensor_JoinsRegisters checks dimensions and amplitude placement of
// |ψ⟩⊗|φ⟩.
func TestTensor_JoinsRegisters(t *testing.T) {
	e1, err := qstate.New([]complex128{0, 1}) // |1⟩
	require.NoError(t, err)
	e0, err := qstate.New([]complex128{1, 0}) // |0⟩
	require.NoError(t, err)

	joint, err := e1.Tensor(e0)
	require.NoError(t, err)
	assert.Equal(t, 4, joint.Dim(), "2⊗2 spans dim 4")

	// |1⟩⊗|0⟩ = |10⟩ = index 2 in the Kron layout.
	a, err := joint.Amplitude(2)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), a, "mass sits on |10⟩")

	_, err = e1.Tensor(nil)
	assert.ErrorIs(t, err, qstate.ErrNilState, "nil other must error")
}

// TestBellCircuit runs the standard entangling sequence CNOT·(H⊗I)|00⟩ and
// checks the Bell distribution: half on |00⟩, half on |11⟩, nothing between.
func TestBellCircuit(t *testing.T) {
	reg, err := qstate.Zero(2)
	require.NoError(t, err)

	h, err := qstate.Hadamard()
	require.NoError(t, err)
	i1, err := qstate.Identity(1)
	require.NoError(t, err)
	hOnFirst, err := cmatrix.Kron(h, i1)
	require.NoError(t, err, "H on the first qubit, identity on the second")

	cx, err := qstate.CNOT()
	require.NoError(t, err)

	mid, err := reg.Apply(hOnFirst)
	require.NoError(t, err)
	bell, err := mid.Apply(cx)
	require.NoError(t, err)

	probs := bell.Probabilities()
	require.Len(t, probs, 4)
	assert.InDelta(t, 0.5, probs[0], 1e-12, "P(00) = 1/2")
	assert.InDelta(t, 0.0, probs[1], 1e-12, "P(01) = 0")
	assert.InDelta(t, 0.0, probs[2], 1e-12, "P(10) = 0")
	assert.InDelta(t, 0.5, probs[3], 1e-12, "P(11) = 1/2")
	assert.True(t, bell.IsNormalized(), "the circuit is unitary end to end")
}

// TestString_KetRendering pins the deterministic ket output: binary labels
// for qubit registers, decimal labels otherwise, zero terms omitted.
func TestString_KetRendering(t *testing.T) {
	reg, err := qstate.Zero(2)
	require.NoError(t, err)
	assert.Equal(t, "(1+0i)|00⟩", reg.String(), "basis state renders as one term")

	qutrit, err := qstate.New([]complex128{0, 1i, 0})
	require.NoError(t, err)
	assert.Equal(t, "(0+1i)|1⟩", qutrit.String(), "non-power dims use decimal labels")

	null, err := qstate.New([]complex128{0, 0})
	require.NoError(t, err)
	assert.Equal(t, "0", null.String(), "the zero vector renders as 0")

	scalar, err := qstate.Zero(0)
	require.NoError(t, err)
	assert.Equal(t, "(1+0i)|0⟩", scalar.String(), "the trivial register still shows a label")
}

// TestVector_SharesImmutableColumn documents that Vector hands out the
// backing column and that this is safe because Dense carries no mutator.
func TestVector_SharesImmutableColumn(t *testing.T) {
	s, err := qstate.New([]complex128{2i})
	require.NoError(t, err)

	v := s.Vector()
	require.NotNil(t, v)
	assert.Equal(t, 1, v.Rows())
	assert.Equal(t, 1, v.Cols())

	got, err := v.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(2i), got)
}
