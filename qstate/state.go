// SPDX-License-Identifier: MIT
// Package qstate: immutable pure-state vectors on top of cmatrix columns.
//
// Purpose:
//   - Represent a finite-dimensional pure state |ψ⟩ as a dim×1 cmatrix.Dense
//     and derive every behavior (application, tensoring, inner products) from
//     the cmatrix kernels instead of re-implementing complex algebra here.
//   - Keep value semantics end to end: a State never mutates; every operation
//     returns a fresh State.
//
// Notes:
//   - Amplitude order is the standard basis order: index k is |k⟩, and for
//     power-of-two dimensions k reads as the binary occupation pattern.
//   - Numeric policy (tolerance, NaN/Inf ingestion) is cmatrix's, configured
//     with the same functional options and resolved via ResolveOptions.

package qstate

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
	"strings"

	"github.com/katalvlaran/braket/cmatrix"
)

// MaxQubits bounds Zero's qubit count; 2^MaxQubits amplitudes is already
// 16 GiB of complex128 and far past this package's dense-vector design point.
const MaxQubits = 30

// Operation name constants for unified error wrapping.
const (
	opNew          = "New"
	opZero         = "Zero"
	opAmplitude    = "Amplitude"
	opNormalize    = "Normalize"
	opApply        = "Apply"
	opInnerProduct = "InnerProduct"
	opFidelity     = "Fidelity"
	opTensor       = "Tensor"
)

// qstateErrorf wraps err with an operation tag, preserving the original error
// via %w. Call only with err != nil.
func qstateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// State is an immutable pure-state vector. The zero value is not usable;
// construct through New, Zero, or the methods that return fresh states.
//
// Immutability is inherited: the backing column is a cmatrix.Dense, which has
// no mutator, so states can be shared freely across goroutines.
type State struct {
	vec *cmatrix.Dense // dim×1 column of amplitudes
}

// New builds a State from an amplitude slice in basis order. The slice is
// copied; the caller keeps ownership of its own memory.
//
// The amplitudes are taken verbatim: New does not normalize. Call Normalize
// when a unit vector is required.
//
// Inputs:
//   - amps: at least one amplitude; index k becomes ⟨k|ψ⟩.
//   - opts: cmatrix options; WithNoValidateNaNInf admits non-finite values.
//
// Returns:
//   - *State: fresh state of dimension len(amps).
//   - error : ErrEmptyState for an empty slice; cmatrix.ErrNaNInf when the
//     ingestion policy rejects a component.
//
// Complexity: Time O(n), Space O(n).
func New(amps []complex128, opts ...cmatrix.Option) (*State, error) {
	// Domain check first: the package's own vocabulary for "no amplitudes".
	if len(amps) == 0 {
		return nil, qstateErrorf(opNew, ErrEmptyState)
	}

	vec, err := cmatrix.ColumnVector(amps, opts...)
	if err != nil {
		return nil, qstateErrorf(opNew, err)
	}

	return &State{vec: vec}, nil
}

// Zero returns the computational basis state |0...0⟩ on nQubits qubits:
// dimension 2^nQubits, amplitude 1 at index 0, zero elsewhere. nQubits = 0 is
// the trivial one-dimensional state.
//
// Returns ErrInvalidQubits when nQubits is negative or exceeds MaxQubits.
//
// Complexity: Time O(2^n), Space O(2^n).
func Zero(nQubits int) (*State, error) {
	if nQubits < 0 || nQubits > MaxQubits {
		return nil, qstateErrorf(opZero, fmt.Errorf("nQubits=%d: %w", nQubits, ErrInvalidQubits))
	}

	amps := make([]complex128, 1<<nQubits)
	amps[0] = 1 // ⟨0...0|ψ⟩ = 1

	vec, err := cmatrix.ColumnVector(amps)
	if err != nil {
		return nil, qstateErrorf(opZero, err)
	}

	return &State{vec: vec}, nil
}

// fromColumn wraps an existing dim×1 Dense produced by a cmatrix kernel.
// Internal: callers guarantee the column shape.
func fromColumn(vec *cmatrix.Dense) *State {
	return &State{vec: vec}
}

// Dim returns the number of amplitudes.
func (s *State) Dim() int {
	return s.vec.Rows()
}

// Qubits returns the qubit count when the dimension is a power of two.
// ok is false for dimensions that are not 2^n (qutrits and friends), in which
// case n is meaningless.
func (s *State) Qubits() (n int, ok bool) {
	d := s.Dim()
	if bits.OnesCount(uint(d)) != 1 {
		return 0, false
	}

	return bits.TrailingZeros(uint(d)), true
}

// Amplitude returns ⟨k|ψ⟩ for basis index k.
//
// Errors: cmatrix.ErrOutOfRange for k outside [0, Dim).
func (s *State) Amplitude(k int) (complex128, error) {
	a, err := s.vec.At(k, 0)
	if err != nil {
		return 0, qstateErrorf(opAmplitude, err)
	}

	return a, nil
}

// Amplitudes returns a fresh copy of the amplitude slice in basis order.
// Mutating the returned slice does not affect the state.
//
// Complexity: Time O(n), Space O(n).
func (s *State) Amplitudes() []complex128 {
	n := s.Dim()
	out := make([]complex128, n)
	var a complex128
	for k := 0; k < n; k++ {
		a, _ = s.vec.At(k, 0) // in-range by construction
		out[k] = a
	}

	return out
}

// Vector returns the backing dim×1 column. Sharing is safe: cmatrix.Dense has
// no mutator, so the caller cannot alter the state through it.
func (s *State) Vector() *cmatrix.Dense {
	return s.vec
}

// Norm returns the Euclidean norm ‖ψ‖ = sqrt(Σ |a_k|²).
//
// Determinism: fixed k=0..n-1 accumulation order.
// Complexity: Time O(n), Space O(1).
func (s *State) Norm() float64 {
	n := s.Dim()
	var sum float64
	var a complex128
	for k := 0; k < n; k++ {
		a, _ = s.vec.At(k, 0)          // in-range by construction
		sum += real(a * cmplx.Conj(a)) // |a|² accumulated before one sqrt
	}

	return math.Sqrt(sum)
}

// Probabilities returns the Born-rule distribution |a_k|² over basis states.
// The result sums to ‖ψ‖², i.e. to 1 exactly when the state is normalized.
//
// Complexity: Time O(n), Space O(n).
func (s *State) Probabilities() []float64 {
	n := s.Dim()
	probs := make([]float64, n)
	var a complex128
	for k := 0; k < n; k++ {
		a, _ = s.vec.At(k, 0) // in-range by construction
		probs[k] = real(a * cmplx.Conj(a))
	}

	return probs
}

// IsNormalized reports whether ‖ψ‖ is within the absolute tolerance of 1.
// The tolerance is cmatrix's DefaultEpsilon unless WithEpsilon overrides it.
//
// NaN amplitudes yield a NaN norm and therefore false.
func (s *State) IsNormalized(opts ...cmatrix.Option) bool {
	o := cmatrix.ResolveOptions(opts...)

	return math.Abs(s.Norm()-1) <= o.Epsilon()
}

// Normalize returns the unit-norm state ψ/‖ψ‖ as a fresh State.
//
// Behavior highlights:
//   - Idempotent up to rounding: normalizing a normalized state is a no-op
//     within tolerance.
//   - The receiver is never modified.
//
// Returns:
//   - *State: fresh normalized state.
//   - error : ErrZeroNorm when ‖ψ‖ == 0 (direction undefined).
//
// Complexity: Time O(n), Space O(n).
func (s *State) Normalize() (*State, error) {
	norm := s.Norm()
	if norm == 0 {
		return nil, qstateErrorf(opNormalize, ErrZeroNorm)
	}

	scaled, err := cmatrix.Scale(s.vec, complex(1/norm, 0))
	if err != nil {
		return nil, qstateErrorf(opNormalize, err)
	}

	return fromColumn(scaled), nil
}

// Apply returns op·|ψ⟩ as a fresh State. The operator's column count must
// equal Dim(); rectangular operators are legal and change the dimension
// (isometries, projectors onto larger or smaller spaces).
//
// Implementation:
//   - One cmatrix.Mul against the backing column; all validation and the
//     fast path live in the kernel.
//
// Errors:
//   - cmatrix.ErrNilMatrix  (nil operator),
//   - cmatrix.ErrShapeMismatch (op.Cols() != Dim(); both shapes named).
//
// Complexity: Time O(r·dim), Space O(r) for an r×dim operator.
func (s *State) Apply(op cmatrix.Matrix) (*State, error) {
	res, err := cmatrix.Mul(op, s.vec)
	if err != nil {
		return nil, qstateErrorf(opApply, err)
	}

	return fromColumn(res), nil
}

// InnerProduct returns ⟨ψ|φ⟩ = Σ conj(ψ_k)·φ_k, conjugate-linear in the
// receiver. ⟨ψ|ψ⟩ is real and equals ‖ψ‖².
//
// Inputs:
//   - other: same-dimension state (non-nil).
//
// Returns:
//   - complex128: the inner product.
//   - error     : ErrNilState (nil other) or cmatrix.ErrShapeMismatch
//     (dimension difference; both shapes named).
//
// Determinism: fixed k=0..n-1 accumulation order.
// Complexity: Time O(n), Space O(1).
func (s *State) InnerProduct(other *State) (complex128, error) {
	if other == nil {
		return 0, qstateErrorf(opInnerProduct, ErrNilState)
	}
	if err := cmatrix.ValidateSameShape(s.vec, other.vec); err != nil {
		return 0, qstateErrorf(opInnerProduct, err)
	}

	n := s.Dim()
	var acc, a, b complex128
	for k := 0; k < n; k++ {
		a, _ = s.vec.At(k, 0)     // in-range by construction
		b, _ = other.vec.At(k, 0) // same shape, validated above
		acc += cmplx.Conj(a) * b
	}

	return acc, nil
}

// Fidelity returns |⟨ψ|φ⟩|², the overlap probability between two states.
// For normalized states the value lies in [0, 1].
//
// Errors: as InnerProduct.
func (s *State) Fidelity(other *State) (float64, error) {
	ip, err := s.InnerProduct(other)
	if err != nil {
		return 0, qstateErrorf(opFidelity, err)
	}

	return real(ip * cmplx.Conj(ip)), nil
}

// Tensor returns the product state |ψ⟩⊗|φ⟩ on the joint space. The result's
// dimension is Dim()·other.Dim(); the receiver owns the high-order index
// block, matching the cmatrix.Kron layout.
//
// Errors: ErrNilState (nil other).
// Complexity: Time O(n·m), Space O(n·m).
func (s *State) Tensor(other *State) (*State, error) {
	if other == nil {
		return nil, qstateErrorf(opTensor, ErrNilState)
	}

	res, err := cmatrix.Kron(s.vec, other.vec)
	if err != nil {
		return nil, qstateErrorf(opTensor, err)
	}

	return fromColumn(res), nil
}

// String renders the state in ket notation, one term per non-zero amplitude:
//
//	(0.7071067811865476+0i)|00⟩ + (0.7071067811865476+0i)|11⟩
//
// Labels are fixed-width binary for power-of-two dimensions and decimal
// otherwise. Exact-zero amplitudes are omitted; the all-zero state renders
// as "0". Rendering is deterministic: basis order, FormatComplex components.
func (s *State) String() string {
	n := s.Dim()

	// Label width: binary when the dimension is a power of two.
	width := 0
	if q, ok := s.Qubits(); ok {
		width = q
		if width == 0 {
			width = 1 // dim 1 still prints |0⟩
		}
	}

	var sb strings.Builder
	first := true
	var a complex128
	for k := 0; k < n; k++ {
		a, _ = s.vec.At(k, 0) // in-range by construction
		if a == 0 {
			continue // omit exact-zero terms
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		sb.WriteByte('(')
		sb.WriteString(cmatrix.FormatComplex(a))
		sb.WriteString(")|")
		if width > 0 {
			fmt.Fprintf(&sb, "%0*b", width, k)
		} else {
			fmt.Fprintf(&sb, "%d", k)
		}
		sb.WriteString("⟩")
	}
	if first {
		return "0"
	}

	return sb.String()
}
