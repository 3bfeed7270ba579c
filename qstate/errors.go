// SPDX-License-Identifier: MIT
package qstate

import "errors"

var (
	// ErrNilState indicates a nil *State operand.
	ErrNilState = errors.New("qstate: nil state")
	// ErrEmptyState indicates an amplitude slice with no entries.
	ErrEmptyState = errors.New("qstate: state must have at least one amplitude")
	// ErrInvalidQubits indicates a qubit count outside [0, MaxQubits].
	ErrInvalidQubits = errors.New("qstate: qubit count out of range")
	// ErrZeroNorm indicates a state whose norm is exactly zero and therefore
	// cannot be normalized.
	ErrZeroNorm = errors.New("qstate: zero-norm state cannot be normalized")
)
