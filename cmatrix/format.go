// SPDX-License-Identifier: MIT
// Package cmatrix: deterministic text rendering of complex components.
//
// Purpose:
//  - One fixed formatting convention for every display surface (String,
//    examples, demo binaries): `re±imi`, both parts always shown, explicit
//    sign on the imaginary part.
//  - Rendering is pure and deterministic; equal values produce equal text.

package cmatrix

import "fmt"

// FormatComplex renders z as "re±imi" with both parts always present and the
// imaginary sign explicit: 1+1i, 3+0i, 0-1i, 0.5-2.25i.
//
// Negative-zero components are normalized to +0 before formatting so that
// algebraically equal values (e.g. a real value and its conjugate) render
// identically.
//
// Determinism: output depends only on the numeric value. Complexity: O(1).
func FormatComplex(z complex128) string {
	re, im := real(z), imag(z)
	// Normalize signed zeros; -0 compares equal to 0, assignment rewrites it.
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}

	return fmt.Sprintf("%g%+gi", re, im)
}

// FormatVector renders a value slice as a single bracketed row using
// FormatComplex per element: "[1+0i, 0-1i]".
// Complexity: O(n).
func FormatVector(vals []complex128) string {
	s := "["
	for i, v := range vals {
		if i > 0 {
			s += ", "
		}
		s += FormatComplex(v)
	}

	return s + "]"
}
