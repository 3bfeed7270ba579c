// SPDX-License-Identifier: MIT
// Package cmatrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for constructors/kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.
//   • Build fixtures exclusively through public constructors (the type is immutable).

package cmatrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/braket/cmatrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed cmatrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// Inputs:
//   - cmatrix.Matrix: any implementation.
//
// Returns:
//   - hide: wrapper that still satisfies Matrix but masks concrete type.
//
// Errors:
//   - None.
//
// Determinism:
//   - N/A (wrapper only).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ cmatrix.Matrix }

// MustDense ALLOCATES an r×c zero *Dense or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call cmatrix.NewDense(r,c).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - Concise boilerplate reduction in tests.
//
// Inputs:
//   - r,c: matrix shape.
//
// Returns:
//   - *cmatrix.Dense allocated with zeroed data.
//
// Errors:
//   - Fatal test failure if allocation fails.
//
// Determinism:
//   - Deterministic zero-initialized buffer.
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
//
// Notes:
//   - When you need non-zero data, use MustFromRows or RandFilledDense.
func MustDense(t *testing.T, r, c int) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from a 2D literal or fails the test.
// Implementation:
//   - Stage 1: Call cmatrix.FromRows(rows).
//   - Stage 2: t.Fatalf on error.
//
// Behavior highlights:
//   - The canonical fixture builder; rows read exactly as written in the test.
//
// Inputs:
//   - rows: rectangular [][]complex128 literal.
//
// Returns:
//   - *cmatrix.Dense with copied values.
//
// Errors:
//   - Fatal test failure on ragged/empty input or NaN/Inf rejection.
//
// Determinism:
//   - Deterministic copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use with CompareExact for hand-computed algebra cases.
func MustFromRows(t *testing.T, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity Matrix (main diagonal = 1+0i, else 0).
// Implementation:
//   - Stage 1: cmatrix.NewIdentity(n).
//   - Stage 2: t.Fatalf on error.
//
// Behavior highlights:
//   - Compact identity builder without exposing internal loops.
//
// Inputs:
//   - n: matrix size (n≥1).
//
// Returns:
//   - *cmatrix.Dense containing I_n.
//
// Errors:
//   - Fatal test failure if allocation fails.
//
// Determinism:
//   - Deterministic pattern (no RNG).
//
// Complexity:
//   - Time O(n^2) (initialization), Space O(n^2).
//
// AI-Hints:
//   - Great as a baseline for neutral-element and unitarity tests.
func IdentityDense(t *testing.T, n int) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic values
// whose real and imaginary parts are U(-1,1) by seed.
// Implementation:
//   - Stage 1: Build a row-major [][]complex128 via seeded RNG.
//   - Stage 2: Construct through FromRows (the type has no mutator).
//
// Behavior highlights:
//   - Reproducible randomness for property tests.
//
// Inputs:
//   - r,c: shape; seed: RNG seed.
//
// Returns:
//   - *cmatrix.Dense populated with random values.
//
// Errors:
//   - Fatal test failure if construction fails.
//
// Determinism:
//   - Deterministic per seed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Keeps values finite to avoid NaN/Inf policy interference.
//
// AI-Hints:
//   - Use identical seeds across fast vs fallback to isolate path differences.
func RandFilledDense(t *testing.T, r, c int, seed int64) *cmatrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]complex128, r)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		rows[i] = make([]complex128, c)
		for j = 0; j < c; j++ {
			rows[i][j] = complex(rng.Float64()*2-1, rng.Float64()*2-1) // U(-1,1) per component
		}
	}

	return MustFromRows(t, rows)
}

// MustAt READS m[i,j] or fails the test.
// Implementation:
//   - Stage 1: Call m.At(i,j).
//   - Stage 2: t.Fatalf on error, return value otherwise.
//
// Behavior highlights:
//   - Clear failure site on bounds/impl errors.
//
// Inputs:
//   - m,i,j.
//
// Returns:
//   - complex128 value.
//
// Errors:
//   - Fatal test failure on At error.
//
// Determinism:
//   - N/A.
//
// Complexity:
//   - O(1) per call.
//
// AI-Hints:
//   - Safe for fallback paths where At may validate internally.
func MustAt(t *testing.T, m cmatrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate and compare with == (no tolerances).
//
// Behavior highlights:
//   - Fails with exact mismatch location.
//
// Inputs:
//   - want: [][]complex128 expected; m: Matrix under test.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal test failure on size/value mismatch.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - Use only for Gaussian-integer-like or carefully crafted small matrices.
//
// AI-Hints:
//   - For results of rounding arithmetic use CompareClose instead.
func CompareExact(t *testing.T, want [][]complex128, m cmatrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v complex128
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under an absolute per-component eps.
// Implementation:
//   - Stage 1: cmatrix.AllClose(a, b, WithEpsilon(eps)).
//   - Stage 2: t.Fatalf if false or if AllClose returns error.
//
// Behavior highlights:
//   - Encapsulates numeric tolerance logic used across tests.
//
// Inputs:
//   - a,b: matrices; eps: absolute tolerance per component.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal test failure on mismatch or AllClose error.
//
// Determinism:
//   - Deterministic for fixed inputs.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use eps=0 for pure equality when numbers are exact.
func CompareClose(t *testing.T, a, b cmatrix.Matrix, eps float64) {
	t.Helper()
	ok, err := cmatrix.AllClose(a, b, cmatrix.WithEpsilon(eps))
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (eps=%g)", eps)
	}
}

// sliceClose ASSERTS |re(a[i]-b[i])| ≤ eps and |im(a[i]-b[i])| ≤ eps element-wise.
// Implementation:
//   - Stage 1: Length check.
//   - Stage 2: Per-component abs-diff compare vs eps (as in AllClose).
//
// Behavior highlights:
//   - Aligns with cmatrix.AllClose policy for 1D value slices (MatVec results).
//
// Inputs:
//   - a,b: slices; eps: absolute tolerance per component.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal test failure on mismatch.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(n), Space O(1).
//
// AI-Hints:
//   - Keep tolerances consistent with CompareClose to avoid split-brain.
func sliceClose(t *testing.T, a, b []complex128, eps float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	var dRe, dIm float64
	for i := range a {
		dRe = math.Abs(real(a[i]) - real(b[i]))
		dIm = math.Abs(imag(a[i]) - imag(b[i]))
		if dRe > eps || dIm > eps {
			t.Fatalf("sliceClose idx=%d: got=%v want=%v (eps=%g)", i, a[i], b[i], eps)
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
// Implementation:
//   - Stage 1: if !errors.Is(err, target) → t.Fatalf.
//
// Behavior highlights:
//   - Reduces repeated boilerplate for sentinel checks.
//
// Inputs:
//   - err, target.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal test failure if not matching.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - O(depth) for errors.Is chain.
//
// Notes:
//   - Prefer for ErrNilMatrix, ErrShapeMismatch checks.
//
// AI-Hints:
//   - Combine with table-driven tests for coverage.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
// Implementation:
//   - Stage 1: defer recover().
//   - Stage 2: t.Fatalf if recover()==nil.
//
// Behavior highlights:
//   - Clear intent when guarding parameter panics.
//
// Inputs:
//   - fn: closure expected to panic.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal test failure if no panic.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - O(1).
//
// AI-Hints:
//   - Use in options guards (WithEpsilon).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// ---------- bench helpers ----------

func mustDense(b *testing.B, r, c int) *cmatrix.Dense {
	d, err := cmatrix.NewZeros(r, c) // alloc + zero
	if err != nil {
		b.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}
	return d
}

func randDense(b *testing.B, r, c int, seed int64) *cmatrix.Dense {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]complex128, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]complex128, c)
		for j := 0; j < c; j++ {
			rows[i][j] = complex(rng.Float64()*2-1, rng.Float64()*2-1) // [-1,1] per component
		}
	}
	d, err := cmatrix.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows(%d,%d): %v", r, c, err)
	}
	return d
}

func onesVec(n int) []complex128 {
	v := make([]complex128, n)
	for i := 0; i < n; i++ {
		v[i] = 1
	}
	return v
}
