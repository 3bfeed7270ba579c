// SPDX-License-Identifier: MIT

// Package cmatrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants,
//   - ResolveOptions + getters for sibling packages sharing the policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The epsilon is an ABSOLUTE per-component tolerance: two complex values
//     are close when |re(a)-re(b)| ≤ eps AND |im(a)-im(b)| ≤ eps. Predicates
//     (AllClose, IsHermitian, IsUnitary) consume it; exact-equality paths
//     (Equal) ignore it.
//   - validateNaNInf controls whether constructors reject NaN/±Inf components
//     at ingestion. Existing matrices keep the values they were built with.
package cmatrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative absolute tolerance used by the
	// tolerant predicates (AllClose, IsHermitian, IsUnitary) per component.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation at
	// construction (FromRows, FromParts, ColumnVector, RowVector).
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "cmatrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Its fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and resolve them via gatherOptions (or, for
// sibling packages, ResolveOptions). Read access goes through the getters.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the absolute tolerance eps used by tolerant predicates.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - eps: non-negative finite tolerance, applied to re and im independently.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger eps relaxes IsHermitian/IsUnitary/AllClose; use judiciously.
//   - eps = 0 demands exact equality in the predicates.
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data unless
//     the pipeline is known to be noisy.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation at construction.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - NaN and ±Inf in any component (re or im) are rejected with ErrNaNInf.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This is the default; use WithNoValidateNaNInf to relax.
//
// AI-Hints:
//   - Keep this enabled in data-clean pipelines; disable only when ingesting
//     external data with known non-finite placeholders.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Allows ±Inf/NaN components to pass through on newly built matrices.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This flag acts only at construction; operations never re-validate.
//
// AI-Hints:
//   - Tolerant predicates treat NaN as never-close; expect false, not errors.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// defaultOptions returns the documented defaults (single source of truth).
// Implementation:
//   - Stage 1: fill fields from Default* constants.
//
// Behavior highlights:
//   - Ensures defaults and doc constants never diverge.
//
// Returns:
//   - Options: defaults snapshot.
//
// Complexity:
//   - Time O(1), Space O(1).
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry used by constructors and predicates.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Inputs:
//   - user: sequence of Option setters.
//
// Returns:
//   - Options: fully resolved configuration.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
//
// AI-Hints:
//   - Prefer gatherOptions(...) over ad-hoc defaulting in callers.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// ResolveOptions is the exported counterpart of gatherOptions for packages
// that layer on top of cmatrix and share its numeric policy (tolerance,
// ingestion validation) without re-declaring their own option types.
//
// Returns the fully resolved configuration; inspect it via the getters.
//
// Complexity: Time O(k), Space O(1) for k=len(user).
func ResolveOptions(user ...Option) Options {
	return gatherOptions(user...)
}

// Epsilon returns the resolved absolute per-component tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether constructors reject non-finite components.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }
