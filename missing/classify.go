// SPDX-License-Identifier: MIT

// Package missing: scalar classification predicates.
//
// Purpose:
//   - One strict predicate (IsMissing) and one legacy predicate
//     (IsMissingLegacy) over arbitrary scalar values.
//   - Infinity probes (IsPosInf/IsNegInf) restricted to float scalars.
//   - Per-time-domain null predicates that disambiguate the shared
//     not-a-time bit pattern by declared type.
//
// Determinism:
//   - Pure type-switch classification; no state, no allocation.
package missing

import (
	"math"

	"github.com/katalvlaran/navalue/na"
	"github.com/katalvlaran/navalue/nat"
)

// isNaN reports whether v is a floating or complex scalar holding NaN in
// any component.
// Complexity: O(1).
func isNaN(v any) bool {
	switch x := v.(type) {
	case float32:
		return math.IsNaN(float64(x))
	case float64:
		return math.IsNaN(x)
	case complex64:
		return math.IsNaN(float64(real(x))) || math.IsNaN(float64(imag(x)))
	case complex128:
		return math.IsNaN(real(x)) || math.IsNaN(imag(x))
	default:
		return false
	}
}

// isInf reports whether v is a floating or complex scalar holding ±Inf in
// any component.
// Complexity: O(1).
func isInf(v any) bool {
	switch x := v.(type) {
	case float32:
		return math.IsInf(float64(x), 0)
	case float64:
		return math.IsInf(x, 0)
	case complex64:
		return math.IsInf(float64(real(x)), 0) || math.IsInf(float64(imag(x)), 0)
	case complex128:
		return math.IsInf(real(x), 0) || math.IsInf(imag(x), 0)
	default:
		return false
	}
}

// isMissingCommon covers the markers every policy and every narrow
// predicate agrees on: nil, the NA sentinel, NaN and the NaT marker
// itself. Bit-pattern checks for the typed wrappers are layered on top by
// the callers that want them.
// Complexity: O(1).
func isMissingCommon(v any) bool {
	if v == nil {
		return true
	}
	switch v.(type) {
	case *na.NAType:
		return true
	case *nat.NaTType:
		return true
	}
	return isNaN(v)
}

// IsMissing is the strict policy: nil, NA, floating/complex NaN, NaT, or
// a Datetime64/Timedelta64 carrying the reserved not-a-time pattern.
// ±Inf is NOT missing under this policy.
// Complexity: O(1).
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nat.Datetime64:
		return x.IsNaT()
	case nat.Timedelta64:
		return x.IsNaT()
	default:
		return isMissingCommon(v)
	}
}

// IsMissingLegacy is the legacy policy: everything IsMissing flags, plus
// float/complex scalars equal to +Inf or -Inf. Retained for callers that
// historically treated infinities as absent.
// Complexity: O(1).
func IsMissingLegacy(v any) bool {
	return IsMissing(v) || isInf(v)
}

// IsPosInf reports whether v is a float scalar exactly equal to +Inf.
// All other types — including the NA sentinel, nil and complex values —
// yield false.
// Complexity: O(1).
func IsPosInf(v any) bool {
	switch x := v.(type) {
	case float32:
		return math.IsInf(float64(x), 1)
	case float64:
		return math.IsInf(x, 1)
	default:
		return false
	}
}

// IsNegInf reports whether v is a float scalar exactly equal to -Inf.
// Complexity: O(1).
func IsNegInf(v any) bool {
	switch x := v.(type) {
	case float32:
		return math.IsInf(float64(x), -1)
	case float64:
		return math.IsInf(x, -1)
	default:
		return false
	}
}

// IsNullDatetime64 reports whether a datetime-typed cell is null: the
// strict common set, or a Datetime64 carrying the not-a-time pattern. A
// Timedelta64 — even one carrying the same pattern — is NOT null here;
// the shared bit pattern must be disambiguated by declared type.
// Complexity: O(1).
func IsNullDatetime64(v any) bool {
	switch x := v.(type) {
	case nat.Datetime64:
		return x.IsNaT()
	case nat.Timedelta64:
		return false
	default:
		return isMissingCommon(v)
	}
}

// IsNullTimedelta64 is the timedelta-domain mirror of IsNullDatetime64:
// the strict common set, or a Timedelta64 carrying the not-a-time
// pattern; a Datetime64 is never null here.
// Complexity: O(1).
func IsNullTimedelta64(v any) bool {
	switch x := v.(type) {
	case nat.Timedelta64:
		return x.IsNaT()
	case nat.Datetime64:
		return false
	default:
		return isMissingCommon(v)
	}
}

// IsNullPeriod reports whether a period-typed cell is null: the strict
// common set only — no bit-pattern interpretation at all, so neither
// wrapper type is ever null here.
// Complexity: O(1).
func IsNullPeriod(v any) bool {
	switch v.(type) {
	case nat.Datetime64, nat.Timedelta64:
		return false
	default:
		return isMissingCommon(v)
	}
}
