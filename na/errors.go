// SPDX-License-Identifier: MIT
// Package na: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the na
// package. Tests MUST check them via errors.Is.

package na

import "errors"

var (
	// ErrAmbiguousTruth is returned whenever the sentinel is asked for a
	// truth value. The rejection is unconditional: "unknown" has no
	// truthiness, and resolving it silently would hide logic errors.
	ErrAmbiguousTruth = errors.New("na: boolean value of NA is ambiguous")

	// ErrUfuncMethod marks a vectorized invocation mode the sentinel does
	// not support (reduce, accumulate, reduceat, outer, at). The returned
	// error names the offending mode via wrapping.
	ErrUfuncMethod = errors.New("na: ufunc method not supported for NA")
)
