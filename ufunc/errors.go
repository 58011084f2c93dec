// SPDX-License-Identifier: MIT
// Package ufunc: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// ufunc package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. Panics are reserved for programmer errors
// in private helpers (if any).

package ufunc

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ufunc: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested array shape is invalid
	// (negative dimension, or data length not matching the shape product).
	ErrBadShape = errors.New("ufunc: invalid shape")

	// ErrOutOfRange indicates that a flat index is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("ufunc: index out of range")

	// ErrNilArray indicates that a nil *Array (receiver or argument) was used.
	ErrNilArray = errors.New("ufunc: nil array")

	// ErrNotScalar is returned by Item when the array holds more than one
	// element and therefore has no single scalar value.
	ErrNotScalar = errors.New("ufunc: array is not a scalar")

	// ErrArity indicates that the number of inputs passed to Invoke does not
	// match the descriptor's declared input arity.
	ErrArity = errors.New("ufunc: wrong number of inputs")

	// ErrNoHandler is returned by Invoke when no input intercepts the call,
	// or when every handler defers with NotImplemented.
	ErrNoHandler = errors.New("ufunc: no input handled the call")

	// ErrUnsupportedOperand is the final outcome of the binary-operator
	// fallback protocol: both the forward and the reflected method deferred.
	// Only Binary/Unary synthesize it; operands themselves never do.
	ErrUnsupportedOperand = errors.New("ufunc: unsupported operand type")
)

// ufuncErrorf wraps an underlying sentinel with the given call-site tag.
// Used internally to maintain consistent labeling of violations.
func ufuncErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
