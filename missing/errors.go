// SPDX-License-Identifier: MIT
// Package missing: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// missing package. Tests MUST check them via errors.Is.

package missing

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArray indicates that a nil *ufunc.Array was passed to a mask
	// builder.
	ErrNilArray = errors.New("missing: nil array")

	// ErrBadRank indicates a rank contract violation: Mask1D demands rank
	// exactly 1, Mask2D rank exactly 2. This is a caller bug, not a
	// recoverable condition.
	ErrBadRank = errors.New("missing: array rank mismatch")
)

// missingErrorf wraps an underlying sentinel with the given call-site tag.
func missingErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
