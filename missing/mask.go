// SPDX-License-Identifier: MIT

// Package missing: 1-D and 2-D boolean mask builders.
//
// Purpose:
//   - Apply a classification policy element-wise over an object array and
//     return a same-shaped boolean mask.
//   - Enforce the rank contract hard: Mask1D takes rank 1, Mask2D rank 2,
//     nothing else. A wrong rank is a caller bug (ErrBadRank).
//
// Determinism & Performance:
//   - Fixed flat loop order (0..n-1 / i→j); O(size) time, O(size) output.
//   - Elements are heterogeneous values, so each is classified through the
//     scalar predicate — intentionally no vectorized fast path.
package missing

import "github.com/katalvlaran/navalue/ufunc"

// Policy selects the classification predicate used by the mask builders.
//
//   - Strict — nil/NA/NaN/NaT-pattern only. The default.
//   - Legacy — additionally treats ±Inf as missing, retained for backward
//     compatibility.
type Policy uint8

const (
	// Strict flags nil, NA, NaN and not-a-time values.
	Strict Policy = iota

	// Legacy flags everything Strict does, plus ±infinity.
	Legacy
)

// DefaultPolicy is the policy mask builders should be given absent an
// explicit caller preference.
const DefaultPolicy = Strict

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Legacy:
		return "legacy"
	default:
		return "policy(?)"
	}
}

// apply runs the policy's scalar predicate on one element.
func (p Policy) apply(v any) bool {
	if p == Legacy {
		return IsMissingLegacy(v)
	}
	return IsMissing(v)
}

// Mask1D classifies every element of a rank-1 array and returns a boolean
// mask of the same length. Empty arrays yield empty masks.
// Stage 1 (Validate): non-nil input, rank exactly 1.
// Stage 2 (Scan): one deterministic flat pass through the elements.
// Complexity: O(n) time, O(n) memory.
func Mask1D(a *ufunc.Array, p Policy) ([]bool, error) {
	if a == nil {
		return nil, missingErrorf("Mask1D", ErrNilArray)
	}
	if a.Rank() != 1 {
		return nil, missingErrorf("Mask1D", ErrBadRank)
	}

	n := a.Size()
	mask := make([]bool, n)
	for i := 0; i < n; i++ {
		v, err := a.At(i)
		if err != nil {
			return nil, missingErrorf("Mask1D", err)
		}
		mask[i] = p.apply(v)
	}
	return mask, nil
}

// Mask2D classifies every element of a rank-2 array and returns a boolean
// mask of the same shape, row by row. Empty axes yield empty masks.
// Stage 1 (Validate): non-nil input, rank exactly 2.
// Stage 2 (Scan): deterministic i→j pass over the row-major storage.
// Complexity: O(r*c) time, O(r*c) memory.
func Mask2D(a *ufunc.Array, p Policy) ([][]bool, error) {
	if a == nil {
		return nil, missingErrorf("Mask2D", ErrNilArray)
	}
	if a.Rank() != 2 {
		return nil, missingErrorf("Mask2D", ErrBadRank)
	}

	shape := a.Shape()
	rows, cols := shape[0], shape[1]
	mask := make([][]bool, rows)
	for i := 0; i < rows; i++ {
		row := make([]bool, cols)
		base := i * cols // row base offset into the flat storage
		for j := 0; j < cols; j++ {
			v, err := a.At(base + j)
			if err != nil {
				return nil, missingErrorf("Mask2D", err)
			}
			row[j] = p.apply(v)
		}
		mask[i] = row
	}
	return mask, nil
}
