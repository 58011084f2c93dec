// SPDX-License-Identifier: MIT

// Package na: exponentiation identities.
//
// Some powers of "unknown" are known regardless of the unknown value:
// x**0 == 1 for every real x, 1**x == 1, and (-1)**x is ±1 (returned as
// the base itself, the usual convention). The two directions are encoded
// separately — Pow for NA**other, RPow for other**NA — and both fall back
// to generic NA propagation outside their identity cases. 0**NA is
// intentionally NOT special-cased: it resolves to NA like every other
// nonzero-base power.
package na

import "github.com/katalvlaran/navalue/ufunc"

// isZero reports whether a numeric or boolean scalar equals zero.
// Complexity: O(1).
func isZero(v any) bool {
	switch x := v.(type) {
	case bool:
		return !x
	case int:
		return x == 0
	case int8:
		return x == 0
	case int16:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case uint8:
		return x == 0
	case uint16:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case uintptr:
		return x == 0
	case float32:
		return x == 0
	case float64:
		return x == 0
	case complex64:
		return x == 0
	case complex128:
		return x == 0
	default:
		return false
	}
}

// isOne reports whether a numeric or boolean scalar equals one
// (true counts: it is the multiplicative identity of the boolean type).
// Complexity: O(1).
func isOne(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x == 1
	case int8:
		return x == 1
	case int16:
		return x == 1
	case int32:
		return x == 1
	case int64:
		return x == 1
	case uint:
		return x == 1
	case uint8:
		return x == 1
	case uint16:
		return x == 1
	case uint32:
		return x == 1
	case uint64:
		return x == 1
	case uintptr:
		return x == 1
	case float32:
		return x == 1
	case float64:
		return x == 1
	case complex64:
		return x == 1
	case complex128:
		return x == 1
	default:
		return false
	}
}

// isMinusOne reports whether a signed numeric scalar equals minus one.
// Unsigned and boolean scalars can never be -1.
// Complexity: O(1).
func isMinusOne(v any) bool {
	switch x := v.(type) {
	case int:
		return x == -1
	case int8:
		return x == -1
	case int16:
		return x == -1
	case int32:
		return x == -1
	case int64:
		return x == -1
	case float32:
		return x == -1
	case float64:
		return x == -1
	case complex64:
		return x == -1
	case complex128:
		return x == -1
	default:
		return false
	}
}

// oneLike returns the multiplicative identity in the type of v, so that
// NA**0 produces a 1 matching the exponent's own type. Unknown types get
// nil; callers guard with classify first.
// Complexity: O(1).
func oneLike(v any) any {
	switch v.(type) {
	case bool:
		return true
	case int:
		return int(1)
	case int8:
		return int8(1)
	case int16:
		return int16(1)
	case int32:
		return int32(1)
	case int64:
		return int64(1)
	case uint:
		return uint(1)
	case uint8:
		return uint8(1)
	case uint16:
		return uint16(1)
	case uint32:
		return uint32(1)
	case uint64:
		return uint64(1)
	case uintptr:
		return uintptr(1)
	case float32:
		return float32(1)
	case float64:
		return float64(1)
	case complex64:
		return complex64(1)
	case complex128:
		return complex128(1)
	default:
		return nil
	}
}

// Pow is NA ** other.
//   - other is NA              → NA
//   - number/bool equal to 0   → 1 in other's type (x**0 == 1 for all x)
//   - number/bool otherwise    → NA
//   - array                    → single-pass conditional select: 1-in-type
//     where the element is zero, NA elsewhere
//   - anything else            → defer
func (n *NAType) Pow(other any) any {
	switch classify(other) {
	case kindNA:
		return n
	case kindBool, kindNumber:
		if isZero(other) {
			return oneLike(other)
		}
		return n
	case kindZeroDim, kindArray:
		return other.(*ufunc.Array).Map(func(elem any) any {
			if isZero(elem) {
				return oneLike(elem)
			}
			return any(n)
		})
	default:
		return ufunc.NotImplemented
	}
}

// RPow is other ** NA.
//   - other is NA              → NA
//   - number/bool equal to ±1  → other unchanged (1**x == 1; (-1)**x is
//     ±1, conventionally the base itself)
//   - number/bool otherwise    → NA (0**NA deliberately included)
//   - array                    → single-pass conditional select: keep the
//     element where it is ±1, NA elsewhere
//   - anything else            → defer
func (n *NAType) RPow(other any) any {
	switch classify(other) {
	case kindNA:
		return n
	case kindBool, kindNumber:
		if isOne(other) || isMinusOne(other) {
			return other
		}
		return n
	case kindZeroDim, kindArray:
		return other.(*ufunc.Array).Map(func(elem any) any {
			if isOne(elem) || isMinusOne(elem) {
				return elem
			}
			return any(n)
		})
	default:
		return ufunc.NotImplemented
	}
}
