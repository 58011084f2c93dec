// SPDX-License-Identifier: MIT

// Package na: three-valued (Kleene) logic.
//
// Boolean operators must not silently resolve truthiness, so and/or/xor
// extend two-valued logic with "unknown": absorbing elements (False for
// AND, True for OR) decide the result regardless of the unknown operand,
// and everything else stays unknown. XOR has no absorbing element, so any
// combination involving NA is NA. The operators are commutative at this
// abstraction level; the reflected forms are the forward forms.
//
// Scope is deliberately narrow: operands outside {true, false, NA} defer
// with ufunc.NotImplemented — numbers and arrays get no Kleene treatment
// here.
package na

import "github.com/katalvlaran/navalue/ufunc"

// And is Kleene conjunction: false & anything == false; true & NA == NA;
// NA & NA == NA.
func (n *NAType) And(other any) any {
	switch x := other.(type) {
	case bool:
		if !x {
			return false // False absorbs
		}
		return n // true & NA stays unknown
	case *NAType:
		return n
	default:
		return ufunc.NotImplemented
	}
}

// RAnd is the reflected conjunction; AND is commutative.
func (n *NAType) RAnd(other any) any {
	return n.And(other)
}

// Or is Kleene disjunction: true | anything == true; false | NA == NA;
// NA | NA == NA.
func (n *NAType) Or(other any) any {
	switch x := other.(type) {
	case bool:
		if x {
			return true // True absorbs
		}
		return n // false | NA stays unknown
	case *NAType:
		return n
	default:
		return ufunc.NotImplemented
	}
}

// ROr is the reflected disjunction; OR is commutative.
func (n *NAType) ROr(other any) any {
	return n.Or(other)
}

// Xor is Kleene exclusive-or: no absorbing element exists, so combining
// NA with any boolean — or with itself — stays unknown.
func (n *NAType) Xor(other any) any {
	switch other.(type) {
	case bool, *NAType:
		return n
	default:
		return ufunc.NotImplemented
	}
}

// RXor is the reflected exclusive-or; XOR is commutative.
func (n *NAType) RXor(other any) any {
	return n.Xor(other)
}
