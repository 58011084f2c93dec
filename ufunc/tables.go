// SPDX-License-Identifier: MIT

// Package ufunc: fixed lookup data for dunder dispatch.
// The alias table translates canonical vectorized-operation names into Op
// values; the flip table mirrors ordering-sensitive comparisons when the
// reflected direction is taken. Both are static, append-only mappings —
// reproduced verbatim rather than generated, so they can be audited at a
// glance.
package ufunc

// opByName maps a canonical operation name to its scalar operator identity.
// Dunder-style short names are included alongside the long canonical forms
// so descriptors built from either spelling dispatch the same way.
var opByName = map[string]Op{
	// arithmetic
	"add":          OpAdd,
	"subtract":     OpSub,
	"sub":          OpSub,
	"multiply":     OpMul,
	"mul":          OpMul,
	"matmul":       OpMatMul,
	"divide":       OpTrueDiv,
	"true_divide":  OpTrueDiv,
	"truediv":      OpTrueDiv,
	"floor_divide": OpFloorDiv,
	"floordiv":     OpFloorDiv,
	"remainder":    OpMod,
	"mod":          OpMod,
	"divmod":       OpDivmod,
	"power":        OpPow,
	"pow":          OpPow,
	// comparison
	"equal":         OpEq,
	"eq":            OpEq,
	"not_equal":     OpNe,
	"ne":            OpNe,
	"less":          OpLt,
	"lt":            OpLt,
	"less_equal":    OpLe,
	"le":            OpLe,
	"greater":       OpGt,
	"gt":            OpGt,
	"greater_equal": OpGe,
	"ge":            OpGe,
	// logical / bitwise
	"bitwise_and": OpAnd,
	"and":         OpAnd,
	"bitwise_or":  OpOr,
	"or":          OpOr,
	"bitwise_xor": OpXor,
	"xor":         OpXor,
	// unary
	"negative": OpNeg,
	"neg":      OpNeg,
	"positive": OpPos,
	"pos":      OpPos,
	"absolute": OpAbs,
	"abs":      OpAbs,
	"invert":   OpInvert,
}

// OpForName resolves a canonical operation name to its Op.
// The second result is false for names outside the dispatched set.
// Complexity: O(1).
func OpForName(name string) (Op, bool) {
	op, ok := opByName[name]
	return op, ok
}

// comparisonFlips mirrors ordering-sensitive comparisons for the reflected
// direction: b < a is a > b. Equality and inequality are their own mirrors.
// Every other operator uses its generic reflected method instead.
var comparisonFlips = map[Op]Op{
	OpLt: OpGt,
	OpGt: OpLt,
	OpLe: OpGe,
	OpGe: OpLe,
	OpEq: OpEq,
	OpNe: OpNe,
}

// FlipComparison returns the mirrored comparison for the reflected
// direction. The second result is false when op is not a comparison and
// the generic reflected method must be used.
// Complexity: O(1).
func FlipComparison(op Op) (Op, bool) {
	flipped, ok := comparisonFlips[op]
	return flipped, ok
}
