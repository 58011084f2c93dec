// SPDX-License-Identifier: MIT

// Package na: the binary/unary propagation engine.
//
// Purpose:
//   - Classify the other operand into a closed kind set and propagate
//     missingness accordingly: scalar-ish operands produce NA, rank≥1
//     arrays produce same-shaped arrays of NA, anything unrecognized
//     defers to the other side via ufunc.NotImplemented.
//   - Keep the operator table an explicit switch over ufunc.Op — fixed
//     rules, no generated closures, auditable top to bottom.
//
// Determinism:
//   - No state is read or written; outcomes depend only on operand kinds.
//   - The engine never returns errors: the final "unsupported operand"
//     error belongs to ufunc.Binary alone.
package na

import "github.com/katalvlaran/navalue/ufunc"

// operandKind is the closed classification of the other operand. Exactly
// one kind applies to any value; kindUnknown maps to the defer outcome.
type operandKind uint8

const (
	kindNA      operandKind = iota // the sentinel itself
	kindBool                       // untyped truth values
	kindNumber                     // any Go numeric scalar
	kindString                     // plain strings
	kindZeroDim                    // rank-0 array box
	kindArray                      // array of rank ≥ 1
	kindUnknown                    // everything else ⇒ defer
)

// classify tags the other operand. The numeric arm lists every Go numeric
// scalar type explicitly; rune and byte are covered as int32/uint8.
// Complexity: O(1).
func classify(v any) operandKind {
	switch x := v.(type) {
	case *NAType:
		return kindNA
	case bool:
		return kindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return kindNumber
	case string:
		return kindString
	case *ufunc.Array:
		if x == nil {
			return kindUnknown
		}
		if x.Rank() == 0 {
			return kindZeroDim
		}
		return kindArray
	default:
		return kindUnknown
	}
}

// propagate is the generic missing-propagation rule shared by arithmetic,
// comparison, matmul and the bitwise forms outside Kleene scope:
// scalar-ish operand → NA; rank≥1 array → same-shaped array of NA;
// unrecognized → defer.
// Complexity: O(1) scalar, O(size) for arrays.
func (n *NAType) propagate(other any) any {
	switch classify(other) {
	case kindNA, kindBool, kindNumber, kindString, kindZeroDim:
		return n
	case kindArray:
		filled, err := ufunc.FullLike(other.(*ufunc.Array), n)
		if err != nil {
			// FullLike only fails on nil input, excluded by classify.
			return ufunc.NotImplemented
		}
		return filled
	default:
		return ufunc.NotImplemented
	}
}

// Divmod is the combined quotient/remainder: both slots propagate
// independently under the generic rule, so scalars yield a pair of
// sentinels and arrays a pair of same-shaped NA arrays.
func (n *NAType) Divmod(other any) any {
	first := n.propagate(other)
	if first == ufunc.NotImplemented {
		return ufunc.NotImplemented
	}
	second := first
	if arr, ok := first.(*ufunc.Array); ok {
		second = arr.Clone() // independent slots, not one shared array
	}
	return [2]any{first, second}
}

// RDivmod is the reflected divmod; the propagation rule is symmetric.
func (n *NAType) RDivmod(other any) any {
	return n.Divmod(other)
}

// BinaryOp is the forward operator table: NA OP other. It returns
// ufunc.NotImplemented to defer and never errors.
func (n *NAType) BinaryOp(op ufunc.Op, other any) any {
	switch op {
	case ufunc.OpAdd, ufunc.OpSub, ufunc.OpMul, ufunc.OpMatMul,
		ufunc.OpTrueDiv, ufunc.OpFloorDiv, ufunc.OpMod,
		ufunc.OpEq, ufunc.OpNe, ufunc.OpLt, ufunc.OpGt, ufunc.OpLe, ufunc.OpGe:
		return n.propagate(other)
	case ufunc.OpDivmod:
		return n.Divmod(other)
	case ufunc.OpPow:
		return n.Pow(other)
	case ufunc.OpAnd:
		return n.And(other)
	case ufunc.OpOr:
		return n.Or(other)
	case ufunc.OpXor:
		return n.Xor(other)
	default:
		return ufunc.NotImplemented
	}
}

// ReflectedOp is the reflected operator table: other OP NA with the
// receiver on the right. Propagation is order-insensitive everywhere
// except exponentiation, which swaps to the base-side identities; the
// Kleene operators are commutative at this abstraction level.
func (n *NAType) ReflectedOp(op ufunc.Op, other any) any {
	switch op {
	case ufunc.OpAdd, ufunc.OpSub, ufunc.OpMul, ufunc.OpMatMul,
		ufunc.OpTrueDiv, ufunc.OpFloorDiv, ufunc.OpMod,
		ufunc.OpEq, ufunc.OpNe, ufunc.OpLt, ufunc.OpGt, ufunc.OpLe, ufunc.OpGe:
		return n.propagate(other)
	case ufunc.OpDivmod:
		return n.RDivmod(other)
	case ufunc.OpPow:
		return n.RPow(other)
	case ufunc.OpAnd:
		return n.And(other)
	case ufunc.OpOr:
		return n.Or(other)
	case ufunc.OpXor:
		return n.Xor(other)
	default:
		return ufunc.NotImplemented
	}
}

// UnaryOp always yields the sentinel for the four supported unary forms:
// there is only one state to negate, absolutize or invert.
func (n *NAType) UnaryOp(op ufunc.Op) any {
	switch op {
	case ufunc.OpNeg, ufunc.OpPos, ufunc.OpAbs, ufunc.OpInvert:
		return n
	default:
		return ufunc.NotImplemented
	}
}

// Named convenience forms. These are thin aliases over the tables above so
// call sites read like the operator they stand for.

// Add returns NA OP other under the generic propagation rule.
func (n *NAType) Add(other any) any { return n.BinaryOp(ufunc.OpAdd, other) }

// Sub returns NA - other under the generic propagation rule.
func (n *NAType) Sub(other any) any { return n.BinaryOp(ufunc.OpSub, other) }

// Mul returns NA * other under the generic propagation rule.
func (n *NAType) Mul(other any) any { return n.BinaryOp(ufunc.OpMul, other) }

// TrueDiv returns NA / other under the generic propagation rule.
func (n *NAType) TrueDiv(other any) any { return n.BinaryOp(ufunc.OpTrueDiv, other) }

// FloorDiv returns NA // other under the generic propagation rule.
func (n *NAType) FloorDiv(other any) any { return n.BinaryOp(ufunc.OpFloorDiv, other) }

// Mod returns NA % other under the generic propagation rule.
func (n *NAType) Mod(other any) any { return n.BinaryOp(ufunc.OpMod, other) }

// MatMul returns NA @ other under the generic propagation rule.
func (n *NAType) MatMul(other any) any { return n.BinaryOp(ufunc.OpMatMul, other) }

// Equal returns NA == other; note the result is NA, never a boolean.
func (n *NAType) Equal(other any) any { return n.BinaryOp(ufunc.OpEq, other) }

// NotEqual returns NA != other; note the result is NA, never a boolean.
func (n *NAType) NotEqual(other any) any { return n.BinaryOp(ufunc.OpNe, other) }

// Less returns NA < other under the generic propagation rule.
func (n *NAType) Less(other any) any { return n.BinaryOp(ufunc.OpLt, other) }

// Greater returns NA > other under the generic propagation rule.
func (n *NAType) Greater(other any) any { return n.BinaryOp(ufunc.OpGt, other) }

// LessEqual returns NA <= other under the generic propagation rule.
func (n *NAType) LessEqual(other any) any { return n.BinaryOp(ufunc.OpLe, other) }

// GreaterEqual returns NA >= other under the generic propagation rule.
func (n *NAType) GreaterEqual(other any) any { return n.BinaryOp(ufunc.OpGe, other) }

// Neg returns -NA, which is NA.
func (n *NAType) Neg() any { return n.UnaryOp(ufunc.OpNeg) }

// Pos returns +NA, which is NA.
func (n *NAType) Pos() any { return n.UnaryOp(ufunc.OpPos) }

// Abs returns abs(NA), which is NA.
func (n *NAType) Abs() any { return n.UnaryOp(ufunc.OpAbs) }

// Invert returns ~NA, which is NA.
func (n *NAType) Invert() any { return n.UnaryOp(ufunc.OpInvert) }
