// SPDX-License-Identifier: MIT

// Package ufunc: protocol types for element-wise dispatch.
// This file intentionally contains ONLY the closed enumerations and the
// interception contract. Fixed lookup data lives in tables.go, the array
// container in array.go, and the resolution machinery in dispatch.go.
package ufunc

import "strconv"

// Op identifies one scalar operator. The set is closed: propagation engines
// switch over it exhaustively, and anything outside the set simply has no
// Op value. String() yields the short operator name used in error text.
type Op uint8

const (
	// OpAdd is addition (a + b).
	OpAdd Op = iota
	// OpSub is subtraction (a - b).
	OpSub
	// OpMul is multiplication (a * b).
	OpMul
	// OpMatMul is matrix multiplication (a @ b).
	OpMatMul
	// OpTrueDiv is true division (a / b).
	OpTrueDiv
	// OpFloorDiv is flooring division (a // b).
	OpFloorDiv
	// OpMod is the remainder (a % b).
	OpMod
	// OpDivmod is the combined quotient/remainder pair.
	OpDivmod
	// OpPow is exponentiation (a ** b).
	OpPow
	// OpEq is equality (a == b).
	OpEq
	// OpNe is inequality (a != b).
	OpNe
	// OpLt is strict less-than (a < b).
	OpLt
	// OpGt is strict greater-than (a > b).
	OpGt
	// OpLe is less-or-equal (a <= b).
	OpLe
	// OpGe is greater-or-equal (a >= b).
	OpGe
	// OpAnd is logical/bitwise conjunction (a & b).
	OpAnd
	// OpOr is logical/bitwise disjunction (a | b).
	OpOr
	// OpXor is logical/bitwise exclusive-or (a ^ b).
	OpXor
	// OpNeg is unary negation (-a).
	OpNeg
	// OpPos is the unary plus (+a).
	OpPos
	// OpAbs is the absolute value (abs(a)).
	OpAbs
	// OpInvert is bitwise inversion (~a).
	OpInvert

	// opCount bounds the enum; keep it last.
	opCount
)

// opNames maps Op to its short name; index must track the const block above.
var opNames = [opCount]string{
	"add", "sub", "mul", "matmul", "truediv", "floordiv", "mod", "divmod",
	"pow", "eq", "ne", "lt", "gt", "le", "ge", "and", "or", "xor",
	"neg", "pos", "abs", "invert",
}

// String implements fmt.Stringer. Unknown values print as "op(N)".
func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Method is the invocation mode of a vectorized call. Only MethodCall (the
// plain element-wise mode) is interceptable by the NA sentinel; every other
// mode is rejected by its hook with a wrapped mode-naming error.
type Method uint8

const (
	// MethodCall is the plain element-wise application.
	MethodCall Method = iota
	// MethodReduce folds along an axis.
	MethodReduce
	// MethodAccumulate keeps running partial folds.
	MethodAccumulate
	// MethodReduceAt performs grouped local reductions.
	MethodReduceAt
	// MethodOuter applies the operation over the cartesian product.
	MethodOuter
	// MethodAt applies the operation in place at given positions.
	MethodAt

	methodCount
)

// methodNames maps Method to its canonical mode tag.
var methodNames = [methodCount]string{
	"call", "reduce", "accumulate", "reduceat", "outer", "at",
}

// String implements fmt.Stringer. Unknown values print as "method(N)".
func (m Method) String() string {
	if m < methodCount {
		return methodNames[m]
	}
	return "method(" + strconv.Itoa(int(m)) + ")"
}

// Ufunc describes one element-wise operation primitive: its canonical name
// (the key into the alias table) and its arities. NOut drives the fallback
// substitution rule in hooks: one slot → one sentinel, several slots → a
// slice of sentinels.
type Ufunc struct {
	Name string // canonical operation name, e.g. "true_divide"
	NIn  int    // number of input operands
	NOut int    // number of output slots
}

// Canonical descriptors for the operations the sentinel intercepts. These
// are convenience values; any Ufunc literal with a recognized Name behaves
// identically.
var (
	Add          = Ufunc{Name: "add", NIn: 2, NOut: 1}
	Subtract     = Ufunc{Name: "subtract", NIn: 2, NOut: 1}
	Multiply     = Ufunc{Name: "multiply", NIn: 2, NOut: 1}
	MatMul       = Ufunc{Name: "matmul", NIn: 2, NOut: 1}
	TrueDivide   = Ufunc{Name: "true_divide", NIn: 2, NOut: 1}
	FloorDivide  = Ufunc{Name: "floor_divide", NIn: 2, NOut: 1}
	Remainder    = Ufunc{Name: "remainder", NIn: 2, NOut: 1}
	Divmod       = Ufunc{Name: "divmod", NIn: 2, NOut: 2}
	Power        = Ufunc{Name: "power", NIn: 2, NOut: 1}
	Equal        = Ufunc{Name: "equal", NIn: 2, NOut: 1}
	NotEqual     = Ufunc{Name: "not_equal", NIn: 2, NOut: 1}
	Less         = Ufunc{Name: "less", NIn: 2, NOut: 1}
	LessEqual    = Ufunc{Name: "less_equal", NIn: 2, NOut: 1}
	Greater      = Ufunc{Name: "greater", NIn: 2, NOut: 1}
	GreaterEqual = Ufunc{Name: "greater_equal", NIn: 2, NOut: 1}
	BitwiseAnd   = Ufunc{Name: "bitwise_and", NIn: 2, NOut: 1}
	BitwiseOr    = Ufunc{Name: "bitwise_or", NIn: 2, NOut: 1}
	BitwiseXor   = Ufunc{Name: "bitwise_xor", NIn: 2, NOut: 1}
	Negative     = Ufunc{Name: "negative", NIn: 1, NOut: 1}
	Positive     = Ufunc{Name: "positive", NIn: 1, NOut: 1}
	Absolute     = Ufunc{Name: "absolute", NIn: 1, NOut: 1}
	Invert       = Ufunc{Name: "invert", NIn: 1, NOut: 1}
)

// KwArgs carries the keyword surface of a vectorized call. Out is the
// pre-allocated output buffer; a non-nil Out with the plain call mode
// disables dunder dispatch entirely (DispatchToDunderOp defers).
type KwArgs struct {
	Out any
}

// NotImplementedType is the type of the NotImplemented defer signal.
type NotImplementedType struct{}

// NotImplemented is the defer signal of the fallback protocol: an operand
// method returns it (never an error) to give the other operand's handler a
// chance. Compare results against it directly; the type is comparable.
var NotImplemented any = NotImplementedType{}

// Operand is the named-method rendering of binary operator overloading.
// BinaryOp is the forward form (receiver on the left), ReflectedOp the
// reflected form (receiver on the right). Both return NotImplemented to
// defer and MUST NOT return errors: the final "unsupported operand" error
// belongs to the Binary fallback protocol alone.
type Operand interface {
	BinaryOp(op Op, other any) any
	ReflectedOp(op Op, other any) any
}

// UnaryOperand is the named-method rendering of unary operator overloading.
type UnaryOperand interface {
	UnaryOp(op Op) any
}

// Handler intercepts vectorized calls in which its value participates.
// Invoke scans inputs in order and hands the full call to the first
// Handler; returning NotImplemented (with a nil error) defers to the
// remaining inputs and ultimately to ErrNoHandler.
type Handler interface {
	ArrayUfunc(uf Ufunc, method Method, inputs []any, kw KwArgs) (any, error)
}
