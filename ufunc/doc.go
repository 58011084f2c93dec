// Package ufunc defines the element-wise dispatch convention between the
// NA sentinel and array containers, plus a rank-N object array.
//
// The package provides:
//
//   - Op and Method — closed enumerations of operator identities and
//     invocation modes (call, reduce, accumulate, reduceat, outer, at).
//   - Ufunc — a descriptor for one element-wise operation primitive
//     (canonical name, input arity, output-slot count).
//   - Operand / UnaryOperand / Handler — the documented interception
//     contract: named operator methods standing in for operator
//     overloading, and the hook arrays invoke when a participating value
//     wants to intercept a vectorized call.
//   - NotImplemented — the defer signal of the binary-operator fallback
//     protocol; Binary and Unary run that protocol to completion and are
//     the only place the final "unsupported operand" error is synthesized.
//   - Array — a shape-aware object array (rank 0 permitted) used for
//     propagated missing results and mask inputs.
//
// Dispatch direction, the comparison flip table and the canonical-name
// alias table are fixed data, reproduced in tables.go.
package ufunc
