// SPDX-License-Identifier: MIT

// Package ufunc: operator resolution and vectorized-call routing.
//
// Purpose:
//   - Binary/Unary run the standard binary-operator fallback protocol
//     (forward method, then reflected method, then the final type error).
//   - DispatchToDunderOp translates one vectorized call into the matching
//     scalar operator method on an intercepting operand.
//   - Invoke/Call are the array-library entry points that discover a
//     Handler among the inputs.
//
// Determinism:
//   - Input scan order is left-to-right; the first handler wins.
//   - All outcomes depend only on operand kinds and fixed tables.
package ufunc

import "fmt"

// Binary resolves x OP y through the fallback protocol: x's forward method
// first, then y's reflected method, then ErrUnsupportedOperand. Operands
// that are not Operand implementations simply never get a turn; the error
// is synthesized here and nowhere else.
// Complexity: O(1) plus the operand methods themselves.
func Binary(op Op, x, y any) (any, error) {
	if lhs, ok := x.(Operand); ok {
		if res := lhs.BinaryOp(op, y); res != NotImplemented {
			return res, nil
		}
	}
	if rhs, ok := y.(Operand); ok {
		if res := rhs.ReflectedOp(op, x); res != NotImplemented {
			return res, nil
		}
	}
	return nil, fmt.Errorf("%s: %T and %T: %w", op, x, y, ErrUnsupportedOperand)
}

// Unary resolves OP x. There is no reflected direction for unary
// operators: either x handles the operator or the final error applies.
// Complexity: O(1) plus the operand method itself.
func Unary(op Op, x any) (any, error) {
	if operand, ok := x.(UnaryOperand); ok {
		if res := operand.UnaryOp(op); res != NotImplemented {
			return res, nil
		}
	}
	return nil, fmt.Errorf("%s: %T: %w", op, x, ErrUnsupportedOperand)
}

// DispatchToDunderOp redirects one vectorized call to the matching scalar
// operator method on self. It defers (returns NotImplemented) when:
//   - the invocation mode is not the plain call, or an output buffer was
//     pre-allocated (kw.Out != nil) — dunder dispatch is disabled then;
//   - the canonical name is outside the alias table;
//   - the call is not a two-operand form;
//   - the resolved operator method itself defers.
//
// Direction: when the first input is self (by identity), the forward
// method runs against the second input; otherwise the reflected direction
// is taken, with ordering-sensitive comparisons flipped to their mirror
// forward form and everything else routed through ReflectedOp.
// Complexity: O(1) plus the operand method itself.
func DispatchToDunderOp(self Operand, uf Ufunc, method Method, inputs []any, kw KwArgs) any {
	if method != MethodCall || kw.Out != nil {
		return NotImplemented
	}
	op, ok := OpForName(uf.Name)
	if !ok {
		return NotImplemented
	}
	if len(inputs) != 2 {
		return NotImplemented
	}

	if inputs[0] == any(self) {
		return self.BinaryOp(op, inputs[1])
	}
	if flipped, isComparison := FlipComparison(op); isComparison {
		return self.BinaryOp(flipped, inputs[0])
	}
	return self.ReflectedOp(op, inputs[0])
}

// Invoke is the array-library entry point for one vectorized call: it
// scans the inputs left-to-right for a Handler and hands the full call to
// the first one found. A handler deferring with NotImplemented passes the
// call to the remaining inputs; when nobody claims it, ErrNoHandler is
// returned wrapped with the operation name.
// Complexity: O(len(inputs)) plus the handler itself.
func Invoke(uf Ufunc, method Method, inputs []any, kw KwArgs) (any, error) {
	if uf.NIn != 0 && uf.NIn != len(inputs) {
		return nil, ufuncErrorf(uf.Name, ErrArity)
	}

	for _, in := range inputs {
		handler, ok := in.(Handler)
		if !ok {
			continue
		}
		res, err := handler.ArrayUfunc(uf, method, inputs, kw)
		if err != nil {
			return nil, err
		}
		if res != NotImplemented {
			return res, nil
		}
	}
	return nil, ufuncErrorf(uf.Name, ErrNoHandler)
}

// Call is Invoke in the plain element-wise mode with no keywords.
func Call(uf Ufunc, inputs ...any) (any, error) {
	return Invoke(uf, MethodCall, inputs, KwArgs{})
}
