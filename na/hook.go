// SPDX-License-Identifier: MIT

// Package na: the vectorized-call interception hook.
//
// Arrays invoke ArrayUfunc whenever NA participates in an element-wise
// call. The hook's contract, in order:
//  1. every input must be of a handled kind (NA, bool, number, string,
//     array) — an unrecognized input defers the whole call;
//  2. only the plain call mode is interceptable — reductions,
//     accumulations, reduceat, outer products and scatter calls are hard
//     errors naming the mode;
//  3. the call is rerouted to the matching scalar operator method through
//     ufunc.DispatchToDunderOp (canonical-name alias table, identity-based
//     direction, comparison flip table);
//  4. a dispatch that still defers is substituted with the sentinel —
//     one NA for a single output slot, a slice of NAs for several.
package na

import (
	"fmt"

	"github.com/katalvlaran/navalue/ufunc"
)

// ArrayUfunc implements ufunc.Handler for the sentinel.
func (n *NAType) ArrayUfunc(uf ufunc.Ufunc, method ufunc.Method, inputs []any, kw ufunc.KwArgs) (any, error) {
	// Rule 1: defer entirely on any unrecognized operand type, before the
	// mode check — the other operand's machinery may know better.
	for _, in := range inputs {
		if classify(in) == kindUnknown {
			return ufunc.NotImplemented, nil
		}
	}

	// Rule 2: only the plain element-wise mode is supported.
	if method != ufunc.MethodCall {
		return nil, fmt.Errorf("%q: %w", method.String(), ErrUfuncMethod)
	}

	// Rule 3: reroute to the scalar operator methods.
	result := ufunc.DispatchToDunderOp(n, uf, method, inputs, kw)

	// Rule 4: substitute the sentinel when dispatch deferred. A multi-slot
	// operation gets one sentinel per declared output.
	if result == ufunc.NotImplemented {
		if uf.NOut > 1 {
			outs := make([]any, uf.NOut)
			for i := range outs {
				outs[i] = n
			}
			return outs, nil
		}
		return n, nil
	}
	return result, nil
}
