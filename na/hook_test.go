// SPDX-License-Identifier: MIT

package na_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/navalue/na"
	"github.com/katalvlaran/navalue/ufunc"
)

// HookSuite exercises the vectorized-call interception contract end to
// end through the array-library entry point.
type HookSuite struct {
	suite.Suite
}

// TestForwardDirection: first input is the sentinel → forward method.
// A rank-0 numeric array as the other operand must yield the sentinel
// itself, not an array.
func (s *HookSuite) TestForwardDirection() {
	res, err := ufunc.Call(ufunc.Add, na.NA, ufunc.ScalarOf(3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), any(na.NA), res, "rank-0 operand must collapse to the scalar sentinel")
}

// TestReflectedDirection: sentinel second → reflected method; plain
// arithmetic uses the generic reflected form.
func (s *HookSuite) TestReflectedDirection() {
	res, err := ufunc.Call(ufunc.Subtract, 5, na.NA)
	require.NoError(s.T(), err)
	require.Equal(s.T(), any(na.NA), res)
}

// TestComparisonFlip: reflected ordering-sensitive comparisons run the
// mirrored forward method (lt↔gt, le↔ge), which still propagates.
func (s *HookSuite) TestComparisonFlip() {
	for _, uf := range []ufunc.Ufunc{ufunc.Less, ufunc.Greater, ufunc.LessEqual, ufunc.GreaterEqual, ufunc.Equal, ufunc.NotEqual} {
		res, err := ufunc.Call(uf, 1.5, na.NA)
		require.NoError(s.T(), err, uf.Name)
		require.Equal(s.T(), any(na.NA), res, uf.Name)
	}
}

// TestArrayOperand: a rank-1 operand yields a same-shaped NA array.
func (s *HookSuite) TestArrayOperand() {
	arr, err := ufunc.NewArray([]int{3}, []any{1, 2, 3})
	require.NoError(s.T(), err)

	res, err := ufunc.Call(ufunc.Multiply, na.NA, arr)
	require.NoError(s.T(), err)
	out, ok := res.(*ufunc.Array)
	require.True(s.T(), ok, "got %T", res)
	require.Equal(s.T(), []int{3}, out.Shape())
	for i := 0; i < out.Size(); i++ {
		v, errAt := out.At(i)
		require.NoError(s.T(), errAt)
		require.Equal(s.T(), any(na.NA), v)
	}
}

// TestPowerThroughHook: the exponentiation identities survive dispatch.
func (s *HookSuite) TestPowerThroughHook() {
	res, err := ufunc.Call(ufunc.Power, na.NA, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), any(int(1)), res)

	res, err = ufunc.Call(ufunc.Power, -1, na.NA)
	require.NoError(s.T(), err)
	require.Equal(s.T(), any(int(-1)), res)
}

// TestKleeneThroughHook: bitwise names route to the Kleene methods.
func (s *HookSuite) TestKleeneThroughHook() {
	res, err := ufunc.Call(ufunc.BitwiseAnd, na.NA, false)
	require.NoError(s.T(), err)
	require.Equal(s.T(), any(false), res)

	res, err = ufunc.Call(ufunc.BitwiseOr, true, na.NA)
	require.NoError(s.T(), err)
	require.Equal(s.T(), any(true), res)

	res, err = ufunc.Call(ufunc.BitwiseXor, na.NA, true)
	require.NoError(s.T(), err)
	require.Equal(s.T(), any(na.NA), res)
}

// TestUnsupportedModes: reduce/accumulate/reduceat/outer/at are rejected
// with an error naming the mode.
func (s *HookSuite) TestUnsupportedModes() {
	modes := []ufunc.Method{
		ufunc.MethodReduce, ufunc.MethodAccumulate, ufunc.MethodReduceAt,
		ufunc.MethodOuter, ufunc.MethodAt,
	}
	for _, m := range modes {
		_, err := na.NA.ArrayUfunc(ufunc.Add, m, []any{na.NA, 1}, ufunc.KwArgs{})
		require.Error(s.T(), err, m.String())
		require.True(s.T(), errors.Is(err, na.ErrUfuncMethod), "mode %s: %v", m, err)
		require.True(s.T(), strings.Contains(err.Error(), m.String()),
			"error must name the mode, got %q", err.Error())
	}
}

// TestUnknownOperandDefers: any unrecognized input defers the whole call
// before the mode is even examined.
func (s *HookSuite) TestUnknownOperandDefers() {
	type opaque struct{}

	res, err := na.NA.ArrayUfunc(ufunc.Add, ufunc.MethodCall, []any{na.NA, opaque{}}, ufunc.KwArgs{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ufunc.NotImplemented, res)

	// Even an unsupported mode defers first when an operand is foreign.
	res, err = na.NA.ArrayUfunc(ufunc.Add, ufunc.MethodReduce, []any{na.NA, opaque{}}, ufunc.KwArgs{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ufunc.NotImplemented, res)

	// Through the entry point the deferred call ends in ErrNoHandler.
	_, err = ufunc.Call(ufunc.Add, na.NA, opaque{})
	require.True(s.T(), errors.Is(err, ufunc.ErrNoHandler), "got %v", err)
}

// TestOutBufferDisablesDunderDispatch: a pre-allocated output buffer with
// the plain call mode bypasses operator dispatch; the fallback still
// substitutes the sentinel and the buffer is ignored.
func (s *HookSuite) TestOutBufferDisablesDunderDispatch() {
	buf := ufunc.ScalarOf(nil)
	res, err := na.NA.ArrayUfunc(ufunc.Power, ufunc.MethodCall, []any{na.NA, 0}, ufunc.KwArgs{Out: buf})
	require.NoError(s.T(), err)
	// Without the buffer this would be the identity 1; with it, dispatch
	// is disabled and the substitution rule applies.
	require.Equal(s.T(), any(na.NA), res)
}

// TestMultiOutputSubstitution: a deferred multi-slot operation yields one
// sentinel per output slot.
func (s *HookSuite) TestMultiOutputSubstitution() {
	buf := ufunc.ScalarOf(nil)
	res, err := na.NA.ArrayUfunc(ufunc.Divmod, ufunc.MethodCall, []any{na.NA, 3}, ufunc.KwArgs{Out: buf})
	require.NoError(s.T(), err)
	outs, ok := res.([]any)
	require.True(s.T(), ok, "got %T", res)
	require.Len(s.T(), outs, 2)
	require.Equal(s.T(), any(na.NA), outs[0])
	require.Equal(s.T(), any(na.NA), outs[1])
}

// TestUnaryNameSubstitution: unary canonical names resolve through the
// substitution rule (the dunder dispatcher only takes two-operand calls)
// and still come out as the sentinel.
func (s *HookSuite) TestUnaryNameSubstitution() {
	for _, uf := range []ufunc.Ufunc{ufunc.Negative, ufunc.Positive, ufunc.Absolute, ufunc.Invert} {
		res, err := ufunc.Call(uf, na.NA)
		require.NoError(s.T(), err, uf.Name)
		require.Equal(s.T(), any(na.NA), res, uf.Name)
	}
}

// TestDivmodThroughHook: the two-slot result passes through dispatch as a
// pair, not via substitution.
func (s *HookSuite) TestDivmodThroughHook() {
	res, err := ufunc.Call(ufunc.Divmod, na.NA, 3)
	require.NoError(s.T(), err)
	pair, ok := res.([2]any)
	require.True(s.T(), ok, "got %T", res)
	require.Equal(s.T(), any(na.NA), pair[0])
	require.Equal(s.T(), any(na.NA), pair[1])
}

func TestHookSuite(t *testing.T) {
	suite.Run(t, new(HookSuite))
}
