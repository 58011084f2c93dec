// SPDX-License-Identifier: MIT

// Package ufunc: Array is a rank-N container of heterogeneous elements,
// stored row-major in a flat slice for cache friendliness. Rank 0 is a
// legal shape and holds exactly one element (a "zero-dimensional" scalar
// box). Elements are arbitrary values; vectorized fast paths are out of
// scope here — every kernel is an explicit per-element scan.
package ufunc

// Array is a shape-aware object array.
// shape is the per-axis extent (empty for rank 0) and data holds the
// elements in row-major order, length == product(shape).
type Array struct {
	shape []int // per-axis extents; nil/empty ⇒ rank 0
	data  []any // flat backing storage
}

// sizeOf returns the element count implied by shape, or -1 when any axis
// extent is negative. Rank 0 has size 1.
func sizeOf(shape []int) int {
	size := 1
	for _, dim := range shape {
		if dim < 0 {
			return -1
		}
		size *= dim
	}
	return size
}

// NewArray builds an array over the given shape and row-major data.
// Stage 1 (Validate): reject negative extents and size/data mismatches.
// Stage 2 (Prepare): copy shape and data so the caller keeps ownership.
// Stage 3 (Finalize): return the array.
// Complexity: O(len(data)) time and memory.
func NewArray(shape []int, data []any) (*Array, error) {
	size := sizeOf(shape)
	if size < 0 {
		return nil, ufuncErrorf("NewArray", ErrBadShape)
	}
	if size != len(data) {
		return nil, ufuncErrorf("NewArray", ErrBadShape)
	}

	a := &Array{
		shape: append([]int(nil), shape...),
		data:  append([]any(nil), data...),
	}
	return a, nil
}

// ScalarOf boxes a single value into a rank-0 array.
// Complexity: O(1).
func ScalarOf(v any) *Array {
	return &Array{shape: nil, data: []any{v}}
}

// Full builds an array of the given shape with every element set to fill.
// Returns ErrBadShape on negative extents.
// Complexity: O(size) time and memory.
func Full(shape []int, fill any) (*Array, error) {
	size := sizeOf(shape)
	if size < 0 {
		return nil, ufuncErrorf("Full", ErrBadShape)
	}

	data := make([]any, size)
	for i := range data {
		data[i] = fill
	}
	return &Array{shape: append([]int(nil), shape...), data: data}, nil
}

// FullLike builds an array shaped like a with every element set to fill.
// Complexity: O(a.Size()) time and memory.
func FullLike(a *Array, fill any) (*Array, error) {
	if a == nil {
		return nil, ufuncErrorf("FullLike", ErrNilArray)
	}

	out, err := Full(a.shape, fill)
	if err != nil {
		return nil, ufuncErrorf("FullLike", err)
	}
	return out, nil
}

// Rank returns the number of axes; 0 for scalar boxes.
// Complexity: O(1).
func (a *Array) Rank() int {
	return len(a.shape)
}

// Shape returns a copy of the per-axis extents.
// Complexity: O(rank).
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Size returns the total element count (1 for rank 0).
// Complexity: O(1).
func (a *Array) Size() int {
	return len(a.data)
}

// At retrieves the element at flat row-major position i.
// Returns ErrOutOfRange for i<0 or i>=Size().
// Complexity: O(1).
func (a *Array) At(i int) (any, error) {
	if i < 0 || i >= len(a.data) {
		return nil, ufuncErrorf("At", ErrOutOfRange)
	}
	return a.data[i], nil
}

// Set assigns v at flat row-major position i.
// Returns ErrOutOfRange for invalid positions.
// Complexity: O(1).
func (a *Array) Set(i int, v any) error {
	if i < 0 || i >= len(a.data) {
		return ufuncErrorf("Set", ErrOutOfRange)
	}
	a.data[i] = v
	return nil
}

// Item unwraps the single element of a scalar box.
// Returns ErrNotScalar when the array holds more than one element.
// Complexity: O(1).
func (a *Array) Item() (any, error) {
	if len(a.data) != 1 {
		return nil, ufuncErrorf("Item", ErrNotScalar)
	}
	return a.data[0], nil
}

// Clone returns a deep copy of the container (elements are shared values).
// Complexity: O(size).
func (a *Array) Clone() *Array {
	return &Array{
		shape: append([]int(nil), a.shape...),
		data:  append([]any(nil), a.data...),
	}
}

// Map applies f to every element in one deterministic flat pass and
// returns a same-shaped array of the results. This is the single-pass
// conditional-select kernel behind the sentinel's exponentiation
// identities.
// Complexity: O(size) time and memory.
func (a *Array) Map(f func(any) any) *Array {
	out := make([]any, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}
	return &Array{shape: append([]int(nil), a.shape...), data: out}
}
