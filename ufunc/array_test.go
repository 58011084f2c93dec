// SPDX-License-Identifier: MIT

package ufunc_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/navalue/ufunc"
)

// --- construction -----------------------------------------------------------

func TestNewArray_ShapeContract(t *testing.T) {
	t.Parallel()

	a, err := ufunc.NewArray([]int{2, 3}, []any{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	if a.Rank() != 2 || a.Size() != 6 {
		t.Fatalf("rank=%d size=%d, want 2/6", a.Rank(), a.Size())
	}

	if _, err = ufunc.NewArray([]int{2, 3}, []any{1, 2}); !errors.Is(err, ufunc.ErrBadShape) {
		t.Fatalf("size mismatch: want ErrBadShape, got %v", err)
	}
	if _, err = ufunc.NewArray([]int{-1}, nil); !errors.Is(err, ufunc.ErrBadShape) {
		t.Fatalf("negative extent: want ErrBadShape, got %v", err)
	}
}

func TestNewArray_EmptyIsLegal(t *testing.T) {
	t.Parallel()

	a, err := ufunc.NewArray([]int{0}, []any{})
	if err != nil {
		t.Fatalf("empty array: %v", err)
	}
	if a.Size() != 0 || a.Rank() != 1 {
		t.Fatalf("rank=%d size=%d, want 1/0", a.Rank(), a.Size())
	}
}

func TestScalarOf_RankZero(t *testing.T) {
	t.Parallel()

	s := ufunc.ScalarOf(42)
	if s.Rank() != 0 || s.Size() != 1 {
		t.Fatalf("rank=%d size=%d, want 0/1", s.Rank(), s.Size())
	}
	v, err := s.Item()
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if v != 42 {
		t.Fatalf("Item = %v, want 42", v)
	}
}

func TestItem_NonScalar_Err(t *testing.T) {
	t.Parallel()

	a, _ := ufunc.NewArray([]int{2}, []any{1, 2})
	if _, err := a.Item(); !errors.Is(err, ufunc.ErrNotScalar) {
		t.Fatalf("want ErrNotScalar, got %v", err)
	}
}

// --- access -----------------------------------------------------------------

func TestAtSet_Bounds(t *testing.T) {
	t.Parallel()

	a, _ := ufunc.NewArray([]int{2}, []any{"a", "b"})

	if _, err := a.At(2); !errors.Is(err, ufunc.ErrOutOfRange) {
		t.Fatalf("At(2): want ErrOutOfRange, got %v", err)
	}
	if err := a.Set(-1, "x"); !errors.Is(err, ufunc.ErrOutOfRange) {
		t.Fatalf("Set(-1): want ErrOutOfRange, got %v", err)
	}
	if err := a.Set(1, "z"); err != nil {
		t.Fatalf("Set(1): %v", err)
	}
	v, err := a.At(1)
	if err != nil || v != "z" {
		t.Fatalf("At(1) = %v/%v, want z/nil", v, err)
	}
}

// --- fills, clone, map ------------------------------------------------------

func TestFull_And_FullLike(t *testing.T) {
	t.Parallel()

	f, err := ufunc.Full([]int{2, 2}, "x")
	if err != nil {
		t.Fatalf("Full: %v", err)
	}
	for i := 0; i < f.Size(); i++ {
		v, _ := f.At(i)
		if v != "x" {
			t.Fatalf("Full element %d = %v", i, v)
		}
	}

	like, err := ufunc.FullLike(f, 0)
	if err != nil {
		t.Fatalf("FullLike: %v", err)
	}
	if like.Rank() != 2 || like.Size() != 4 {
		t.Fatalf("FullLike shape mismatch: rank=%d size=%d", like.Rank(), like.Size())
	}

	if _, err = ufunc.FullLike(nil, 0); !errors.Is(err, ufunc.ErrNilArray) {
		t.Fatalf("FullLike(nil): want ErrNilArray, got %v", err)
	}
}

func TestClone_Independence(t *testing.T) {
	t.Parallel()

	a, _ := ufunc.NewArray([]int{2}, []any{1, 2})
	b := a.Clone()
	_ = b.Set(0, 99)

	v, _ := a.At(0)
	if v != 1 {
		t.Fatalf("clone must not share storage, a[0]=%v", v)
	}
}

func TestMap_SinglePassSelect(t *testing.T) {
	t.Parallel()

	a, _ := ufunc.NewArray([]int{3}, []any{0, 1, 2})
	out := a.Map(func(v any) any {
		if v == 0 {
			return "zero"
		}
		return v
	})

	want := []any{"zero", 1, 2}
	for i, w := range want {
		v, _ := out.At(i)
		if v != w {
			t.Fatalf("Map[%d] = %v, want %v", i, v, w)
		}
	}
	// Shape is preserved.
	if out.Rank() != 1 || out.Size() != 3 {
		t.Fatalf("Map must preserve shape, rank=%d size=%d", out.Rank(), out.Size())
	}
}
