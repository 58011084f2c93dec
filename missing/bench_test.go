// SPDX-License-Identifier: MIT

package missing_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/navalue/missing"
	"github.com/katalvlaran/navalue/na"
	"github.com/katalvlaran/navalue/ufunc"
)

// benchColumn builds a 1-D column with a sprinkling of every marker kind.
func benchColumn(b *testing.B, n int) *ufunc.Array {
	b.Helper()

	data := make([]any, n)
	for i := range data {
		switch i % 5 {
		case 0:
			data[i] = float64(i)
		case 1:
			data[i] = nil
		case 2:
			data[i] = math.NaN()
		case 3:
			data[i] = na.NA
		default:
			data[i] = "text"
		}
	}
	a, err := ufunc.NewArray([]int{n}, data)
	if err != nil {
		b.Fatalf("NewArray: %v", err)
	}
	return a
}

func BenchmarkMask1D_Strict(b *testing.B) {
	col := benchColumn(b, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := missing.Mask1D(col, missing.Strict); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMask1D_Legacy(b *testing.B) {
	col := benchColumn(b, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := missing.Mask1D(col, missing.Legacy); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsMissing_Scalar(b *testing.B) {
	values := []any{1.5, nil, math.NaN(), na.NA, "text"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = missing.IsMissing(values[i%len(values)])
	}
}
