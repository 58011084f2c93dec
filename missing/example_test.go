// SPDX-License-Identifier: MIT

package missing_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/navalue/missing"
	"github.com/katalvlaran/navalue/na"
	"github.com/katalvlaran/navalue/ufunc"
)

// ExampleIsMissing contrasts the two policies on the values where they
// disagree.
func ExampleIsMissing() {
	fmt.Println(missing.IsMissing(math.NaN()))        // NaN is missing
	fmt.Println(missing.IsMissing(math.Inf(1)))       // +Inf is present (strict)
	fmt.Println(missing.IsMissingLegacy(math.Inf(1))) // but missing under legacy
	// Output:
	// true
	// false
	// true
}

// ExampleMask1D classifies a small column element by element.
func ExampleMask1D() {
	col, _ := ufunc.NewArray([]int{4}, []any{nil, 1, math.NaN(), na.NA})
	mask, _ := missing.Mask1D(col, missing.Strict)
	fmt.Println(mask)
	// Output:
	// [true false true true]
}

// ExampleMask2D classifies a 2×2 block and keeps its shape.
func ExampleMask2D() {
	block, _ := ufunc.NewArray([]int{2, 2}, []any{1, na.NA, 2, 3})
	mask, _ := missing.Mask2D(block, missing.Strict)
	fmt.Println(mask)
	// Output:
	// [[false true] [false false]]
}
