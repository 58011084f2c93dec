// SPDX-License-Identifier: MIT

// Package na: the singleton itself — construction, identity, printing,
// hashing and the (always rejected) truth-value conversion. Operator
// semantics live in ops.go, kleene.go and pow.go; the vectorized-call
// hook in hook.go.
package na

import (
	"hash/fnv"
	"sync"
)

// NAType is the type of the NA sentinel. It carries no state beyond
// identity; every method's outcome depends only on the other operand.
type NAType struct{}

var (
	initOnce  sync.Once
	singleton *NAType
	hashCode  uint64
)

// New returns the process-wide NA instance. The first call constructs it
// exactly once (guarded-once initialization); every later call — and
// package-level initialization order — observes the same pointer, so
// identity checks against na.NA are always meaningful.
// Complexity: O(1).
func New() *NAType {
	initOnce.Do(func() {
		singleton = &NAType{}
		// A fixed, identity-stable hash code. Unlike NaN (never equal to
		// itself, hash-inconsistent in numeric contexts), NA keeps the
		// key contract: one instance, one code, for the process lifetime.
		h := fnv.New64a()
		_, _ = h.Write([]byte("<NA>"))
		hashCode = h.Sum64()
	})
	return singleton
}

// NA is the shared missing-value sentinel.
var NA = New()

// String implements fmt.Stringer.
func (*NAType) String() string {
	return "<NA>"
}

// Bool is the truth-value conversion, and it always fails: the truthiness
// of "unknown" is ambiguous by definition. The bool result is only there
// to keep call sites shaped like other conversions; it is always false.
func (*NAType) Bool() (bool, error) {
	return false, ErrAmbiguousTruth
}

// Hash returns the sentinel's stable hash code. Map-key usage needs no
// help from this method — *NAType keys compare by pointer identity — but
// hash-table layers that fold values through a code can use it and stay
// consistent across the process lifetime.
// Complexity: O(1).
func (*NAType) Hash() uint64 {
	New() // ensure the code is initialized even under odd init orders
	return hashCode
}
