// Package nat holds the "not-a-time" marker and the 64-bit scalar wrappers
// that share its reserved bit pattern.
//
// NaT is the domain-specific missing marker for datetime, timedelta and
// period values. It is deliberately distinct from the generic NA sentinel
// (package na) and from floating-point NaN: NaT means "this time-typed cell
// is missing", nothing more.
//
// The reserved bit pattern (the minimum int64) is shared across Datetime64,
// Timedelta64 and period ordinals; callers must disambiguate by declared
// type. Package missing exposes the per-type predicates that do exactly
// that.
package nat
