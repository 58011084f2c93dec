// Package missing classifies scalar and array values as "missing" under
// two policies.
//
// The strict policy flags nil, the NA sentinel, floating-point NaN
// (including complex components), the not-a-time marker and any
// Datetime64/Timedelta64 carrying the reserved not-a-time bit pattern.
// The legacy policy additionally flags ±infinity; it exists purely for
// backward compatibility with callers that once conflated overflow with
// absence.
//
// Array masks come in exactly two shapes — Mask1D and Mask2D — and both
// enforce their rank as a hard contract (ErrBadRank). Object arrays are
// walked element by element on purpose: elements are heterogeneous values,
// not raw numeric cells, so there is no vectorized fast path to take.
//
// The narrower IsNullDatetime64 / IsNullTimedelta64 / IsNullPeriod
// predicates exist because the 64-bit not-a-time pattern is shared across
// the three time representations; callers must disambiguate by declared
// type, and each predicate rejects the other domain's pattern.
//
// All functions are pure and reentrant: no shared state, only local
// allocations, safe for concurrent use without synchronization.
package missing
