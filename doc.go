// Package navalue is a small missing-value kernel for tabular data: one
// shared NA sentinel with fully defined propagation semantics, plus the
// classification predicates that decide what counts as "missing" in the
// first place.
//
// 🚀 What is navalue?
//
//	A pure-Go library that brings together:
//		• na/      — the NA sentinel: one process-wide value meaning
//		  "exists but unknown", with a complete operator table,
//		  three-valued (Kleene) logic and exponentiation identities
//		• missing/ — null classification: strict and legacy policies,
//		  scalar predicates and 1-D/2-D boolean masks
//		• ufunc/   — the element-wise dispatch convention arrays use to
//		  hand operations involving NA back to the sentinel, plus a
//		  rank-N object array container
//		• nat/     — the opaque "not-a-time" marker and the 64-bit
//		  wrappers that share its reserved bit pattern
//
// ✨ Why choose navalue?
//
//   - Deterministic – outcomes depend only on operand kinds and values
//   - Honest about unknowns – NA never collapses to true or false;
//     branching on it is a surfaced error, not a guess
//   - Pure Go – no cgo, no I/O, safe for concurrent readers
//   - Auditable – every operator rule is an explicit switch, not a
//     generated closure
//
// Quick taste:
//
//	v := na.NA
//	_ = v.Add(1)                  // NA: unknown + 1 is unknown
//	_ = v.Pow(0)                  // 1: x**0 == 1 even for unknown x
//	_ = v.And(false)              // false: False absorbs under Kleene AND
//	missing.IsMissing(math.NaN()) // true
//
// See each subpackage's doc.go for the full contracts.
//
//	go get github.com/katalvlaran/navalue
package navalue
