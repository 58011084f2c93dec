// Package na provides the NA sentinel: one process-wide value meaning
// "this value exists but is unknown".
//
// 🚀 What is NA?
//
//	A singleton marker distinct from nil, from floating-point NaN and from
//	the not-a-time marker (package nat). Unlike NaN, NA is self-consistent
//	as a map key, and unlike nil it carries full operator semantics:
//	  • arithmetic, comparison, matmul and divmod propagate NA
//	  • boolean and/or/xor follow three-valued (Kleene) logic
//	  • exponentiation honors the identities x**0 == 1, 1**x == 1 and
//	    (-1)**x == ±1 even when x is unknown
//	  • rank-N array operands produce same-shaped arrays of NA
//
// ✨ Ground rules:
//
//   - NA == NA is NA, not true — equality propagates like everything
//     else. Callers needing a boolean must check identity (v == na.NA).
//   - bool(NA) is an error, always: branching on "unknown" is a logic bug
//     the library surfaces instead of guessing.
//   - Operand types outside {NA, bool, number, string, array} make the
//     operator methods defer with ufunc.NotImplemented; only the fallback
//     protocol (ufunc.Binary) turns a double defer into an error.
//
// The ufunc.Handler hook on NA intercepts vectorized element-wise calls
// and reroutes them to the scalar operator methods; reductions,
// accumulations, outer products and scatter calls are rejected.
package na
