// SPDX-License-Identifier: MIT

// Package nat: the not-a-time marker, its reserved bit pattern and the
// int64-backed scalar wrappers that carry it. Everything here is a plain
// value type; the package has no mutable state.
package nat

import (
	"math"
	"strconv"
)

// sentinelBits is the reserved 64-bit pattern that encodes "not a time"
// inside Datetime64, Timedelta64 and period ordinals. It is fixed at
// process start and treated as opaque by callers; only the wrappers below
// and the predicates in package missing interpret it.
const sentinelBits int64 = math.MinInt64

// SentinelBits returns the reserved not-a-time bit pattern.
// Complexity: O(1).
func SentinelBits() int64 {
	return sentinelBits
}

// NaTType is the type of the NaT marker. Use the shared NaT value; distinct
// instances would defeat identity checks.
type NaTType struct{}

// NaT is the shared not-a-time marker.
var NaT = &NaTType{}

// String implements fmt.Stringer.
func (*NaTType) String() string {
	return "NaT"
}

// IsNaT reports whether v is the NaT marker itself or an int64-backed time
// scalar carrying the reserved bit pattern.
// Complexity: O(1).
func IsNaT(v any) bool {
	switch x := v.(type) {
	case *NaTType:
		return true
	case Datetime64:
		return int64(x) == sentinelBits
	case Timedelta64:
		return int64(x) == sentinelBits
	case Period:
		return x.Ordinal == sentinelBits
	default:
		return false
	}
}

// Datetime64 is a point in time encoded as an int64 offset from the epoch.
// The unit is owned by the surrounding column; this package only interprets
// the reserved not-a-time pattern.
type Datetime64 int64

// IsNaT reports whether d carries the reserved not-a-time pattern.
func (d Datetime64) IsNaT() bool {
	return int64(d) == sentinelBits
}

// String implements fmt.Stringer; NaT-valued scalars print as "NaT".
func (d Datetime64) String() string {
	if d.IsNaT() {
		return "NaT"
	}
	return "datetime64(" + itoa(int64(d)) + ")"
}

// Timedelta64 is a duration encoded as an int64 count of epoch units.
type Timedelta64 int64

// IsNaT reports whether t carries the reserved not-a-time pattern.
func (t Timedelta64) IsNaT() bool {
	return int64(t) == sentinelBits
}

// String implements fmt.Stringer; NaT-valued scalars print as "NaT".
func (t Timedelta64) String() string {
	if t.IsNaT() {
		return "NaT"
	}
	return "timedelta64(" + itoa(int64(t)) + ")"
}

// Period is a span of time identified by an ordinal within a frequency.
// A Period whose Ordinal carries the reserved pattern is not-a-time.
type Period struct {
	Ordinal int64  // ordinal position within Freq
	Freq    string // frequency code, e.g. "D", "M"
}

// IsNaT reports whether p carries the reserved not-a-time pattern.
func (p Period) IsNaT() bool {
	return p.Ordinal == sentinelBits
}

// String implements fmt.Stringer; NaT-valued periods print as "NaT".
func (p Period) String() string {
	if p.IsNaT() {
		return "NaT"
	}
	return "period(" + itoa(p.Ordinal) + ", " + p.Freq + ")"
}

// itoa is a local alias to keep the String methods compact.
func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
