// Package simtime defines the simulated-time unit system.
package simtime

import (
	"math"
	"time"
)

// Time is a simulated instant, in nanoseconds since the simulation epoch.
type Time uint64

// Unit constants, all exact multiples of Nanosecond.
const (
	Nanosecond  Time = 1
	Microsecond Time = 1000 * Nanosecond
	Millisecond Time = 1000 * Microsecond
	Second      Time = 1000 * Millisecond
	Minute      Time = 60 * Second
	Hour        Time = 60 * Minute
)

// Invalid is the reserved "unset/invalid" sentinel. It is never produced by
// valid arithmetic; any simulation bounded below roughly five hundred years
// stays strictly under it.
const Invalid Time = math.MaxUint64

// Valid reports whether t is a usable time value rather than the sentinel.
func (t Time) Valid() bool {
	return t != Invalid
}

// FromDuration converts a wall-clock duration to simulated time. Negative
// durations have no simulated counterpart and map to Invalid.
func FromDuration(d time.Duration) Time {
	if d < 0 {
		return Invalid
	}
	return Time(d)
}

// Duration converts t to a time.Duration. Conversion of Invalid, or of any
// value beyond the int64 nanosecond range, is a caller bug.
func (t Time) Duration() time.Duration {
	return time.Duration(t)
}

// String formats t for logs and diagnostics.
func (t Time) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return t.Duration().String()
}

// Sub returns t-u, or Invalid if u is after t. Simulated time never runs
// backwards, so a negative difference indicates misordered inputs.
func (t Time) Sub(u Time) Time {
	if u > t {
		return Invalid
	}
	return t - u
}
