// Package simtime defines the simulated-time unit system.
//
// All simulator components represent time as a Time: unsigned nanoseconds
// since the simulation epoch. Using one unit everywhere avoids conversion
// bugs between the event scheduler, the virtual network stack, and
// configuration values.
//
// Invalid is a reserved sentinel meaning "unset/invalid time". Valid
// arithmetic never produces it; callers must check Valid before using a Time
// received from an out-of-band source.
package simtime
