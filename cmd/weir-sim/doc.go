// Package main provides the entry point for weir-sim.
//
// weir-sim is the discrete-event network simulator binary. It parses the
// command line into the immutable simulator configuration, then wires the
// logging, metrics and engine components around it:
//
//	weir-sim [flags] [scenario.xml ...]
//	weir-sim --workers 4 --run-ping-example topology.xml hosts.xml
//
// Scenario files load in the order given. On malformed input the diagnostic
// goes to stderr and the process exits non-zero without running anything.
package main
