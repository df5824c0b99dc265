// Package engine runs the discrete-event loop.
//
// The engine consumes the resolved configuration's scheduling parameters:
// the worker count decides between single-threaded execution and bounded
// concurrent dispatch, and the minimum run-ahead bounds how far apart in
// simulated time two concurrently executed events may be. Events inside one
// run-ahead window are treated as causally independent; a barrier separates
// windows.
//
// The virtual network stack and the XML scenario parser are separate
// subsystems; they attach through the Scheduler and ScenarioLoader
// interfaces.
package engine
