// Package shutdown provides ordered teardown for Weir.
//
// A batch simulator stops for one of two reasons: the event queue drains, or
// the operator interrupts the run. Both paths converge on one Handler so the
// teardown sequence is identical: hooks run in reverse registration order,
// which lets the entry point stop the engine before releasing the
// configuration it reads (the configuration's release must be sequenced
// after all readers).
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Programmatic trigger on run completion
//   - Timeout-bounded hook execution
package shutdown
