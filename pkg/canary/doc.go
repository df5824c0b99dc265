// Package canary provides a liveness marker for explicitly released objects.
//
// Objects with an explicit release operation embed a Tag, set it during
// construction, and clear it at the start of release. Every public operation
// on the object asserts the tag first, so a use-after-free or double-free
// fails immediately at the misuse site instead of silently reading stale
// state.
//
// Lifecycle:
//
//   - Init: called once, at the end of construction
//   - Assert: called at the top of every public operation
//   - Clear: called once, at the start of release
//
// An assertion failure is a programming error in the caller, not an input
// error, and terminates the process by panicking. The marker is always
// compiled in.
package canary
