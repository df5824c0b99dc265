// Package config turns the process argument vector into the immutable
// simulator configuration.
//
// Parse is the single construction point: it either returns a fully
// populated Config or an error, never a partially filled one. A Config is
// read-only for its whole life and is guarded by a canary liveness tag, so
// reading it after Free fails loudly instead of returning stale values.
//
// Option groups:
//
//   - core: log level, worker threads, version
//   - network: minimum run-ahead and socket-buffer emulation tuning
//   - plugin examples: built-in ping/echo/file workloads
//
// Trailing positional arguments are paths to XML scenario files; their order
// is preserved because it determines scenario load order downstream.
package config
