// Package metric provides Prometheus metrics for Weir.
//
// A Registry owns its own prometheus.Registry, so tests and multi-instance
// embedding never collide on the global default registry. The simulator
// records its resolved configuration once at startup and per-event progress
// while running.
package metric
