// Package config turns the process argument vector into the immutable
// simulator configuration.
package config

import "github.com/weirsim/weir-go/internal/telemetry/logger"

// MinVirtualDescriptor partitions descriptor space: numbers at or above the
// cutoff identify virtual sockets owned by the simulated network stack,
// numbers below it are real OS file descriptors. The cutoff must stay above
// any realistic `ulimit -n` so the two ranges cannot collide in large
// simulations. Process-wide convention, not a tunable.
const MinVirtualDescriptor = 30000

// Default configuration values.
const (
	DefaultLogLevel    = logger.DefaultLevelName
	DefaultWorkers     = 0
	DefaultMinRunAhead = 10 // simulated milliseconds

	// Socket-buffer sizes used when TCP autotuning is disabled, taken from
	// the kernel defaults documented in tcp(7).
	DefaultSendBuffer = 131072
	DefaultRecvBuffer = 174760
)

// maxWorkerThreads caps --workers. Each worker can pin real descriptors, and
// the real-descriptor range below MinVirtualDescriptor has to accommodate
// all of them on common descriptor limits.
const maxWorkerThreads = 1024

// newDefault returns a Config holding every documented default. The canary
// tag is left clear; only a successful Parse marks the object live.
func newDefault() *Config {
	return &Config{
		logLevel:    DefaultLogLevel,
		workers:     DefaultWorkers,
		minRunAhead: DefaultMinRunAhead,
		sendBuffer:  DefaultSendBuffer,
		recvBuffer:  DefaultRecvBuffer,
	}
}
