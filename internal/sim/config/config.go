// Package config turns the process argument vector into the immutable
// simulator configuration.
package config

import (
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/weirsim/weir-go/internal/telemetry/logger"
	"github.com/weirsim/weir-go/pkg/canary"
)

// Config is the resolved simulator configuration. It is populated atomically
// by Parse, read-only afterwards, and therefore safe to read from any number
// of goroutines. Free releases it; every accessor asserts the canary tag, so
// access after Free is a fatal caller bug, not a silent stale read.
type Config struct {
	logLevel      string
	workers       int
	printVersion  bool
	metricsListen string

	minRunAhead     int
	sendBuffer      int
	recvBuffer      int
	forceSendBuffer bool
	delayedACKs     bool

	runPingExample bool
	runEchoExample bool
	runFileExample bool

	scenarioPaths []string

	live canary.Tag
}

// LogLevelName returns the configured level name as given on the command
// line (or the default).
func (c *Config) LogLevelName() string {
	c.live.Assert("configuration")
	return c.logLevel
}

// LogLevel resolves the configured level name to the logging subsystem's
// level enumeration. Parse already rejected unknown names, so this never
// fails.
func (c *Config) LogLevel() hclog.Level {
	c.live.Assert("configuration")
	lvl, _ := logger.LevelFromName(c.logLevel)
	return lvl
}

// Workers returns the number of simulation worker threads. Zero means the
// engine runs single-threaded on the calling goroutine.
func (c *Config) Workers() int {
	c.live.Assert("configuration")
	return c.workers
}

// PrintVersion reports whether --version was given. The caller prints build
// information and exits without running the simulation.
func (c *Config) PrintVersion() bool {
	c.live.Assert("configuration")
	return c.printVersion
}

// MetricsListen returns the address to serve Prometheus metrics on while
// the simulation runs, or the empty string when exposition is disabled.
func (c *Config) MetricsListen() string {
	c.live.Assert("configuration")
	return c.metricsListen
}

// MinRunAhead returns the minimum scheduling look-ahead in simulated
// milliseconds. The engine interprets it; it is not used here.
func (c *Config) MinRunAhead() int {
	c.live.Assert("configuration")
	return c.minRunAhead
}

// SendBuffer returns the per-socket send-buffer size in bytes, used when
// autotuning is off or forced off.
func (c *Config) SendBuffer() int {
	c.live.Assert("configuration")
	return c.sendBuffer
}

// RecvBuffer returns the per-socket receive-buffer size in bytes.
func (c *Config) RecvBuffer() int {
	c.live.Assert("configuration")
	return c.recvBuffer
}

// ForceSendBuffer reports whether the fixed send-buffer size must be used
// even where TCP autotuning is available.
func (c *Config) ForceSendBuffer() bool {
	c.live.Assert("configuration")
	return c.forceSendBuffer
}

// DelayedACKs reports whether the virtual TCP stack should delay
// acknowledgments.
func (c *Config) DelayedACKs() bool {
	c.live.Assert("configuration")
	return c.delayedACKs
}

// RunPingExample reports whether the built-in ping workload was selected.
func (c *Config) RunPingExample() bool {
	c.live.Assert("configuration")
	return c.runPingExample
}

// RunEchoExample reports whether the built-in echo workload was selected.
func (c *Config) RunEchoExample() bool {
	c.live.Assert("configuration")
	return c.runEchoExample
}

// RunFileExample reports whether the built-in file-transfer workload was
// selected.
func (c *Config) RunFileExample() bool {
	c.live.Assert("configuration")
	return c.runFileExample
}

// SelectedExamples returns the names of the selected built-in example
// workloads in a fixed order. The flags are independent; any subset may be
// selected.
func (c *Config) SelectedExamples() []string {
	c.live.Assert("configuration")
	var names []string
	if c.runPingExample {
		names = append(names, "ping")
	}
	if c.runEchoExample {
		names = append(names, "echo")
	}
	if c.runFileExample {
		names = append(names, "file")
	}
	return names
}

// ScenarioPaths returns the XML scenario file paths in command-line order.
// The returned slice is a copy; the stored sequence never changes.
func (c *Config) ScenarioPaths() []string {
	c.live.Assert("configuration")
	return slices.Clone(c.scenarioPaths)
}

// Free releases the configuration. Call it once, after every reader has
// finished; the single-writer-at-shutdown ordering is the caller's
// responsibility. Any accessor call after Free, including a second Free, is
// a liveness violation and panics.
func (c *Config) Free() {
	c.live.Assert("configuration")
	c.live.Clear()
	c.scenarioPaths = nil
}
