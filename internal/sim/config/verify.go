// Package config turns the process argument vector into the immutable
// simulator configuration.
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/weirsim/weir-go/internal/telemetry/logger"
)

// verify validates parsed values before the Config is marked live. All
// rejections happen here, at parse time, so accessors never fail.
func verify(cfg *Config) error {
	if _, ok := logger.LevelFromName(cfg.logLevel); !ok {
		return fmt.Errorf("unknown log level %q (accepted: %s)",
			cfg.logLevel, strings.Join(logger.LevelNames(), ", "))
	}

	if cfg.workers < 0 {
		return fmt.Errorf("--workers must be >= 0, got %d", cfg.workers)
	}
	if cfg.workers > maxWorkerThreads {
		return fmt.Errorf("--workers must be <= %d to stay within the real descriptor range (< %d), got %d",
			maxWorkerThreads, MinVirtualDescriptor, cfg.workers)
	}

	if cfg.metricsListen != "" {
		if _, _, err := net.SplitHostPort(cfg.metricsListen); err != nil {
			return fmt.Errorf("--metrics-listen must be host:port: %v", err)
		}
	}

	if cfg.minRunAhead < 1 {
		return fmt.Errorf("--min-runahead must be >= 1 ms, got %d", cfg.minRunAhead)
	}

	if cfg.sendBuffer < 1 {
		return fmt.Errorf("--send-buffer must be >= 1 byte, got %d", cfg.sendBuffer)
	}
	if cfg.recvBuffer < 1 {
		return fmt.Errorf("--recv-buffer must be >= 1 byte, got %d", cfg.recvBuffer)
	}

	return nil
}
