// Package config turns the process argument vector into the immutable
// simulator configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/weirsim/weir-go/internal/telemetry/logger"
)

// ErrHelp is returned by Parse when the argument vector asked for usage text
// instead of a simulation run. The caller exits cleanly; no Config exists.
var ErrHelp = errors.New("config: help requested")

// Parse builds a Config from the full argument vector (args[0] is the
// program name, as in os.Args). On any parse or validation failure a
// diagnostic is printed to stderr and no Config is returned. On success the
// returned Config is live and must eventually be released with Free.
func Parse(args []string) (*Config, error) {
	return parse(args, os.Stderr)
}

func parse(args []string, errw io.Writer) (*Config, error) {
	if len(args) == 0 {
		args = []string{"weir-sim"}
	}

	cfg := newDefault()
	ran := false

	app := &cli.App{
		Name:            "weir-sim",
		Usage:           "discrete-event network simulator",
		ArgsUsage:       "[scenario.xml ...]",
		HideVersion:     true,
		HideHelpCommand: true,
		Writer:          errw,
		ErrWriter:       errw,
		Flags:           flags(cfg),
		Action: func(c *cli.Context) error {
			ran = true
			cfg.scenarioPaths = append(cfg.scenarioPaths, c.Args().Slice()...)
			return nil
		},
	}

	if err := app.Run(args); err != nil {
		// urfave/cli already wrote the diagnostic and usage to errw.
		return nil, err
	}
	if !ran {
		return nil, ErrHelp
	}

	if err := verify(cfg); err != nil {
		fmt.Fprintf(errw, "weir-sim: %v\n", err)
		return nil, err
	}

	cfg.live.Init()
	return cfg, nil
}

// flags defines the option schema. Destinations point straight into cfg, so
// defaults and parsed values land in one place.
func flags(cfg *Config) []cli.Flag {
	return []cli.Flag{
		// core
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Category:    "core",
			Usage:       "log verbosity: " + strings.Join(logger.LevelNames(), ", "),
			Value:       DefaultLogLevel,
			Destination: &cfg.logLevel,
		},
		&cli.IntFlag{
			Name:        "workers",
			Aliases:     []string{"w"},
			Category:    "core",
			Usage:       "number of simulation worker threads (0 = single-threaded)",
			Value:       DefaultWorkers,
			Destination: &cfg.workers,
		},
		&cli.BoolFlag{
			Name:        "version",
			Category:    "core",
			Usage:       "print version information and exit",
			Destination: &cfg.printVersion,
		},
		&cli.StringFlag{
			Name:        "metrics-listen",
			Category:    "core",
			Usage:       "serve Prometheus metrics on this host:port while running (empty = disabled)",
			Destination: &cfg.metricsListen,
		},

		// network
		&cli.IntFlag{
			Name:        "min-runahead",
			Category:    "network",
			Usage:       "minimum scheduling look-ahead, in simulated milliseconds",
			Value:       DefaultMinRunAhead,
			Destination: &cfg.minRunAhead,
		},
		&cli.IntFlag{
			Name:        "send-buffer",
			Category:    "network",
			Usage:       "per-socket send-buffer size in bytes when autotuning is off",
			Value:       DefaultSendBuffer,
			Destination: &cfg.sendBuffer,
		},
		&cli.IntFlag{
			Name:        "recv-buffer",
			Category:    "network",
			Usage:       "per-socket receive-buffer size in bytes when autotuning is off",
			Value:       DefaultRecvBuffer,
			Destination: &cfg.recvBuffer,
		},
		&cli.BoolFlag{
			Name:        "force-send-buffer",
			Category:    "network",
			Usage:       "always use the fixed send-buffer size, never TCP autotuning",
			Destination: &cfg.forceSendBuffer,
		},
		&cli.BoolFlag{
			Name:        "delayed-acks",
			Category:    "network",
			Usage:       "delay acknowledgments in the virtual TCP stack",
			Destination: &cfg.delayedACKs,
		},

		// plugin examples
		&cli.BoolFlag{
			Name:        "run-ping-example",
			Category:    "plugin examples",
			Usage:       "run the built-in ping example workload",
			Destination: &cfg.runPingExample,
		},
		&cli.BoolFlag{
			Name:        "run-echo-example",
			Category:    "plugin examples",
			Usage:       "run the built-in echo example workload",
			Destination: &cfg.runEchoExample,
		},
		&cli.BoolFlag{
			Name:        "run-file-example",
			Category:    "plugin examples",
			Usage:       "run the built-in file-transfer example workload",
			Destination: &cfg.runFileExample,
		},
	}
}
