// Package main provides the entry point for weir-sim.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/weirsim/weir-go/internal/infra/buildinfo"
	"github.com/weirsim/weir-go/internal/infra/shutdown"
	"github.com/weirsim/weir-go/internal/sim/config"
	"github.com/weirsim/weir-go/internal/sim/engine"
	"github.com/weirsim/weir-go/internal/telemetry/logger"
	"github.com/weirsim/weir-go/internal/telemetry/metric"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Parse(args)
	if errors.Is(err, config.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.PrintVersion() {
		fmt.Fprintf(stdout, "weir-sim %s\n", buildinfo.String())
		cfg.Free()
		return nil
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevelName()})
	if err != nil {
		cfg.Free()
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	log.Info("starting weir-sim",
		"version", buildinfo.Get().Version,
		"run_id", buildinfo.RunID(),
		"workers", cfg.Workers(),
		"min_runahead_ms", cfg.MinRunAhead(),
		"scenarios", len(cfg.ScenarioPaths()))

	metrics := metric.NewRegistry()
	metrics.SetBuildInfo(buildinfo.Version, buildinfo.Commit)
	metrics.ObserveConfig(cfg.Workers(), len(cfg.ScenarioPaths()))

	eng := engine.New(cfg, log, metrics)

	// The XML scenario subsystem attaches here; until then the queued loader
	// only records what it was handed.
	var loader engine.ScenarioLoader = queueLoader{log: log}
	if err := loader.Load(cfg.ScenarioPaths()); err != nil {
		cfg.Free()
		return fmt.Errorf("load scenarios: %w", err)
	}

	for _, w := range engine.Builtin(cfg, log) {
		log.Info("bootstrapping example workload", "name", w.Name())
		if err := w.Bootstrap(eng); err != nil {
			cfg.Free()
			return fmt.Errorf("bootstrap %s: %w", w.Name(), err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sd := shutdown.NewHandler(10 * time.Second)
	runErr := make(chan error, 1)

	// Hooks execute in reverse order: stop the engine and collect its
	// result first, release the configuration last. Free must be sequenced
	// after every configuration reader has finished.
	sd.OnShutdown(func(context.Context) error {
		cfg.Free()
		return nil
	})
	sd.OnShutdown(func(ctx context.Context) error {
		cancel()
		select {
		case err := <-runErr:
			if errors.Is(err, context.Canceled) {
				log.Warn("simulation interrupted")
				return err
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	if addr := cfg.MetricsListen(); addr != "" {
		metricsServer := &http.Server{Addr: addr, Handler: metrics.Handler()}
		sd.OnShutdown(func(ctx context.Context) error {
			return metricsServer.Shutdown(ctx)
		})
		go func() {
			log.Info("metrics listening", "addr", addr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server error", "error", err)
			}
		}()
	}

	go func() {
		runErr <- eng.Run(ctx)
		sd.Trigger()
	}()

	if err := sd.Wait(); err != nil {
		return err
	}
	log.Info("simulation complete", "sim_time", eng.Now().String())
	return nil
}

// queueLoader stands in for the XML scenario parser collaborator.
type queueLoader struct {
	log hclog.Logger
}

func (q queueLoader) Load(paths []string) error {
	for _, path := range paths {
		q.log.Info("queued scenario file", "path", path)
	}
	return nil
}
