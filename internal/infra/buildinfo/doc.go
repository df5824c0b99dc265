// Package buildinfo provides build and run identity for Weir.
//
// Build values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/weirsim/weir-go/internal/infra/buildinfo.Version=v1.0.0"
//
// RunID is generated once per process and correlates every log line and
// metric series produced by a single simulation run.
package buildinfo
