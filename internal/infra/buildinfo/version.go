// Package buildinfo provides build and run identity for Weir.
package buildinfo

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Build-time variables (set via ldflags).
var (
	// Version is the semantic version.
	Version = "dev"

	// Commit is the git commit hash.
	Commit = "unknown"

	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Info contains build and run information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	RunID     string `json:"run_id"`
}

// Get returns the build information for this process.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		RunID:     RunID(),
	}
}

// String returns a formatted version string.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + BuildTime + ")"
}

var (
	runOnce sync.Once
	runID   string
)

// RunID returns the process-wide simulation run identifier, a ULID generated
// on first use. ULIDs sort by creation time, which keeps runs ordered in
// aggregated logs.
func RunID() string {
	runOnce.Do(func() {
		runID = ulid.Make().String()
	})
	return runID
}
