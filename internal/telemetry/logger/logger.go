// Package logger provides structured logging for Weir.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevelName is the level used when no --log-level flag is given.
const DefaultLevelName = "message"

// levelNames maps the simulator's level names onto hclog's enumeration.
// "critical" and "message" have no direct hclog counterpart and fold into
// the nearest level.
var levelNames = map[string]hclog.Level{
	"error":    hclog.Error,
	"critical": hclog.Error,
	"warning":  hclog.Warn,
	"message":  hclog.Info,
	"info":     hclog.Info,
	"debug":    hclog.Debug,
}

// LevelFromName resolves a level name to its hclog level. The second return
// is false for names not in the table.
func LevelFromName(name string) (hclog.Level, bool) {
	lvl, ok := levelNames[strings.ToLower(name)]
	return lvl, ok
}

// LevelNames returns the accepted level names, sorted, for usage text and
// diagnostics.
func LevelNames() []string {
	names := make([]string, 0, len(levelNames))
	for name := range levelNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config holds logger configuration.
type Config struct {
	// Level is one of the names in LevelNames.
	Level string
	// Format is the output format (text, json).
	Format string
	// Output is the output writer (defaults to os.Stderr).
	Output io.Writer
	// IncludeLocation adds source file information to log entries.
	IncludeLocation bool
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  DefaultLevelName,
		Format: "text",
		Output: os.Stderr,
	}
}

// New creates a logger with the given configuration. Unknown level names are
// an error; callers resolving levels from user input should have validated
// them with LevelFromName already.
func New(cfg Config) (hclog.Logger, error) {
	lvl, ok := LevelFromName(cfg.Level)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q (accepted: %s)",
			cfg.Level, strings.Join(LevelNames(), ", "))
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            "weir",
		Level:           lvl,
		Output:          output,
		JSONFormat:      strings.EqualFold(cfg.Format, "json"),
		IncludeLocation: cfg.IncludeLocation,
	}), nil
}

// SetDefault installs l as the process-wide default logger.
func SetDefault(l hclog.Logger) {
	hclog.SetDefault(l)
}

// Default returns the process-wide default logger.
func Default() hclog.Logger {
	return hclog.Default()
}
