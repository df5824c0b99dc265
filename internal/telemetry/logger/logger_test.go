package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestLevelFromName(t *testing.T) {
	tests := []struct {
		name string
		want hclog.Level
		ok   bool
	}{
		{"error", hclog.Error, true},
		{"critical", hclog.Error, true},
		{"warning", hclog.Warn, true},
		{"message", hclog.Info, true},
		{"info", hclog.Info, true},
		{"debug", hclog.Debug, true},
		{"MESSAGE", hclog.Info, true}, // case-insensitive
		{"verbose", hclog.NoLevel, false},
		{"", hclog.NoLevel, false},
	}

	for _, tt := range tests {
		got, ok := LevelFromName(tt.name)
		if ok != tt.ok {
			t.Errorf("LevelFromName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LevelFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLevelNamesSortedAndComplete(t *testing.T) {
	names := LevelNames()
	if len(names) != len(levelNames) {
		t.Fatalf("LevelNames() returned %d names, want %d", len(names), len(levelNames))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("LevelNames() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != DefaultLevelName {
		t.Errorf("Level = %q, want %q", cfg.Level, DefaultLevelName)
	}
	if _, ok := LevelFromName(cfg.Level); !ok {
		t.Errorf("default level %q not in level table", cfg.Level)
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "message", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Info("hello", "key", "value")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("output %q missing message", buf.String())
	}

	// A message below the configured level must be suppressed.
	buf.Reset()
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output not suppressed: %q", buf.String())
	}
}

func TestNewUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "shouty"})
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !strings.Contains(err.Error(), "shouty") {
		t.Errorf("error %q does not name the bad level", err)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info("structured")
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
