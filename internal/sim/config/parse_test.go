package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// parseErr runs parse expecting failure and returns whatever was written to
// the error stream along with the error.
func parseErr(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cfg, err := parse(append([]string{"weir-sim"}, args...), &buf)
	if err == nil {
		t.Fatalf("parse(%v) succeeded, want error", args)
	}
	if cfg != nil {
		t.Fatalf("parse(%v) returned a Config alongside an error", args)
	}
	return buf.String(), err
}

func TestMalformedWorkers(t *testing.T) {
	out, err := parseErr(t, "--workers", "notanumber")
	if !strings.Contains(err.Error(), "notanumber") {
		t.Errorf("error %q does not name the bad value", err)
	}
	if out == "" {
		t.Error("no diagnostic written to the error stream")
	}
}

func TestUnknownFlag(t *testing.T) {
	out, err := parseErr(t, "--no-such-option")
	if !strings.Contains(err.Error(), "no-such-option") {
		t.Errorf("error %q does not name the unknown flag", err)
	}
	if out == "" {
		t.Error("no diagnostic written to the error stream")
	}
}

func TestMissingValue(t *testing.T) {
	out, _ := parseErr(t, "--log-level")
	if out == "" {
		t.Error("no diagnostic written to the error stream")
	}
}

func TestUnknownLogLevel(t *testing.T) {
	out, err := parseErr(t, "--log-level", "shouty")
	if !strings.Contains(err.Error(), "shouty") {
		t.Errorf("error %q does not name the bad level", err)
	}
	if !strings.Contains(out, "shouty") {
		t.Errorf("diagnostic %q does not name the bad level", out)
	}
}

func TestNegativeWorkers(t *testing.T) {
	_, err := parseErr(t, "--workers", "-3")
	if !strings.Contains(err.Error(), "--workers") {
		t.Errorf("error %q does not name the flag", err)
	}
}

func TestWorkersOverDescriptorCap(t *testing.T) {
	_, err := parseErr(t, "--workers", "100000")
	if !strings.Contains(err.Error(), "--workers") {
		t.Errorf("error %q does not name the flag", err)
	}
}

func TestZeroMinRunAhead(t *testing.T) {
	_, err := parseErr(t, "--min-runahead", "0")
	if !strings.Contains(err.Error(), "--min-runahead") {
		t.Errorf("error %q does not name the flag", err)
	}
}

func TestZeroBufferSizes(t *testing.T) {
	if _, err := parseErr(t, "--send-buffer", "0"); !strings.Contains(err.Error(), "--send-buffer") {
		t.Errorf("error %q does not name the flag", err)
	}
	if _, err := parseErr(t, "--recv-buffer", "0"); !strings.Contains(err.Error(), "--recv-buffer") {
		t.Errorf("error %q does not name the flag", err)
	}
}

func TestMalformedMetricsListen(t *testing.T) {
	_, err := parseErr(t, "--metrics-listen", "not-an-address")
	if !strings.Contains(err.Error(), "--metrics-listen") {
		t.Errorf("error %q does not name the flag", err)
	}
}

func TestHelpRequested(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := parse([]string{"weir-sim", "--help"}, &buf)
	if cfg != nil {
		t.Fatal("help must not produce a Config")
	}
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("err = %v, want ErrHelp", err)
	}
	if !strings.Contains(buf.String(), "--workers") {
		t.Errorf("usage text missing flag documentation:\n%s", buf.String())
	}
}

func TestEmptyArgumentVector(t *testing.T) {
	cfg, err := parse(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse(nil) failed: %v", err)
	}
	defer cfg.Free()
	if got := cfg.Workers(); got != DefaultWorkers {
		t.Errorf("Workers() = %d, want default %d", got, DefaultWorkers)
	}
}
