package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]hclog.Level{
		"debug":   hclog.Debug,
		" INFO ":  hclog.Info,
		"off":     hclog.Off,
		"":        hclog.Warn,
		"chatty":  hclog.Warn,
		"warn":    hclog.Warn,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestNewWritesNamedEntries(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)
	log.Debug("hidden")
	log.Info("rendered", "format", "srt")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry leaked at info level: %s", out)
	}
	if !strings.Contains(out, "subformat: rendered") || !strings.Contains(out, "format=srt") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestNewNopDiscards(t *testing.T) {
	log := NewNop()
	if log.IsError() {
		t.Fatalf("nop logger should have every level disabled")
	}
}
