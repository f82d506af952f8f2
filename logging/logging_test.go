package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	}
	for name, want := range cases {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", name, want, got)
		}
	}
}

func TestNewWriterFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Int("shots", 3).Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "shots=3") {
		t.Errorf("Expected warn line with fields, got %q", out)
	}
}

func TestNewDisabled(t *testing.T) {
	log, closer, err := New(Config{Enabled: false, Path: "ignored.log"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected disabled logger, got %v", log.GetLevel())
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Expected no-op close, got %v", err)
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "longbow.log")
	log, closer, err := New(Config{Enabled: true, Path: path, Level: "info"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info().Msg("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "started") {
		t.Errorf("Expected log line in file, got %q", data)
	}
}
