package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"padded", " warn ", slog.LevelWarn},
		{"invalid level", "INVALID", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.value); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	l := FromEnv()
	if l == nil || l.Logger == nil {
		t.Fatal("FromEnv() returned nil")
	}
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be enabled")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("shown warn", "tick", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("records below WARN leaked: %s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "tick=7") {
		t.Errorf("missing warn record: %s", out)
	}
}

func TestErrorAttachesCause(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.Error("asset load failed", errors.New("no such file"), "path", "fire.png")

	out := buf.String()
	if !strings.Contains(out, `error="no such file"`) {
		t.Errorf("error not attached: %s", out)
	}
	if !strings.Contains(out, "path=fire.png") {
		t.Errorf("args not kept: %s", out)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo).With("cmd", "run")
	l.Info("started")

	if !strings.Contains(buf.String(), "cmd=run") {
		t.Errorf("With attrs missing: %s", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing", errors.New("x"))
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should not enable ERROR")
	}
}
