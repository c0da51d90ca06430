package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseLogLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSetOutput_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "WARN")
	defer SetOutput(&bytes.Buffer{}, "INFO")

	Info("hidden")
	Warningf("visible %d", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO record written at WARN level: %q", out)
	}
	if !strings.Contains(out, "visible 1") {
		t.Errorf("WARN record missing: %q", out)
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	if err := Initialize(Config{Level: "DEBUG", FilePath: path, FileMaxSizeMB: 1}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	Debug("dungeon generated", "rooms", 9)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "rooms=9") {
		t.Errorf("log file = %q, want rooms=9 attribute", data)
	}
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(DEBUG) = false, want true")
	}

	l := slog.New(h)
	l.Info("step")
	l.Error("boom")

	if !strings.Contains(a.String(), "step") || !strings.Contains(a.String(), "boom") {
		t.Errorf("debug handler output = %q", a.String())
	}
	if strings.Contains(b.String(), "step") || !strings.Contains(b.String(), "boom") {
		t.Errorf("error handler output = %q", b.String())
	}
}
