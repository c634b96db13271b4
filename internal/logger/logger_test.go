package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screener.log")

	logger, err := New(true, false, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Named("rank").Info("ranked candidates")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected a single json entry, got %q: %v", data, err)
	}

	if entry["step"] != "ranked candidates" {
		t.Fatalf("unexpected message: %v", entry["step"])
	}

	if entry["component"] != "rank" {
		t.Fatalf("unexpected component: %v", entry["component"])
	}

	if entry["level"] != "info" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
}

func TestNewDebugLevel(t *testing.T) {
	logger, err := New(false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ce := logger.Check(zapcore.DebugLevel, "debug"); ce == nil {
		t.Fatalf("expected debug level to be enabled")
	}
}
