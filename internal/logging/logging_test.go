package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	if err := InitDir(dir); err != nil {
		t.Fatalf("InitDir() failed: %v", err)
	}

	slog.Info("chore resolved", "title", "Chore 1")

	data, err := os.ReadFile(filepath.Join(dir, "chorin.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "title=\"Chore 1\"") {
		t.Errorf("log file missing entry, got:\n%s", data)
	}
}

func TestDiscard(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Discard()
	if Logger == nil {
		t.Fatal("Discard() should install a logger")
	}
	Logger.Info("nowhere")
}
