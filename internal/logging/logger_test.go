package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLoggerWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "soloist.log")
	logger, err := NewLogger(path, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}

	logger.Info("started", "pid", 42)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["msg"] != "started" {
		t.Errorf("msg = %v, want %q", entries[0]["msg"], "started")
	}
	if entries[0]["pid"] != float64(42) {
		t.Errorf("pid = %v, want 42", entries[0]["pid"])
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soloist.log")
	logger, err := NewLogger(path, LevelWarn)
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("drop me")
	logger.Info("drop me too")
	logger.Warn("keep me")
	logger.Error("keep me too")
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	entries := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}
}

func TestWithComponentPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soloist.log")
	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatal(err)
	}

	child := logger.WithComponent("single").With("name", "app-ipc-1000")
	child.Debug("binding")
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["component"] != "single" {
		t.Errorf("component = %v, want %q", entries[0]["component"], "single")
	}
	if entries[0]["name"] != "app-ipc-1000" {
		t.Errorf("name = %v, want %q", entries[0]["name"], "app-ipc-1000")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	logger.Info("nothing happens")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nop logger: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "Warn", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "bogus", want: LevelInfo},
		{in: "", want: LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
