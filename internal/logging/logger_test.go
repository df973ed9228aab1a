package logging

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("parsing log line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatkit.log")
	logger, err := NewLogger(path, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Info("message sent", "message_id", "m1")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["msg"] != "message sent" {
		t.Errorf("msg = %v", entries[0]["msg"])
	}
	if entries[0]["message_id"] != "m1" {
		t.Errorf("message_id = %v", entries[0]["message_id"])
	}
}

func TestNewLoggerCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "chatkit.log")
	logger, err := NewLogger(path, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello")
	logger.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatkit.log")
	logger, err := NewLogger(path, LevelWarn)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")
	logger.Close()

	entries := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (warn and error only)", len(entries))
	}
	if entries[0]["msg"] != "warn msg" || entries[1]["msg"] != "error msg" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestPersistentAttributes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatkit.log")
	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	child := logger.WithComponent("chatlist").WithConversation("c42")
	child.Info("appended", "count", 3)
	logger.Info("plain")
	logger.Close()

	entries := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["component"] != "chatlist" {
		t.Errorf("component = %v", entries[0]["component"])
	}
	if entries[0]["conversation_id"] != "c42" {
		t.Errorf("conversation_id = %v", entries[0]["conversation_id"])
	}
	// The parent logger must not inherit the child's attributes.
	if _, ok := entries[1]["component"]; ok {
		t.Error("parent logger leaked child attribute")
	}
}

func TestWithIgnoresNonStringKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatkit.log")
	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.With(42, "x", "ok", "y").Info("checked")
	logger.Close()

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if _, ok := entries[0]["42"]; ok {
		t.Error("non-string key should be skipped")
	}
	if entries[0]["ok"] != "y" {
		t.Errorf("ok = %v", entries[0]["ok"])
	}
}

func TestParseLevelDefaults(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	logger := NopLogger()
	logger.Debug("a")
	logger.WithComponent("x").Info("b", "k", "v")
	if err := logger.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
