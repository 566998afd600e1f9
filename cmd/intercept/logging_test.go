package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// Tests chdir into a temp dir so logs/ never lands in the source tree
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be disabled without -debug")
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without -debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	slog.Debug("test log message", "key", "value")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)

	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	old, err := os.Stat(logPath + ".old")
	if err != nil {
		t.Fatalf("Expected rotated log file: %v", err)
	}
	if old.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated size %d, got %d", maxLogSize+1, old.Size())
	}

	cur, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if cur.Size() != 0 {
		t.Errorf("Expected fresh log file, got size %d", cur.Size())
	}
}

func TestRun_DefaultPlan(t *testing.T) {
	inTempDir(t)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	if err := run(context.Background(), "", 2); err != nil {
		t.Errorf("Expected built-in plan to run, got %v", err)
	}
	if err := run(context.Background(), "missing.toml", 2); err == nil {
		t.Error("Expected error for missing plan file")
	}
}
