package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "fit.log")

	// MaxSize is in MB; 1 is the smallest lumberjack allows.
	err := InitWithOptions(Options{
		Level: "debug",
		File: FileConfig{
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 2,
			MaxAgeDays: 1,
		},
	})
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer InitNop()

	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("sun state %d: %s", i, longMessage)
	}
	Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Error("main log file does not exist")
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	rotated := 0
	for _, f := range files {
		name := f.Name()
		if name == "fit.log" || !strings.HasPrefix(name, "fit") {
			continue
		}
		rotated++
		// Rotated files are named fit-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") {
			t.Errorf("rotated file %s doesn't have expected timestamp format", name)
		}
	}
	if rotated == 0 {
		t.Error("no rotated files found")
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{level: "error", expected: []string{"ERROR"}, excluded: []string{"WARN", "INFO", "DEBUG"}},
		{level: "warn", expected: []string{"ERROR", "WARN"}, excluded: []string{"INFO", "DEBUG"}},
		{level: "info", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
		{level: "debug", expected: []string{"ERROR", "WARN", "INFO", "DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), tt.level+".log")
			if err := InitWithOptions(Options{Level: tt.level, File: FileConfig{Path: logFile, MaxSizeMB: 10}}); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}
			defer InitNop()

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestJSONConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithOptions(Options{Level: "info", Format: FormatJSON, Console: &buf}); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer InitNop()

	Named("skyfit").Info("fit complete", zap.Int("terms", 49))
	Sync()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("console output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["logger"] != "skyfit" {
		t.Errorf("expected logger name skyfit, got %v", entry["logger"])
	}
	if entry["msg"] != "fit complete" {
		t.Errorf("unexpected message %v", entry["msg"])
	}
	if entry["terms"] != float64(49) {
		t.Errorf("expected terms 49, got %v", entry["terms"])
	}
}

func TestInitRejectsUnknownSettings(t *testing.T) {
	defer InitNop()
	if err := InitWithOptions(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if err := InitWithOptions(Options{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	InitNop()
	Info("dropped")
	Named("report").Warn("dropped")
	Sync()
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/skysh.log")

	if cfg.Path != "/tmp/skysh.log" {
		t.Errorf("expected path /tmp/skysh.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 14 {
		t.Errorf("expected MaxAgeDays 14, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
