package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "cull.log")

	err := Init(Options{
		Level: "debug",
		File: FileConfig{
			Path:       logFile,
			MaxSizeMB:  1, // smallest lumberjack allows
			MaxBackups: 2,
			MaxAgeDays: 1,
		},
	})
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	// ~250 bytes per line, enough to pass 1MB
	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 6000; i++ {
		Sugar.Infof("frame %d: %s", i, longMessage)
	}
	Sync()

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	rotated := 0
	for _, f := range files {
		name := f.Name()
		if name == "cull.log" {
			continue
		}
		if strings.HasPrefix(name, "cull-") && strings.HasSuffix(name, ".log") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("no rotated files found in %v", files)
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
		{
			level:    "bogus",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			if err := Init(Options{Level: tt.level, File: FileConfig{Path: logFile, MaxSizeMB: 10}}); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

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

func TestJSONFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "cull.json")

	l, err := New(Options{Level: "info", File: FileConfig{Path: logFile, MaxSizeMB: 1, JSON: true}})
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	l.Named("octree").Info("rebuilt", zap.Int("nodes", 585))
	_ = l.Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, content)
	}
	if entry["msg"] != "rebuilt" {
		t.Errorf("msg: got %v", entry["msg"])
	}
	if entry["logger"] != "octree" {
		t.Errorf("logger: got %v", entry["logger"])
	}
	if entry["nodes"] != float64(585) {
		t.Errorf("nodes: got %v", entry["nodes"])
	}
}

func TestNewWithoutOutputs(t *testing.T) {
	l, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zap.ErrorLevel) {
		t.Error("logger without outputs should discard everything")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/cull.log")

	if cfg.Path != "/tmp/cull.log" {
		t.Errorf("expected path /tmp/cull.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 {
		t.Errorf("expected MaxSizeMB 50, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
	if cfg.JSON {
		t.Error("expected JSON to be false")
	}
}
