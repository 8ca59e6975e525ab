package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp dir for log file
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			// Check that log file was created
			logPath := filepath.Join(tempDir, "outfit", "outfit.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := getLogFilePath()
	if !filepath.IsAbs(got) {
		t.Errorf("getLogFilePath() returned relative path: %s", got)
	}
	if !strings.Contains(filepath.ToSlash(got), "/custom/state/outfit/outfit.log") {
		t.Errorf("getLogFilePath() = %s, want to contain /custom/state/outfit/outfit.log", got)
	}
}

func TestLogCommand(t *testing.T) {
	// Capture log output
	var buf bytes.Buffer

	// Set up logger with our buffer before calling SetupLogger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	// Log a command
	LogCommand("apt-get", []string{"install", "-y", "git"})

	// Check output
	output := buf.String()
	for _, want := range []string{"apt-get", "install", "git", "Executing command"} {
		if !strings.Contains(output, want) {
			t.Errorf("LogCommand output missing %q: %s", want, output)
		}
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("blockfile")
	logger.Info().Msg("test message")

	if !strings.Contains(buf.String(), "blockfile") {
		t.Errorf("GetLogger output missing component field: %s", buf.String())
	}
}
