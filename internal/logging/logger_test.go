package logging_test

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/snipsync/internal/logging"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level)
			if logger.GetLevel() != tt.want {
				t.Errorf("New(%q).GetLevel() = %v, want %v", tt.level, logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestDefaultIsStable(t *testing.T) {
	t.Parallel()

	if logging.Default() != logging.Default() {
		t.Error("Default() returned different loggers across calls")
	}
}
