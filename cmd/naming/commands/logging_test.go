package commands

import (
	"testing"

	"github.com/casetools/naming/extractor"
)

func TestNewLogger(t *testing.T) {
	t.Run("quiet by default", func(t *testing.T) {
		logger := NewLogger(false)
		if _, ok := logger.(extractor.NopLogger); !ok {
			t.Errorf("expected NopLogger, got %T", logger)
		}
	})

	t.Run("verbose uses zerolog", func(t *testing.T) {
		logger := NewLogger(true)
		if _, ok := logger.(*zerologAdapter); !ok {
			t.Errorf("expected zerolog adapter, got %T", logger)
		}
		// Exercise every level and With; output goes to stderr.
		logger = logger.With("command", "extract")
		logger.Debug("captured identifier", "token", "userId", "position", 12)
		logger.Info("extraction complete", "count", 1)
		logger.Warn("odd attribute count", "dangling")
		logger.Error("unreadable input")
	})
}
