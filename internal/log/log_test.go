package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prabnikaws/nbstrip/internal/config"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses debug and info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(&buf, false, config.LogFormatText)

		logger.Debug("debug message")
		logger.Info("info message")
		if buf.Len() != 0 {
			t.Errorf("expected silence at default level, got %q", buf.String())
		}

		logger.Warn("warn message")
		if !strings.Contains(buf.String(), "warn message") {
			t.Errorf("expected warning to be logged, got %q", buf.String())
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(&buf, true, config.LogFormatText)

		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("expected debug level to be enabled")
		}
	})

	t.Run("json format emits JSON records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(&buf, false, config.LogFormatJSON)

		logger.Error("boom")
		if !strings.HasPrefix(buf.String(), "{") {
			t.Errorf("expected JSON record, got %q", buf.String())
		}
	})
}
