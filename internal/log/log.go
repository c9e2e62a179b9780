package log

import (
	"io"
	"log/slog"

	"github.com/prabnikaws/nbstrip/internal/config"
)

// New creates a structured logger writing to w.
//
// The default level is Warn so that normal runs are silent; verbose enables
// debug output. format selects the handler, "json" for machine-readable
// logs and anything else for the text handler.
func New(w io.Writer, verbose bool, format string) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
