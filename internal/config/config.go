package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// NotebookExtension is the file suffix batch mode processes.
	// The match is case-sensitive: paths with any other suffix are
	// silently skipped, never treated as an error.
	NotebookExtension = ".ipynb"

	// AppName is the application name used for XDG directory paths.
	AppName = "nbstrip"

	// LogFormatText and LogFormatJSON are the accepted log_format values.
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration options for a single nbstrip run.
// It is populated from CLI flags (and the optional config file) and passed
// through the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs.
// The number of options is small, and nesting would add complexity without
// benefit.
type Config struct {
	// CheckOnly selects inspect-only mode (--check / --verify).
	// Notebooks are examined for remaining outputs but never modified.
	CheckOnly bool

	// Paths is the list of notebook file paths, in argument order.
	// Empty Paths selects stream mode when stdin is not a terminal.
	Paths []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogFormat selects the slog handler: "text" (default) or "json".
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .nbstrip in the current directory,
	// the user's home directory, and the XDG config directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogFormat: LogFormatText,
	}
}

// Validate checks that the configuration is internally consistent.
// It returns a sentinel error describing the first problem found.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "", LogFormatText, LogFormatJSON:
	default:
		return ErrInvalidLogFormat
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for nbstrip.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/nbstrip
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
