// Package config provides configuration structures and utilities for nbstrip.
// It defines the run mode (strip or check), the file list, and the ambient
// settings loaded from CLI flags and the optional .nbstrip config file.
package config
