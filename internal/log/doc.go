// Package log provides structured logger construction for nbstrip.
//
// All logging goes to the diagnostic stream: in stream mode, stdout carries
// exactly one JSON document and nothing else, so a logger built by this
// package must never be pointed at stdout.
package log
