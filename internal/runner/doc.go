// Package runner drives nbstrip runs: it selects between the stdin/stdout
// stream transform and in-place batch processing of named files, and between
// strip mode and check-only mode.
//
// The runner is fully synchronous. Files are processed one at a time in
// argument order, and each file handle is held only for the duration of a
// single read or write. A failing file in check mode does not stop the run;
// any I/O or decode error does, with files already rewritten left as they
// are.
package runner
