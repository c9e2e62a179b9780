package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prabnikaws/nbstrip/internal/config"
)

// ErrOutputsFound is returned by check-only runs when at least one inspected
// notebook still contains outputs or a non-null execution count. It maps to
// exit code 1; per-file diagnostics have already been written when it is
// returned, so callers should not print it again.
var ErrOutputsFound = errors.New("notebook contains outputs")

// Runner executes a single nbstrip run.
//
// Design decision: stdio and terminal detection are injectable so that
// stream mode is testable with plain buffers. Production callers construct
// a Runner with New and no stdio options, which binds the process streams
// and detects whether stdin is an interactive terminal.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// stdinIsTerminal suppresses stream mode: with no file arguments and
	// an interactive terminal on stdin, the run does nothing and succeeds.
	stdinIsTerminal bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger. If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithStdio replaces the process streams. Terminal detection is disabled;
// combine with WithStdinTerminal to simulate an interactive stdin.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
		r.stdinIsTerminal = false
	}
}

// WithStdinTerminal overrides terminal detection. Options are applied in
// order, so this must come after WithStdio to take effect alongside it.
func WithStdinTerminal(isTerminal bool) Option {
	return func(r *Runner) {
		r.stdinIsTerminal = isTerminal
	}
}

// New creates a Runner for the given configuration.
func New(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdinIsTerminal: isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run executes the configured mode and returns the run's outcome.
//
// File arguments select batch mode. Without them, a non-interactive stdin
// selects stream mode. With neither, there is no work to do and the run
// succeeds.
func (r *Runner) Run(ctx context.Context) error {
	if len(r.cfg.Paths) > 0 {
		return r.runBatch(ctx)
	}
	if !r.stdinIsTerminal {
		return r.runStream()
	}
	r.logger.Debug("nothing to do: no files given and stdin is a terminal")
	return nil
}
