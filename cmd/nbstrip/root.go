package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prabnikaws/nbstrip/internal/config"
	"github.com/prabnikaws/nbstrip/internal/log"
	"github.com/prabnikaws/nbstrip/internal/runner"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for nbstrip.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nbstrip [file.ipynb ...]",
		Short: "Strip outputs and execution counts from Jupyter notebooks",
		Long: `nbstrip removes execution outputs, execution counts, and volatile metadata
(collapse state, execution timing, widget state, signatures) from Jupyter
notebooks so that only the meaningful content is committed to version control.

Given file arguments, notebooks are rewritten in place. Without file
arguments, a single notebook is read from stdin and the stripped document is
written to stdout. Files not ending in .ipynb are skipped silently.

Examples:
  # Strip notebooks in place
  nbstrip analysis.ipynb report.ipynb

  # Verify notebooks are clean (exit 1 and report offenders if not)
  nbstrip --check analysis.ipynb

  # Use as a stream filter
  cat analysis.ipynb | nbstrip > stripped.ipynb`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runRootCmd,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Bool("check", false,
		"Report notebooks that still contain outputs instead of stripping them")
	cmd.Flags().Bool("verify", false,
		"Alias for --check")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .nbstrip in current, home, or XDG config directory)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runRootCmd executes a strip or check run.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.LogFormat)

	r := runner.New(cfg,
		runner.WithLogger(logger),
		runner.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		runner.WithStdinTerminal(stdinIsTerminal()),
	)
	return r.Run(cmd.Context())
}

// stdinIsTerminal reports whether the process stdin is an interactive
// terminal. Stream mode is only entered when it is not.
func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flags take precedence over file settings.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = config.FindConfigFile(configPath)
	if configPath != "" && cfg.ConfigFilePath == "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}
	if cfg.ConfigFilePath != "" {
		cf, err := config.LoadConfigFile(cfg.ConfigFilePath)
		if err != nil {
			return nil, err
		}
		cfg.Verbose = cf.Verbose
		if cf.LogFormat != "" {
			cfg.LogFormat = cf.LogFormat
		}
	}

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return nil, err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return nil, err
	}
	cfg.CheckOnly = check || verify

	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		cfg.Verbose = true
	}

	cfg.Paths = args
	return cfg, nil
}

// Execute runs the root command and chooses the process exit code.
// A check run that found outputs exits 1 without an extra diagnostic: the
// per-file FAIL lines (batch) or the bare exit code (stream) are the whole
// contract. Every other error is printed to stderr.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, runner.ErrOutputsFound) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
