package runner

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prabnikaws/nbstrip/internal/config"
	"github.com/prabnikaws/nbstrip/internal/notebook"
)

// runBatch processes the configured file paths in argument order. Paths
// without the notebook extension are silently skipped. In check-only mode a
// dirty notebook is reported to stderr and the run continues; the aggregate
// outcome is ErrOutputsFound if any notebook was dirty. In strip mode each
// notebook is rewritten in place, fully overwriting the previous content.
func (r *Runner) runBatch(ctx context.Context) error {
	failed := false
	for _, path := range r.cfg.Paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !strings.HasSuffix(path, config.NotebookExtension) {
			r.logger.Debug("skipping non-notebook path", "path", path)
			continue
		}

		doc, err := os.ReadFile(path) //nolint:gosec // User-provided notebook path is intentional
		if err != nil {
			return err
		}

		if r.cfg.CheckOnly {
			if !notebook.Valid(doc) {
				return fmt.Errorf("%s: %w", path, notebook.ErrInvalidNotebook)
			}
			if notebook.HasOutputs(doc) {
				fmt.Fprintf(r.stderr, "FAIL: %s contains outputs\n", path)
				failed = true
			}
			continue
		}

		stripped, err := notebook.Strip(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := os.WriteFile(path, notebook.Format(stripped), 0o644); err != nil { //nolint:gosec // Notebooks are not secrets
			return err
		}
		r.logger.Debug("stripped notebook", "path", path)
	}

	if r.cfg.CheckOnly && failed {
		return ErrOutputsFound
	}
	return nil
}
