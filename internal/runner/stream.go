package runner

import (
	"fmt"
	"io"

	"github.com/prabnikaws/nbstrip/internal/notebook"
)

// runStream reads exactly one notebook document from stdin. In check-only
// mode it reports the outcome through the error return and writes nothing;
// otherwise it writes the stripped document to stdout, followed by a single
// trailing newline, and nothing else.
func (r *Runner) runStream() error {
	doc, err := io.ReadAll(r.stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if r.cfg.CheckOnly {
		if !notebook.Valid(doc) {
			return fmt.Errorf("stdin: %w", notebook.ErrInvalidNotebook)
		}
		if notebook.HasOutputs(doc) {
			return ErrOutputsFound
		}
		return nil
	}

	stripped, err := notebook.Strip(doc)
	if err != nil {
		return fmt.Errorf("stdin: %w", err)
	}
	if _, err := r.stdout.Write(notebook.Format(stripped)); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}
