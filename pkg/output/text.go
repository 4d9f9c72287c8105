package output

import (
	"context"
	"fmt"
	"io"
)

// FailureHeader introduces the list of lines that could not be compiled.
const FailureHeader = "The following lines could not be compiled:"

// TextFormatter formats reports as console diagnostics.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	if opts.Verb == "" {
		opts.Verb = "Compilation"
	}
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders fatal errors, failed lines, and the final status line.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	for _, msg := range report.Errors {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
	}

	if report.HasFailures() {
		if _, err := fmt.Fprintln(w, FailureHeader); err != nil {
			return err
		}
		for _, failure := range report.Failures {
			if _, err := fmt.Fprintf(w, "- %s\n", failure.Text); err != nil {
				return err
			}
			if f.opts.Verbose && failure.Reason != "" {
				if _, err := fmt.Fprintf(w, "    line %d: %s\n", failure.LineNum, failure.Reason); err != nil {
					return err
				}
			}
		}
	}

	if f.opts.Verbose {
		_, err := fmt.Fprintf(w, "Lines read: %d, rows written: %d, failed: %d, skipped: %d\n",
			report.Summary.LinesRead,
			report.Summary.RowsWritten,
			report.Summary.LinesFailed,
			report.Summary.LinesSkipped)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Run: %s (%s)\n", report.RunID, report.Metadata.Duration.Round(1e3)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s %s.\n", f.opts.Verb, report.Status)
	return err
}
