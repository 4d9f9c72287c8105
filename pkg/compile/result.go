package compile

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"github.com/captainFoxtrot/unami-csv/pkg/route"
)

// Result is the outcome of one compilation run.
type Result struct {
	// Header is the header row, or nil when suppressed.
	Header route.Row

	// Rows holds one row per compiled line, in input order.
	Rows []route.Row

	// Failures holds every line that did not match, in input order.
	Failures []*route.ParseError

	// LinesRead is the number of input lines consumed.
	LinesRead int

	// LinesSkipped is the number of blank lines dropped without compiling.
	LinesSkipped int

	StartTime time.Time
	EndTime   time.Time
}

// HasFailures returns true if any line could not be compiled.
func (r *Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// FailedLines returns the text of every failed line, in input order.
func (r *Result) FailedLines() []string {
	out := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = f.Line
	}
	return out
}

// WriteCSV writes the header (if any) and all rows to w.
// Each row is its fields joined with "," and no quoting, so the file
// holds exactly route.Row.String() per line. Every row, including the
// last, is terminated.
func (r *Result) WriteCSV(w io.Writer, useCRLF bool) error {
	eol := "\n"
	if useCRLF {
		eol = "\r\n"
	}

	bw := bufio.NewWriter(w)
	if r.Header != nil {
		if err := writeRow(bw, r.Header, eol); err != nil {
			return err
		}
	}
	for _, row := range r.Rows {
		if err := writeRow(bw, row, eol); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, row route.Row, eol string) error {
	if _, err := w.WriteString(row.String()); err != nil {
		return err
	}
	_, err := w.WriteString(eol)
	return err
}

// CSV renders the output file contents in memory.
func (r *Result) CSV(useCRLF bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteCSV(&buf, useCRLF); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
