// Package output provides reporting and file output for compilation runs.
package output

import (
	"time"

	"github.com/google/uuid"

	"github.com/captainFoxtrot/unami-csv/pkg/compile"
)

// Status is the overall outcome of a run.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Report is the diagnostic output of one run.
type Report struct {
	// RunID identifies the run in logs and JSON reports.
	RunID string `json:"run_id"`

	// Status is the overall outcome.
	Status Status `json:"status"`

	// Errors lists fatal problems, one message per line of output.
	Errors []string `json:"errors,omitempty"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Failures lists lines that could not be compiled, in input order.
	Failures []Failure `json:"failures"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate counts.
type Summary struct {
	LinesRead    int `json:"lines_read"`
	RowsWritten  int `json:"rows_written"`
	LinesFailed  int `json:"lines_failed"`
	LinesSkipped int `json:"lines_skipped"`
}

// Failure is a single line that could not be compiled.
type Failure struct {
	LineNum int    `json:"line"`
	Text    string `json:"text"`
	Reason  string `json:"reason,omitempty"`
}

// Metadata provides context about the run.
type Metadata struct {
	Input     string        `json:"input,omitempty"`
	Output    string        `json:"output,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// NewReport creates a Report. result may be nil when the run stopped before
// any line was compiled.
func NewReport(result *compile.Result, input, output string) *Report {
	report := &Report{
		RunID:    uuid.New().String(),
		Status:   StatusSucceeded,
		Failures: []Failure{},
		Metadata: Metadata{
			Input:     input,
			Output:    output,
			StartedAt: time.Now(),
		},
	}

	if result == nil {
		return report
	}

	report.Summary = Summary{
		LinesRead:    result.LinesRead,
		RowsWritten:  len(result.Rows),
		LinesFailed:  len(result.Failures),
		LinesSkipped: result.LinesSkipped,
	}
	report.Metadata.StartedAt = result.StartTime
	report.Metadata.Duration = result.EndTime.Sub(result.StartTime)

	for _, f := range result.Failures {
		report.Failures = append(report.Failures, Failure{LineNum: f.LineNum, Text: f.Line, Reason: f.Reason})
	}

	return report
}

// Fail marks the run as failed and records each message.
func (r *Report) Fail(msgs ...string) {
	r.Status = StatusFailed
	r.Errors = append(r.Errors, msgs...)
}

// Succeeded returns true if no fatal error was recorded.
func (r *Report) Succeeded() bool {
	return r.Status == StatusSucceeded
}

// HasFailures returns true if any line could not be compiled.
func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}
