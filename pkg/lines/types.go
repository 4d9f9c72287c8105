// Package lines reads route description lines from input files.
package lines

import (
	"context"
	"errors"
)

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Line is a single line of input with its terminator removed.
type Line struct {
	// Text is the line content without "\n" or "\r\n".
	Text string

	// Source is the file path this line came from.
	Source string

	// Num is the 1-based line number in the source file.
	Num int
}

// Source provides an iterator over input lines.
// Implementations must be safe for sequential access (not concurrent).
type Source interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}
