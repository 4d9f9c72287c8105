// Package route compiles flight-route description lines into CSV fields.
package route

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatch is returned when a line does not match the route pattern.
var ErrNoMatch = errors.New("line does not match route pattern")

// ParsedRoute is the structured form of a route line that matched the pattern
// in full. It is never partially populated.
type ParsedRoute struct {
	// Carrier is the 3-letter airline code.
	Carrier string

	// OutboundNumber is the 3-4 digit outbound flight number.
	OutboundNumber string

	// ReturnNumber is the 3-4 digit return flight number.
	ReturnNumber string

	// Departure is the 4-letter departure airport code.
	Departure string

	// Arrival is the 4-letter arrival airport code.
	Arrival string

	// CommentRaw is everything on the line after the arrival code (may be empty).
	CommentRaw string
}

// Comment returns the text after the last occurrence of separator in the raw
// comment. The boolean is false when the separator does not occur.
func (r *ParsedRoute) Comment(separator string) (string, bool) {
	i := strings.LastIndex(r.CommentRaw, separator)
	if i < 0 {
		return "", false
	}
	return r.CommentRaw[i+len(separator):], true
}

// ParseError records a line that could not be compiled.
type ParseError struct {
	// Line is the original line text.
	Line string

	// LineNum is the 1-based line number in the input, or 0 if unknown.
	LineNum int

	// Reason names the first part of the line that did not match.
	Reason string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v: %q", ErrNoMatch, e.Line)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.LineNum > 0 {
		return fmt.Sprintf("line %d: %s", e.LineNum, msg)
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrNoMatch).
func (e *ParseError) Unwrap() error {
	return ErrNoMatch
}

// Row is one serialized output record.
type Row []string

// String joins the fields with commas, without CSV quoting.
func (r Row) String() string {
	return strings.Join(r, ",")
}
