// Package config provides configuration loading and validation for unami-csv.
package config

import "runtime"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Header is the column header row written before the data rows.
	Header []string `yaml:"header" validate:"len=6,dive,required"`

	// SuppressHeader omits the header row from the output.
	SuppressHeader bool `yaml:"suppress_header"`

	// SuppressTrailingComma drops the empty comment field from rows without a comment.
	SuppressTrailingComma bool `yaml:"suppress_trailing_comma"`

	// CommentSeparator introduces the emitted comment; its last occurrence wins.
	CommentSeparator string `yaml:"comment_separator" validate:"required"`

	// SkipBlankLines drops whitespace-only lines instead of reporting them as failures.
	SkipBlankLines bool `yaml:"skip_blank_lines"`

	// LineEnding selects the output row terminator.
	LineEnding LineEnding `yaml:"line_ending" validate:"oneof=auto lf crlf"`
}

// LineEnding selects how output rows are terminated.
type LineEnding string

const (
	// LineEndingAuto uses CRLF on Windows and LF elsewhere.
	LineEndingAuto LineEnding = "auto"
	// LineEndingLF terminates rows with "\n".
	LineEndingLF LineEnding = "lf"
	// LineEndingCRLF terminates rows with "\r\n".
	LineEndingCRLF LineEnding = "crlf"
)

// UseCRLF reports whether output rows end with "\r\n".
func (c *Config) UseCRLF() bool {
	switch c.LineEnding {
	case LineEndingCRLF:
		return true
	case LineEndingLF:
		return false
	default:
		return runtime.GOOS == "windows"
	}
}
