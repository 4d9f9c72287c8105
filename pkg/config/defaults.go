package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultCommentSeparator = " with "
	DefaultLineEnding       = LineEndingAuto
)

// DefaultHeader is the header row written unless suppressed.
var DefaultHeader = []string{"csgn", "csgn_out", "csgn_ret", "dep", "arr", "comment"}

// Environment variable names.
const (
	EnvNoHeader   = "UNAMI_CSV_NO_HEADER"
	EnvNoEndComma = "UNAMI_CSV_NO_END_COMMA"
	EnvLineEnding = "UNAMI_CSV_LINE_ENDING"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	header := make([]string, len(DefaultHeader))
	copy(header, DefaultHeader)

	return &Config{
		Header:           header,
		CommentSeparator: DefaultCommentSeparator,
		LineEnding:       DefaultLineEnding,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvNoHeader); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoHeader, err)
		}
		c.SuppressHeader = b
	}

	if v := os.Getenv(EnvNoEndComma); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoEndComma, err)
		}
		c.SuppressTrailingComma = b
	}

	if v := os.Getenv(EnvLineEnding); v != "" {
		c.LineEnding = LineEnding(v)
	}

	return nil
}
