// Package compile runs the route compiler over every line of an input and
// collects the resulting rows and failures.
package compile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/captainFoxtrot/unami-csv/pkg/config"
	"github.com/captainFoxtrot/unami-csv/pkg/lines"
	"github.com/captainFoxtrot/unami-csv/pkg/route"
)

// Compilation compiles route lines according to a configuration.
// It holds no state between runs; each call to Run owns its own Result.
type Compilation struct {
	cfg      *config.Config
	compiler *route.Compiler
	logger   *slog.Logger
}

// Option configures compilation behavior.
type Option func(*Compilation)

// WithLogger sets the logger used for per-line diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compilation) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Compilation from configuration.
func New(cfg *config.Config, opts ...Option) *Compilation {
	c := &Compilation{
		cfg: cfg,
		compiler: route.NewCompiler(
			route.WithCommentSeparator(cfg.CommentSeparator),
			route.WithoutTrailingComma(cfg.SuppressTrailingComma),
		),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run reads src to the end and compiles each line in order.
// Lines that do not match are recorded as failures and never stop the run;
// only read errors are returned.
func (c *Compilation) Run(ctx context.Context, src lines.Source) (*Result, error) {
	res := &Result{StartTime: time.Now()}

	if !c.cfg.SuppressHeader {
		res.Header = append(route.Row(nil), c.cfg.Header...)
	}

	c.logger.Debug("compilation started",
		"suppress_header", c.cfg.SuppressHeader,
		"suppress_trailing_comma", c.cfg.SuppressTrailingComma)

	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}

		res.LinesRead++

		if c.cfg.SkipBlankLines && strings.TrimSpace(line.Text) == "" {
			res.LinesSkipped++
			continue
		}

		row, err := c.compiler.Compile(line.Text)
		if err != nil {
			var pe *route.ParseError
			if !errors.As(err, &pe) {
				return nil, err
			}
			pe.LineNum = line.Num
			res.Failures = append(res.Failures, pe)
			c.logger.Debug("line could not be compiled", "line", line.Num, "text", line.Text)
			continue
		}

		res.Rows = append(res.Rows, row)
	}

	res.EndTime = time.Now()

	c.logger.Debug("compilation finished",
		"lines", res.LinesRead,
		"rows", len(res.Rows),
		"failures", len(res.Failures),
		"skipped", res.LinesSkipped)

	return res, nil
}
