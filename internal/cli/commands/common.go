package commands

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/captainFoxtrot/unami-csv/pkg/config"
)

// requiredArgsAnnotation records how many positional arguments a command needs.
const requiredArgsAnnotation = "required-args"

func requireArgs(n int) map[string]string {
	return map[string]string{requiredArgsAnnotation: strconv.Itoa(n)}
}

// HasRequiredArgs reports whether args fills every positional argument cmd
// requires. Commands without the annotation need none.
func HasRequiredArgs(cmd *cobra.Command, args []string) bool {
	n, err := strconv.Atoi(cmd.Annotations[requiredArgsAnnotation])
	if err != nil {
		return true
	}
	return len(args) >= n
}

// loadConfig loads the optional config file and applies command-line switches.
// Switches only ever turn options on.
func loadConfig(ctx context.Context, path string, noHeader, noEndComma bool) (*config.Config, error) {
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	if noHeader {
		cfg.SuppressHeader = true
	}
	if noEndComma {
		cfg.SuppressTrailingComma = true
	}

	return cfg, nil
}

// newLogger returns a debug logger on w when verbose, otherwise a logger that discards.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
