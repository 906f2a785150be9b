package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// setupLogger configures a logger writing to w. format is "text" for
// human-readable output or "json" for structured output.
func setupLogger(w io.Writer, level string, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}
	switch format {
	case "", "text":
	case "json":
		opts.Formatter = log.JSONFormatter
		opts.TimeFormat = time.RFC3339Nano
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return log.NewWithOptions(w, opts), nil
}

// logLevel picks the effective level, --debug wins over the configured one
func logLevel(configured string, debug bool) string {
	if debug {
		return "debug"
	}
	return configured
}
