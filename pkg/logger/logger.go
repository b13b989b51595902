// Package logger builds the application logger. It wraps zerolog
// construction so every entry point configures logging the same way:
// a console writer for interactive use, JSON for machine consumption.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger.
type Options struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string

	// Format is "console" or "json".
	Format string

	// Output defaults to stderr so log records never interleave with the
	// roster text written to stdout.
	Output io.Writer
}

// DefaultOptions returns sensible defaults for interactive use.
func DefaultOptions() Options {
	return Options{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

// New creates a logger with the given options.
func New(opts Options) zerolog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	out := opts.Output
	if strings.EqualFold(opts.Format, "console") {
		out = zerolog.ConsoleWriter{Out: opts.Output, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel parses a level string, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
