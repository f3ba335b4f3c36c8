// File: logging.go
// Role: the ambient structured-logging wrapper (SPEC_FULL.md's Ambient
// Stack), a thin zerolog console-writer setup shared by the CLI and
// the hierarchy package's mutation tracing.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package-wide logger handle. Callers needing a
// component-scoped logger should call With instead of touching this
// directly.
var Logger zerolog.Logger

func init() {
	Logger = New(os.Stderr, zerolog.InfoLevel)
}

// New builds a console-formatted logger writing to w at the given
// level, with a RFC3339 timestamp on every event.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// SetLevel parses level (e.g. "debug", "info", "warn") and applies it
// to the package logger, defaulting to info on an unrecognized value.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	Logger = Logger.Level(parsed)
}

// With returns a child logger tagged with a "component" field, the
// convention package-level callers use to scope their log lines
// (e.g. logging.With("hierarchy")).
func With(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}
