// Package logger builds the zerolog logger used by the CLI.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = zerolog.ErrorLevel

// New creates a logger writing to w at the given level. If pretty is true,
// output is formatted for humans instead of JSON.
func New(w io.Writer, level string, pretty bool) zerolog.Logger {
	var l zerolog.Logger
	if pretty {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(w).With().Timestamp().Logger()
	}

	return l.Level(ParseLevel(level))
}

// ParseLevel parses a level name, falling back to DefaultLevel for empty or
// unknown names.
func ParseLevel(level string) zerolog.Level {
	zLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return DefaultLevel
	}
	return zLevel
}
