package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates the structured logger described by c, writing to w.
//
// The CLI writes reports to stdout, so logs are meant to go to stderr.
func NewLogger(c LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		level = zerolog.WarnLevel
	}

	out := w
	if c.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
