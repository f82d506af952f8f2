// Package logging sets up the zerolog logger
// The terminal belongs to the renderer, so logs only ever go to a file
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log destination and level
type Config struct {
	Enabled bool
	Path    string
	Level   string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a level name to zerolog, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New opens the log file and returns a logger writing to it
// Disabled logging returns zerolog.Nop and a no-op closer
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	if !cfg.Enabled || cfg.Path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	return NewWriter(file, cfg.Level), file, nil
}

// NewWriter builds a logger over w in plain console format
func NewWriter(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("app", "longbow").
		Logger()
}
