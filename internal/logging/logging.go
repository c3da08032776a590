// Package logging builds the process logger from the CLI verbosity flags.
//
// Verbosity 0 logs warnings and errors, 1 (-v) adds INFO, 2 (-vv) adds DEBUG.
// Logs go to stderr unless a log file is given; the interactive editor owns
// the terminal, so it always logs to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Options struct {
	Verbosity int
	File      string    // append here instead of Writer when set
	Writer    io.Writer // default os.Stderr
	JSON      bool
}

// Level maps a verbosity count to a slog level.
func Level(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// New returns the logger and a closer for any file it opened.
func New(o Options) (*slog.Logger, io.Closer, error) {
	w := o.Writer
	if w == nil {
		w = os.Stderr
	}
	var closer io.Closer = nopCloser{}
	if o.File != "" {
		f, err := openLogFile(o.File)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}
	opts := &slog.HandlerOptions{Level: Level(o.Verbosity)}
	var h slog.Handler
	if o.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
