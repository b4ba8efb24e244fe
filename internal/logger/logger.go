// Package logger builds the *slog.Logger values used across gomcnp.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger configured by opts. Without options it writes
// info level text records to os.Stderr.
func New(opts ...Option) *slog.Logger {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	var w io.Writer = os.Stderr
	switch len(c.writers) {
	case 0:
	case 1:
		w = c.writers[0]
	default:
		w = io.MultiWriter(c.writers...)
	}
	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	switch {
	case c.json:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	case c.pretty:
		plevel := log.InfoLevel
		if c.debug {
			plevel = log.DebugLevel
		}
		return slog.New(log.NewWithOptions(w, log.Options{
			Level:           plevel,
			ReportTimestamp: true,
			Prefix:          "gomcnp",
		}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
