package logger

import "io"

// Option configures New.
type Option func(*config)

type config struct {
	debug   bool
	pretty  bool
	json    bool
	writers []io.Writer
}

// WithDebug enables debug level output.
func WithDebug(debug bool) Option {
	return func(c *config) { c.debug = debug }
}

// WithPretty selects the colored, human oriented handler.
func WithPretty(pretty bool) Option {
	return func(c *config) { c.pretty = pretty }
}

// WithJSON selects JSON output. It takes precedence over WithPretty.
func WithJSON(json bool) Option {
	return func(c *config) { c.json = json }
}

// WithWriter sets the destination of the logs. The default is os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.writers = []io.Writer{w} }
}

// WithWriters sends the logs to all the given writers.
func WithWriters(ws ...io.Writer) Option {
	return func(c *config) { c.writers = ws }
}
