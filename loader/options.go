package loader

import (
	"errors"
	"io"
	"log/slog"
)

var (
	// ErrOpen wraps failures to open a graph file.
	ErrOpen = errors.New("loader: cannot open graph file")

	// ErrSyntax marks a parent or edge segment with the wrong field count.
	// It only surfaces in warnings; Load never returns it.
	ErrSyntax = errors.New("loader: malformed segment")
)

// maxLineBytes bounds a single line; a dense intersection fits easily.
const maxLineBytes = 16 << 20

// Option configures Load.
type Option func(*options)

type options struct {
	logger *slog.Logger
	source string
}

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger routes parse warnings to l. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSource names the input in warnings (LoadFile sets the path).
func WithSource(name string) Option {
	return func(o *options) {
		o.source = name
	}
}
