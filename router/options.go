package router

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/georoute/astar"
)

// Sentinel errors returned by New, Route and Compare.
var (
	ErrEmptyGraph       = errors.New("router: graph is nil or has no nodes")
	ErrUnknownAlgorithm = errors.New("router: unknown algorithm")
)

// Option configures a Router.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	heuristic astar.Heuristic
}

func defaultOptions() options {
	return options{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		heuristic: astar.Euclidean,
	}
}

// WithLogger sets the logger used for per-query debug records.
// nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHeuristic sets the A* heuristic (default astar.Euclidean).
// Panics if h is nil.
func WithHeuristic(h astar.Heuristic) Option {
	if h == nil {
		panic("router: WithHeuristic(nil)")
	}

	return func(o *options) {
		o.heuristic = h
	}
}
