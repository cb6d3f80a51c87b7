// Package bfs provides tunable options for breadth-first search over a
// core.Graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/georoute/core"
)

// Option configures BFS behavior via functional arguments.
// Option constructors panic on invalid values; a misconfigured search is a
// programming error, not a runtime condition.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation. A cancelled search returns an empty path.
	Ctx context.Context

	// OnEnqueue is called when a node is discovered and queued, with its
	// hop depth from the start.
	OnEnqueue func(id core.NodeID, depth int)

	// OnVisit is called for every node popped and expanded.
	OnVisit func(id core.NodeID)

	// MaxDepth, if > 0, stops discovery beyond this many hops.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor core.NodeID) bool
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID) {},
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run for every expanded node.
func WithOnVisit(fn func(id core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to d hops from the start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit (same as dfs.WithMaxDepth)
//	d < 0: panic
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("bfs: WithMaxDepth(%d): depth cannot be negative", d))
	}

	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
