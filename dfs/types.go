// Package dfs defines options for depth-first search, including
// cancellation, a visit hook, depth limiting and neighbor filtering.
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/georoute/core"
)

// Option configures optional behavior of DFS.
// Use with DFS(g, start, goal, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation; a cancelled search returns an empty path.
	Ctx context.Context

	// OnVisit is invoked for every node popped from the stack and expanded.
	OnVisit func(id core.NodeID)

	// MaxDepth, if > 0, stops pushing nodes deeper than this many hops from
	// the start. 0 means no limit, as in bfs.
	MaxDepth int

	// FilterNeighbor is called for each neighbor before it is pushed.
	// Return false to skip it.
	FilterNeighbor func(id core.NodeID) bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - no-op visit hook
//   - no depth limit (MaxDepth == 0)
//   - no neighbor filtering
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(core.NodeID) {},
		FilterNeighbor: func(core.NodeID) bool { return true },
	}
}

// WithContext sets the Context for DFS.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the expansion hook. nil is ignored.
func WithOnVisit(fn func(id core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to limit hops. A limit of 0 means no
// limit, matching bfs.WithMaxDepth. Panics on limit < 0.
func WithMaxDepth(limit int) Option {
	if limit < 0 {
		panic(fmt.Sprintf("dfs: WithMaxDepth(%d): limit cannot be negative", limit))
	}

	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbors; return false to skip. nil is ignored.
func WithFilterNeighbor(fn func(id core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
