// Package astar defines heuristics and configuration options for A* search
// on a core.Graph.
package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/georoute/core"
)

// Heuristic estimates the remaining cost from a node at coordinate from to
// the goal at coordinate goal. A* returns optimal paths only when the
// estimate never exceeds the true remaining cost (admissible).
type Heuristic func(from, goal core.Coord) float64

// Euclidean is the straight-line distance in coordinate space. Admissible
// whenever every edge weighs at least its Euclidean length.
func Euclidean(from, goal core.Coord) float64 {
	return core.EuclideanDistance(from, goal)
}

// Haversine is the great-circle distance in metres. Admissible for graphs
// weighted in metres along the ground.
func Haversine(from, goal core.Coord) float64 {
	return core.HaversineMeters(from, goal)
}

// Zero always returns 0, which degenerates A* into Dijkstra.
func Zero(_, _ core.Coord) float64 { return 0 }

// Option configures A* via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for A*.
type Options struct {
	// Ctx allows cancellation. A cancelled search returns an empty path.
	Ctx context.Context

	// Heuristic estimates remaining cost; default Euclidean.
	Heuristic Heuristic

	// OnVisit is called for every node popped and expanded.
	OnVisit func(id core.NodeID)

	// MaxExpansions, if > 0, abandons the search (empty path) after that
	// many expansions.
	MaxExpansions int
}

// DefaultOptions returns Options with a background context, the Euclidean
// heuristic, a no-op hook and no expansion budget.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: Euclidean,
		OnVisit:   func(core.NodeID) {},
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

// WithHeuristic replaces the distance estimate. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}

	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithOnVisit registers a callback for every expanded node.
func WithOnVisit(fn func(id core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxExpansions caps the number of expanded nodes. 0 means no cap.
// Panics on n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("astar: WithMaxExpansions(%d): budget cannot be negative", n))
	}

	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// HeuristicByName resolves "euclidean", "haversine" or "zero".
// The second result is false for unknown names.
func HeuristicByName(name string) (Heuristic, bool) {
	switch name {
	case "euclidean", "":
		return Euclidean, true
	case "haversine":
		return Haversine, true
	case "zero":
		return Zero, true
	}

	return nil, false
}
