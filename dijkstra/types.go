// Package dijkstra defines configuration options for Dijkstra's
// shortest-path search on a weighted core.Graph.
//
// Options:
//
//	– Ctx:              cancellation; a cancelled search returns an empty path.
//	– OnVisit:          hook for every node finalized and expanded.
//	– MaxDistance:      cap on distances to explore; nodes beyond are never settled.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/georoute/core"
)

// Sentinel panic values of option constructors.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – stop once the smallest tentative distance exceeds it.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Ctx              context.Context
	OnVisit          func(id core.NodeID)
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook called for every node settled and expanded.
func WithOnVisit(fn func(id core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Panics with ErrBadInfThreshold on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:              context.Background().
//   - OnVisit:          no-op.
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		OnVisit:          func(core.NodeID) {},
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
