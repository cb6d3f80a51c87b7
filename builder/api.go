// SPDX-License-Identifier: MIT
// Package: georoute/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/georoute/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place nodes relative to cfg.origin and cfg.step.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Constructors sharing coordinates share nodes, because core.Graph.AddNode
// is idempotent by coordinate. Composing Grid and Line with the same origin
// therefore overlays the line on the grid's first row.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidRadius, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Grid builds an R×C 4-neighborhood lattice, row r at latitude origin+r*step,
// column c at longitude origin+c*step (row-major handles).
//func Grid(rows, cols int) Constructor
//
// Line builds n nodes eastward from the origin joined in sequence.
//func Line(n int) Constructor
//
// RandomGeometric scatters n nodes uniformly and joins every pair closer
// than radius (degrees). Requires an RNG.
//func RandomGeometric(n int, radius float64) Constructor
//
// Raster turns a passability map into nodes and 4- or 8-connected roads.
//func Raster(cells [][]int, opts RasterOptions) Constructor
