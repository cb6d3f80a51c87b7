// SPDX-License-Identifier: MIT
// Package: georoute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil            (pure/deterministic unless seeded)
//   • origin    = (0, 0)
//   • step      = defaultStep    (degrees between lattice neighbours)
//   • weightFn  = EuclideanWeight

package builder

import (
	"math/rand"

	"github.com/katalvlaran/georoute/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Coordinate of the first generated node (south-west corner).
	origin core.Coord

	// Spacing in degrees between adjacent lattice nodes; also scales the
	// RandomGeometric bounding box.
	step float64

	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		step:     defaultStep,
		weightFn: EuclideanWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at returns the coordinate of lattice cell (row, col).
func (c builderConfig) at(row, col int) core.Coord {
	return core.Coord{
		Lon: c.origin.Lon + float64(col)*c.step,
		Lat: c.origin.Lat + float64(row)*c.step,
	}
}
