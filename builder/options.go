// SPDX-License-Identifier: MIT
// Package: georoute/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/georoute/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin places the first generated node at (lon, lat).
// Panics on non-finite coordinates.
func WithOrigin(lon, lat float64) BuilderOption {
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		panic(fmt.Sprintf("builder: WithOrigin(%g, %g): coordinates must be finite", lon, lat))
	}
	return func(c *builderConfig) {
		c.origin = core.Coord{Lon: lon, Lat: lat}
	}
}

// WithStep sets the spacing between lattice neighbours in degrees.
// Panics unless step > 0. Steps finer than 1e-9 collide in the coordinate
// index and are rejected as well.
func WithStep(step float64) BuilderOption {
	if !(step >= minStep) || math.IsInf(step, 0) {
		panic(fmt.Sprintf("builder: WithStep(%g): step must be in [%g, +Inf)", step, minStep))
	}
	return func(c *builderConfig) {
		c.step = step
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
