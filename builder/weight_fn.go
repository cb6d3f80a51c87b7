// Package builder provides helper functions and types
// for configuring edge weights in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/georoute/core"
)

// WeightFn produces an edge weight for an edge between coordinates a and b,
// given an optional *rand.Rand source. It must be deterministic for a given
// RNG seed.
type WeightFn func(a, b core.Coord, rng *rand.Rand) float64

// EuclideanWeight weights an edge by its length in coordinate space. This is
// the default: it keeps the A* Euclidean heuristic admissible.
func EuclideanWeight(a, b core.Coord, _ *rand.Rand) float64 {
	return core.EuclideanDistance(a, b)
}

// HaversineWeight weights an edge by its great-circle length in metres.
// Pair it with the A* Haversine heuristic.
func HaversineWeight(a, b core.Coord, _ *rand.Rand) float64 {
	return core.HaversineMeters(a, b)
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0 or NaN.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_, _ core.Coord, _ *rand.Rand) float64 {
		return value
	}
}

// DetourWeightFn returns Euclidean length times a factor drawn uniformly from
// [1, maxFactor), modelling roads that wind between their endpoints. Weights
// never undercut the straight line, so the Euclidean heuristic stays
// admissible. With a nil RNG the factor is 1.
// Panics if maxFactor < 1.
func DetourWeightFn(maxFactor float64) WeightFn {
	if !(maxFactor >= 1) || math.IsInf(maxFactor, 1) {
		panic(fmt.Sprintf("DetourWeightFn: maxFactor must be ≥ 1, got %g", maxFactor))
	}

	return func(a, b core.Coord, rng *rand.Rand) float64 {
		d := core.EuclideanDistance(a, b)
		if rng == nil || maxFactor == 1 {
			return d
		}

		return d * (1 + rng.Float64()*(maxFactor-1))
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithDetourWeight sets weights via DetourWeightFn.
func WithDetourWeight(maxFactor float64) BuilderOption {
	return WithWeightFn(DetourWeightFn(maxFactor))
}
