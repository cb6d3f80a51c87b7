// SPDX-License-Identifier: MIT
// Package: georoute/builder
//
// impl_random_geometric.go - implementation of RandomGeometric(n, radius).
//
// Canonical model:
//   - Random geometric graph: n points uniform in a square anchored at the
//     origin with side step*ceil(sqrt(n)); every pair closer than radius
//     (Euclidean, degrees) is joined.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - radius > 0 and finite (else ErrInvalidRadius).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Points landing on an existing coordinate reuse that node; the pair is
//     then not linked to itself.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) distance checks.
//   - Space: O(n) extra (point list).
//
// Determinism:
//   - Points drawn in index order (lon then lat); pairs tried for i asc, j > i asc.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/georoute/core"
)

// RandomGeometric returns a Constructor that samples a random geometric
// road network over n points.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomGeometric, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateRadius(MethodRandomGeometric, radius); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomGeometric, ErrNeedRandSource)
		}

		// 2) Draw points and insert them in index order.
		side := cfg.step * math.Ceil(math.Sqrt(float64(n)))
		pts := make([]core.Coord, n)
		ids := make([]core.NodeID, n)
		for i := range pts {
			pts[i] = core.Coord{
				Lon: cfg.origin.Lon + cfg.rng.Float64()*side,
				Lat: cfg.origin.Lat + cfg.rng.Float64()*side,
			}
			id, err := addCoord(g, MethodRandomGeometric, pts[i])
			if err != nil {
				return err
			}
			ids[i] = id
		}

		// 3) Join every pair within radius.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if ids[i] == ids[j] || core.EuclideanDistance(pts[i], pts[j]) > radius {
					continue
				}
				if err := link(g, cfg, MethodRandomGeometric, ids[i], ids[j], pts[i], pts[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
