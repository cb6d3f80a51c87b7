// SPDX-License-Identifier: MIT
// Package: georoute/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal lattice with 4-neighborhood (right & top neighbors per cell).
//   • Cell (r,c) sits at (origin.Lon + c*step, origin.Lat + r*step).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds nodes in row-major order, so on a fresh graph cell (r,c) has
//     handle r*cols + c.
//   • Adds edges to right (r,c+1) and upper (r+1,c) neighbors where they exist.
//   • Weight policy: cfg.weightFn(a, b, cfg.rng).
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges.
//   • Space: O(cols) extra (one row of handles).
//
// Determinism:
//   • Stable node order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Up if present.

package builder

import (
	"github.com/katalvlaran/georoute/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		// 2) Add all nodes in row-major order.
		ids := make([]core.NodeID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id, err := addCoord(g, MethodGrid, cfg.at(r, c))
				if err != nil {
					return err
				}
				ids[r*cols+c] = id
			}
		}

		// 3) Emit edges: Right then Up.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := link(g, cfg, MethodGrid, u, ids[r*cols+c+1], cfg.at(r, c), cfg.at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, MethodGrid, u, ids[(r+1)*cols+c], cfg.at(r, c), cfg.at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
