// SPDX-License-Identifier: MIT
// Package: georoute/builder
//
// impl_raster.go - implementation of Raster(cells, opts) constructor.
//
// Canonical model:
//   • A rectangular [][]int map; cells with value ≥ Threshold are passable.
//   • Passable cell (r,c) becomes a node at cfg.at(r, c).
//   • Passable neighbours are joined in 4- or 8-connectivity; diagonal edges
//     get the weightFn of their (longer) diagonal span.
//
// Contract:
//   • cells must be non-empty and rectangular (else ErrBadRaster).
//   • Impassable cells produce no node, so handles are dense over passable
//     cells in row-major order on a fresh graph.
//
// Complexity:
//   • Time: O(rows*cols*d), d = 2 (Conn4) or 4 (Conn8) forward offsets.
//   • Space: O(rows*cols) for the handle map.

package builder

import (
	"github.com/katalvlaran/georoute/core"
)

// Connectivity selects raster neighbourhoods.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours only.
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours.
	Conn8
)

// RasterOptions tunes Raster.
type RasterOptions struct {
	// Threshold is the minimum cell value that is passable.
	Threshold int
	// Conn is Conn4 or Conn8.
	Conn Connectivity
}

// DefaultRasterOptions treats every positive cell as passable, 4-connected.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{Threshold: 1, Conn: Conn4}
}

// Forward offsets (drow, dcol): each undirected edge is emitted once.
var (
	forward4 = [][2]int{{0, 1}, {1, 0}}
	forward8 = [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
)

// Raster returns a Constructor that turns a passability map into a road graph.
// cells[r][c] is read at build time; later changes to cells do not matter.
func Raster(cells [][]int, opts RasterOptions) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(cells) == 0 || len(cells[0]) == 0 {
			return builderErrorf(MethodRaster, ErrBadRaster, "empty map")
		}
		rows, cols := len(cells), len(cells[0])
		for r, row := range cells {
			if len(row) != cols {
				return builderErrorf(MethodRaster, ErrBadRaster, "row %d has %d cells, want %d", r, len(row), cols)
			}
		}

		// 1) Nodes for passable cells, row-major.
		ids := make([]core.NodeID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids[r*cols+c] = core.NoNode
				if cells[r][c] < opts.Threshold {
					continue
				}
				id, err := addCoord(g, MethodRaster, cfg.at(r, c))
				if err != nil {
					return err
				}
				ids[r*cols+c] = id
			}
		}

		// 2) Edges to passable forward neighbours.
		offsets := forward4
		if opts.Conn == Conn8 {
			offsets = forward8
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if u == core.NoNode {
					continue
				}
				for _, d := range offsets {
					nr, nc := r+d[0], c+d[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					v := ids[nr*cols+nc]
					if v == core.NoNode {
						continue
					}
					if err := link(g, cfg, MethodRaster, u, v, cfg.at(r, c), cfg.at(nr, nc)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
