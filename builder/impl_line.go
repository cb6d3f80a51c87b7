// SPDX-License-Identifier: MIT
// Package: georoute/builder
//
// impl_line.go - implementation of Line(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node i sits at (origin.Lon + i*step, origin.Lat); edges i-i+1 in order.
//
// Complexity:
//   • Time: O(n) nodes + O(n-1) edges. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/georoute/core"
)

// Line returns a Constructor that builds an eastward chain of n nodes.
func Line(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodLine, "n", n, MinLineNodes); err != nil {
			return err
		}

		prevC := cfg.at(0, 0)
		prev, err := addCoord(g, MethodLine, prevC)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			c := cfg.at(0, i)
			id, err := addCoord(g, MethodLine, c)
			if err != nil {
				return err
			}
			if err = link(g, cfg, MethodLine, prev, id, prevC, c); err != nil {
				return err
			}
			prev, prevC = id, c
		}

		return nil
	}
}
