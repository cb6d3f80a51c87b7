// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/georoute/core"
)

// addCoord inserts (or reuses) the node at c, wrapping errors with method context.
func addCoord(g *core.Graph, method string, c core.Coord) (core.NodeID, error) {
	id, err := g.AddNode(c.Lon, c.Lat)
	if err != nil {
		return core.NoNode, fmt.Errorf("%s: AddNode(%g, %g): %w", method, c.Lon, c.Lat, err)
	}

	return id, nil
}

// link joins u and v with a cfg-weighted edge.
func link(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID, cu, cv core.Coord) error {
	w := cfg.weightFn(cu, cv, cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
