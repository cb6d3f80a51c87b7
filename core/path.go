// File: path.go
// Role: Path type, reconstruction and summarisation shared by all searches.
package core

import "fmt"

// Path is an ordered sequence of node handles from start to goal inclusive.
// An empty (or nil) Path means no path was found.
type Path []NodeID

// Empty reports whether the path denotes "no path".
func (p Path) Empty() bool { return len(p) == 0 }

// Hops returns the number of edges traversed, 0 for empty and single-node paths.
func (p Path) Hops() int {
	if len(p) < 2 {
		return 0
	}

	return len(p) - 1
}

// ReconstructPath walks prev from goal back to the node whose predecessor is
// NoNode, then reverses the walk into start→goal order.
//
// prev must be indexed by NodeID and describe a predecessor tree; callers pass
// their per-search predecessor slice.
// Complexity: O(len(path)).
func ReconstructPath(prev []NodeID, goal NodeID) Path {
	var path Path
	for at := goal; at != NoNode; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// NewPredecessors allocates a predecessor slice of length n filled with NoNode.
func NewPredecessors(n int) []NodeID {
	prev := make([]NodeID, n)
	for i := range prev {
		prev[i] = NoNode
	}

	return prev
}

// PathWeight re-derives the total weight of p by summing, for each
// consecutive pair, the lightest edge between them (MinEdgeWeight). With
// parallel edges this is the cost the weighted searches paid.
//
// Returns 0 for empty and single-node paths, and ErrEdgeNotFound (wrapped with
// the offending pair) when two consecutive nodes are not adjacent, which makes
// PathWeight a validity check as well.
//
// Complexity: O(len(p) · average degree).
func (g *Graph) PathWeight(p Path) (float64, error) {
	var total float64
	for i := 0; i+1 < len(p); i++ {
		w, ok := g.MinEdgeWeight(p[i], p[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d at position %d", ErrEdgeNotFound, p[i], p[i+1], i)
		}
		total += w
	}

	return total, nil
}

// Coords maps each node of p to its coordinate pair.
// Unknown handles map to the zero Coord.
func (g *Graph) Coords(p Path) []Coord {
	out := make([]Coord, len(p))
	for i, id := range p {
		if n, ok := g.Node(id); ok {
			out[i] = n.Coord()
		}
	}

	return out
}
