// File: methods_edges.go
// Role: Edge insertion & adjacency queries.
//
// Determinism:
//   - Adjacency lists keep insertion order; searches iterate them in that order.
//
// Concurrency:
//   - Adjacency lists protected by mu. Neighbors hands out a view of the live
//     list: safe once the graph is frozen or construction has finished.
package core

import (
	"fmt"
	"math"
)

// AddEdge connects from and to with the given weight in both directions.
//
// Implementation:
//   - Stage 1: Reject NaN weights (ErrBadWeight).
//   - Stage 2: Under the write lock, validate both handles (ErrNodeNotFound).
//   - Stage 3: Append to→w on from's list and from→w on to's list.
//
// Behavior highlights:
//   - A self-loop (from == to) appends two entries to the same list.
//   - Parallel edges accumulate in both lists.
//   - Negative weights are accepted; Dijkstra and A* are undefined on them.
//
// Errors:
//   - ErrBadWeight, ErrNodeNotFound, ErrGraphFrozen.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, weight float64) error {
	if math.IsNaN(weight) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrGraphFrozen
	}
	if !g.valid(from) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if !g.valid(to) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}

	g.nodes[from].edges = append(g.nodes[from].edges, Edge{To: to, Weight: weight})
	g.nodes[to].edges = append(g.nodes[to].edges, Edge{To: from, Weight: weight})
	g.edgeCount++

	return nil
}

// Connect gets or creates the nodes at both coordinates and joins them with
// an undirected edge. It is the insertion primitive used by the loader.
func (g *Graph) Connect(lon1, lat1, lon2, lat2, weight float64) (NodeID, NodeID, error) {
	a, err := g.AddNode(lon1, lat1)
	if err != nil {
		return NoNode, NoNode, err
	}
	b, err := g.AddNode(lon2, lat2)
	if err != nil {
		return NoNode, NoNode, err
	}
	if err = g.AddEdge(a, b, weight); err != nil {
		return NoNode, NoNode, err
	}

	return a, b, nil
}

// Neighbors returns the adjacency list of id in insertion order, or nil for
// an unknown handle. The slice aliases graph storage and must not be modified.
// Complexity: O(1).
func (g *Graph) Neighbors(id NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.valid(id) {
		return nil
	}
	edges := g.nodes[id].edges

	return edges[:len(edges):len(edges)]
}

// EdgeWeight returns the weight of the first edge from→to in from's
// adjacency list.
// Complexity: O(deg(from)).
func (g *Graph) EdgeWeight(from, to NodeID) (float64, bool) {
	for _, e := range g.Neighbors(from) {
		if e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}

// MinEdgeWeight returns the lightest weight among all from→to edges in
// from's adjacency list, which is what Dijkstra and A* relax over when
// parallel edges exist.
// Complexity: O(deg(from)).
func (g *Graph) MinEdgeWeight(from, to NodeID) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, e := range g.Neighbors(from) {
		if e.To == to && (!found || e.Weight < best) {
			best, found = e.Weight, true
		}
	}

	return best, found
}

// EdgeCount returns the number of undirected edges inserted (AddEdge calls).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
