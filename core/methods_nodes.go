// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Handles are assigned in insertion order (0, 1, 2, ...).
//   - FindClosestNode breaks distance ties by the lowest handle.
//
// Concurrency:
//   - Arena and index protected by mu.
package core

import "math"

// AddNode inserts a node at (lon, lat) unless one already exists there.
//
// Implementation:
//   - Stage 1: Reject non-finite or out-of-range coordinates (ErrBadCoordinate).
//   - Stage 2: Under the write lock, look up the coordinate key; return the
//     existing handle on a hit.
//   - Stage 3: Otherwise append a new arena entry and index it.
//
// Behavior highlights:
//   - Idempotent by coordinate: two calls with equal keys return the same
//     handle, so the index can never point at one of two twins.
//
// Errors:
//   - ErrBadCoordinate: lon or lat is NaN/Inf or beyond ±MaxCoordinate.
//   - ErrGraphFrozen: the graph was frozen.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(lon, lat float64) (NodeID, error) {
	if !inRange(lon) || !inRange(lat) {
		return NoNode, ErrBadCoordinate
	}
	key := makeKey(lon, lat)

	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.index[key]; ok {
		return id, nil
	}
	if g.frozen {
		return NoNode, ErrGraphFrozen
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{lon: lon, lat: lat})
	g.index[key] = id

	return id, nil
}

// GetNode returns the node stored at exactly (lon, lat), compared at ten
// fractional digits. The second result is false when no such node exists.
// Complexity: O(1).
func (g *Graph) GetNode(lon, lat float64) (NodeID, bool) {
	if !inRange(lon) || !inRange(lat) {
		return NoNode, false
	}
	key := makeKey(lon, lat)

	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.index[key]
	if !ok {
		return NoNode, false
	}

	return id, true
}

// FindClosestNode returns the node nearest to the point, measured as
// straight-line (Euclidean) distance in coordinate space. Arguments are in
// (lat, lon) order.
//
// Ties keep the first node in storage order. The second result is false only
// when the graph is empty.
//
// Complexity: O(V) time, O(1) space.
func (g *Graph) FindClosestNode(lat, lon float64) (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := NoNode
	bestDist := math.Inf(1)
	for i := range g.nodes {
		n := &g.nodes[i]
		d := math.Hypot(n.lat-lat, n.lon-lon)
		if d < bestDist {
			best, bestDist = NodeID(i), d
		}
	}
	// NaN query coordinates never compare below +Inf; fall back to the first node.
	if best == NoNode && len(g.nodes) > 0 {
		best = 0
	}

	return best, best != NoNode
}

// Node returns a snapshot of the node with handle id.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.valid(id) {
		return Node{ID: NoNode}, false
	}
	n := &g.nodes[id]

	return Node{ID: id, Lon: n.lon, Lat: n.lat}, true
}

// Has reports whether id addresses a node of this graph.
func (g *Graph) Has(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// Nodes returns snapshots of all nodes in storage (handle) order.
// Complexity: O(V) time and space.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	for i := range g.nodes {
		out[i] = Node{ID: NodeID(i), Lon: g.nodes[i].lon, Lat: g.nodes[i].lat}
	}

	return out
}

// NodeCount returns the number of nodes in the arena.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
