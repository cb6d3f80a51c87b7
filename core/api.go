// File: api.go
// Role: Lifecycle control and read-only summaries.
package core

// GraphStats is a snapshot of graph size and state.
type GraphStats struct {
	Nodes     int  `json:"nodes"`
	Edges     int  `json:"edges"`
	MaxDegree int  `json:"max_degree"`
	Isolated  int  `json:"isolated"`
	Frozen    bool `json:"frozen"`
}

// Freeze makes the graph read-only. Subsequent AddEdge calls, and AddNode
// calls for new coordinates, return ErrGraphFrozen. Freeze is idempotent.
//
// Notes:
//   - AddNode for an already indexed coordinate still succeeds after Freeze,
//     because it does not mutate anything.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Stats scans the arena once and returns size and degree figures.
// Degree counts adjacency entries, so a self-loop contributes two.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Nodes:  len(g.nodes),
		Edges:  g.edgeCount,
		Frozen: g.frozen,
	}
	for i := range g.nodes {
		d := len(g.nodes[i].edges)
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}

	return st
}
