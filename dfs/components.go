package dfs

import (
	"github.com/katalvlaran/georoute/core"
)

// Components partitions g into connected components using iterative
// depth-first traversal from every unvisited node (forest traversal).
//
// Components are ordered by their smallest handle; nodes inside a component
// appear in discovery order. Returns nil for a nil graph.
//
// Complexity: Time O(V + E), Space O(V).
func Components(g *core.Graph) [][]core.NodeID {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	visited := make([]bool, n)
	stack := make([]core.NodeID, 0, n)
	var out [][]core.NodeID

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		var comp []core.NodeID
		visited[root] = true
		stack = append(stack[:0], core.NodeID(root))
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, id)
			for _, e := range g.Neighbors(id) {
				if !visited[e.To] {
					visited[e.To] = true
					stack = append(stack, e.To)
				}
			}
		}
		out = append(out, comp)
	}

	return out
}
