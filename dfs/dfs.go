// Package dfs implements depth-first point-to-point search on core.Graph.
package dfs

import (
	"github.com/katalvlaran/georoute/core"
)

// frame is one stack entry.
type frame struct {
	id    core.NodeID
	depth int
}

// dfsWalker encapsulates state during DFS. Everything is per call.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	stack   []frame
	visited []bool
	prev    []core.NodeID
}

// DFS returns some path from start to goal found by depth-first exploration.
// The path is valid (consecutive nodes are adjacent) but carries no
// optimality guarantee in hops or weight.
//
// Implementation:
//   - Stage 1: Reject nil graph and absent endpoints (empty path).
//   - Stage 2: Push start, marking it visited.
//   - Stage 3: Pop LIFO; stop when the goal is popped.
//   - Stage 4: Push unvisited neighbors, marking them at push time and
//     recording the pushing node as predecessor.
//
// Marking at push (rather than at pop) keeps the stack bounded by V and
// gives every node exactly one predecessor.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func DFS(g *core.Graph, start, goal core.NodeID, opts ...Option) core.Path {
	if g == nil || !g.Has(start) || !g.Has(goal) {
		return nil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.NodeCount()
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		stack:   make([]frame, 0, n),
		visited: make([]bool, n),
		prev:    core.NewPredecessors(n),
	}
	w.push(start, 0, core.NoNode)

	for len(w.stack) > 0 {
		if o.Ctx.Err() != nil {
			return nil
		}
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if top.id == goal {
			return core.ReconstructPath(w.prev, goal)
		}
		o.OnVisit(top.id)
		w.expand(top)
	}

	return nil
}

// push marks id visited, records its parent and pushes it.
func (w *dfsWalker) push(id core.NodeID, depth int, parent core.NodeID) {
	w.visited[id] = true
	w.prev[id] = parent
	w.stack = append(w.stack, frame{id: id, depth: depth})
}

// expand pushes every unvisited, unfiltered neighbor of f within MaxDepth.
func (w *dfsWalker) expand(f frame) {
	next := f.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(f.id) {
		if w.visited[e.To] || !w.opts.FilterNeighbor(e.To) {
			continue
		}
		w.push(e.To, next, f.id)
	}
}
