// Package bfs provides breadth-first point-to-point search over a core.Graph,
// returning a path with the fewest hops.
package bfs

import (
	"github.com/katalvlaran/georoute/core"
)

// queueItem pairs a node handle with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state. Everything is per call.
type walker struct {
	graph   *core.Graph
	opts    Options
	goal    core.NodeID
	queue   []queueItem
	visited []bool
	prev    []core.NodeID
}

// BFS finds a minimum-hop path from start to goal, ignoring edge weights.
//
// Implementation:
//   - Stage 1: Reject nil graph and absent endpoints (empty path).
//   - Stage 2: Seed the queue with start, marking it visited.
//   - Stage 3: Pop FIFO; stop when the goal is popped.
//   - Stage 4: Enqueue unvisited neighbors, marking them at enqueue time and
//     recording the first-discovered predecessor.
//
// Returns:
//   - Path start→goal inclusive, Path{goal} when start == goal, or an empty
//     path when goal is unreachable or the context is cancelled.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func BFS(g *core.Graph, start, goal core.NodeID, opts ...Option) core.Path {
	if g == nil || !g.Has(start) || !g.Has(goal) {
		return nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		goal:    goal,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		prev:    core.NewPredecessors(n),
	}
	w.enqueue(start, 0, core.NoNode)

	if !w.loop() {
		return nil
	}

	return core.ReconstructPath(w.prev, goal)
}

// enqueue marks id visited, records its parent and queues it.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = true
	w.prev[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until the goal is popped (true), or the queue
// drains or the context is cancelled (false).
func (w *walker) loop() bool {
	for head := 0; head < len(w.queue); head++ {
		if w.opts.Ctx.Err() != nil {
			return false
		}
		item := w.queue[head]
		if item.id == w.goal {
			return true
		}
		w.opts.OnVisit(item.id)
		w.enqueueNeighbors(item)
	}

	return false
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.id) {
		if w.visited[e.To] || !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		w.enqueue(e.To, next, item.id)
	}
}
