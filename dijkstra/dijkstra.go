// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// It processes nodes in order of increasing distance using a min-heap priority
// queue, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and visited slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Negative weights are a caller precondition and are not detected.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/georoute/core"
)

// Dijkstra computes a minimum-weight path from start to goal.
//
// Returns:
//
//   - Path start→goal inclusive; Path{goal} when start == goal.
//   - An empty path for a nil graph, absent endpoints, an unreachable goal,
//     a goal beyond MaxDistance or a cancelled context.
//
// The goal test happens when the goal is popped (settled), so the returned
// path is optimal. Relaxation uses strict “<”: among equal-weight routes the
// predecessor recorded first is kept.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start, goal core.NodeID, opts ...Option) core.Path {
	if g == nil || !g.Has(start) || !g.Has(goal) {
		return nil
	}
	r := newRunner(g, start, goal, opts)
	if !r.process() {
		return nil
	}

	return core.ReconstructPath(r.prev, goal)
}

// ShortestPathTree settles every node reachable from source (subject to the
// same options) and returns the distance and predecessor slices, indexed by
// NodeID. Unreached nodes keep dist +Inf and prev NoNode.
// Returns nil slices for a nil graph or an absent source.
func ShortestPathTree(g *core.Graph, source core.NodeID, opts ...Option) ([]float64, []core.NodeID) {
	if g == nil || !g.Has(source) {
		return nil, nil
	}
	r := newRunner(g, source, core.NoNode, opts)
	r.process()

	return r.dist, r.prev
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph   // The input graph; read-only within Dijkstra.
	options Options       // Configuration options (thresholds, hooks).
	goal    core.NodeID   // NoNode for a full shortest-path tree.
	dist    []float64     // NodeID → current best distance from start.
	prev    []core.NodeID // NodeID → predecessor on the shortest path.
	visited []bool        // Tracks if a node's distance is finalized.
	pq      nodePQ        // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner resolves options and sets up initial state: dist = +Inf
// everywhere except start = 0, and a heap seeded with (start, 0).
func newRunner(g *core.Graph, start, goal core.NodeID, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		dist:    make([]float64, n),
		prev:    core.NewPredecessors(n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r
}

// process is the core loop. It repeatedly extracts the node with the
// minimum distance and relaxes its edges.
//
// Loop termination conditions:
//
//   - The goal is settled (returns true).
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The context is cancelled.
func (r *runner) process() bool {
	cfg := r.options
	for r.pq.Len() > 0 {
		if cfg.Ctx.Err() != nil {
			return false
		}

		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Skip stale entries of already settled nodes.
		if r.visited[u] {
			continue
		}

		// 3) Everything left is farther than MaxDistance.
		if d > cfg.MaxDistance {
			return false
		}

		// 4) d is now final.
		r.visited[u] = true
		if u == r.goal {
			return true
		}

		cfg.OnVisit(u)
		r.relax(u)
	}

	return false
}

// relax examines each edge of u and attempts to improve distances to its
// neighbors. Edges at or above InfEdgeThreshold are skipped. If a strictly
// shorter path to v is found, dist[v] and prev[v] are updated and a new heap
// entry is pushed.
func (r *runner) relax(u core.NodeID) {
	for _, e := range r.g.Neighbors(u) {
		v, w := e.To, e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict “<”: equal distances keep the earlier predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries remain in the heap and are ignored when popped
// (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
