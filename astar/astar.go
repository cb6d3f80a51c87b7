// Package astar implements A* point-to-point search on a core.Graph.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/georoute/core"
)

// AStar finds a path from start to goal ordered by f = g + h, where g is the
// accumulated weight and h the heuristic estimate to the goal.
//
// Implementation:
//   - Stage 1: Reject nil graph and absent endpoints (empty path).
//   - Stage 2: Seed the heap with (start, g=0, f=h(start)).
//   - Stage 3: Pop the lowest f; skip it when its g is worse than the best
//     g recorded for the node since it was pushed (stale entry).
//   - Stage 4: Stop when the goal is popped; otherwise relax neighbors with
//     strict “<” on g and push improved entries.
//
// There is no closed set: a node whose g improves is re-opened, so the
// result stays optimal with any admissible heuristic, consistent or not.
//
// Returns:
//   - Path start→goal inclusive; Path{goal} when start == goal; empty when
//     the goal is unreachable, the expansion budget ran out, or the context
//     was cancelled.
//
// Complexity:
//   - Time O((V + E) log V) with a consistent heuristic, Space O(V + E).
func AStar(g *core.Graph, start, goal core.NodeID, opts ...Option) core.Path {
	if g == nil || !g.Has(start) || !g.Has(goal) {
		return nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := newSearch(g, start, goal, o)
	if !s.run() {
		return nil
	}

	return core.ReconstructPath(s.prev, goal)
}

// search holds the mutable state of one A* run.
type search struct {
	g        *core.Graph
	opts     Options
	goal     core.NodeID
	goalAt   core.Coord
	gScore   []float64
	prev     []core.NodeID
	open     openSet
	expanded int
}

func newSearch(g *core.Graph, start, goal core.NodeID, o Options) *search {
	n := g.NodeCount()
	goalNode, _ := g.Node(goal)
	s := &search{
		g:      g,
		opts:   o,
		goal:   goal,
		goalAt: goalNode.Coord(),
		gScore: make([]float64, n),
		prev:   core.NewPredecessors(n),
		open:   make(openSet, 0, n),
	}
	for i := range s.gScore {
		s.gScore[i] = math.Inf(1)
	}
	s.gScore[start] = 0
	heap.Push(&s.open, &entry{id: start, g: 0, f: s.estimate(start)})

	return s
}

// estimate is h(id).
func (s *search) estimate(id core.NodeID) float64 {
	n, _ := s.g.Node(id)
	return s.opts.Heuristic(n.Coord(), s.goalAt)
}

// run pops entries until the goal is popped (true) or the search gives up.
func (s *search) run() bool {
	for s.open.Len() > 0 {
		if s.opts.Ctx.Err() != nil {
			return false
		}
		cur := heap.Pop(&s.open).(*entry)
		if cur.g > s.gScore[cur.id] {
			continue
		}
		if cur.id == s.goal {
			return true
		}
		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			return false
		}
		s.expanded++
		s.opts.OnVisit(cur.id)

		for _, e := range s.g.Neighbors(cur.id) {
			tentative := s.gScore[cur.id] + e.Weight
			if tentative >= s.gScore[e.To] {
				continue
			}
			s.gScore[e.To] = tentative
			s.prev[e.To] = cur.id
			heap.Push(&s.open, &entry{id: e.To, g: tentative, f: tentative + s.estimate(e.To)})
		}
	}

	return false
}

// entry is one open-set record; g is the cost at push time.
type entry struct {
	id   core.NodeID
	g, f float64
}

// openSet is a min-heap of *entry ordered by f, then by larger g (deeper
// entries first among equal f).
type openSet []*entry

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].g > pq[j].g
}

func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
