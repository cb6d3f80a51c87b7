// Package bfs provides breadth-first point-to-point search over a core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Stop as soon as the goal is popped from the queue and return the path
//     start→goal as a core.Path.
//   - Nodes are marked visited when enqueued, so each node's predecessor is
//     the node that discovered it first.
//   - Edge weights are ignored.
//
// Why
//
//   - Fewest intersections between two points, in O(V + E).
//   - Baseline for comparing weighted strategies (dijkstra, astar).
//
// Determinism
//
//	Neighbors are enqueued in adjacency (insertion) order, so for a given
//	graph the returned path is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (queue, visited flags, predecessor slice)
//
// Usage
//
//	path := bfs.BFS(g, start, goal)
//	if path.Empty() {
//	    // unreachable, or an endpoint is not in g
//	}
//
//	path = bfs.BFS(g, start, goal,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(30),
//	    bfs.WithOnVisit(func(id core.NodeID) { expanded++ }),
//	)
//
// Options
//
//   - WithContext(ctx):        cancellation; a cancelled search returns an empty path.
//   - WithMaxDepth(d):         stop discovering beyond d hops (panics on d < 0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr, nbr) == false.
//   - WithOnEnqueue(fn):       hook when a node is discovered.
//   - WithOnVisit(fn):         hook for every expanded node.
//
// Errors
//
//	BFS never returns an error. A nil graph, an absent endpoint and an
//	unreachable goal all yield an empty path.
package bfs
