// Package dijkstra provides Dijkstra's shortest-path search on road graphs
// with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, start, goal, opts...) returns a minimum-weight core.Path in
//     O((V + E) log V) time.
//   - ShortestPathTree(g, source, opts...) settles every reachable node and
//     returns the distance and predecessor slices (one-to-all mode).
//   - It relies on a min-heap (container/heap) to always settle the
//     next-closest node, with lazy decrease-key.
//
// When to use:
//
//   - Exact shortest routes when no good distance estimate to the goal exists.
//   - As the reference against which A* heuristics are validated.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - OnVisit: counts or traces settled nodes.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (per-call slices plus heap entries)
//
// Determinism:
//
//	Relaxation uses strict “<”, so the first predecessor reaching a node with
//	a given distance wins. Among heap entries with equal distance the pop
//	order is that of container/heap and is not otherwise specified.
//
// Errors:
//
//	Dijkstra never returns an error. Option constructors panic on invalid
//	values (ErrBadMaxDistance, ErrBadInfThreshold). Negative weights are a
//	caller precondition; results on such graphs are unspecified.
package dijkstra
