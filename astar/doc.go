// Package astar provides heuristic-guided shortest-path search over a
// core.Graph.
//
// What
//
//   - AStar(g, start, goal, opts...) orders the frontier by f = g + h and
//     returns a core.Path; the goal test happens when the goal is popped.
//   - Heuristics: Euclidean (default, coordinate space), Haversine (metres)
//     and Zero (equivalent to Dijkstra). Any func(from, goal core.Coord)
//     float64 can be plugged in with WithHeuristic.
//
// Why
//
//   - On road networks the straight-line distance to the goal prunes most of
//     the graph that Dijkstra would settle, for the same optimal answer.
//
// Correctness
//
//	With an admissible heuristic (never overestimates) the returned path is
//	weight-optimal. Stale heap entries, whose g is worse than the node's
//	current best, are skipped; improved nodes are re-opened.
//
// Options
//
//   - WithHeuristic(h):      distance estimate (panics on nil).
//   - WithContext(ctx):      cancellation; returns an empty path.
//   - WithOnVisit(fn):       hook for every expanded node.
//   - WithMaxExpansions(n):  give up after n expansions (panics on n < 0).
//
// Errors
//
//	AStar never returns an error. A nil graph, absent endpoints, an
//	unreachable goal and an exhausted budget all yield an empty path.
package astar
