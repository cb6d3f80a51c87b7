// Package dfs implements depth‑first point-to-point search and
// connected-component discovery on a core.Graph.
//
// What:
//
//   - DFS(g, start, goal, opts...): explores as far as possible along each
//     branch before backtracking and returns the first path that reaches the
//     goal. Supports:
//   - an expansion hook (WithOnVisit)
//   - cancellation via context.Context
//   - depth limiting
//   - neighbor filtering
//   - Components(g): connected components via forest traversal.
//
// Why:
//   - Cheapest way to answer "is there any route at all?".
//   - Baseline against which the optimal strategies are compared.
//   - Component sizes explain unreachable goals on real map data.
//
// Semantics:
//
//	DFS is iterative (explicit stack), marks nodes visited when pushed and
//	tests for the goal when popped. The returned path is valid but neither
//	hop- nor weight-minimal.
//
// Complexity:
//
//   - DFS:         Time O(V+E), Memory O(V)
//   - Components:  Time O(V+E), Memory O(V)
//
// Errors:
//
//	DFS never returns an error; a nil graph, absent endpoints, an unreachable
//	goal and a cancelled context all yield an empty path.
package dfs
