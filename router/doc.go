// Package router is the query facade over a frozen core.Graph.
//
// A Router snaps free coordinates onto the nearest graph nodes, dispatches
// to one of the four search packages (bfs, dfs, dijkstra, astar), measures
// the run and packages the outcome as a Result. Compare runs all four
// concurrently, which is how algorithm timings are benchmarked against each
// other.
//
// Every Route call is wrapped in an OpenTelemetry span and recorded in the
// Prometheus default registry (see metrics.go). Without a configured
// TracerProvider the spans are no-ops.
//
// A Router is safe for concurrent use: the graph is frozen in New and each
// search keeps only local state.
package router
