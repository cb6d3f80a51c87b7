// Package georoute is an in-memory road graph with four path searches over
// geographic coordinates: from loading a map extract to answering routes
// over HTTP.
//
// What is in the box?
//
//   - Graph store: nodes keyed by (lon, lat) at ten fractional digits,
//     undirected weighted edges, nearest-node snapping, freeze for reads
//   - Searches: BFS (fewest hops), DFS (any path), Dijkstra and A* (least weight)
//   - Loader: the "lon,lat:lon,lat,w;..." text format, forgiving of bad lines
//   - Builder: deterministic grids, lines and random geometric graphs
//   - Router: snapping, dispatch, timing, side-by-side comparison
//   - CLI and HTTP API with YAML config, slog logging, Prometheus and OpenTelemetry
//
// Package layout:
//
//	core/       Graph, Node, Edge, Coord, Path; distances
//	bfs/ dfs/   unweighted traversals
//	dijkstra/   lazy decrease-key shortest paths, shortest-path trees
//	astar/      heuristic search with pluggable Heuristic
//	builder/    synthetic graph constructors
//	loader/     text format reader and writer
//	router/     query facade, metrics and spans
//	cmd/georoute route, compare, serve, stats, export
//
// Quick ASCII example:
//
//	    (59.93,30.30)───1.2───(59.94,30.31)
//	                              │
//	                             1.5
//	                              │
//	                        (59.94,30.33)
//
//	is three nodes and two roads; Dijkstra from the first to the last
//	returns all three nodes with total weight 2.7.
//
//	go install github.com/katalvlaran/georoute/cmd/georoute@latest
package georoute
