// Package core provides the Graph Store used by every georoute search: an
// arena of geographic nodes, an exact coordinate index and symmetric
// weighted adjacency lists.
//
// The Graph G = (V,E) is a road-style network:
//
//   - Nodes carry immutable (longitude, latitude) coordinates and are
//     addressed by a dense integer handle (NodeID) into the arena.
//   - Coordinates are unique: the index key is a pair of integers scaled by
//     1e10 (ten fractional digits), so lookups never depend on float
//     formatting. AddNode is idempotent by coordinate.
//   - Edges are undirected: AddEdge(a, b, w) appends b to a's list and a to
//     b's list with the same weight. Self-loops and parallel edges are kept
//     as given; nothing is deduplicated.
//   - Weights are float64. Searches that sum weights (Dijkstra, A*) assume
//     they are non-negative; this is a caller precondition and is not
//     checked at insertion time.
//
// Lifecycle:
//
//  1. NewGraph(...) and populate via AddNode/AddEdge/Connect (usually from
//     the loader or the builder package).
//  2. Freeze() once construction is complete. Mutations then return
//     ErrGraphFrozen.
//  3. Run any number of searches, concurrently if desired. Searches only
//     read the graph; all of their bookkeeping is local to the call.
//
// Core Methods:
//
//	// Nodes
//	AddNode(lon, lat float64) (NodeID, error)     // O(1) amortized, idempotent
//	GetNode(lon, lat float64) (NodeID, bool)      // O(1)
//	FindClosestNode(lat, lon float64) (NodeID, bool) // O(V) scan, note (lat, lon) order
//	Node(id NodeID) (Node, bool)                  // O(1)
//
//	// Edges
//	AddEdge(from, to NodeID, weight float64) error // O(1) amortized, symmetric
//	Connect(lon1, lat1, lon2, lat2, w float64) (NodeID, NodeID, error)
//	Neighbors(id NodeID) []Edge                    // O(1), read-only view
//	EdgeWeight(from, to NodeID) (float64, bool)    // O(deg(from))
//	MinEdgeWeight(from, to NodeID) (float64, bool) // O(deg(from))
//
//	// Paths
//	PathWeight(p Path) (float64, error)            // O(len(p)·avg deg)
//	Coords(p Path) []Coord                         // O(len(p))
//
// Errors:
//
//	ErrBadCoordinate – NaN, infinite or |x| > MaxCoordinate
//	ErrBadWeight     – NaN edge weight
//	ErrNodeNotFound  – edge endpoint is not a node of this graph
//	ErrEdgeNotFound  – consecutive path nodes are not adjacent
//	ErrGraphFrozen   – mutation after Freeze()
package core
