// Package core defines the Node, Edge, Coord and Graph types, sentinel
// errors and the NewGraph constructor.
//
// A single sync.RWMutex (mu) guards the arena, the coordinate index and all
// adjacency lists. Writers (AddNode, AddEdge, Freeze) take the write lock;
// readers take the read lock only for the duration of one lookup.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadCoordinate indicates a NaN, infinite or out-of-range
	// longitude/latitude.
	ErrBadCoordinate = errors.New("core: coordinate must be finite and within ±MaxCoordinate")

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight is NaN")

	// ErrNodeNotFound indicates an operation referenced a handle outside the arena.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates two nodes expected to be adjacent are not.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrGraphFrozen indicates a mutation was attempted after Freeze().
	ErrGraphFrozen = errors.New("core: graph is frozen")
)

// keyScale fixes the coordinate index precision at ten fractional digits.
const keyScale = 1e10

// MaxCoordinate bounds |lon| and |lat|. Larger values would overflow the
// scaled int64 index key.
const MaxCoordinate = 9e8

// NodeID is a dense handle into the Graph's node arena.
// Valid handles are in [0, NodeCount()).
type NodeID int

// NoNode is the absent reference. Searches given NoNode return an empty Path.
const NoNode NodeID = -1

// Coord is a (longitude, latitude) pair.
type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Node is a read-only snapshot of an arena entry.
type Node struct {
	// ID is the node's handle.
	ID NodeID

	// Lon is the longitude.
	Lon float64

	// Lat is the latitude.
	Lat float64
}

// Longitude returns the node's longitude.
func (n Node) Longitude() float64 { return n.Lon }

// Latitude returns the node's latitude.
func (n Node) Latitude() float64 { return n.Lat }

// Coord returns the node's coordinate pair.
func (n Node) Coord() Coord { return Coord{Lon: n.Lon, Lat: n.Lat} }

// Edge is one entry of a node's adjacency list.
type Edge struct {
	// To is the neighbour handle.
	To NodeID

	// Weight is the traversal cost.
	Weight float64
}

// coordKey is the exact-match index key: both coordinates scaled by keyScale
// and rounded to the nearest integer.
type coordKey struct {
	lon, lat int64
}

func makeKey(lon, lat float64) coordKey {
	return coordKey{
		lon: int64(math.Round(lon * keyScale)),
		lat: int64(math.Round(lat * keyScale)),
	}
}

// node is the arena record. edges is append-only.
type node struct {
	lon, lat float64
	edges    []Edge
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity presizes the arena and index for n nodes.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]node, 0, n)
			g.index = make(map[coordKey]NodeID, n)
		}
	}
}

// Graph is the in-memory Graph Store.
//
// nodes is the arena indexed by NodeID; index maps coordinate keys back to
// handles. edgeCount counts undirected insertions (AddEdge calls), not
// adjacency entries.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes     []node
	index     map[coordKey]NodeID
	edgeCount int
	frozen    bool
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[coordKey]NodeID),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// valid reports whether id addresses an arena entry. Caller holds mu.
func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// inRange reports whether x is finite and small enough that x*keyScale
// fits an int64 key.
func inRange(x float64) bool {
	return !math.IsNaN(x) && math.Abs(x) <= MaxCoordinate
}
