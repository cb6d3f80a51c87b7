// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in coordinate indexing, idempotent insertion and symmetric adjacency.
//   - Anchor the nearest-node tie rule and path re-derivation.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/georoute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddNode_Idempotent verifies one handle per coordinate key.
func TestGraph_AddNode_Idempotent(t *testing.T) {
	g := core.NewGraph()

	a, err := g.AddNode(30.1, 59.9)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(0), a)

	b, err := g.AddNode(30.2, 59.9)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(1), b)

	// Same coordinate: same handle, no growth.
	again, err := g.AddNode(30.1, 59.9)
	require.NoError(t, err)
	assert.Equal(t, a, again)
	assert.Equal(t, 2, g.NodeCount())

	// Differences beyond ten fractional digits collapse onto one key.
	near, err := g.AddNode(30.1+1e-12, 59.9)
	require.NoError(t, err)
	assert.Equal(t, a, near)

	// Differences at the tenth digit do not.
	apart, err := g.AddNode(30.1+2e-10, 59.9)
	require.NoError(t, err)
	assert.NotEqual(t, a, apart)
}

// TestGraph_AddNode_BadCoordinate verifies NaN/Inf rejection.
func TestGraph_AddNode_BadCoordinate(t *testing.T) {
	g := core.NewGraph()
	for _, c := range []struct{ lon, lat float64 }{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	} {
		id, err := g.AddNode(c.lon, c.lat)
		require.ErrorIs(t, err, core.ErrBadCoordinate)
		assert.Equal(t, core.NoNode, id)
	}
	assert.Zero(t, g.NodeCount())
}

// TestGraph_AddNode_OutOfRange verifies that coordinates whose scaled key
// would overflow int64 are rejected instead of sharing a key.
func TestGraph_AddNode_OutOfRange(t *testing.T) {
	g := core.NewGraph()
	for _, c := range []struct{ lon, lat float64 }{
		{1e12, 0},
		{5e12, 0},
		{0, -7e12},
		{core.MaxCoordinate * 2, 0},
	} {
		id, err := g.AddNode(c.lon, c.lat)
		require.ErrorIs(t, err, core.ErrBadCoordinate)
		assert.Equal(t, core.NoNode, id)
	}
	assert.Zero(t, g.NodeCount())

	edge, err := g.AddNode(core.MaxCoordinate, -core.MaxCoordinate)
	require.NoError(t, err)
	other, err := g.AddNode(core.MaxCoordinate-1, -core.MaxCoordinate)
	require.NoError(t, err)
	assert.NotEqual(t, edge, other)

	_, ok := g.GetNode(-7e12, 0)
	assert.False(t, ok)
	got, ok := g.GetNode(core.MaxCoordinate, -core.MaxCoordinate)
	require.True(t, ok)
	assert.Equal(t, edge, got)
}

// TestGraph_GetNode verifies exact-key lookup.
func TestGraph_GetNode(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	id, err := g.AddNode(10, 20)
	require.NoError(t, err)

	got, ok := g.GetNode(10, 20)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = g.GetNode(20, 10)
	assert.False(t, ok, "lon/lat are not interchangeable")

	_, ok = g.GetNode(math.NaN(), 20)
	assert.False(t, ok)

	n, ok := g.Node(id)
	require.True(t, ok)
	assert.Equal(t, 10.0, n.Longitude())
	assert.Equal(t, 20.0, n.Latitude())
	assert.Equal(t, core.Coord{Lon: 10, Lat: 20}, n.Coord())

	_, ok = g.Node(core.NoNode)
	assert.False(t, ok)
	assert.False(t, g.Has(5))
	assert.True(t, g.Has(id))
}

// TestGraph_FindClosestNode covers empty graphs, exact hits and ties.
func TestGraph_FindClosestNode(t *testing.T) {
	g := core.NewGraph()
	_, ok := g.FindClosestNode(0, 0)
	assert.False(t, ok)

	// Two nodes equidistant from the origin; storage order wins.
	first, _ := g.AddNode(1, 0)
	_, _ = g.AddNode(-1, 0)
	far, _ := g.AddNode(5, 5)

	id, ok := g.FindClosestNode(0, 0)
	require.True(t, ok)
	assert.Equal(t, first, id)

	// Arguments are (lat, lon).
	id, ok = g.FindClosestNode(5, 4.9)
	require.True(t, ok)
	assert.Equal(t, far, id)

	// A NaN query still yields some node.
	id, ok = g.FindClosestNode(math.NaN(), 0)
	require.True(t, ok)
	assert.Equal(t, first, id)
}

// TestGraph_AddEdge_Symmetric verifies mirrored adjacency, loops and parallels.
func TestGraph_AddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(0, 0)
	b, _ := g.AddNode(1, 0)

	require.NoError(t, g.AddEdge(a, b, 2.5))
	w, ok := g.EdgeWeight(a, b)
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
	w, ok = g.EdgeWeight(b, a)
	require.True(t, ok)
	assert.Equal(t, 2.5, w)

	// Parallel edge: both lists grow; first match still reported.
	require.NoError(t, g.AddEdge(a, b, 1))
	assert.Len(t, g.Neighbors(a), 2)
	assert.Len(t, g.Neighbors(b), 2)
	w, _ = g.EdgeWeight(a, b)
	assert.Equal(t, 2.5, w)

	// Self-loop appends twice to the same list.
	require.NoError(t, g.AddEdge(a, a, 3))
	assert.Len(t, g.Neighbors(a), 4)
	assert.Equal(t, 3, g.EdgeCount())

	_, ok = g.EdgeWeight(b, 42)
	assert.False(t, ok)
	assert.Nil(t, g.Neighbors(42))
}

// TestGraph_AddEdge_Errors verifies the sentinel errors of AddEdge.
func TestGraph_AddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(0, 0)

	require.ErrorIs(t, g.AddEdge(a, 7, 1), core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge(core.NoNode, a, 1), core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge(a, a, math.NaN()), core.ErrBadWeight)
	assert.Zero(t, g.EdgeCount())
}

// TestGraph_Connect verifies get-or-create of both endpoints.
func TestGraph_Connect(t *testing.T) {
	g := core.NewGraph()
	a, b, err := g.Connect(0, 0, 1, 1, 4)
	require.NoError(t, err)
	c, d, err := g.Connect(1, 1, 2, 2, 5)
	require.NoError(t, err)

	assert.Equal(t, b, c, "shared endpoint is reused")
	assert.NotEqual(t, a, d)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	_, _, err = g.Connect(math.Inf(1), 0, 0, 0, 1)
	require.ErrorIs(t, err, core.ErrBadCoordinate)
}

// TestGraph_Freeze verifies read-only behavior after Freeze.
func TestGraph_Freeze(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(0, 0)
	b, _ := g.AddNode(1, 0)
	g.Freeze()
	g.Freeze()
	assert.True(t, g.Frozen())

	_, err := g.AddNode(2, 0)
	require.ErrorIs(t, err, core.ErrGraphFrozen)
	require.ErrorIs(t, g.AddEdge(a, b, 1), core.ErrGraphFrozen)

	// Existing coordinates still resolve.
	id, err := g.AddNode(0, 0)
	require.NoError(t, err)
	assert.Equal(t, a, id)
}

// TestGraph_Stats verifies the degree summary.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(0, 0)
	b, _ := g.AddNode(1, 0)
	c, _ := g.AddNode(2, 0)
	_, _ = g.AddNode(3, 0)
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(a, c, 1))

	st := g.Stats()
	assert.Equal(t, core.GraphStats{Nodes: 4, Edges: 2, MaxDegree: 2, Isolated: 1}, st)

	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	for i, n := range nodes {
		assert.Equal(t, core.NodeID(i), n.ID)
	}
}
