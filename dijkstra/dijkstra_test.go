// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate optimality, distance caps, impassable edges, the
// one-to-all tree and agreement with BFS on random road networks.
package dijkstra_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/georoute/bfs"
	"github.com/katalvlaran/georoute/builder"
	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	S core.NodeID = iota
	A
	B
	C
	G
	Z
)

// shortcut builds S-A-C-G (weight 3), S-B-C (5), S-G (10) and an isolated Z.
func shortcut(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, c := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {5, 5}} {
		_, err := g.AddNode(c[0], c[1])
		require.NoError(t, err)
	}
	for _, e := range []struct {
		u, v core.NodeID
		w    float64
	}{{S, A, 1}, {S, B, 4}, {A, C, 1}, {B, C, 1}, {C, G, 1}, {S, G, 10}} {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Degenerate inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Degenerate(t *testing.T) {
	g := shortcut(t)

	assert.Empty(t, dijkstra.Dijkstra(nil, S, G))
	assert.Empty(t, dijkstra.Dijkstra(g, core.NoNode, G))
	assert.Empty(t, dijkstra.Dijkstra(g, S, 6))
	assert.Equal(t, core.Path{G}, dijkstra.Dijkstra(g, G, G))
	assert.Empty(t, dijkstra.Dijkstra(g, S, Z))
}

// ------------------------------------------------------------------------
// 2. Optimality.
// ------------------------------------------------------------------------

func TestDijkstra_LightestPath(t *testing.T) {
	g := shortcut(t)

	p := dijkstra.Dijkstra(g, S, G)
	assert.Equal(t, core.Path{S, A, C, G}, p)
	w, err := g.PathWeight(p)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	assert.Equal(t, core.Path{S, A, C}, dijkstra.Dijkstra(g, S, C))
	assert.Equal(t, core.Path{G, C, A, S}, dijkstra.Dijkstra(g, G, S))
}

// TestDijkstra_OnVisit verifies the goal is never expanded and farther nodes
// are never settled.
func TestDijkstra_OnVisit(t *testing.T) {
	g := shortcut(t)
	seen := map[core.NodeID]bool{}
	p := dijkstra.Dijkstra(g, S, C, dijkstra.WithOnVisit(func(id core.NodeID) { seen[id] = true }))

	require.Equal(t, core.Path{S, A, C}, p)
	assert.Equal(t, map[core.NodeID]bool{S: true, A: true}, seen)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g := shortcut(t)

	assert.Empty(t, dijkstra.Dijkstra(g, S, G, dijkstra.WithMaxDistance(2)))
	assert.Equal(t, core.Path{S, A, C}, dijkstra.Dijkstra(g, S, C, dijkstra.WithMaxDistance(2)))
	assert.Equal(t, core.Path{S, A, C, G}, dijkstra.Dijkstra(g, S, G, dijkstra.WithMaxDistance(3)))
	assert.Equal(t, core.Path{S}, dijkstra.Dijkstra(g, S, S, dijkstra.WithMaxDistance(0)))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := shortcut(t)

	// Weight-4 road S-B is a wall; B is reached around through C.
	assert.Equal(t, core.Path{S, A, C, B}, dijkstra.Dijkstra(g, S, B, dijkstra.WithInfEdgeThreshold(2)))
	// Every road is a wall.
	assert.Empty(t, dijkstra.Dijkstra(g, S, A, dijkstra.WithInfEdgeThreshold(1)))
}

func TestDijkstra_Cancelled(t *testing.T) {
	g := shortcut(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, dijkstra.Dijkstra(g, S, G, dijkstra.WithContext(ctx)))
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
}

// ------------------------------------------------------------------------
// 4. One-to-all tree.
// ------------------------------------------------------------------------

func TestShortestPathTree(t *testing.T) {
	g := shortcut(t)

	dist, prev := dijkstra.ShortestPathTree(g, S)
	require.Len(t, dist, 6)
	assert.Equal(t, []float64{0, 1, 3, 2, 3}, dist[:5])
	assert.True(t, math.IsInf(dist[Z], 1))
	assert.Equal(t, []core.NodeID{core.NoNode, S, C, A, C, core.NoNode}, prev)
	assert.Equal(t, core.Path{S, A, C, B}, core.ReconstructPath(prev, B))

	dist, prev = dijkstra.ShortestPathTree(nil, S)
	assert.Nil(t, dist)
	assert.Nil(t, prev)
}

// ------------------------------------------------------------------------
// 5. Properties on random road networks.
// ------------------------------------------------------------------------

// TestDijkstra_RandomProperties checks, over seeded random geometric graphs:
//   - Dijkstra's weight equals the shortest-path tree distance;
//   - no BFS path is lighter than Dijkstra's;
//   - no Dijkstra path has fewer hops than BFS's;
//   - both agree on reachability.
func TestDijkstra_RandomProperties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDetourWeight(2)},
			builder.RandomGeometric(120, 0.018))
		require.NoError(t, err)
		n := g.NodeCount()

		rng := rand.New(rand.NewSource(seed * 31))
		for k := 0; k < 15; k++ {
			s := core.NodeID(rng.Intn(n))
			e := core.NodeID(rng.Intn(n))
			dist, _ := dijkstra.ShortestPathTree(g, s)

			dp := dijkstra.Dijkstra(g, s, e)
			bp := bfs.BFS(g, s, e)
			if math.IsInf(dist[e], 1) {
				assert.Empty(t, dp)
				assert.Empty(t, bp)
				continue
			}
			require.NotEmpty(t, dp)
			require.NotEmpty(t, bp)

			dw, err := g.PathWeight(dp)
			require.NoError(t, err)
			bw, err := g.PathWeight(bp)
			require.NoError(t, err)

			assert.InDelta(t, dist[e], dw, 1e-9)
			assert.LessOrEqual(t, dw, bw+1e-9)
			assert.LessOrEqual(t, bp.Hops(), dp.Hops())
		}
	}
}
