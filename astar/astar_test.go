package astar_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/georoute/astar"
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
// Every weight is at least the Euclidean length of its edge.
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

func TestAStar_Degenerate(t *testing.T) {
	g := shortcut(t)

	assert.Empty(t, astar.AStar(nil, S, G))
	assert.Empty(t, astar.AStar(g, S, core.NoNode))
	assert.Empty(t, astar.AStar(g, 17, G))
	assert.Equal(t, core.Path{B}, astar.AStar(g, B, B))
	assert.Empty(t, astar.AStar(g, S, Z))
}

func TestAStar_Optimal(t *testing.T) {
	g := shortcut(t)
	for _, h := range []astar.Heuristic{astar.Euclidean, astar.Zero} {
		p := astar.AStar(g, S, G, astar.WithHeuristic(h))
		assert.Equal(t, core.Path{S, A, C, G}, p)
		assert.Equal(t, core.Path{S, A, C, B}, astar.AStar(g, S, B, astar.WithHeuristic(h)))
	}
}

// TestAStar_HeuristicPrunes verifies the Euclidean estimate expands fewer
// nodes than the zero estimate for the same answer.
func TestAStar_HeuristicPrunes(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(15, 15))
	require.NoError(t, err)
	goal := core.NodeID(14) // east end of row 0

	count := func(h astar.Heuristic) (core.Path, int) {
		n := 0
		p := astar.AStar(g, 0, goal, astar.WithHeuristic(h), astar.WithOnVisit(func(core.NodeID) { n++ }))
		return p, n
	}
	pe, ne := count(astar.Euclidean)
	pz, nz := count(astar.Zero)

	require.Len(t, pe, 15)
	require.Len(t, pz, 15)
	assert.Less(t, ne, nz)
}

func TestAStar_Options(t *testing.T) {
	g := shortcut(t)

	assert.Empty(t, astar.AStar(g, S, G, astar.WithMaxExpansions(1)))
	assert.Equal(t, core.Path{S, A, C, G}, astar.AStar(g, S, G, astar.WithMaxExpansions(10)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, astar.AStar(g, S, G, astar.WithContext(ctx)))

	assert.Panics(t, func() { astar.WithHeuristic(nil) })
	assert.Panics(t, func() { astar.WithMaxExpansions(-1) })
}

func TestHeuristicByName(t *testing.T) {
	for _, name := range []string{"", "euclidean", "haversine", "zero"} {
		h, ok := astar.HeuristicByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, h, name)
	}
	_, ok := astar.HeuristicByName("manhattan")
	assert.False(t, ok)

	from, to := core.Coord{Lon: 0, Lat: 0}, core.Coord{Lon: 3, Lat: 4}
	assert.Equal(t, 5.0, astar.Euclidean(from, to))
	assert.Zero(t, astar.Zero(from, to))
	assert.Greater(t, astar.Haversine(from, to), 500000.0)
}

// TestAStar_MatchesDijkstra checks weight equality with Dijkstra over seeded
// random networks, in degrees with Euclidean and in metres with Haversine.
func TestAStar_MatchesDijkstra(t *testing.T) {
	cases := []struct {
		name string
		w    builder.BuilderOption
		h    astar.Heuristic
	}{
		{"euclidean", builder.WithDetourWeight(1.8), astar.Euclidean},
		{"haversine", builder.WithWeightFn(builder.HaversineWeight), astar.Haversine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 4; seed++ {
				g, err := builder.BuildGraph(nil,
					[]builder.BuilderOption{builder.WithSeed(seed), builder.WithOrigin(30.2, 59.9), tc.w},
					builder.RandomGeometric(150, 0.017))
				require.NoError(t, err)

				rng := rand.New(rand.NewSource(seed))
				for k := 0; k < 15; k++ {
					s := core.NodeID(rng.Intn(g.NodeCount()))
					e := core.NodeID(rng.Intn(g.NodeCount()))
					dp := dijkstra.Dijkstra(g, s, e)
					ap := astar.AStar(g, s, e, astar.WithHeuristic(tc.h))
					if dp.Empty() {
						assert.Empty(t, ap)
						continue
					}
					require.NotEmpty(t, ap)
					dw, err := g.PathWeight(dp)
					require.NoError(t, err)
					aw, err := g.PathWeight(ap)
					require.NoError(t, err)
					assert.InDelta(t, dw, aw, 1e-6*(1+dw))
				}
			}
		})
	}
}
