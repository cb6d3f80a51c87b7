package astar_test

import (
	"testing"

	"github.com/katalvlaran/georoute/astar"
	"github.com/katalvlaran/georoute/builder"
	"github.com/katalvlaran/georoute/core"
)

func benchGrid(b *testing.B, h astar.Heuristic) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithDetourWeight(1.5)},
		builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = astar.AStar(g, 0, core.NodeID(100*100-1), astar.WithHeuristic(h))
	}
}

// BenchmarkAStar_GridEuclidean measures corner-to-corner A* on a 100×100 lattice.
func BenchmarkAStar_GridEuclidean(b *testing.B) { benchGrid(b, astar.Euclidean) }

// BenchmarkAStar_GridZero is the same search without an estimate.
func BenchmarkAStar_GridZero(b *testing.B) { benchGrid(b, astar.Zero) }
