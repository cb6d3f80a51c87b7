package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/georoute/builder"
	"github.com/katalvlaran/georoute/dfs"
)

// ExampleDFS contrasts DFS with the fewest-hop route on a 3×3 lattice:
// the last-pushed neighbor is explored first, so the path climbs column 0
// before turning east.
func ExampleDFS() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(3, 3))

	path := dfs.DFS(g, 0, 8)
	fmt.Println(path, "hops:", path.Hops())

	// Output:
	// [0 3 6 7 8] hops: 4
}

// ExampleComponents counts the islands of two disjoint lines.
func ExampleComponents() {
	g, _ := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithOrigin(0, 0)},
		builder.Line(3))
	_, _, _ = g.Connect(10, 10, 10.01, 10, 1)

	for _, comp := range dfs.Components(g) {
		fmt.Println(comp)
	}

	// Output:
	// [0 1 2]
	// [3 4]
}
