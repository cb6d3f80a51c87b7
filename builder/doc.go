// Package builder provides reusable “functional‐options”‐style generators of
// synthetic road networks on a coordinate plane. The graphs feed tests,
// benchmarks and the CLI's --synthetic mode, so every search can be exercised
// without a map file.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create, configure, apply in order.
//     – Constructor: one topology mutation over (g, cfg).
//   - Topologies:
//     – Grid(rows, cols):            4-neighbour lattice.
//     – Line(n):                     eastward chain.
//     – RandomGeometric(n, radius):  seeded random points joined within radius.
//     – Raster(cells, opts):         passable cells of a map, 4- or 8-connected.
//     – ParseSynthetic("grid:RxC"):  descriptor form used by the CLI.
//   - Configuration primitives:
//     – WithSeed / WithRand:         RNG for stochastic topologies and weights.
//     – WithOrigin / WithStep:       placement of the first node and spacing.
//     – WithWeightFn:                edge weight policy.
//   - Edge‐weight policies (WeightFn implementations):
//     – EuclideanWeight (default), HaversineWeight, ConstantWeightFn,
//     DetourWeightFn.
//
// Guarantees:
//
//   - Deterministic output for equal inputs, options and seed.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors for invalid build parameters, wrapping
//     sentinels (ErrTooFewVertices, ErrInvalidRadius, ErrNeedRandSource).
//   - Default weights never undercut straight-line distance, so the A*
//     Euclidean heuristic is admissible on every generated graph.
package builder
