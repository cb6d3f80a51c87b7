package router

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/georoute/astar"
	"github.com/katalvlaran/georoute/bfs"
	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/dfs"
	"github.com/katalvlaran/georoute/dijkstra"
)

// Router answers route queries over one frozen graph.
type Router struct {
	g         *core.Graph
	log       *slog.Logger
	heuristic astar.Heuristic
}

// New freezes g and wraps it in a Router.
//
// Errors:
//   - ErrEmptyGraph: g is nil or has no nodes.
func New(g *core.Graph, opts ...Option) (*Router, error) {
	if g == nil || g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g.Freeze()

	return &Router{g: g, log: o.logger, heuristic: o.heuristic}, nil
}

// Graph returns the underlying (frozen) graph.
func (r *Router) Graph() *core.Graph { return r.g }

// Snap returns the node closest to c. New guarantees a non-empty frozen
// graph, so a node always exists.
func (r *Router) Snap(c core.Coord) core.NodeID {
	id, _ := r.g.FindClosestNode(c.Lat, c.Lon)
	return id
}

// Route snaps from and to onto the graph and runs algo between them.
//
// An unreachable goal is not an error: the Result has Found == false and an
// empty Path. If ctx is cancelled during the search, ctx.Err() is returned
// instead of a Result.
//
// Errors:
//   - ErrUnknownAlgorithm, context errors.
func (r *Router) Route(ctx context.Context, algo Algorithm, from, to core.Coord) (*Result, error) {
	ctx, span := getTracer().Start(ctx, "router.Route",
		trace.WithAttributes(
			attribute.String("algorithm", algo.String()),
			attribute.Float64("from_lat", from.Lat),
			attribute.Float64("from_lon", from.Lon),
			attribute.Float64("to_lat", to.Lat),
			attribute.Float64("to_lon", to.Lon),
		),
	)
	defer span.End()

	res, err := r.route(ctx, algo, from, to)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("start_node", int(res.Start)),
		attribute.Int("goal_node", int(res.Goal)),
		attribute.Bool("found", res.Found),
		attribute.Int("hops", res.Hops),
		attribute.Int("expanded", res.Expanded),
		attribute.Float64("weight", res.Weight),
	)
	span.SetStatus(codes.Ok, "")

	return res, nil
}

func (r *Router) route(ctx context.Context, algo Algorithm, from, to core.Coord) (*Result, error) {
	if !algo.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	start, goal := r.Snap(from), r.Snap(to)

	began := time.Now()
	path, expanded := r.search(ctx, algo, start, goal)
	elapsed := time.Since(began)

	name := algo.String()
	if err := ctx.Err(); err != nil {
		searchTotal.WithLabelValues(name, outcomeCanceled).Inc()
		return nil, err
	}

	weight, err := r.g.PathWeight(path)
	if err != nil {
		return nil, fmt.Errorf("router: %s returned a broken path: %w", name, err)
	}

	res := &Result{
		Algorithm: algo,
		Start:     start,
		Goal:      goal,
		Path:      path,
		Coords:    r.g.Coords(path),
		Weight:    weight,
		Hops:      path.Hops(),
		Expanded:  expanded,
		Duration:  elapsed,
		Found:     !path.Empty(),
	}

	outcome := outcomeFound
	if !res.Found {
		outcome = outcomeNotFound
	}
	searchTotal.WithLabelValues(name, outcome).Inc()
	searchDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	searchExpanded.WithLabelValues(name).Observe(float64(expanded))

	r.log.Debug("route",
		slog.String("algorithm", name),
		slog.Int("start", int(start)),
		slog.Int("goal", int(goal)),
		slog.Bool("found", res.Found),
		slog.Int("hops", res.Hops),
		slog.Int("expanded", expanded),
		slog.Float64("weight", res.Weight),
		slog.Duration("duration", elapsed),
	)

	return res, nil
}

// search dispatches to the algorithm package and counts expansions.
func (r *Router) search(ctx context.Context, algo Algorithm, start, goal core.NodeID) (core.Path, int) {
	expanded := 0
	visit := func(core.NodeID) { expanded++ }

	var path core.Path
	switch algo {
	case BFS:
		path = bfs.BFS(r.g, start, goal, bfs.WithContext(ctx), bfs.WithOnVisit(visit))
	case DFS:
		path = dfs.DFS(r.g, start, goal, dfs.WithContext(ctx), dfs.WithOnVisit(visit))
	case Dijkstra:
		path = dijkstra.Dijkstra(r.g, start, goal, dijkstra.WithContext(ctx), dijkstra.WithOnVisit(visit))
	case AStar:
		path = astar.AStar(r.g, start, goal,
			astar.WithContext(ctx), astar.WithHeuristic(r.heuristic), astar.WithOnVisit(visit))
	}

	return path, expanded
}

// Compare runs every algorithm between from and to concurrently and returns
// the results in Algorithms() order. The first failure cancels the others.
func (r *Router) Compare(ctx context.Context, from, to core.Coord) ([]*Result, error) {
	ctx, span := getTracer().Start(ctx, "router.Compare")
	defer span.End()

	algos := Algorithms()
	results := make([]*Result, len(algos))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, algo := range algos {
		i, algo := i, algo
		eg.Go(func() error {
			res, err := r.Route(egCtx, algo, from, to)
			if err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")

	return results, nil
}
