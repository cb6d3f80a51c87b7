package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/astar"
	"github.com/katalvlaran/georoute/builder"
	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/internal/config"
	"github.com/katalvlaran/georoute/internal/logging"
	"github.com/katalvlaran/georoute/loader"
	"github.com/katalvlaran/georoute/router"
)

var errNoGraph = errors.New("no graph source: pass --graph FILE or --synthetic DESC")

// app carries flag values and the resolved configuration across commands.
type app struct {
	out io.Writer

	configPath string
	graphPath  string
	synthetic  string
	seed       int64
	logLevel   string
	logFormat  string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "georoute",
		Short:         "Shortest paths over geographic road graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(os.Stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&a.graphPath, "graph", "g", "", "road graph file (lon,lat:lon,lat,w;... lines)")
	pf.StringVar(&a.synthetic, "synthetic", "", "generate a graph instead: grid:RxC, line:N or random:N:RADIUS")
	pf.Int64Var(&a.seed, "seed", 1, "random seed for synthetic graphs")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json")

	root.AddCommand(
		newRouteCmd(a),
		newCompareCmd(a),
		newServeCmd(a),
		newStatsCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("graph") {
		cfg.Graph.File = a.graphPath
		cfg.Graph.Synthetic = ""
	}
	if flags.Changed("synthetic") {
		cfg.Graph.Synthetic = a.synthetic
	}
	if flags.Changed("seed") {
		cfg.Graph.Seed = a.seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.log, err = logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	slog.SetDefault(a.log)
	a.cfg = cfg

	return nil
}

// loadGraph builds or reads the configured graph. Stats is nil for
// synthetic graphs.
func (a *app) loadGraph() (*core.Graph, *loader.Stats, error) {
	gc := a.cfg.Graph
	switch {
	case gc.Synthetic != "":
		cons, err := builder.ParseSynthetic(gc.Synthetic)
		if err != nil {
			return nil, nil, err
		}
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(gc.Seed)}, cons)
		if err != nil {
			return nil, nil, err
		}
		a.log.Info("synthetic graph built",
			slog.String("desc", gc.Synthetic), slog.Int("nodes", g.NodeCount()), slog.Int("edges", g.EdgeCount()))
		return g, nil, nil

	case gc.File != "":
		g := core.NewGraph()
		st, err := loader.LoadFile(gc.File, g, loader.WithLogger(a.log))
		if err != nil {
			return nil, nil, err
		}
		a.log.Info("graph loaded",
			slog.String("file", gc.File), slog.Int("nodes", st.Nodes), slog.Int("edges", st.Edges),
			slog.Int("skipped_lines", st.SkippedLines), slog.Int("skipped_edges", st.SkippedEdges))
		return g, &st, nil
	}

	return nil, nil, errNoGraph
}

// newRouter loads the graph and wraps it with the configured heuristic.
func (a *app) newRouter() (*router.Router, error) {
	g, _, err := a.loadGraph()
	if err != nil {
		return nil, err
	}
	h, ok := astar.HeuristicByName(a.cfg.Router.Heuristic)
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", a.cfg.Router.Heuristic)
	}

	return router.New(g, router.WithLogger(a.log), router.WithHeuristic(h))
}

// parseLatLon parses "lat,lon".
func parseLatLon(s string) (core.Coord, error) {
	la, lo, ok := strings.Cut(s, ",")
	if !ok {
		return core.Coord{}, fmt.Errorf("coordinate %q: want lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(la), 64)
	if err != nil {
		return core.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return core.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}

	return core.Coord{Lon: lon, Lat: lat}, nil
}
