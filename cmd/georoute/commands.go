package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/dfs"
	"github.com/katalvlaran/georoute/internal/server"
	"github.com/katalvlaran/georoute/internal/telemetry"
	"github.com/katalvlaran/georoute/loader"
	"github.com/katalvlaran/georoute/router"
)

// Default query endpoints: two points in Saint Petersburg.
const (
	defaultFrom = "59.910778,30.491759"
	defaultTo   = "59.957237,30.308405"
)

func addEndpointFlags(cmd *cobra.Command, from, to *string) {
	cmd.Flags().StringVar(from, "from", defaultFrom, "start point as lat,lon")
	cmd.Flags().StringVar(to, "to", defaultTo, "goal point as lat,lon")
}

func newRouteCmd(a *app) *cobra.Command {
	var algoName, from, to string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find a path between two points with one algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("algorithm") {
				algoName = a.cfg.Router.DefaultAlgorithm
			}
			algo, err := router.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}
			src, dst, err := endpoints(from, to)
			if err != nil {
				return err
			}
			rt, err := a.newRouter()
			if err != nil {
				return err
			}
			res, err := rt.Route(cmd.Context(), algo, src, dst)
			if err != nil {
				return err
			}

			return printResult(a.out, rt.Graph(), res)
		},
	}
	cmd.Flags().StringVarP(&algoName, "algorithm", "a", "astar", "bfs, dfs, dijkstra or astar")
	addEndpointFlags(cmd, &from, &to)

	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm between two points and report timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, dst, err := endpoints(from, to)
			if err != nil {
				return err
			}
			rt, err := a.newRouter()
			if err != nil {
				return err
			}
			results, err := rt.Compare(cmd.Context(), src, dst)
			if err != nil {
				return err
			}
			for _, res := range results {
				if err = printResult(a.out, rt.Graph(), res); err != nil {
					return err
				}
				fmt.Fprintln(a.out)
			}

			return nil
		},
	}
	addEndpointFlags(cmd, &from, &to)

	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("listen") {
				a.cfg.Server.Listen = listen
			}
			shutdown, err := telemetry.Init(telemetry.Config{
				ServiceName:   a.cfg.Telemetry.ServiceName,
				TraceExporter: a.cfg.Telemetry.TraceExporter,
			})
			if err != nil {
				return err
			}
			defer func() { _ = shutdown(context.Background()) }()

			rt, err := a.newRouter()
			if err != nil {
				return err
			}
			def, err := router.ParseAlgorithm(a.cfg.Router.DefaultAlgorithm)
			if err != nil {
				return err
			}
			srv := server.New(rt, server.Config{
				Listen:           a.cfg.Server.Listen,
				CORSOrigins:      a.cfg.Server.CORSOrigins,
				ShutdownTimeout:  a.cfg.Server.ShutdownTimeout,
				DefaultAlgorithm: def,
				ServiceName:      a.cfg.Telemetry.ServiceName,
			}, a.log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", ":8080", "listen address")

	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print graph size, degree and connectivity figures",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, ls, err := a.loadGraph()
			if err != nil {
				return err
			}
			if ls != nil {
				fmt.Fprintf(a.out, "lines: %d\nskipped lines: %d\nskipped edges: %d\n",
					ls.Lines, ls.SkippedLines, ls.SkippedEdges)
			}
			st := g.Stats()
			fmt.Fprintf(a.out, "nodes: %d\nedges: %d\nmax degree: %d\nisolated: %d\n",
				st.Nodes, st.Edges, st.MaxDegree, st.Isolated)

			comps := dfs.Components(g)
			sizes := make([]int, len(comps))
			for i, c := range comps {
				sizes[i] = len(c)
			}
			sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
			largest := 0
			if len(sizes) > 0 {
				largest = sizes[0]
			}
			fmt.Fprintf(a.out, "components: %d\nlargest component: %d\n", len(comps), largest)

			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph in the loader text format",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, _, err := a.loadGraph()
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				return loader.Write(a.out, g)
			}

			return loader.WriteFile(outPath, g)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")

	return cmd
}

func endpoints(from, to string) (core.Coord, core.Coord, error) {
	src, err := parseLatLon(from)
	if err != nil {
		return core.Coord{}, core.Coord{}, err
	}
	dst, err := parseLatLon(to)
	if err != nil {
		return core.Coord{}, core.Coord{}, err
	}

	return src, dst, nil
}

// printResult writes one algorithm's path and timing block.
func printResult(w io.Writer, g *core.Graph, res *router.Result) error {
	label := displayName(res.Algorithm)
	fmt.Fprintf(w, "Result of %s:\n", label)
	if err := router.WritePath(w, g, res.Path); err != nil {
		return err
	}
	fmt.Fprintf(w, "Expanded nodes: %d\n", res.Expanded)
	_, err := fmt.Fprintf(w, "Time of %s: %d ms\n", label, res.Duration.Milliseconds())

	return err
}

func displayName(a router.Algorithm) string {
	switch a {
	case router.BFS:
		return "BFS"
	case router.DFS:
		return "DFS"
	case router.Dijkstra:
		return "Dijkstra"
	case router.AStar:
		return "A*"
	}

	return a.String()
}
