package router

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/georoute/core"
)

// Result describes one completed search.
type Result struct {
	Algorithm Algorithm     `json:"algorithm"`
	Start     core.NodeID   `json:"start"`
	Goal      core.NodeID   `json:"goal"`
	Path      core.Path     `json:"path"`
	Coords    []core.Coord  `json:"coords"`
	Weight    float64       `json:"weight"` // lightest parallel edge per step
	Hops      int           `json:"hops"`
	Expanded  int           `json:"expanded"`
	Duration  time.Duration `json:"duration"`
	Found     bool          `json:"found"`
}

// WritePath prints p as "(lat, lon)" pairs joined by " -> " followed by its
// total weight, or a not-found line for an empty path.
//
//	Path:
//	(59.910778, 30.491759) -> (59.911000, 30.492000)
//	Total length of path: 0.000297
func WritePath(w io.Writer, g *core.Graph, p core.Path) error {
	bw := bufio.NewWriter(w)
	if p.Empty() {
		fmt.Fprintln(bw, "Path is not found.")
		return bw.Flush()
	}
	total, err := g.PathWeight(p)
	if err != nil {
		return err
	}

	fmt.Fprintln(bw, "Path:")
	for i, c := range g.Coords(p) {
		if i > 0 {
			fmt.Fprint(bw, " -> ")
		}
		fmt.Fprintf(bw, "(%.6f, %.6f)", c.Lat, c.Lon)
	}
	fmt.Fprintf(bw, "\nTotal length of path: %.6f\n", total)

	return bw.Flush()
}
