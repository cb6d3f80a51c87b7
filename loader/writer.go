package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/georoute/core"
)

// Write serialises g in the format Load reads, one line per node in handle
// order. Each undirected edge is written once, on the line of its lower
// endpoint; a self-loop is written once per loop.
//
// Loading the output into an empty graph reproduces node coordinates, edge
// counts and weights. Handle numbering may differ, because Load creates child
// nodes before their own lines are reached.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 256)

	for _, n := range g.Nodes() {
		buf = appendPair(buf[:0], n.Lon, n.Lat)
		sep := byte(':')
		selfSeen := 0
		for _, e := range g.Neighbors(n.ID) {
			switch {
			case e.To < n.ID:
				continue
			case e.To == n.ID:
				// Each loop appears twice in the list.
				selfSeen++
				if selfSeen%2 == 0 {
					continue
				}
			}
			to, _ := g.Node(e.To)
			buf = append(buf, sep)
			sep = ';'
			buf = appendPair(buf, to.Lon, to.Lat)
			buf = append(buf, ',')
			buf = strconv.AppendFloat(buf, e.Weight, 'f', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("loader: write node %d: %w", n.ID, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: create %s: %w", path, err)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func appendPair(buf []byte, lon, lat float64) []byte {
	buf = strconv.AppendFloat(buf, lon, 'f', -1, 64)
	buf = append(buf, ',')

	return strconv.AppendFloat(buf, lat, 'f', -1, 64)
}
