package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/georoute/core"
)

// Stats summarises one Load call.
type Stats struct {
	// Lines is the number of lines read, blank ones included.
	Lines int `json:"lines"`
	// Nodes is the number of nodes created by this load.
	Nodes int `json:"nodes"`
	// Edges is the number of undirected edges inserted.
	Edges int `json:"edges"`
	// SkippedLines counts lines dropped for a malformed parent.
	SkippedLines int `json:"skipped_lines"`
	// SkippedEdges counts edge triples dropped as malformed.
	SkippedEdges int `json:"skipped_edges"`
}

// LoadFile opens path and loads it into g. Open failures wrap ErrOpen.
func LoadFile(path string, g *core.Graph, opts ...Option) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return Load(f, g, append([]Option{WithSource(path)}, opts...)...)
}

// Load parses r line by line into g and returns what it did.
//
// Malformed input is logged and skipped, never returned. The error result is
// reserved for read failures and for core rejecting a mutation outright
// (ErrGraphFrozen), in which case Stats reflects the work done so far.
func Load(r io.Reader, g *core.Graph, opts ...Option) (Stats, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if o.source != "" {
		log = log.With(slog.String("source", o.source))
	}

	var st Stats
	before := g.NodeCount()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		st.Lines++
		if err := loadLine(g, sc.Text(), st.Lines, log, &st); err != nil {
			st.Nodes = g.NodeCount() - before
			return st, err
		}
	}
	st.Nodes = g.NodeCount() - before
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("loader: line %d: %w", st.Lines+1, err)
	}

	return st, nil
}

// loadLine applies one line. Only fatal core errors are returned.
func loadLine(g *core.Graph, line string, n int, log *slog.Logger, st *Stats) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parentPart, edgesPart, _ := strings.Cut(line, ":")

	lon, lat, err := parsePair(parentPart)
	if err != nil {
		log.Warn("skipping line: bad parent coordinates",
			slog.Int("line", n), slog.String("parent", parentPart), slog.Any("err", err))
		st.SkippedLines++
		return nil
	}
	parent, err := g.AddNode(lon, lat)
	if err != nil {
		if fatal(err) {
			return err
		}
		log.Warn("skipping line: parent rejected",
			slog.Int("line", n), slog.String("parent", parentPart), slog.Any("err", err))
		st.SkippedLines++
		return nil
	}

	for _, seg := range strings.Split(edgesPart, ";") {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		if err = loadEdge(g, parent, seg); err != nil {
			if fatal(err) {
				return err
			}
			log.Warn("skipping edge",
				slog.Int("line", n), slog.String("edge", seg), slog.Any("err", err))
			st.SkippedEdges++
			continue
		}
		st.Edges++
	}

	return nil
}

func loadEdge(g *core.Graph, parent core.NodeID, seg string) error {
	f := strings.Split(seg, ",")
	if len(f) != 3 {
		return fmt.Errorf("%w: want lon,lat,weight, got %d fields", ErrSyntax, len(f))
	}
	lon, err := parseFloat(f[0])
	if err != nil {
		return err
	}
	lat, err := parseFloat(f[1])
	if err != nil {
		return err
	}
	w, err := parseFloat(f[2])
	if err != nil {
		return err
	}
	child, err := g.AddNode(lon, lat)
	if err != nil {
		return err
	}

	return g.AddEdge(parent, child, w)
}

func parsePair(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(b, ",") {
		return 0, 0, fmt.Errorf("%w: want lon,lat", ErrSyntax)
	}
	lon, err := parseFloat(a)
	if err != nil {
		return 0, 0, err
	}
	lat, err := parseFloat(b)
	if err != nil {
		return 0, 0, err
	}

	return lon, lat, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// fatal reports errors that will repeat for every remaining line.
func fatal(err error) bool {
	return errors.Is(err, core.ErrGraphFrozen)
}
