// Package loader_test verifies parsing, skip accounting and round-tripping of
// the road-graph text format.
package loader_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/georoute/builder"
	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Basic verifies node reuse and symmetric insertion.
func TestLoad_Basic(t *testing.T) {
	in := strings.Join([]string{
		"30.1,59.9:30.2,59.9,1.5;30.1,60.0,2",
		"30.2,59.9:30.2,60.0,3",
		"",
		"30.5,59.5",
	}, "\n")

	g := core.NewGraph()
	st, err := loader.Load(strings.NewReader(in), g)
	require.NoError(t, err)

	assert.Equal(t, loader.Stats{Lines: 4, Nodes: 5, Edges: 3}, st)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	a, ok := g.GetNode(30.1, 59.9)
	require.True(t, ok)
	b, ok := g.GetNode(30.2, 59.9)
	require.True(t, ok)
	w, ok := g.EdgeWeight(b, a)
	require.True(t, ok)
	assert.Equal(t, 1.5, w)

	// The parent-only line yields an isolated node.
	iso, ok := g.GetNode(30.5, 59.5)
	require.True(t, ok)
	assert.Empty(t, g.Neighbors(iso))
}

// TestLoad_SkipsMalformed verifies line and edge level skipping.
func TestLoad_SkipsMalformed(t *testing.T) {
	in := strings.Join([]string{
		"oops,59.9:30.2,59.9,1",            // bad parent: whole line skipped
		"30.1,59.9:30.2,59.9,1;x,1,2;30.3", // two bad edges, one good
		"30.1:30.2,59.9,1",                 // parent with one field
		"30.3,59.9:30.4,59.9,nan;",         // NaN weight rejected by core
		"30.4,59.9:30.5,59.9, 2 ;",         // spaces and trailing ';' tolerated
	}, "\n")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	g := core.NewGraph()
	st, err := loader.Load(strings.NewReader(in), g, loader.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 5, st.Lines)
	assert.Equal(t, 2, st.SkippedLines)
	assert.Equal(t, 3, st.SkippedEdges)
	assert.Equal(t, 2, st.Edges)
	assert.Equal(t, 2, g.EdgeCount())

	// The NaN edge still created its child node before core refused the weight.
	_, ok := g.GetNode(30.4, 59.9)
	assert.True(t, ok)
	_, ok = g.GetNode(30.2, 59.9)
	assert.True(t, ok)

	out := logs.String()
	assert.Contains(t, out, "skipping line")
	assert.Contains(t, out, "skipping edge")
	assert.Contains(t, out, "line=2")
}

// TestLoad_OutOfRange verifies that coordinates too large for the index key
// are dropped instead of merging into one node.
func TestLoad_OutOfRange(t *testing.T) {
	in := strings.Join([]string{
		"1e12,0:30.2,59.9,1",             // parent rejected by core
		"30.1,59.9:5e12,0,1;30.2,59.9,1", // one huge child, one good edge
	}, "\n")

	g := core.NewGraph()
	st, err := loader.Load(strings.NewReader(in), g)
	require.NoError(t, err)

	assert.Equal(t, 1, st.SkippedLines)
	assert.Equal(t, 1, st.SkippedEdges)
	assert.Equal(t, 1, st.Edges)
	assert.Equal(t, 2, g.NodeCount())
	_, ok := g.GetNode(1e12, 0)
	assert.False(t, ok)
}

// TestLoad_Frozen verifies that a frozen graph aborts the load.
func TestLoad_Frozen(t *testing.T) {
	g := core.NewGraph()
	g.Freeze()

	st, err := loader.Load(strings.NewReader("1,2:3,4,5\n6,7\n"), g)
	require.ErrorIs(t, err, core.ErrGraphFrozen)
	assert.Equal(t, 1, st.Lines)
	assert.Zero(t, st.Nodes)
}

// TestLoad_ReadError verifies that reader failures are returned.
func TestLoad_ReadError(t *testing.T) {
	boom := errors.New("boom")
	r := &failingReader{data: "1,2:3,4,5\n", err: boom}

	g := core.NewGraph()
	st, err := loader.Load(r, g)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, st.Lines)
	assert.Equal(t, 1, st.Edges)
}

// TestLoad_LongLine verifies lines beyond bufio's default token size.
func TestLoad_LongLine(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("0,0:")
	const n = 5000
	for i := 1; i <= n; i++ {
		if i > 1 {
			sb.WriteByte(';')
		}
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", 4))
		sb.WriteString(padInt(i))
		sb.WriteString(",1,1")
	}

	g := core.NewGraph()
	st, err := loader.Load(strings.NewReader(sb.String()), g)
	require.NoError(t, err)
	assert.Equal(t, n, st.Edges)
	assert.Equal(t, n+1, g.NodeCount())
}

// TestLoadFile verifies path handling and ErrOpen.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roads.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,1:2,2,1\n"), 0o600))

	g := core.NewGraph()
	st, err := loader.LoadFile(path, g)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Edges)

	_, err = loader.LoadFile(filepath.Join(dir, "missing.txt"), core.NewGraph())
	require.ErrorIs(t, err, loader.ErrOpen)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestWrite_RoundTrip verifies Load(Write(g)) preserves structure and weights.
func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithDetourWeight(1.5)},
		builder.Grid(4, 5))
	require.NoError(t, err)

	// Extras the grid lacks: a parallel edge, a self-loop, an isolated node.
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(3, 3, 0.5))
	_, err = g.AddNode(-10, -10)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, g))

	h := core.NewGraph()
	st, err := loader.Load(&buf, h)
	require.NoError(t, err)
	assert.Zero(t, st.SkippedEdges)
	assert.Zero(t, st.SkippedLines)
	assert.Equal(t, g.NodeCount(), h.NodeCount())
	assert.Equal(t, g.EdgeCount(), h.EdgeCount())

	for _, n := range g.Nodes() {
		id, ok := h.GetNode(n.Lon, n.Lat)
		require.True(t, ok, "node %d missing", n.ID)
		assert.Equal(t, weights(g, n.ID), weights(h, id), "node %d", n.ID)
	}
}

// TestWriteFile verifies the file helper.
func TestWriteFile(t *testing.T) {
	g := core.NewGraph()
	_, _, err := g.Connect(1, 2, 3, 4, 0.25)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, loader.WriteFile(path, g))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,2:3,4,0.25\n3,4\n", string(data))
}

type failingReader struct {
	data string
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true

	return copy(p, r.data), nil
}

// weights returns the sorted multiset of incident weights of id.
func weights(g *core.Graph, id core.NodeID) []float64 {
	var out []float64
	for _, e := range g.Neighbors(id) {
		out = append(out, e.Weight)
	}
	sortFloats(out)

	return out
}
