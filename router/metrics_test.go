package router

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/core"
)

// TestRoute_Metrics verifies outcome counters. Counters are process-global,
// so the test compares deltas.
func TestRoute_Metrics(t *testing.T) {
	g := core.NewGraph()
	_, _, err := g.Connect(0, 0, 1, 0, 1)
	require.NoError(t, err)
	_, err = g.AddNode(5, 5)
	require.NoError(t, err)
	r, err := New(g)
	require.NoError(t, err)

	found := searchTotal.WithLabelValues("dijkstra", outcomeFound)
	missing := searchTotal.WithLabelValues("dijkstra", outcomeNotFound)
	canceled := searchTotal.WithLabelValues("dijkstra", outcomeCanceled)
	f0, m0, c0 := testutil.ToFloat64(found), testutil.ToFloat64(missing), testutil.ToFloat64(canceled)

	_, err = r.Route(context.Background(), Dijkstra, core.Coord{}, core.Coord{Lon: 1})
	require.NoError(t, err)
	_, err = r.Route(context.Background(), Dijkstra, core.Coord{}, core.Coord{Lon: 5, Lat: 5})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Route(ctx, Dijkstra, core.Coord{}, core.Coord{Lon: 1})
	require.Error(t, err)

	assert.Equal(t, f0+1, testutil.ToFloat64(found))
	assert.Equal(t, m0+1, testutil.ToFloat64(missing))
	assert.Equal(t, c0+1, testutil.ToFloat64(canceled))
}
