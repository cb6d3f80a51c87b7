package router

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Outcome label values of georoute_search_total.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeCanceled = "canceled"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "georoute_search_total",
		Help: "Searches run, by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "georoute_search_duration_seconds",
		Help:    "Wall time of a single search",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"algorithm"})

	searchExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "georoute_search_expanded_nodes",
		Help:    "Nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"algorithm"})
)

var (
	tracerOnce   sync.Once
	routerTracer trace.Tracer
)

// getTracer resolves the tracer lazily so telemetry.Init may run after
// package initialisation.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		routerTracer = otel.Tracer("georoute.router")
	})

	return routerTracer
}
