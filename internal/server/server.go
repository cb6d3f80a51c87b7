// Package server exposes a router.Router over HTTP with gin.
//
// Routes:
//
//	GET /healthz     liveness plus graph size
//	GET /v1/stats    core.GraphStats of the served graph
//	GET /v1/route    one search; query: algorithm, from_lat, from_lon, to_lat, to_lon
//	GET /v1/compare  all four searches; same coordinates, no algorithm
//	GET /metrics     Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/katalvlaran/georoute/router"
)

// Config holds HTTP settings.
type Config struct {
	Listen           string
	CORSOrigins      []string
	ShutdownTimeout  time.Duration
	DefaultAlgorithm router.Algorithm
	ServiceName      string
}

// Server serves one Router.
type Server struct {
	cfg    Config
	rt     *router.Router
	log    *slog.Logger
	engine *gin.Engine
}

// New wires the gin engine. log may be nil.
func New(rt *router.Router, cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "georoute"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{cfg: cfg, rt: rt, log: log, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestID(), accessLog(log), otelgin.Middleware(cfg.ServiceName))
	if len(cfg.CORSOrigins) > 0 {
		s.engine.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	}

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1 := s.engine.Group("/v1")
	v1.GET("/stats", s.handleStats)
	v1.GET("/route", s.handleRoute)
	v1.GET("/compare", s.handleCompare)

	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on cfg.Listen and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Listen, err)
	}

	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", headerRequestID}
	c.ExposeHeaders = []string{headerRequestID}
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}

	return c
}
