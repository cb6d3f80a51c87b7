package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/router"
)

// Error codes carried in ErrorResponse.Code.
const (
	codeInvalidRequest = "INVALID_REQUEST"
	codeCanceled       = "REQUEST_CANCELED"
	codeRouteFailed    = "ROUTE_FAILED"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Point is one path vertex.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteResponse describes one search result.
type RouteResponse struct {
	Algorithm  string  `json:"algorithm"`
	Found      bool    `json:"found"`
	Weight     float64 `json:"weight"`
	Hops       int     `json:"hops"`
	Expanded   int     `json:"expanded"`
	DurationMS float64 `json:"duration_ms"`
	Start      Point   `json:"start"`
	Goal       Point   `json:"goal"`
	Path       []Point `json:"path"`
}

// CompareResponse holds one RouteResponse per algorithm.
type CompareResponse struct {
	Results []RouteResponse `json:"results"`
}

// HealthResponse is the /healthz body.
type HealthResponse struct {
	Status string `json:"status"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

// routeQuery binds the shared coordinate parameters.
type routeQuery struct {
	Algorithm string   `form:"algorithm"`
	FromLat   *float64 `form:"from_lat" binding:"required,gte=-90,lte=90"`
	FromLon   *float64 `form:"from_lon" binding:"required,gte=-180,lte=180"`
	ToLat     *float64 `form:"to_lat" binding:"required,gte=-90,lte=90"`
	ToLon     *float64 `form:"to_lon" binding:"required,gte=-180,lte=180"`
}

func (q routeQuery) from() core.Coord { return core.Coord{Lon: *q.FromLon, Lat: *q.FromLat} }
func (q routeQuery) to() core.Coord   { return core.Coord{Lon: *q.ToLon, Lat: *q.ToLat} }

func (s *Server) handleHealth(c *gin.Context) {
	g := s.rt.Graph()
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Nodes: g.NodeCount(), Edges: g.EdgeCount()})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.rt.Graph().Stats())
}

func (s *Server) handleRoute(c *gin.Context) {
	q, ok := s.bind(c)
	if !ok {
		return
	}
	algo := s.cfg.DefaultAlgorithm
	if q.Algorithm != "" {
		var err error
		if algo, err = router.ParseAlgorithm(q.Algorithm); err != nil {
			s.badRequest(c, err)
			return
		}
	}

	res, err := s.rt.Route(c.Request.Context(), algo, q.from(), q.to())
	if err != nil {
		s.routeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.toResponse(res))
}

func (s *Server) handleCompare(c *gin.Context) {
	q, ok := s.bind(c)
	if !ok {
		return
	}

	results, err := s.rt.Compare(c.Request.Context(), q.from(), q.to())
	if err != nil {
		s.routeError(c, err)
		return
	}
	out := CompareResponse{Results: make([]RouteResponse, len(results))}
	for i, res := range results {
		out.Results[i] = s.toResponse(res)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) bind(c *gin.Context) (routeQuery, bool) {
	var q routeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.badRequest(c, err)
		return q, false
	}

	return q, true
}

func (s *Server) badRequest(c *gin.Context, err error) {
	s.log.Warn("invalid request",
		slog.String(ctxRequestID, c.GetString(ctxRequestID)), slog.Any("err", err))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: codeInvalidRequest})
}

func (s *Server) routeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error(), Code: codeCanceled})
	case errors.Is(err, router.ErrUnknownAlgorithm):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: codeInvalidRequest})
	default:
		s.log.Error("route failed",
			slog.String(ctxRequestID, c.GetString(ctxRequestID)), slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: codeRouteFailed})
	}
}

func (s *Server) toResponse(res *router.Result) RouteResponse {
	g := s.rt.Graph()
	start, _ := g.Node(res.Start)
	goal, _ := g.Node(res.Goal)
	path := make([]Point, len(res.Coords))
	for i, p := range res.Coords {
		path[i] = Point{Lat: p.Lat, Lon: p.Lon}
	}

	return RouteResponse{
		Algorithm:  res.Algorithm.String(),
		Found:      res.Found,
		Weight:     res.Weight,
		Hops:       res.Hops,
		Expanded:   res.Expanded,
		DurationMS: float64(res.Duration.Microseconds()) / 1000,
		Start:      Point{Lat: start.Lat, Lon: start.Lon},
		Goal:       Point{Lat: goal.Lat, Lon: goal.Lon},
		Path:       path,
	}
}
