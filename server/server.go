// Package server exposes the centrality pipeline over HTTP with gin.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/ppinet/builder"
	"github.com/katalvlaran/ppinet/centrality"
	"github.com/katalvlaran/ppinet/graph"
	"github.com/katalvlaran/ppinet/pipeline"
	"github.com/katalvlaran/ppinet/stringdb"
)

const (
	maxBodyBytes    = 4 << 20
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	Runner         *pipeline.Runner
	Logger         *log.Logger
	DefaultVariant centrality.Variant
	MinScore       float64
}

// New returns a Server using Degree when a request names no variant.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Runner: runner, Logger: logger, DefaultVariant: centrality.Degree}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.Health)
	r.GET("/variants", s.ListVariants)
	r.POST("/centrality", s.Centrality)
	r.POST("/network", s.Network)

	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Logger.Info("shutting down server")
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}

	return <-errc
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

type VariantInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type CentralityRequest struct {
	Records     []builder.Record `json:"records"`
	Variant     string           `json:"variant"`
	UnitWeights bool             `json:"unit_weights"`
	MinScore    float64          `json:"min_score"`
	Render      bool             `json:"render"`
}

type NetworkRequest struct {
	Proteins    []string `json:"proteins"`
	Variant     string   `json:"variant"`
	UnitWeights bool     `json:"unit_weights"`
	MinScore    float64  `json:"min_score"`
	Render      bool     `json:"render"`
}

type CentralityResponse struct {
	RunID   string           `json:"run_id"`
	Variant string           `json:"variant"`
	Label   string           `json:"label"`
	Nodes   int              `json:"nodes"`
	Edges   int              `json:"edges"`
	Scores  []pipeline.Score `json:"scores"`
	DOT     string           `json:"dot,omitempty"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) ListVariants(c *gin.Context) {
	vs := centrality.Variants()
	out := make([]VariantInfo, len(vs))
	for i, v := range vs {
		out[i] = VariantInfo{Name: v.String(), Label: v.Label()}
	}
	c.JSON(http.StatusOK, gin.H{"variants": out})
}

func (s *Server) Centrality(c *gin.Context) {
	var req CentralityRequest
	if !s.bind(c, &req) {
		return
	}
	if req.Records == nil {
		req.Records = []builder.Record{}
	}
	s.run(c, req.Variant, pipeline.Options{
		Records:     req.Records,
		UnitWeights: req.UnitWeights,
		MinScore:    req.MinScore,
		Render:      req.Render,
	})
}

func (s *Server) Network(c *gin.Context) {
	var req NetworkRequest
	if !s.bind(c, &req) {
		return
	}
	if len(req.Proteins) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": stringdb.ErrNoProteins.Error()})
		return
	}
	s.run(c, req.Variant, pipeline.Options{
		Proteins:    req.Proteins,
		UnitWeights: req.UnitWeights,
		MinScore:    req.MinScore,
		Render:      req.Render,
	})
}

func (s *Server) bind(c *gin.Context, dst any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) run(c *gin.Context, name string, opts pipeline.Options) {
	opts.Variant = s.DefaultVariant
	if name != "" {
		v, err := centrality.ParseVariant(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		opts.Variant = v
	}
	if opts.MinScore == 0 {
		opts.MinScore = s.MinScore
	}

	res, err := s.Runner.Run(c.Request.Context(), opts)
	if err != nil {
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			s.Logger.Error("run failed", "variant", opts.Variant, "err", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CentralityResponse{
		RunID:   res.RunID.String(),
		Variant: res.Variant.String(),
		Label:   res.Variant.Label(),
		Nodes:   res.Stats.Nodes,
		Edges:   res.Stats.Edges,
		Scores:  res.Ranked,
		DOT:     res.DOT,
	})
}

// StatusFor maps a pipeline error to an HTTP status: caller mistakes are
// 400, graphs the chosen variant cannot score are 422, upstream failures 502.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, centrality.ErrUnknownVariant),
		errors.Is(err, builder.ErrMalformedRecord),
		errors.Is(err, graph.ErrInvalidWeight),
		errors.Is(err, graph.ErrEmptyNodeID),
		errors.Is(err, stringdb.ErrNoProteins),
		errors.Is(err, pipeline.ErrNoInput):
		return http.StatusBadRequest
	case errors.Is(err, centrality.ErrDegenerateGraph),
		errors.Is(err, centrality.ErrDisconnectedGraph),
		errors.Is(err, centrality.ErrNoConvergence),
		errors.Is(err, centrality.ErrNegativeWeight):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pipeline.ErrNoFetcher):
		return http.StatusServiceUnavailable
	case errors.Is(err, pipeline.ErrFetch):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
