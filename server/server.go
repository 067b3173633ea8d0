// SPDX-License-Identifier: MIT

// Package server exposes the clustering strategies over HTTP with gin.
//
// Routes:
//
//	GET  /healthz      liveness probe
//	GET  /v1/methods   registered strategies with their defaults
//	POST /v1/cluster   cluster a posted candidate set
//
// Errors are JSON objects {"error": "..."}: 400 for undecodable or invalid
// requests, 413 when the dataset sizes exceed server.max_entities or the
// cost matrix of best-assignment / row-column exceeds server.max_cells,
// 422 when a clean-clean-only method receives a dirty set.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/entres/config"
)

// shutdownTimeout bounds graceful shutdown in Run.
const shutdownTimeout = 5 * time.Second

// Server serves clustering requests. Per-request settings are layered over
// a copy of the base configuration.
type Server struct {
	cfg *config.Config
	log *slog.Logger
}

// New returns a Server using cfg as request defaults; a nil cfg means
// config.Default() and a nil logger means slog.Default().
func New(cfg *config.Config, log *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.Default()
	}

	return &Server{cfg: cfg, log: log}
}

// SetupRouter builds the gin engine with recovery and request logging.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.Health)
	v1 := r.Group("/v1")
	v1.GET("/methods", s.ListMethods)
	v1.POST("/cluster", s.Cluster)

	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server: listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("server: shutting down")

		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("server: request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}
