// SPDX-License-Identifier: MIT

// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /v1/solve     one system as JSON → minimum presses
//	POST /v1/machines  raw machine lines → batch report
//	GET  /healthz      liveness
//	GET  /metrics      Prometheus exposition
//
// Every response carries X-Request-ID (echoed from the request or generated).
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/presses/batch"
	"github.com/katalvlaran/presses/config"
)

// Server wires configuration, metrics and the gin router.
type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *batch.Metrics
	router   *gin.Engine
}

// New builds a Server with its own metrics registry. A nil logger
// discards logs.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		metrics:  batch.NewMetrics(reg),
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.limitBody())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	v1.POST("/solve", s.handleSolve)
	v1.POST("/machines", s.handleMachines)

	return router
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Metrics returns the collectors fed by the handlers.
func (s *Server) Metrics() *batch.Metrics { return s.metrics }

// Run serves on cfg.Server.Addr until ctx is done, then shuts down
// gracefully within cfg.Server.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.router,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithCancel(context.Background())
	if t := s.cfg.Server.ShutdownTimeout; t > 0 {
		shutdownCtx, cancel = context.WithTimeout(context.Background(), t)
	}
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
