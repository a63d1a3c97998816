// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/presses/batch"
	"github.com/katalvlaran/presses/machine"
	"github.com/katalvlaran/presses/matrix"
	"github.com/katalvlaran/presses/presses"
)

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSolve handles POST /v1/solve.
//
// Response:
//
//	200 OK: SolveResponse
//	400 Bad Request: malformed body or system (INVALID_REQUEST, INVALID_SYSTEM)
//	422 Unprocessable Entity: no press vector reaches the targets (INFEASIBLE)
//	504 Gateway Timeout: time or node limit reached (SEARCH_LIMIT)
func (s *Server) handleSolve(c *gin.Context) {
	requestID := requestIDFrom(c)
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("handler", "solve"))

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", slog.String("error", err.Error()))
		s.fail(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	v, err := s.variant(req.Variant)
	if err != nil {
		s.fail(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	opts := s.cfg.SearchOptions()
	if req.Prune != nil {
		opts.Prune = *req.Prune
	}

	t0 := time.Now()
	res, err := presses.SolveMinCost(c.Request.Context(), req.Buttons, req.Targets, v, opts)
	elapsed := time.Since(t0)
	s.metrics.Record(v, err, res.Nodes, elapsed)
	if err != nil {
		status, code := classify(err)
		logger.Info("solve failed", slog.String("code", code), slog.String("error", err.Error()))
		s.fail(c, status, code, err)
		return
	}

	logger.Info("solved",
		slog.String("variant", v.String()),
		slog.Int("cost", res.Cost),
		slog.Int64("nodes", res.Nodes),
		slog.Duration("elapsed", elapsed),
	)
	c.JSON(http.StatusOK, SolveResponse{
		RequestID: requestID,
		Cost:      res.Cost,
		Presses:   res.Presses,
		Free:      res.Free,
		Rank:      res.Rank,
		Nodes:     res.Nodes,
	})
}

// handleMachines handles POST /v1/machines.
//
// Response:
//
//	200 OK: batch.Report
//	400 Bad Request: unparsable lines or a missing target block
//	413 Request Entity Too Large: more than MaxSystems machines (TOO_LARGE)
//	422 Unprocessable Entity: infeasible machine under the "fail" policy
//	504 Gateway Timeout: time or node limit reached
func (s *Server) handleMachines(c *gin.Context) {
	requestID := requestIDFrom(c)
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("handler", "machines"))

	var req MachinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", slog.String("error", err.Error()))
		s.fail(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	v, err := s.variant(req.Variant)
	if err != nil {
		s.fail(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}

	ms, err := machine.ParseAll(strings.NewReader(req.Input))
	if err != nil {
		s.fail(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	if limit := s.cfg.Server.MaxSystems; len(ms) > limit {
		s.fail(c, http.StatusRequestEntityTooLarge, CodeTooLarge, fmt.Errorf("%d machines, max %d", len(ms), limit))
		return
	}
	systems, err := batch.FromMachines(ms, v)
	if err != nil {
		s.fail(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}

	bc, err := s.cfg.Batch(v)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}
	if req.Policy != "" {
		if bc.Policy, err = batch.ParsePolicy(req.Policy); err != nil {
			s.fail(c, http.StatusBadRequest, CodeInvalidRequest, err)
			return
		}
	}
	bc.Logger = logger
	bc.Metrics = s.metrics

	rep, err := batch.Solve(c.Request.Context(), systems, bc)
	if err != nil {
		status, code := classify(err)
		s.fail(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// classify maps solver errors to HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case presses.IsInfeasible(err), errors.Is(err, batch.ErrSystemInfeasible):
		return http.StatusUnprocessableEntity, CodeInfeasible
	case errors.Is(err, presses.ErrTimeLimit),
		errors.Is(err, presses.ErrNodeLimit),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeSearchLimit
	case errors.Is(err, matrix.ErrCounterOutOfRange),
		errors.Is(err, matrix.ErrNegativeTarget),
		errors.Is(err, matrix.ErrTargetOverflow),
		errors.Is(err, presses.ErrTooManyFreeVariables),
		errors.Is(err, presses.ErrUnknownVariant):
		return http.StatusBadRequest, CodeInvalidSystem
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func (s *Server) fail(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     err.Error(),
		Code:      code,
		RequestID: requestIDFrom(c),
	})
}

// variant resolves a request's variant, falling back to the configured one.
func (s *Server) variant(name string) (presses.Variant, error) {
	if name == "" {
		return s.cfg.DefaultVariant()
	}

	return presses.ParseVariant(name)
}
