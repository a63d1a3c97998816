// SPDX-License-Identifier: MIT

// Package batch solves many independent press systems concurrently and
// aggregates their costs.
//
// Systems share nothing, so each one runs on its own goroutine (bounded by
// Config.Workers) while the search inside a system stays sequential.
// Results keep input order regardless of completion order.
//
// What an infeasible system contributes is the caller's decision:
// SkipInfeasible counts it as 0 presses, FailOnInfeasible stops the run.
// Interrupted searches (limits, cancellation) always stop the run.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/presses/machine"
	"github.com/katalvlaran/presses/presses"
)

// Policy decides how infeasible systems affect a run.
type Policy int

const (
	// SkipInfeasible records an infeasible system and adds 0 to the total.
	SkipInfeasible Policy = iota

	// FailOnInfeasible aborts the run with ErrSystemInfeasible.
	FailOnInfeasible
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case SkipInfeasible:
		return "skip"
	case FailOnInfeasible:
		return "fail"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "skip"/"fail" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip":
		return SkipInfeasible, nil
	case "fail":
		return FailOnInfeasible, nil
	}

	return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
}

// System is one independent press system.
type System struct {
	Name    string
	Buttons [][]int
	Targets []int
}

// Config controls a batch run.
type Config struct {
	Variant presses.Variant
	Policy  Policy
	Options presses.Options

	// Workers bounds concurrent systems; <= 0 means GOMAXPROCS.
	Workers int

	// Logger receives per-system debug records and a per-run summary.
	// Nil discards them.
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *Metrics
}

// SystemResult is the outcome of one system.
type SystemResult struct {
	Index      int           `json:"index"`
	Name       string        `json:"name,omitempty"`
	Cost       int           `json:"cost"`
	Presses    []int         `json:"presses,omitempty"`
	Nodes      int64         `json:"nodes"`
	Infeasible bool          `json:"infeasible"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Report aggregates a run.
type Report struct {
	RunID      uuid.UUID      `json:"run_id"`
	Variant    string         `json:"variant"`
	Total      int            `json:"total"`
	Solved     int            `json:"solved"`
	Infeasible int            `json:"infeasible"`
	Results    []SystemResult `json:"results"`
	Elapsed    time.Duration  `json:"elapsed_ns"`
}

// Solve solves every system and sums the minimum press counts.
//
// Errors:
//   - ErrSystemInfeasible (wrapping the presses error) under FailOnInfeasible.
//   - presses.ErrTimeLimit, presses.ErrNodeLimit, input sentinels, or the
//     context error from any system; the first one cancels the rest.
//   - ErrUnknownPolicy, presses.ErrUnknownVariant for a bad Config.
func Solve(ctx context.Context, systems []System, cfg Config) (Report, error) {
	if cfg.Policy != SkipInfeasible && cfg.Policy != FailOnInfeasible {
		return Report{}, fmt.Errorf("Solve: %w", ErrUnknownPolicy)
	}
	if cfg.Variant != presses.Lights && cfg.Variant != presses.Joltage {
		return Report{}, fmt.Errorf("Solve: %w", presses.ErrUnknownVariant)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rep := Report{
		RunID:   uuid.New(),
		Variant: cfg.Variant.String(),
		Results: make([]SystemResult, len(systems)),
	}
	logger = logger.With(slog.String("run_id", rep.RunID.String()), slog.String("variant", rep.Variant))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range systems {
		g.Go(func() error {
			return solveOne(gctx, i, systems[i], cfg, logger, &rep.Results[i])
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("batch aborted", slog.String("error", err.Error()))
		return Report{}, err
	}

	for _, r := range rep.Results {
		if r.Infeasible {
			rep.Infeasible++
			continue
		}
		rep.Solved++
		rep.Total += r.Cost
	}
	rep.Elapsed = time.Since(start)
	logger.Info("batch solved",
		slog.Int("systems", len(systems)),
		slog.Int("solved", rep.Solved),
		slog.Int("infeasible", rep.Infeasible),
		slog.Int("total", rep.Total),
		slog.Duration("elapsed", rep.Elapsed),
	)

	return rep, nil
}

// solveOne solves system i into out. Only the goroutine owning index i
// writes out.
func solveOne(ctx context.Context, i int, sys System, cfg Config, logger *slog.Logger, out *SystemResult) error {
	t0 := time.Now()
	res, err := presses.SolveMinCost(ctx, sys.Buttons, sys.Targets, cfg.Variant, cfg.Options)
	elapsed := time.Since(t0)
	*out = SystemResult{Index: i, Name: sys.Name, Elapsed: elapsed}

	cfg.Metrics.Record(cfg.Variant, err, res.Nodes, elapsed)
	switch {
	case err == nil:
		out.Cost = res.Cost
		out.Presses = res.Presses
		out.Nodes = res.Nodes
		logger.Debug("system solved",
			slog.Int("index", i),
			slog.String("name", sys.Name),
			slog.Int("cost", res.Cost),
			slog.Int64("nodes", res.Nodes),
			slog.Int("free", len(res.Free)),
		)
		return nil

	case presses.IsInfeasible(err):
		out.Infeasible = true
		logger.Debug("system infeasible", slog.Int("index", i), slog.String("name", sys.Name), slog.String("error", err.Error()))
		if cfg.Policy == FailOnInfeasible {
			return fmt.Errorf("%s: %w: %w", label(i, sys.Name), ErrSystemInfeasible, err)
		}
		return nil

	default:
		return fmt.Errorf("%s: %w", label(i, sys.Name), err)
	}
}

// label names a system in errors.
func label(i int, name string) string {
	if name == "" {
		return fmt.Sprintf("system %d", i)
	}

	return fmt.Sprintf("system %d (%s)", i, name)
}

// FromMachines turns parsed machines into systems for variant v, naming
// them "machine N" (1-based).
// Returns machine.ErrMissingTargets when a machine lacks v's block.
func FromMachines(ms []machine.Machine, v presses.Variant) ([]System, error) {
	out := make([]System, len(ms))
	for i, m := range ms {
		btns, targets, err := m.System(v)
		if err != nil {
			return nil, fmt.Errorf("machine %d: %w", i+1, err)
		}
		out[i] = System{Name: fmt.Sprintf("machine %d", i+1), Buttons: btns, Targets: targets}
	}

	return out, nil
}
