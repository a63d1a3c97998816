// SPDX-License-Identifier: MIT

package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/presses/presses"
)

// Outcome label values.
const (
	outcomeSolved     = "solved"
	outcomeInfeasible = "infeasible"
	outcomeError      = "error"
)

// Metrics holds the solver's Prometheus collectors.
type Metrics struct {
	// SystemsTotal counts solved systems by variant and outcome.
	SystemsTotal *prometheus.CounterVec

	// SearchNodes tracks visited search nodes per solved system.
	SearchNodes *prometheus.HistogramVec

	// SolveDuration tracks per-system solve latency.
	SolveDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// Panics if they are already registered there (promauto semantics).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		SystemsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "presses_systems_total",
			Help: "Total systems solved by variant and outcome",
		}, []string{"variant", "outcome"}),
		SearchNodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "presses_search_nodes",
			Help:    "Search nodes visited per system",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}, []string{"variant"}),
		SolveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "presses_solve_duration_seconds",
			Help:    "Per-system solve duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
		}, []string{"variant"}),
	}
}

// Record observes one solved system. The outcome label is derived from
// err: nil is "solved", an infeasible system is "infeasible", anything else
// is "error". Safe on a nil receiver.
func (m *Metrics) Record(v presses.Variant, err error, nodes int64, d time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeSolved
	if err != nil {
		outcome = outcomeError
		if presses.IsInfeasible(err) {
			outcome = outcomeInfeasible
		}
	}
	variant := v.String()
	m.SystemsTotal.WithLabelValues(variant, outcome).Inc()
	m.SolveDuration.WithLabelValues(variant).Observe(d.Seconds())
	if outcome == outcomeSolved {
		m.SearchNodes.WithLabelValues(variant).Observe(float64(nodes))
	}
}
