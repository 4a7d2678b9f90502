// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magnet_runs_total",
			Help: "Total number of pipeline runs by route and final status",
		},
		[]string{"route", "status"},
	)

	RunsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "magnet_runs_active",
			Help: "Number of in-flight pipeline runs per route",
		},
		[]string{"route"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "magnet_stage_duration_seconds",
			Help:    "Duration of each pipeline stage in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"stage"},
	)

	ProviderAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magnet_provider_attempts_total",
			Help: "Generation provider attempts by outcome",
		},
		[]string{"provider", "outcome"},
	)

	ProviderFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magnet_provider_fallbacks_total",
			Help: "Number of times generation fell back to the secondary provider",
		},
		[]string{"from", "to"},
	)

	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magnet_search_requests_total",
			Help: "Search requests by backend (serper, simulated, cache) and outcome",
		},
		[]string{"backend", "outcome"},
	)
)
