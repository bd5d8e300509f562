// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_completed_total",
			Help: "Total number of completed analysis runs",
		},
	)

	AnalysesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_failed_total",
			Help: "Total number of failed analysis runs",
		},
		[]string{"error_code"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "analysis_duration_seconds",
			Help: "Duration of one analysis run in seconds",
		},
	)

	EstimatesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estimate_completed_total",
			Help: "Total number of completed estimates",
		},
	)

	EstimatesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimate_failed_total",
			Help: "Total number of failed estimates",
		},
		[]string{"failed_at"},
	)

	EstimateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "estimate_duration_seconds",
			Help: "Duration of one estimate computation in seconds",
		},
	)

	CatalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_lookups_total",
			Help: "Price/labor catalog lookups by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)
