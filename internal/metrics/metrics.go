// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequests counts gateway calls by kind, status and reason.
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sflix_recommendation_requests_total",
			Help: "Total number of recommendation gateway calls by outcome",
		},
		[]string{"kind", "status", "reason"},
	)

	// RecommendationDuration observes the latency of calls that reached the generator.
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sflix_recommendation_duration_seconds",
			Help:    "Latency of generative API calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"kind"},
	)

	RecommendationCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sflix_recommendation_cache_hits_total",
			Help: "Recommendation results served from cache",
		},
		[]string{"kind"},
	)

	RecommendationCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sflix_recommendation_cache_misses_total",
			Help: "Recommendation lookups that missed the cache",
		},
		[]string{"kind"},
	)

	// BreakerState is 0 closed, 1 half-open, 2 open.
	BreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sflix_recommendation_breaker_state",
			Help: "Circuit breaker state for the generative API (0 closed, 1 half-open, 2 open)",
		},
	)

	FeedRowsAppended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sflix_feed_rows_appended_total",
			Help: "AI category rows merged into the home feed",
		},
	)

	FeedRowsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sflix_feed_rows_dropped_total",
			Help: "AI category rows discarded because a newer load started",
		},
	)

	CatalogTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sflix_catalog_titles",
			Help: "Number of titles currently in the catalog",
		},
	)
)
