// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // hit, miss, error
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "recommend_duration_seconds",
			Help: "Duration of recommendation requests in seconds",
		},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_errors_total",
			Help: "Total number of absorbed result-cache faults",
		},
		[]string{"operation"}, // get, set
	)

	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "candidate_store_query_duration_seconds",
			Help: "Duration of candidate store queries in seconds",
		},
		[]string{"query"}, // candidates, halls
	)

	IngestHallsUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_halls_upserted_total",
			Help: "Total number of dining halls upserted by the ingestor",
		},
	)

	IngestItemsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_items_created_total",
			Help: "Total number of menu items written by the ingestor",
		},
	)

	IngestEnrichmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_enrichment_failures_total",
			Help: "Total number of items stored without upstream enrichment",
		},
	)
)
