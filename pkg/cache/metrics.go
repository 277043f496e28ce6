package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits tracks cache hits.
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "football_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// cacheMisses tracks cache misses, including lazy evictions.
	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "football_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// cacheErrors tracks cache operation errors.
	cacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "football_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
