// Package metrics provides the centralized Prometheus registry
// reference for the proxy. All metrics are defined in their respective
// packages (cache, ratelimit, provider) to maintain modularity and
// avoid circular dependencies.
//
// This package provides documentation and reference for all available
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the proxy.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - football_cache_hits_total (Counter): Cache hits
//   - football_cache_misses_total (Counter): Cache misses, including lazy evictions
//   - football_cache_errors_total{operation} (Counter): Cache backend errors by operation
//
// Rate Limit Metrics (pkg/ratelimit):
//   - football_rate_limit_allowed_total (Counter): Requests admitted within their window
//   - football_rate_limit_blocked_total (Counter): Requests denied with a 429
//
// Upstream Metrics (pkg/provider):
//   - football_upstream_requests_total{endpoint, status} (Counter): API-Football requests
//   - football_upstream_request_duration_seconds{endpoint} (Histogram): Request duration
//   - football_upstream_errors_total{class} (Counter): Errors by class (client, server, network)
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(football_cache_hits_total[5m])) /
//   (sum(rate(football_cache_hits_total[5m])) + sum(rate(football_cache_misses_total[5m])))
//
//   # Caller Block Rate
//   rate(football_rate_limit_blocked_total[5m])
//
//   # P95 Upstream Latency
//   histogram_quantile(0.95, rate(football_upstream_request_duration_seconds_bucket[5m]))
//
//   # Upstream Error Rate
//   rate(football_upstream_errors_total[5m])
