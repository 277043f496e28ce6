package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsAllowed counts requests admitted by the limiter.
	requestsAllowed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "football_rate_limit_allowed_total",
		Help: "Total number of requests admitted by the rate limiter",
	})

	// requestsBlocked counts requests denied by the limiter.
	requestsBlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "football_rate_limit_blocked_total",
		Help: "Total number of requests denied by the rate limiter",
	})
)
