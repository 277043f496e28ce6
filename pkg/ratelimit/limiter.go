// Package ratelimit implements per-caller request throttling with a
// fixed-window counter and endpoint-aware limit resolution.
//
// The limiter is process-local and in-memory: instances of the proxy do
// not coordinate their windows, so the effective fleet-wide limit is
// limit × instances. Fixed windows also admit bursts of up to 2× the
// limit across a window boundary. Both are accepted for the informal
// anti-abuse goal here; a sliding window or token bucket backed by a
// shared store would be the refinement if that ever stops being enough.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tifofan/football-proxy/pkg/apierror"
)

// entry is the per-key window state.
type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per key in fixed, non-overlapping windows.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	logger  zerolog.Logger
	now     func() time.Time
}

// NewLimiter creates an empty limiter.
func NewLimiter(logger zerolog.Logger) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		logger:  logger.With().Str("component", "ratelimit").Logger(),
		now:     time.Now,
	}
}

// Check records one request for key and enforces the limit.
//
// The first request of a window (or any request after the previous
// window lapsed) resets the counter. Once count reaches limit within a
// window, further requests are denied with a rate_limited error
// carrying the seconds until the window resets.
func (l *Limiter) Check(key string, limit int, window time.Duration) error {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	ent, ok := l.entries[key]
	if !ok || !now.Before(ent.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(window)}
		requestsAllowed.Inc()
		return nil
	}

	if ent.count < limit {
		ent.count++
		requestsAllowed.Inc()
		return nil
	}

	retryAfter := int(math.Ceil(ent.resetAt.Sub(now).Seconds()))
	requestsBlocked.Inc()
	l.logger.Warn().
		Str("key", key).
		Int("limit", limit).
		Int("retry_after", retryAfter).
		Msg("Rate limit exceeded")

	return apierror.RateLimited(retryAfter)
}

// Len returns the number of tracked keys, active or lapsed.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
