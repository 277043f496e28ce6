// Package cache provides cache-aside storage for normalized upstream
// payloads with versioned keys and per-resource TTLs.
package cache

import (
	"encoding/json"
	"time"
)

// Entry is a cached payload together with its absolute expiry.
// Expiry lives in the document rather than in the backend so that
// staleness is decided by the reader (lazy expiry, no background sweep).
type Entry struct {
	// Value is the cached normalized payload.
	Value json.RawMessage `json:"value"`

	// ExpiresAt is the expiry instant in epoch milliseconds.
	ExpiresAt int64 `json:"expiresAt"`
}

// Expired reports whether the entry is stale at the given instant.
func (e *Entry) Expired(now time.Time) bool {
	return now.UnixMilli() > e.ExpiresAt
}
