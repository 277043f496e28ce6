package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidKey indicates an empty cache key was passed to the store.
var ErrInvalidKey = errors.New("cache key must not be empty")

// Store implements the cache-aside TTL store over a key-value Backend.
//
// Expiry is lazy: there is no background sweep, so a stale entry lives
// until the next reader evicts it or a writer overwrites it. Concurrent
// get/set on the same key are not coordinated; duplicate upstream
// fetches and last-write-wins stores are accepted.
type Store struct {
	backend Backend
	logger  zerolog.Logger
	now     func() time.Time
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend, logger zerolog.Logger) *Store {
	if backend == nil {
		panic("cache backend cannot be nil")
	}
	return &Store{
		backend: backend,
		logger:  logger.With().Str("component", "cache").Logger(),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or nil on a miss. An entry past
// its expiry is deleted as a side effect and reported as a miss.
func (s *Store) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	entry, err := s.backend.Get(ctx, key)
	if err != nil {
		cacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}

	if entry == nil {
		cacheMisses.Inc()
		return nil, nil
	}

	if entry.Expired(s.now()) {
		if err := s.backend.Delete(ctx, key); err != nil {
			cacheErrors.WithLabelValues("delete").Inc()
			s.logger.Warn().Err(err).Str("key", key).Msg("Failed to evict expired entry")
		}
		cacheMisses.Inc()
		return nil, nil
	}

	cacheHits.Inc()
	s.logger.Debug().Str("key", key).Msg("Cache hit")
	return entry.Value, nil
}

// Set stores value under key with the given TTL, overwriting any
// existing entry unconditionally.
func (s *Store) Set(ctx context.Context, key string, value json.RawMessage, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}

	entry := &Entry{
		Value:     value,
		ExpiresAt: s.now().Add(ttl).UnixMilli(),
	}

	if err := s.backend.Set(ctx, key, entry); err != nil {
		cacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("cache set %q: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Dur("ttl", ttl).Msg("Cached value")
	return nil
}
