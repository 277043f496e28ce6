package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Backend is the key-value store behind the cache. Implementations are
// plain async get/set/delete by key; expiry is the Store's concern.
type Backend interface {
	// Get returns the entry for key, or nil if absent.
	Get(ctx context.Context, key string) (*Entry, error)

	// Set stores the entry under key, overwriting unconditionally.
	Set(ctx context.Context, key string, entry *Entry) error

	// Delete removes the entry for key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// RedisBackend stores entries as JSON documents in Redis.
type RedisBackend struct {
	redis *redis.Client
}

// NewRedisBackend creates a Redis-backed store.
func NewRedisBackend(redisClient *redis.Client) *RedisBackend {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisBackend{redis: redisClient}
}

// Get retrieves an entry document by key.
func (b *RedisBackend) Get(ctx context.Context, key string) (*Entry, error) {
	data, err := b.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshal cache entry: %w", err)
	}

	return &entry, nil
}

// Set stores an entry document. No native Redis TTL is applied: the
// Store evicts stale entries lazily on read, matching the backend
// contract of a plain document store.
func (b *RedisBackend) Set(ctx context.Context, key string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := b.redis.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes an entry document.
func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	if err := b.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// MemoryBackend is an in-process Backend for tests and single-node runs.
type MemoryBackend struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]*Entry)}
}

// Get implements Backend.
func (b *MemoryBackend) Get(_ context.Context, key string) (*Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[key]
	if !ok {
		return nil, nil
	}

	// Copy so callers cannot mutate stored state.
	cloned := *entry
	return &cloned, nil
}

// Set implements Backend.
func (b *MemoryBackend) Set(_ context.Context, key string, entry *Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cloned := *entry
	b.entries[key] = &cloned
	return nil
}

// Delete implements Backend.
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.entries, key)
	return nil
}

// Len returns the number of stored entries, expired or not.
func (b *MemoryBackend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
