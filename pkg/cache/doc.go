// Package cache implements the cache-aside layer of the proxy: versioned
// key construction, per-resource TTL policies, and a TTL store over a
// pluggable key-value backend (Redis in production, in-memory in tests).
//
// # Keys
//
// Every key embeds a resource-type version number:
//
//	v1_matches_39_2024
//
// Bumping a resource's version in Policies invalidates all of its
// previously cached entries without an explicit purge: old keys simply
// stop being produced or looked up and expire via their TTL.
//
// # Expiry
//
//	store := cache.NewStore(cache.NewRedisBackend(redisClient), logger)
//
//	value, err := store.Get(ctx, key) // nil value on miss or stale entry
//	if value == nil {
//		// compute, then write back
//		err = store.Set(ctx, key, payload, policies.TTL(cache.ResourceMatches))
//	}
//
// Expiry is lazy: Get deletes a stale entry and reports a miss; nothing
// sweeps the backend in the background. Concurrent cold reads of the
// same key may each fetch upstream and race on the write (last-writer-
// wins); the store does not deduplicate in-flight fills.
//
// # Metrics
//
//   - football_cache_hits_total
//   - football_cache_misses_total
//   - football_cache_errors_total{operation}
package cache
