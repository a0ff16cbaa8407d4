package config

import "time"

// CacheConfig controls the public response cache.  Only the public GET
// endpoints (projects and blogs reads) are cached; admin mutations clear
// every entry under Prefix so stale content never outlives a write.
type CacheConfig struct {
	Enabled      bool          // master switch, also off when Redis is nil
	TTL          time.Duration // lifetime of a cached response
	Prefix       string        // Redis key namespace
	MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig reads the cache settings from the environment, using
// defaults when variables are unset.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "pubcache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
