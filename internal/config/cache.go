package config

import "time"

// CacheConfig controls the Redis response cache used in front of the public
// menu listing.  When Enabled is false or no Redis client could be created,
// the middleware becomes a no-op.  Methods lists the HTTP methods eligible
// for caching, TTL the lifetime of entries, and KeyStrategy which parts of
// the request feed the cache key.  MaxBodyBytes caps how large a response
// body may be before it is no longer stored.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from environment variables, falling
// back to defaults tuned for the menu endpoint (short TTL so availability
// toggles show up quickly).
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      envMethods("CACHE_METHODS", "GET"),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		KeyStrategy:  envStr("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
