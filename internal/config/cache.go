package config

import "time"

// CacheConfig controls the Redis response cache applied to the GET
// reference and schedule routes.  Sale routes are never cached.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads cache settings with development defaults.  A
// short TTL keeps cached availability counts close to the seat map
// without hammering the store on every search.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getbool("CACHE_ENABLED", true),
		TTL:          getdur("CACHE_TTL", 30*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "busticket:cache"),
		MaxBodyBytes: getint("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
