package config

import "time"

// RateLimitConfig controls the token bucket guarding the sale endpoint.
// The mock backend tolerates duplicate submissions (there is no
// idempotency key), so the limiter is the only brake on rapid resubmits.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// LoadRateLimitConfig reads limiter settings with defaults sized for a
// single user clicking a payment button: a small burst, refilled every
// couple of seconds.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getbool("RATE_LIMIT_ENABLED", true),
		Capacity:       getint("RATE_LIMIT_CAPACITY", 5),
		RefillInterval: getdur("RATE_LIMIT_REFILL_INTERVAL", 2*time.Second),
		TTL:            getdur("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "busticket:rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}
