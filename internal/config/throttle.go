package config

import "time"

// ThrottleConfig controls the fixed-window limiter in front of the login and
// register endpoints.  The public contact form is deliberately never
// throttled, so these settings apply to /api/auth only.
type ThrottleConfig struct {
	Enabled bool          // master switch, also off when Redis is nil
	Limit   int           // attempts allowed per window and client IP
	Window  time.Duration // window length
	Prefix  string        // Redis key namespace
}

// LoadThrottleConfig reads the limiter settings from the environment, using
// defaults when variables are unset.  Nonsensical values are clamped.
func LoadThrottleConfig() ThrottleConfig {
	cfg := ThrottleConfig{
		Enabled: envBool("AUTH_THROTTLE_ENABLED", true),
		Limit:   envInt("AUTH_THROTTLE_LIMIT", 20),
		Window:  envDur("AUTH_THROTTLE_WINDOW", time.Minute),
		Prefix:  getenv("AUTH_THROTTLE_PREFIX", "authrl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
