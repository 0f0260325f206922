// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"os"
	"time"
)

// Config holds the service configuration. The secret is the only
// mandatory value: without it no nonce can be signed and no token
// minted, so startup must fail.
type Config struct {
	Secret       []byte        // HMAC key for nonces and session tokens
	Port         string        // HTTP listen port
	RedisURL     string        // optional; enables Redis store and event stream
	Production   bool          // enables the Secure cookie attribute
	ReplayGuard  bool          // enables consumed-nonce tracking
	NonceTTL     time.Duration // nonce validity window
	NonceMaxSkew time.Duration // future-timestamp allowance
}

// ErrMissingSecret is returned when AUTH_SECRET is not set.
var ErrMissingSecret = errors.New("AUTH_SECRET is not set")

// Load reads configuration from the environment.
func Load() (Config, error) {
	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		return Config{}, ErrMissingSecret
	}

	cfg := Config{
		Secret:       []byte(secret),
		Port:         getEnv("PORT", "9000"),
		RedisURL:     os.Getenv("REDIS_URL"),
		Production:   os.Getenv("APP_ENV") == "production",
		ReplayGuard:  os.Getenv("REPLAY_GUARD") == "true",
		NonceTTL:     getDuration("NONCE_TTL", 5*time.Minute),
		NonceMaxSkew: getDuration("NONCE_MAX_SKEW", time.Minute),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
