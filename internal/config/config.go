package config

import (
	"os"
	"time"
)

// Env accessors with fallbacks. Unset, empty or unparseable values
// fall back silently; required settings are checked at the
// composition root instead.

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDuration(key string, fallback time.Duration) time.Duration {
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
