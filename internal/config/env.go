package config

import (
	"os"
	"strconv"
)

// FromEnv overlays DECODERD_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("DECODERD_POOL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PoolSize = n
		}
	}
	if v := os.Getenv("DECODERD_QUEUE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.QueueCapacity = n
		}
	}
	if v := os.Getenv("DECODERD_QUEUE_FULL_POLICY"); v != "" {
		cfg.QueueFullPolicy = v
	}
	if v := os.Getenv("DECODERD_ON_MALFORMED"); v != "" {
		cfg.OnMalformed = v
	}
	if v := os.Getenv("DECODERD_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("DECODERD_REQUEST_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeoutMs = n
		}
	}
	if v := os.Getenv("DECODERD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DECODERD_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
