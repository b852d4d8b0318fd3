package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// PoolSize overrides the engine-reported worker count when > 0.
	PoolSize int `json:"poolSize"`
	// QueueCapacity bounds the request queue. 0 keeps it unbounded.
	QueueCapacity int `json:"queueCapacity"`
	// QueueFullPolicy is "block" or "reject"; only used when bounded.
	QueueFullPolicy string `json:"queueFullPolicy"`
	// OnMalformed is "respond", "skip", or "fail".
	OnMalformed string `json:"onMalformed"`
	// CacheDir enables the pebble translation cache when non-empty.
	CacheDir string `json:"cacheDir"`
	// RequestTimeoutMs bounds one remote engine call. 0 keeps the default.
	RequestTimeoutMs int `json:"requestTimeoutMs"`
	// Log configures diagnostics on stderr.
	Log LogConfig `json:"log"`
}

// LogConfig captures logger settings.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		QueueFullPolicy: "block",
		OnMalformed:     "respond",
		Log:             LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a JSON file. An empty path returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no component can act on.
func (c Config) Validate() error {
	switch c.QueueFullPolicy {
	case "block", "reject":
	default:
		return fmt.Errorf("invalid queueFullPolicy %q; use block|reject", c.QueueFullPolicy)
	}
	switch c.OnMalformed {
	case "respond", "skip", "fail":
	default:
		return fmt.Errorf("invalid onMalformed %q; use respond|skip|fail", c.OnMalformed)
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("invalid queueCapacity %d", c.QueueCapacity)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("invalid poolSize %d", c.PoolSize)
	}
	return nil
}
