// Package config provides loading and environment overlay for the decoderd
// runtime configuration. It exposes a Default() baseline, a JSON file
// loader, and a DECODERD_* environment overlay.
//
// Precedence, lowest to highest: defaults, config file, environment, CLI
// flags (applied by the serve command).
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/decoderd.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
