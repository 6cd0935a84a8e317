// Package config loads kpart.toml and applies environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file configuration.
const (
	EnvIndexBase = "KPART_INDEX_BASE"
	EnvStrict    = "KPART_STRICT"
	EnvNoLog     = "KPART_NO_LOG"
)

// ApplyEnv overlays KPART_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvIndexBase); v != "" {
		base, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvIndexBase, err)
		}
		cfg.IndexBase = base
	}

	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvStrict, err)
		}
		cfg.Strict = strict
	}

	// Any non-empty value other than a false boolean disables logging.
	if v := os.Getenv(EnvNoLog); v != "" {
		if off, err := strconv.ParseBool(v); err != nil || off {
			cfg.LogEvents = false
		}
	}

	return validate(cfg)
}
