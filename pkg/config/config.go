// Package config reads the process environment into typed settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	databaseURLEnvKey     = "DATABASE_URL"
	connectAttemptsEnvKey = "DB_CONNECT_ATTEMPTS"
	connectDelayEnvKey    = "DB_CONNECT_DELAY"
	logLevelEnvKey        = "LOG_LEVEL"
)

const (
	defaultConnectAttempts = 5
	defaultConnectDelay    = 2 * time.Second
	defaultLogLevel        = "info"
)

// Config carries everything bootstrap and the seed binary need. An empty
// DatabaseURL means no durable backend is configured.
type Config struct {
	DatabaseURL     string
	ConnectAttempts uint
	ConnectDelay    time.Duration
	LogLevel        string
}

// Load reads the configuration from the environment. Unset variables get
// defaults; malformed values are errors, never silent defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:     os.Getenv(databaseURLEnvKey),
		ConnectAttempts: defaultConnectAttempts,
		ConnectDelay:    defaultConnectDelay,
		LogLevel:        defaultLogLevel,
	}

	if raw := os.Getenv(connectAttemptsEnvKey); raw != "" {
		attempts, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", connectAttemptsEnvKey, raw, err)
		}
		cfg.ConnectAttempts = uint(attempts)
	}

	if raw := os.Getenv(connectDelayEnvKey); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", connectDelayEnvKey, raw, err)
		}
		cfg.ConnectDelay = delay
	}

	if raw := os.Getenv(logLevelEnvKey); raw != "" {
		cfg.LogLevel = raw
	}

	return cfg, nil
}
