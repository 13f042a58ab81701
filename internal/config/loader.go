// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from environment variables.
// It attempts to load from .env file first (for local development),
// then parses environment variables into the Config struct.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	// In production (Docker/K8s), environment variables are injected directly
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file found or error loading it: %v (this is normal in production)", err)
	} else {
		logrus.Infof("loaded environment variables from .env file")
	}

	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Validate performs custom validation on the configuration.
//
// ============================================================
// DEVELOPER: Add custom validation logic here.
// ============================================================
// This function is called after environment variables are parsed.
// Add validation for:
// - Value ranges (e.g., port numbers must be 1-65535)
// - Business logic constraints
// - Cross-field validation
// ============================================================
func (c *Config) Validate() error {
	// Validate server ports
	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid GRPC_PORT: %d (must be 1-65535)", c.GRPCPort)
	}

	if c.MetricsPort < 1 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid METRICS_PORT: %d (must be 1-65535)", c.MetricsPort)
	}

	switch c.DBDriver {
	case "postgres":
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the postgres driver")
		}
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER: %q (must be postgres or sqlite)", c.DBDriver)
	}

	if c.DBMaxRetries < 0 {
		return fmt.Errorf("invalid DB_MAX_RETRIES: %d (must not be negative)", c.DBMaxRetries)
	}
	if c.RedisMaxRetries < 0 {
		return fmt.Errorf("invalid REDIS_MAX_RETRIES: %d (must not be negative)", c.RedisMaxRetries)
	}

	if c.CooldownWindow <= 0 {
		return fmt.Errorf("invalid COOLDOWN_WINDOW: %v (must be positive)", c.CooldownWindow)
	}
	if c.ExperiencePerMessage <= 0 {
		return fmt.Errorf("invalid EXPERIENCE_PER_MESSAGE: %d (must be positive)", c.ExperiencePerMessage)
	}
	if c.LevelBaseCost <= 0 || c.LevelGrowth < 0 {
		return fmt.Errorf("invalid level curve: LEVEL_BASE_COST=%d LEVEL_GROWTH=%d", c.LevelBaseCost, c.LevelGrowth)
	}

	if c.FlushInterval <= 0 || c.FlushCheckInterval <= 0 || c.FlushTimeout <= 0 {
		return fmt.Errorf("FLUSH_INTERVAL, FLUSH_CHECK_INTERVAL and FLUSH_TIMEOUT must be positive")
	}
	if c.FlushCheckInterval > c.FlushInterval {
		return fmt.Errorf("FLUSH_CHECK_INTERVAL (%v) must not exceed FLUSH_INTERVAL (%v)", c.FlushCheckInterval, c.FlushInterval)
	}

	if c.NotifyQueueSize <= 0 {
		return fmt.Errorf("invalid NOTIFY_QUEUE_SIZE: %d (must be positive)", c.NotifyQueueSize)
	}

	return nil
}
