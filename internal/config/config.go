// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import "time"

// Config holds all application configuration loaded from environment variables.
// This struct uses github.com/caarlos0/env for automatic environment variable parsing.
//
// ============================================================
// DEVELOPER: Add new configuration fields here.
// ============================================================
// Use struct tags to define:
// - `env:"VAR_NAME"` - the environment variable name
// - `env:",required"` - make it required
// - `envDefault:"value"` - set a default value
//
// Durations accept Go syntax ("90s", "1m", "24h").
//
// After adding fields here, update loader.go Validate() if custom
// validation is needed.
// ============================================================
type Config struct {
	// ============================================================
	// Server configuration
	// ============================================================
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"6565"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"ExtendExperienceTracker"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// ============================================================
	// Database configuration
	// ============================================================
	DBDriver      string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        int    `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME" envDefault:"experience"`
	DBSSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	DBPath        string `env:"DB_PATH" envDefault:"data/experience.db"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	DBMaxRetries  int    `env:"DB_MAX_RETRIES" envDefault:"5"`

	// ============================================================
	// Redis configuration
	// ============================================================
	RedisHost          string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort          string        `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisMaxRetries    int           `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	ExperienceCacheTTL time.Duration `env:"EXPERIENCE_CACHE_TTL" envDefault:"24h"`

	// ============================================================
	// Experience configuration
	// ============================================================
	CooldownWindow       time.Duration `env:"COOLDOWN_WINDOW" envDefault:"1m"`
	CooldownSweepFactor  int           `env:"COOLDOWN_SWEEP_FACTOR" envDefault:"10"`
	ExperiencePerMessage int64         `env:"EXPERIENCE_PER_MESSAGE" envDefault:"1"`
	LevelBaseCost        int64         `env:"LEVEL_BASE_COST" envDefault:"100"`
	LevelGrowth          int64         `env:"LEVEL_GROWTH" envDefault:"10"`

	// ============================================================
	// Flush configuration
	// ============================================================
	FlushInterval        time.Duration `env:"FLUSH_INTERVAL" envDefault:"1m"`
	FlushCheckInterval   time.Duration `env:"FLUSH_CHECK_INTERVAL" envDefault:"5s"`
	FlushTimeout         time.Duration `env:"FLUSH_TIMEOUT" envDefault:"30s"`
	FlushRetainOnFailure bool          `env:"FLUSH_RETAIN_ON_FAILURE" envDefault:"false"`

	// ============================================================
	// Notification configuration
	// ============================================================
	NotifyQueueSize      int           `env:"NOTIFY_QUEUE_SIZE" envDefault:"1024"`
	NotifyTimeout        time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
	LevelRewardsPath     string        `env:"LEVEL_REWARDS_PATH" envDefault:"config/level_rewards.yaml"`
	PublishChannelPrefix string        `env:"PUBLISH_CHANNEL_PREFIX" envDefault:"experience"`

	// ============================================================
	// Telemetry configuration
	// ============================================================
	ZipkinEndpoint string `env:"ZIPKIN_ENDPOINT"`
}
