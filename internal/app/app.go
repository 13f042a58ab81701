// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AccelByte/extend-experience-tracker/internal/bootstrap"
	"github.com/AccelByte/extend-experience-tracker/internal/config"
	"github.com/AccelByte/extend-experience-tracker/internal/server"
	"github.com/AccelByte/extend-experience-tracker/pkg/cache"
	"github.com/AccelByte/extend-experience-tracker/pkg/handler"
	"github.com/AccelByte/extend-experience-tracker/pkg/metrics"
	"github.com/AccelByte/extend-experience-tracker/pkg/notify"
	"github.com/AccelByte/extend-experience-tracker/pkg/publish"
	"github.com/AccelByte/extend-experience-tracker/pkg/rewards"
	"github.com/AccelByte/extend-experience-tracker/pkg/storage"
	"github.com/AccelByte/extend-experience-tracker/pkg/tracker"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// healthInterval is how often redis reachability is reflected in the gRPC
// health status.
const healthInterval = 10 * time.Second

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	grpcServer        *server.GRPCServer
	metricsServer     *server.MetricsServer
	redisClient       *redis.Client
	db                *gorm.DB
	shutdownTelemetry func(context.Context) error

	core     *bootstrap.Core
	notifier *notify.Notifier
	tracker  *tracker.Tracker
	health   *cache.HealthChecker

	// background loops started by Run
	cancelLoops context.CancelFunc
	loops       sync.WaitGroup
}

// New creates and initializes a new application instance.
//
// ============================================================
// DEVELOPER: Application initialization order
// ============================================================
// Components are initialized in dependency order:
// 1. Database (aggregate tables)
// 2. Redis (running totals and level-up publishing)
// 3. Level rewards (YAML configuration)
// 4. Core components (cooldown, buffer, flush, notifier, tracker)
// 5. Servers (gRPC, metrics)
// 6. Telemetry (OpenTelemetry tracing)
//
// If you add new external dependencies, initialize them before
// step 4 and pass them to the bootstrap functions.
// ============================================================
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	// ============================================================
	// Step 1: Initialize the database
	// ============================================================
	if err := app.initDatabase(ctx); err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}

	// ============================================================
	// Step 2: Initialize Redis
	// ============================================================
	if err := app.initRedis(ctx); err != nil {
		app.closeConnections()
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}

	// ============================================================
	// Step 3: Load level rewards
	// ============================================================
	rewardTable, err := rewards.LoadOptional(cfg.LevelRewardsPath)
	if err != nil {
		app.closeConnections()
		return nil, fmt.Errorf("failed to load level rewards from %s: %w", cfg.LevelRewardsPath, err)
	}
	logrus.Infof("loaded %d level rewards from %s", rewardTable.Len(), cfg.LevelRewardsPath)

	// ============================================================
	// Step 4: Bootstrap core components
	// ============================================================
	// Messages flow through:
	// gRPC handler → Tracker → (cache, buffer, notifier)
	// and the buffer reaches the database through the flush
	// coordinator.
	//
	// DEVELOPER: Observers receive level-ups in the order they are
	// passed to InitNotifier.
	// ============================================================
	repo := storage.NewRepository(app.db)
	experienceCache := cache.NewExperienceCache(app.redisClient, repo, cfg.ExperienceCacheTTL)
	appMetrics := metrics.New()
	publisher := publish.NewPublisher(app.redisClient, rewardTable, cfg.PublishChannelPrefix)

	app.notifier, err = bootstrap.InitNotifier(cfg, appMetrics, publisher)
	if err != nil {
		app.closeConnections()
		return nil, fmt.Errorf("failed to init notifier: %w", err)
	}

	app.core = bootstrap.InitCore(cfg, repo, experienceCache)
	app.tracker = bootstrap.InitTracker(cfg, app.core, experienceCache, repo, app.notifier, appMetrics)
	app.health = cache.NewHealthChecker(app.redisClient)

	// ============================================================
	// Step 5: Setup servers
	// ============================================================
	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics")
	if err := bootstrap.InitMetrics(app.metricsServer.Registry(), appMetrics, app.core, app.notifier); err != nil {
		app.closeConnections()
		return nil, err
	}
	if err := app.metricsServer.Setup(); err != nil {
		app.closeConnections()
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, handler.NewChatEvents(app.tracker))
	if err := app.grpcServer.Setup(); err != nil {
		app.closeConnections()
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	// ============================================================
	// Step 6: Setup telemetry
	// ============================================================
	shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.ServiceName, cfg.Environment, 0, cfg.ZipkinEndpoint)
	if err != nil {
		app.closeConnections()
		return nil, fmt.Errorf("failed to setup telemetry: %w", err)
	}
	app.shutdownTelemetry = shutdownTelemetry

	logrus.Info("application initialized successfully")

	return app, nil
}

// retry runs op with exponential backoff, giving up after maxRetries
// retries or when ctx is done.
func retry(ctx context.Context, name string, maxRetries int, op func() error) error {
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(maxRetries)),
		ctx,
	)

	return backoff.Retry(
		func() error {
			if err := op(); err != nil {
				logrus.Warnf("%s connection failed: %v, retrying...", name, err)
				return err
			}
			return nil
		},
		b,
	)
}

// initDatabase opens the aggregate database and creates the tables when
// DB_AUTO_MIGRATE is set.
func (a *App) initDatabase(ctx context.Context) error {
	dbCfg := storage.Config{
		Driver:      a.cfg.DBDriver,
		Host:        a.cfg.DBHost,
		Port:        a.cfg.DBPort,
		User:        a.cfg.DBUser,
		Password:    a.cfg.DBPassword,
		Name:        a.cfg.DBName,
		SSLMode:     a.cfg.DBSSLMode,
		Path:        a.cfg.DBPath,
		AutoMigrate: a.cfg.DBAutoMigrate,
	}

	var db *gorm.DB
	err := retry(ctx, "database", a.cfg.DBMaxRetries, func() error {
		var err error
		db, err = storage.Open(dbCfg)
		return err
	})
	if err != nil {
		return err
	}

	a.db = db
	logrus.Infof("database initialized (driver: %s)", a.cfg.DBDriver)
	return nil
}

// initRedis initializes the Redis client.
func (a *App) initRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:         a.cfg.RedisHost + ":" + a.cfg.RedisPort,
		Password:     a.cfg.RedisPassword,
		DB:           0, // use default DB
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	err := retry(ctx, "Redis", a.cfg.RedisMaxRetries, func() error {
		_, err := client.Ping(ctx).Result()
		return err
	})
	if err != nil {
		_ = client.Close()
		return err
	}

	a.redisClient = client
	logrus.Info("Redis client initialized")
	return nil
}

// closeConnections releases redis and the database. It is safe to call with
// either of them unset.
func (a *App) closeConnections() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			logrus.Errorf("Redis close error: %v", err)
		}
		a.redisClient = nil
	}
	if a.db != nil {
		if err := storage.Close(a.db); err != nil {
			logrus.Errorf("database close error: %v", err)
		}
		a.db = nil
	}
}
