// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/AccelByte/extend-experience-tracker/pkg/pb/experience/v1"
	"github.com/sirupsen/logrus"
)

// shutdownTimeout bounds the graceful shutdown, final flush included.
const shutdownTimeout = time.Minute

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run(ctx context.Context) error {
	a.StartBackground()

	// Start servers
	if err := a.grpcServer.Start(ctx); err != nil {
		return err
	}
	if err := a.metricsServer.Start(ctx); err != nil {
		return err
	}

	logrus.Info("application started successfully")

	// Wait for shutdown signal
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Shutdown(shutdownCtx)
}

// StartBackground starts the loops that run alongside the servers: observer
// dispatch, periodic flushing, cooldown sweeping and the redis health check.
func (a *App) StartBackground() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelLoops = cancel

	loops := []func(context.Context){
		a.notifier.Run,
		a.core.Coordinator.Run,
		a.tracker.Run,
		func(ctx context.Context) {
			a.health.Watch(ctx, a.grpcServer.Health(), pb.ChatEventService_ServiceDesc.ServiceName, healthInterval)
		},
	}

	for _, loop := range loops {
		a.loops.Add(1)
		go func(run func(context.Context)) {
			defer a.loops.Done()
			run(ctx)
		}(loop)
	}

	logrus.Infof("started %d background loops", len(loops))
}

// Shutdown gracefully shuts down all application components.
//
// ============================================================
// DEVELOPER: Shutdown order is critical
// ============================================================
// Components are shut down in reverse dependency order:
// 1. Stop accepting new requests (gRPC + metrics servers)
// 2. Stop background loops. The flush coordinator persists
//    what is left in the buffer and the notifier delivers
//    queued events before returning.
// 3. Close external connections (Redis, database)
// 4. Flush telemetry data (OpenTelemetry)
//
// IMPORTANT: Shutdown errors are logged but don't stop the
// shutdown sequence. Each component gets a chance to clean up.
// ============================================================
func (a *App) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down application...")

	// ============================================================
	// Step 1: Shutdown servers (stop accepting new requests)
	// ============================================================
	if err := a.grpcServer.Shutdown(ctx); err != nil {
		logrus.Errorf("gRPC server shutdown error: %v", err)
	}
	if err := a.metricsServer.Shutdown(ctx); err != nil {
		logrus.Errorf("metrics server shutdown error: %v", err)
	}

	// ============================================================
	// Step 2: Stop background loops
	// ============================================================
	a.stopBackground(ctx)

	// ============================================================
	// Step 3: Close external connections
	// ============================================================
	a.closeConnections()

	// ============================================================
	// Step 4: Flush telemetry data
	// ============================================================
	if a.shutdownTelemetry != nil {
		if err := a.shutdownTelemetry(ctx); err != nil {
			logrus.Errorf("telemetry shutdown error: %v", err)
		}
	}

	logrus.Info("application shutdown complete")
	return nil
}

// stopBackground cancels the background loops and waits for them until ctx
// is done.
func (a *App) stopBackground(ctx context.Context) {
	if a.cancelLoops == nil {
		return
	}
	a.cancelLoops()

	done := make(chan struct{})
	go func() {
		a.loops.Wait()
		close(done)
	}()

	select {
	case <-done:
		logrus.Info("background loops stopped")
	case <-ctx.Done():
		logrus.Warn("timed out waiting for background loops")
	}
}
