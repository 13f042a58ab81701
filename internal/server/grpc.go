// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net"

	"github.com/AccelByte/extend-experience-tracker/pkg/common"
	pb "github.com/AccelByte/extend-experience-tracker/pkg/pb/experience/v1"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// GRPCServer manages the gRPC server lifecycle.
type GRPCServer struct {
	server   *grpc.Server
	health   *health.Server
	port     int
	listener net.Listener
	events   pb.ChatEventServiceServer
}

// NewGRPCServer creates a new gRPC server instance serving events.
func NewGRPCServer(port int, events pb.ChatEventServiceServer) *GRPCServer {
	return &GRPCServer{
		port:   port,
		events: events,
		health: health.NewServer(),
	}
}

// Setup configures the gRPC server with interceptors and registers handlers.
//
// ============================================================
// DEVELOPER: gRPC server configuration
// ============================================================
// This method sets up:
// 1. Interceptors (logging, tracing)
// 2. The chat event service
// 3. Server features (reflection, health checks)
// ============================================================
func (s *GRPCServer) Setup() error {
	// ============================================================
	// DEVELOPER: Add custom gRPC interceptors here
	// ============================================================
	// Interceptors wrap all gRPC calls for cross-cutting concerns
	// such as authentication or rate limiting.
	//
	// Example:
	// unaryInterceptors = append(unaryInterceptors, myAuthInterceptor)
	// ============================================================
	unaryInterceptors := []grpc.UnaryServerInterceptor{
		logging.UnaryServerInterceptor(common.InterceptorLogger(logrus.StandardLogger())),
	}
	streamInterceptors := []grpc.StreamServerInterceptor{
		logging.StreamServerInterceptor(common.InterceptorLogger(logrus.StandardLogger())),
	}

	// Create server with OpenTelemetry instrumentation
	s.server = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(unaryInterceptors...),
		grpc.ChainStreamInterceptor(streamInterceptors...),
	)

	// ============================================================
	// DEVELOPER: Register event handlers here
	// ============================================================
	// The chat gateway delivers every chat event through
	// ChatEventService. Additional services are registered the
	// same way.
	// ============================================================
	pb.RegisterChatEventServiceServer(s.server, s.events)
	logrus.Infof("registered event service: %s", pb.ChatEventService_ServiceDesc.ServiceName)

	// ============================================================
	// Enable gRPC server features
	// ============================================================
	// - Reflection: allows tools like grpcurl to inspect services
	// - Health check: for Kubernetes liveness/readiness checks.
	//   The status of ChatEventService follows redis reachability.
	// ============================================================
	reflection.Register(s.server)
	grpc_health_v1.RegisterHealthServer(s.server, s.health)

	logrus.Infof("gRPC reflection and health check enabled")

	return nil
}

// Health returns the health server so that health checks can update serving status.
func (s *GRPCServer) Health() *health.Server {
	return s.health
}

// Start begins listening and serving gRPC requests.
func (s *GRPCServer) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	return s.Serve(lis)
}

// Serve serves gRPC requests on lis in the background.
func (s *GRPCServer) Serve(lis net.Listener) error {
	if s.server == nil {
		return fmt.Errorf("gRPC server is not set up")
	}
	s.listener = lis

	go func() {
		logrus.Infof("gRPC server listening on %s", lis.Addr())
		if err := s.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			logrus.Fatalf("gRPC server failed: %v", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops the gRPC server.
func (s *GRPCServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down gRPC server...")
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.server.Stop()
		logrus.Warn("gRPC server forced to stop")
	}

	logrus.Info("gRPC server stopped")
	return nil
}
