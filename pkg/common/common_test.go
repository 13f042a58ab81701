// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestInterceptorLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	l := InterceptorLogger(logger)
	l.Log(context.Background(), logging.LevelWarn, "slow call", "grpc.method", "OnMessage", "grpc.code", "OK")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no entry logged")
	}
	if entry.Level != logrus.WarnLevel {
		t.Errorf("level = %v, expected warn", entry.Level)
	}
	if entry.Message != "slow call" {
		t.Errorf("message = %q", entry.Message)
	}
	if entry.Data["grpc.method"] != "OnMessage" || entry.Data["grpc.code"] != "OK" {
		t.Errorf("fields = %v", entry.Data)
	}
}

func TestConfigureLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	ConfigureLogger("debug")
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, expected debug", logrus.GetLevel())
	}

	ConfigureLogger("nonsense")
	if logrus.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, expected info fallback", logrus.GetLevel())
	}
}

func TestNewTracerProvider(t *testing.T) {
	tp, err := NewTracerProvider("test-service", "test", 1, "")
	if err != nil {
		t.Fatalf("NewTracerProvider() error = %v", err)
	}
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	if !span.SpanContext().IsValid() {
		t.Error("span context is not valid")
	}
	span.End()

	withZipkin, err := NewTracerProvider("test-service", "test", 1, "http://localhost:9411/api/v2/spans")
	if err != nil {
		t.Fatalf("NewTracerProvider() with zipkin endpoint error = %v", err)
	}
	_ = withZipkin.Shutdown(context.Background())
}

func TestScope(t *testing.T) {
	scope := GetScopeFromContext(context.Background(), "test")
	defer scope.Finish()

	scope.SetID("group_id", 7)
	if scope.Log.Data["group_id"] != int64(7) {
		t.Errorf("log fields = %v, expected group_id", scope.Log.Data)
	}

	child := scope.NewChildScope("child")
	child.SetAttributes("count", 3)
	child.TraceEvent("happened")
	child.Finish()

	if child.TraceID != scope.TraceID {
		t.Errorf("child trace id = %s, expected %s", child.TraceID, scope.TraceID)
	}
}
