// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/AccelByte/extend-experience-tracker/pkg/buffer"
	"github.com/AccelByte/extend-experience-tracker/pkg/cache"
	"github.com/AccelByte/extend-experience-tracker/pkg/cooldown"
	"github.com/AccelByte/extend-experience-tracker/pkg/level"
	"github.com/AccelByte/extend-experience-tracker/pkg/notify"
	pb "github.com/AccelByte/extend-experience-tracker/pkg/pb/experience/v1"
	"github.com/AccelByte/extend-experience-tracker/pkg/storage"
	"github.com/AccelByte/extend-experience-tracker/pkg/tracker"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/gorm"
)

type testEnv struct {
	client   pb.ChatEventServiceClient
	buffer   *buffer.Buffer
	db       *gorm.DB
	notifier *notify.Notifier
}

// setupTestService wires a real tracker on miniredis and in-memory sqlite and
// serves it over bufconn.
func setupTestService(t *testing.T) *testEnv {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db, err := storage.Open(storage.Config{Driver: storage.DriverSQLite, Path: ":memory:", AutoMigrate: true})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close(db) })

	repo := storage.NewRepository(db)
	buf := buffer.New()
	notifier := notify.NewNotifier(16, time.Second)

	tr := tracker.New(tracker.Dependencies{
		Gate:     cooldown.NewGate(time.Minute, 10),
		Buffer:   buf,
		Curve:    level.DefaultCurve(),
		Counter:  cache.NewExperienceCache(redisClient, repo, time.Hour),
		Groups:   repo,
		Notifier: notifier,
	}, tracker.Config{ExperiencePerMessage: 1})

	return &testEnv{
		client:   serve(t, NewChatEvents(tr)),
		buffer:   buf,
		db:       db,
		notifier: notifier,
	}
}

func serve(t *testing.T, srv pb.ChatEventServiceServer) pb.ChatEventServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	pb.RegisterChatEventServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewChatEventServiceClient(conn)
}

func TestChatEvents_OnMessage(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	in := &pb.ChatMessage{
		AuthorId:   160067691783127041,
		AuthorName: "alice",
		GroupId:    80351110224678912,
		ChannelId:  80351110224678913,
	}

	if _, err := env.client.OnMessage(ctx, in); err != nil {
		t.Fatalf("OnMessage() error = %v", err)
	}
	// second message inside the cooldown window
	if _, err := env.client.OnMessage(ctx, in); err != nil {
		t.Fatalf("OnMessage() error = %v", err)
	}

	deltas := env.buffer.Drain()
	if len(deltas) != 1 {
		t.Fatalf("buffer = %+v, expected one delta", deltas)
	}
	want := buffer.Delta{UserID: 160067691783127041, GroupID: 80351110224678912, Name: "alice", Amount: 1}
	if deltas[0] != want {
		t.Errorf("delta = %+v, expected %+v", deltas[0], want)
	}
}

func TestChatEvents_OnMessage_Bot(t *testing.T) {
	env := setupTestService(t)

	in := &pb.ChatMessage{AuthorId: 1, GroupId: 2, IsBot: true}
	if _, err := env.client.OnMessage(context.Background(), in); err != nil {
		t.Fatalf("OnMessage() error = %v", err)
	}
	if env.buffer.Count() != 0 {
		t.Error("bot message was accumulated")
	}
}

func TestChatEvents_InvalidPayloads(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "message without author",
			call: func() error {
				_, err := env.client.OnMessage(ctx, &pb.ChatMessage{GroupId: 1})
				return err
			},
		},
		{
			name: "message with negative id",
			call: func() error {
				_, err := env.client.OnMessage(ctx, &pb.ChatMessage{AuthorId: -1, GroupId: 1})
				return err
			},
		},
		{
			name: "rename without new name",
			call: func() error {
				_, err := env.client.OnGroupRenamed(ctx, &pb.GroupRenamed{GroupId: 1})
				return err
			},
		},
		{
			name: "member event with negative count",
			call: func() error {
				_, err := env.client.OnMemberJoined(ctx, &pb.MemberCountChanged{GroupId: 1, MemberCount: -1})
				return err
			},
		},
		{
			name: "transaction without sender",
			call: func() error {
				_, err := env.client.OnTransaction(ctx, &pb.TransactionLogged{ReceiverId: 1, Amount: 5})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("error = %v, expected InvalidArgument", err)
			}
		})
	}
}

func TestChatEvents_OnGroupRenamed(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	rename := &pb.GroupRenamed{GroupId: 10, OldName: "old", NewName: "new"}

	_, err := env.client.OnGroupRenamed(ctx, rename)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("OnGroupRenamed() for unknown group error = %v, expected NotFound", err)
	}

	joined := &pb.MemberCountChanged{GroupId: 10, MemberCount: 3}
	if _, err := env.client.OnMemberJoined(ctx, joined); err != nil {
		t.Fatalf("OnMemberJoined() error = %v", err)
	}
	if _, err := env.client.OnGroupRenamed(ctx, rename); err != nil {
		t.Fatalf("OnGroupRenamed() error = %v", err)
	}

	left := &pb.MemberCountChanged{GroupId: 10, MemberCount: 2}
	if _, err := env.client.OnMemberLeft(ctx, left); err != nil {
		t.Fatalf("OnMemberLeft() error = %v", err)
	}

	var group storage.GroupExperience
	if err := env.db.First(&group, "group_id = ?", 10).Error; err != nil {
		t.Fatalf("failed to load group: %v", err)
	}
	if group.Name != "new" || group.UserCount != 2 {
		t.Errorf("group = %+v, expected name new and 2 members", group)
	}
}

func TestChatEvents_OnTransaction(t *testing.T) {
	env := setupTestService(t)

	in := &pb.TransactionLogged{MessageId: 99, ReceiverId: 1, SenderId: 2, Amount: 25}
	if _, err := env.client.OnTransaction(context.Background(), in); err != nil {
		t.Fatalf("OnTransaction() error = %v", err)
	}
	if env.notifier.Pending() != 1 {
		t.Errorf("Pending() = %d, expected the transaction queued", env.notifier.Pending())
	}
}

type panickingTracker struct{}

func (panickingTracker) OnMessage(context.Context, tracker.Message) error { panic("boom") }

func (panickingTracker) OnGroupRenamed(context.Context, int64, string, string) error {
	return errors.New("database down")
}

func (panickingTracker) OnMemberJoined(context.Context, int64, int) error { return nil }

func (panickingTracker) OnMemberLeft(context.Context, int64, int) error { return nil }

func (panickingTracker) LogTransaction(context.Context, notify.Transaction) error { return nil }

func TestChatEvents_FailuresAreSwallowed(t *testing.T) {
	client := serve(t, NewChatEvents(panickingTracker{}))
	ctx := context.Background()

	msg := &pb.ChatMessage{AuthorId: 1, GroupId: 2}
	if _, err := client.OnMessage(ctx, msg); err != nil {
		t.Errorf("OnMessage() with panicking tracker error = %v, expected nil", err)
	}

	rename := &pb.GroupRenamed{GroupId: 2, NewName: "x"}
	if _, err := client.OnGroupRenamed(ctx, rename); err != nil {
		t.Errorf("OnGroupRenamed() with failing tracker error = %v, expected nil", err)
	}
}
