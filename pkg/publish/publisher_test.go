// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package publish

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/AccelByte/extend-experience-tracker/pkg/notify"
	"github.com/AccelByte/extend-experience-tracker/pkg/rewards"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func receive(t *testing.T, sub *redis.PubSub) *redis.Message {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	msg, err := sub.ReceiveMessage(ctx)
	if err != nil {
		t.Fatalf("ReceiveMessage() error = %v", err)
	}
	return msg
}

func TestPublisher_OnLevelUp_AttachesRewards(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	table := rewards.NewTable([]rewards.Reward{
		{GroupID: 10, Level: 2, RoleID: 500, Automatic: true},
		{GroupID: 10, Level: 2, RoleID: 501, Automatic: false},
	})
	p := NewPublisher(client, table, "")

	sub := client.Subscribe(ctx, p.LevelUpChannel())
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	event := notify.LevelUp{UserID: 1, GroupID: 10, ChannelID: 99, Level: 2, Scope: notify.Local}
	if err := p.OnLevelUp(ctx, event); err != nil {
		t.Fatalf("OnLevelUp() error = %v", err)
	}

	msg := receive(t, sub)
	if msg.Channel != "experience:levelups" {
		t.Errorf("channel = %s, expected experience:levelups", msg.Channel)
	}

	var got LevelUpMessage
	if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if got.UserID != 1 || got.Level != 2 || got.Scope != notify.Local {
		t.Errorf("payload = %+v", got)
	}
	if len(got.Rewards) != 1 || got.Rewards[0].RoleID != 500 {
		t.Errorf("rewards = %+v, expected role 500 only", got.Rewards)
	}
}

func TestPublisher_OnLevelUp_GlobalHasNoRewards(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	table := rewards.NewTable([]rewards.Reward{{GroupID: 10, Level: 2, RoleID: 500, Automatic: true}})
	p := NewPublisher(client, table, "xp")

	sub := client.Subscribe(ctx, "xp:levelups")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	_ = p.OnLevelUp(ctx, notify.LevelUp{UserID: 1, GroupID: 10, Level: 2, Scope: notify.Global})

	var got LevelUpMessage
	if err := json.Unmarshal([]byte(receive(t, sub).Payload), &got); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if len(got.Rewards) != 0 {
		t.Errorf("global level-up carried rewards: %+v", got.Rewards)
	}
}

func TestPublisher_OnTransaction(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()
	p := NewPublisher(client, nil, "")

	sub := client.Subscribe(ctx, p.TransactionChannel())
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	tx := notify.Transaction{MessageID: 5, ReceiverID: 1, SenderID: 2, Amount: 30}
	if err := p.OnTransaction(ctx, tx); err != nil {
		t.Fatalf("OnTransaction() error = %v", err)
	}

	var got notify.Transaction
	if err := json.Unmarshal([]byte(receive(t, sub).Payload), &got); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if got.Amount != 30 || got.ReceiverID != 1 || got.SenderID != 2 {
		t.Errorf("payload = %+v", got)
	}
}

func TestPublisher_RedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	p := NewPublisher(client, nil, "")
	mr.Close()

	if err := p.OnLevelUp(context.Background(), notify.LevelUp{UserID: 1}); err == nil {
		t.Error("OnLevelUp() expected error with redis stopped")
	}
}
