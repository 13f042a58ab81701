// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package publish

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AccelByte/extend-experience-tracker/pkg/notify"
	"github.com/AccelByte/extend-experience-tracker/pkg/rewards"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// DefaultChannelPrefix is prepended to every channel name.
const DefaultChannelPrefix = "experience"

// LevelUpMessage is the payload published for a level transition.
type LevelUpMessage struct {
	notify.LevelUp
	Rewards []rewards.Reward `json:"rewards,omitempty"`
}

// Publisher forwards level-ups and transactions to redis pub/sub, where the
// chat frontend renders them and grants reward roles.
type Publisher struct {
	client  *redis.Client
	rewards *rewards.Table
	prefix  string
}

// NewPublisher creates a publisher. A nil table publishes no rewards.
func NewPublisher(client *redis.Client, table *rewards.Table, prefix string) *Publisher {
	if table == nil {
		table = rewards.NewTable(nil)
	}
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &Publisher{client: client, rewards: table, prefix: prefix}
}

// ID implements notify.Observer.
func (p *Publisher) ID() string { return "publish" }

// LevelUpChannel returns the channel level-ups are published on.
func (p *Publisher) LevelUpChannel() string {
	return p.prefix + ":levelups"
}

// TransactionChannel returns the channel transactions are published on.
func (p *Publisher) TransactionChannel() string {
	return p.prefix + ":transactions"
}

// OnLevelUp publishes the transition together with the automatic rewards of
// the reached level. Rewards only apply to group levels.
func (p *Publisher) OnLevelUp(ctx context.Context, event notify.LevelUp) error {
	msg := LevelUpMessage{LevelUp: event}
	if event.Scope == notify.Local {
		msg.Rewards = p.rewards.Automatic(event.GroupID, event.Level)
	}
	return p.publish(ctx, p.LevelUpChannel(), msg)
}

// OnTransaction implements notify.TransactionObserver.
func (p *Publisher) OnTransaction(ctx context.Context, event notify.Transaction) error {
	return p.publish(ctx, p.TransactionChannel(), event)
}

func (p *Publisher) publish(ctx context.Context, channel string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", channel, err)
	}

	receivers, err := p.client.Publish(ctx, channel, data).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}

	logrus.Debugf("published to %s (%d receivers)", channel, receivers)
	return nil
}
