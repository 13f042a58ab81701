// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AccelByte/extend-experience-tracker/pkg/buffer"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// DefaultTTL is how long a cached total survives without being touched.
const DefaultTTL = 24 * time.Hour

// Loader reads the persisted totals used to seed the cache on a miss.
type Loader interface {
	GlobalExperience(ctx context.Context, userID int64) (int64, error)
	LocalExperience(ctx context.Context, userID, groupID int64) (int64, error)
}

// ExperienceCache keeps the running experience totals of active users in
// redis so level transitions can be detected without waiting for a flush.
type ExperienceCache struct {
	client *redis.Client
	loader Loader
	ttl    time.Duration
}

// NewExperienceCache creates a read-through cache backed by loader.
func NewExperienceCache(client *redis.Client, loader Loader, ttl time.Duration) *ExperienceCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ExperienceCache{client: client, loader: loader, ttl: ttl}
}

func globalKey(userID int64) string {
	return fmt.Sprintf("user:%d:exp", userID)
}

func localKey(userID, groupID int64) string {
	return fmt.Sprintf("user:%d:%d:exp", groupID, userID)
}

// AddGlobal adds amount to the global total of userID and returns the totals
// before and after the increment.
func (c *ExperienceCache) AddGlobal(ctx context.Context, userID, amount int64) (before, after int64, err error) {
	key := globalKey(userID)
	err = c.ensure(ctx, key, func(ctx context.Context) (int64, error) {
		return c.loader.GlobalExperience(ctx, userID)
	})
	if err != nil {
		return 0, 0, err
	}
	return c.add(ctx, key, amount)
}

// AddLocal adds amount to the total of userID inside groupID and returns the
// totals before and after the increment.
func (c *ExperienceCache) AddLocal(ctx context.Context, userID, groupID, amount int64) (before, after int64, err error) {
	key := localKey(userID, groupID)
	err = c.ensure(ctx, key, func(ctx context.Context) (int64, error) {
		return c.loader.LocalExperience(ctx, userID, groupID)
	})
	if err != nil {
		return 0, 0, err
	}
	return c.add(ctx, key, amount)
}

// ensure seeds key from load when it is missing. Concurrent seeders race on
// SETNX and only the first value is kept.
func (c *ExperienceCache) ensure(ctx context.Context, key string, load func(context.Context) (int64, error)) error {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	value, err := load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := c.client.SetNX(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to seed %s: %w", key, err)
	}

	logrus.Debugf("seeded %s with %d", key, value)
	return nil
}

func (c *ExperienceCache) add(ctx context.Context, key string, amount int64) (int64, int64, error) {
	var incr *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.IncrBy(ctx, key, amount)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}

	after := incr.Val()
	return after - amount, after, nil
}

// decrByIfExists lowers a cached total without recreating an expired key.
var decrByIfExists = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("DECRBY", KEYS[1], ARGV[1])
end
return false
`)

// Discarded takes the amounts of a batch that will never reach the database
// back out of the cached totals, so the cache again equals the persisted
// totals plus what is still pending. Keys that expired in the meantime are
// reloaded from the database on the next message.
func (c *ExperienceCache) Discarded(ctx context.Context, deltas []buffer.Delta) error {
	var errs []error
	for _, d := range deltas {
		for _, key := range []string{globalKey(d.UserID), localKey(d.UserID, d.GroupID)} {
			err := decrByIfExists.Run(ctx, c.client, []string{key}, d.Amount).Err()
			if err != nil && !errors.Is(err, redis.Nil) {
				errs = append(errs, fmt.Errorf("failed to roll back %s: %w", key, err))
			}
		}
	}
	return errors.Join(errs...)
}
