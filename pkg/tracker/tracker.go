// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AccelByte/extend-experience-tracker/pkg/buffer"
	"github.com/AccelByte/extend-experience-tracker/pkg/cooldown"
	"github.com/AccelByte/extend-experience-tracker/pkg/level"
	"github.com/AccelByte/extend-experience-tracker/pkg/metrics"
	"github.com/AccelByte/extend-experience-tracker/pkg/notify"

	"github.com/sirupsen/logrus"
)

// DefaultExperiencePerMessage is granted for every admitted message.
const DefaultExperiencePerMessage = 1

const userStripes = 64

// Message is a chat message as reported by the event source.
type Message struct {
	AuthorID   int64
	AuthorName string
	IsBot      bool
	GroupID    int64
	ChannelID  int64
}

// Counter keeps the running totals used to detect level transitions.
type Counter interface {
	AddGlobal(ctx context.Context, userID, amount int64) (before, after int64, err error)
	AddLocal(ctx context.Context, userID, groupID, amount int64) (before, after int64, err error)
}

// GroupStore updates group metadata on the group aggregate.
type GroupStore interface {
	RenameGroup(ctx context.Context, groupID int64, name string) error
	SetGroupUserCount(ctx context.Context, groupID int64, count int) error
}

// Notifier receives level transitions and transfers.
type Notifier interface {
	NotifyLevelUp(event notify.LevelUp) error
	NotifyTransaction(event notify.Transaction) error
}

// Recorder counts message outcomes.
type Recorder interface {
	MessageHandled(result string)
}

// Config of a Tracker.
type Config struct {
	ExperiencePerMessage int64
	// SweepInterval is how often stale cooldown records are dropped.
	SweepInterval time.Duration
}

// Dependencies of a Tracker.
type Dependencies struct {
	Gate     *cooldown.Gate
	Buffer   *buffer.Buffer
	Curve    level.Curve
	Counter  Counter
	Groups   GroupStore
	Notifier Notifier
	Recorder Recorder
}

// Tracker turns chat events into experience.
//
// Messages of one user are processed under that user's stripe lock in this
// order: cooldown check, cached total increment, buffer accumulate, level
// check and notification, cooldown record. A second message of the same user
// therefore sees the record of the first one. Different users only contend
// when they hash to the same stripe.
type Tracker struct {
	deps Dependencies
	cfg  Config
	now  func() time.Time

	stripes [userStripes]sync.Mutex
}

// New creates a tracker.
func New(deps Dependencies, cfg Config) *Tracker {
	if cfg.ExperiencePerMessage <= 0 {
		cfg.ExperiencePerMessage = DefaultExperiencePerMessage
	}
	if cfg.SweepInterval <= 0 && deps.Gate != nil {
		cfg.SweepInterval = deps.Gate.Window()
	}
	return &Tracker{deps: deps, cfg: cfg, now: time.Now}
}

// SetClock replaces the time source.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

func (t *Tracker) stripe(userID int64) *sync.Mutex {
	return &t.stripes[uint64(userID)%userStripes]
}

func (t *Tracker) record(result string) {
	if t.deps.Recorder != nil {
		t.deps.Recorder.MessageHandled(result)
	}
}

// OnMessage grants experience for msg unless the author is a bot or still
// cooling down. It returns an error when the totals could not be updated;
// the cooldown is then left untouched so the next message is admitted.
func (t *Tracker) OnMessage(ctx context.Context, msg Message) error {
	if msg.IsBot {
		t.record(metrics.ResultIgnored)
		return nil
	}

	mu := t.stripe(msg.AuthorID)
	mu.Lock()
	defer mu.Unlock()

	now := t.now()
	if !t.deps.Gate.Admit(msg.AuthorID, now) {
		t.record(metrics.ResultCooldown)
		return nil
	}

	amount := t.cfg.ExperiencePerMessage

	// a pending delta keeps the group it was created in, and the local total
	// follows the group the buffer credits
	group := msg.GroupID
	if pending, ok := t.deps.Buffer.PendingGroup(msg.AuthorID); ok {
		group = pending
	}

	localBefore, localAfter, err := t.deps.Counter.AddLocal(ctx, msg.AuthorID, group, amount)
	if err != nil {
		t.record(metrics.ResultError)
		return fmt.Errorf("failed to add local experience for %d: %w", msg.AuthorID, err)
	}
	globalBefore, globalAfter, err := t.deps.Counter.AddGlobal(ctx, msg.AuthorID, amount)
	if err != nil {
		t.revertLocal(ctx, msg.AuthorID, group, amount)
		t.record(metrics.ResultError)
		return fmt.Errorf("failed to add global experience for %d: %w", msg.AuthorID, err)
	}

	local := true
	if credited := t.deps.Buffer.Accumulate(msg.AuthorID, msg.GroupID, msg.AuthorName, amount); credited != group {
		// a flush drained or restored the delta since the lookup above
		t.revertLocal(ctx, msg.AuthorID, group, amount)
		group = credited
		localBefore, localAfter, err = t.deps.Counter.AddLocal(ctx, msg.AuthorID, group, amount)
		if err != nil {
			logrus.Warnf("local experience of user %d in group %d not cached: %v", msg.AuthorID, group, err)
			local = false
		}
	}

	if local && t.deps.Curve.DidLevelUp(localBefore, localAfter) {
		t.notifyLevelUp(msg, group, notify.Local, localAfter, now)
	}
	if t.deps.Curve.DidLevelUp(globalBefore, globalAfter) {
		t.notifyLevelUp(msg, msg.GroupID, notify.Global, globalAfter, now)
	}

	t.deps.Gate.Record(msg.AuthorID, now)
	t.record(metrics.ResultGranted)
	return nil
}

func (t *Tracker) revertLocal(ctx context.Context, userID, groupID, amount int64) {
	if _, _, err := t.deps.Counter.AddLocal(ctx, userID, groupID, -amount); err != nil {
		logrus.Warnf("local experience of user %d in group %d not reverted: %v", userID, groupID, err)
	}
}

func (t *Tracker) notifyLevelUp(msg Message, groupID int64, scope notify.Scope, total int64, now time.Time) {
	event := notify.LevelUp{
		UserID:    msg.AuthorID,
		GroupID:   groupID,
		ChannelID: msg.ChannelID,
		Level:     t.deps.Curve.LevelFor(total),
		Scope:     scope,
		Total:     total,
		At:        now,
	}
	if groupID != msg.GroupID {
		// the channel belongs to another group
		event.ChannelID = 0
	}

	logrus.Infof("user %d reached %s level %d", msg.AuthorID, scope, event.Level)

	if err := t.deps.Notifier.NotifyLevelUp(event); err != nil {
		logrus.Warnf("level-up of user %d not delivered: %v", msg.AuthorID, err)
	}
}

// OnGroupRenamed stores the new name of a group.
func (t *Tracker) OnGroupRenamed(ctx context.Context, groupID int64, oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	if err := t.deps.Groups.RenameGroup(ctx, groupID, newName); err != nil {
		return fmt.Errorf("failed to rename group %d: %w", groupID, err)
	}
	return nil
}

// OnMemberJoined stores the member count reported after a join.
func (t *Tracker) OnMemberJoined(ctx context.Context, groupID int64, memberCount int) error {
	return t.storeMemberCount(ctx, groupID, memberCount)
}

// OnMemberLeft stores the member count reported after a leave.
func (t *Tracker) OnMemberLeft(ctx context.Context, groupID int64, memberCount int) error {
	return t.storeMemberCount(ctx, groupID, memberCount)
}

func (t *Tracker) storeMemberCount(ctx context.Context, groupID int64, memberCount int) error {
	if memberCount < 0 {
		return fmt.Errorf("invalid member count %d for group %d", memberCount, groupID)
	}
	if err := t.deps.Groups.SetGroupUserCount(ctx, groupID, memberCount); err != nil {
		return fmt.Errorf("failed to store member count of group %d: %w", groupID, err)
	}
	return nil
}

// LogTransaction forwards a transfer to the observers.
func (t *Tracker) LogTransaction(ctx context.Context, tx notify.Transaction) error {
	if tx.Amount <= 0 {
		return fmt.Errorf("invalid transaction amount %d", tx.Amount)
	}
	if tx.At.IsZero() {
		tx.At = t.now()
	}
	if err := t.deps.Notifier.NotifyTransaction(tx); err != nil {
		if errors.Is(err, notify.ErrQueueFull) {
			logrus.Warnf("transaction %d not delivered: %v", tx.MessageID, err)
			return nil
		}
		return err
	}
	return nil
}

// Run sweeps stale cooldown records until ctx is done.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := t.deps.Gate.Sweep(t.now()); removed > 0 {
				logrus.Debugf("swept %d cooldown records, %d remaining", removed, t.deps.Gate.Len())
			}
		}
	}
}
