// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package flush

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/AccelByte/extend-experience-tracker/pkg/buffer"

	"github.com/sirupsen/logrus"
)

const (
	DefaultInterval      = time.Minute
	DefaultCheckInterval = 5 * time.Second
	DefaultTimeout       = 30 * time.Second
)

// State of the coordinator.
type State int32

const (
	Idle State = iota
	Flushing
)

func (s State) String() string {
	if s == Flushing {
		return "flushing"
	}
	return "idle"
}

// Persister writes a drained batch to durable storage.
type Persister interface {
	PersistBatch(ctx context.Context, deltas []buffer.Delta) error
}

// Source is the buffer the coordinator drains.
type Source interface {
	Count() int
	Drain() []buffer.Delta
	Restore(deltas []buffer.Delta)
}

// Observer receives the outcome of every flush that ran.
type Observer interface {
	FlushCompleted(batchSize int, duration time.Duration, err error)
}

// Discarder is told about every batch dropped after a failed flush.
type Discarder interface {
	Discarded(ctx context.Context, deltas []buffer.Delta) error
}

// Config of a Coordinator.
type Config struct {
	Interval      time.Duration
	CheckInterval time.Duration
	Timeout       time.Duration
	// RetainOnFailure puts a failed batch back into the buffer instead of
	// discarding it.
	RetainOnFailure bool
}

// Coordinator drains the buffer on a fixed cadence and hands the batch to the
// persister. At most one flush runs at a time; callers that find a flush in
// progress return immediately.
type Coordinator struct {
	source    Source
	persister Persister
	observer  Observer
	discarder Discarder
	cfg       Config
	now       func() time.Time

	state     atomic.Int32
	lastFlush atomic.Int64 // unix nanoseconds of the last flush start
}

// NewCoordinator creates a coordinator. The first eligible flush is one
// interval after construction.
func NewCoordinator(source Source, persister Persister, cfg Config) *Coordinator {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = DefaultCheckInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Coordinator{
		source:    source,
		persister: persister,
		cfg:       cfg,
		now:       time.Now,
	}
	c.lastFlush.Store(c.now().UnixNano())
	return c
}

// SetObserver registers the observer notified after each flush.
func (c *Coordinator) SetObserver(o Observer) {
	c.observer = o
}

// SetDiscarder registers the discarder told about dropped batches.
func (c *Coordinator) SetDiscarder(d Discarder) {
	c.discarder = d
}

// SetClock replaces the time source used by Run and Flush.
func (c *Coordinator) SetClock(now func() time.Time) {
	c.now = now
	c.lastFlush.Store(now().UnixNano())
}

// State returns whether a flush is currently running.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// LastFlush returns the start time of the most recent flush.
func (c *Coordinator) LastFlush() time.Time {
	return time.Unix(0, c.lastFlush.Load())
}

// TryFlush flushes when now has reached the last flush plus the interval and no
// flush is running. It reports whether a flush was executed.
func (c *Coordinator) TryFlush(ctx context.Context, now time.Time) bool {
	if !c.due(now) {
		return false
	}
	if !c.state.CompareAndSwap(int32(Idle), int32(Flushing)) {
		return false
	}
	defer c.state.Store(int32(Idle))

	// another caller may have finished a flush between the check and the swap
	if !c.due(now) {
		return false
	}

	c.run(ctx, now)
	return true
}

// Flush runs a flush regardless of the interval, unless one is already
// running. Used for the final flush on shutdown.
func (c *Coordinator) Flush(ctx context.Context) bool {
	if !c.state.CompareAndSwap(int32(Idle), int32(Flushing)) {
		return false
	}
	defer c.state.Store(int32(Idle))

	c.run(ctx, c.now())
	return true
}

func (c *Coordinator) due(now time.Time) bool {
	last := time.Unix(0, c.lastFlush.Load())
	return !now.Before(last.Add(c.cfg.Interval))
}

func (c *Coordinator) run(ctx context.Context, started time.Time) {
	c.lastFlush.Store(started.UnixNano())

	logrus.Infof("applying experience for %d users", c.source.Count())

	deltas := c.source.Drain()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	begin := time.Now()
	err := c.persister.PersistBatch(ctx, deltas)
	elapsed := time.Since(begin)

	if err != nil {
		if c.cfg.RetainOnFailure {
			c.source.Restore(deltas)
			logrus.Errorf("flush of %d deltas failed, batch kept for next cycle: %v", len(deltas), err)
		} else {
			logrus.Errorf("flush of %d deltas failed, batch discarded: %v", len(deltas), err)
			c.discard(deltas)
		}
	} else {
		logrus.Infof("flushed %d deltas in %v", len(deltas), elapsed)
	}

	if c.observer != nil {
		c.observer.FlushCompleted(len(deltas), elapsed, err)
	}
}

func (c *Coordinator) discard(deltas []buffer.Delta) {
	if c.discarder == nil || len(deltas) == 0 {
		return
	}

	// the flush context may be the reason the batch failed
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Timeout)
	defer cancel()

	if err := c.discarder.Discarded(ctx, deltas); err != nil {
		logrus.Errorf("failed to roll back %d discarded deltas: %v", len(deltas), err)
	}
}

// Run checks flush eligibility every CheckInterval until ctx is done, then
// performs one last forced flush with a fresh context.
func (c *Coordinator) Run(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("flush loop stopping, running final flush")
			finalCtx, cancel := context.WithTimeout(context.Background(), c.cfg.Timeout)
			c.Flush(finalCtx)
			cancel()
			return
		case <-ticker.C:
			c.TryFlush(ctx, c.now())
		}
	}
}
