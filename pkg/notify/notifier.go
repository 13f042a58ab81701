// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize = 1024
	DefaultTimeout   = 5 * time.Second
)

var (
	// ErrQueueFull is returned when an event is dropped because the dispatch
	// queue has no room left.
	ErrQueueFull = errors.New("notification queue is full")
	// ErrObserverExists is returned when registering a duplicate observer id.
	ErrObserverExists = errors.New("observer already registered")
)

// Scope tells whether a level was reached inside a group or globally.
type Scope string

const (
	Local  Scope = "local"
	Global Scope = "global"
)

// LevelUp describes a level transition of one user.
type LevelUp struct {
	UserID    int64     `json:"user_id"`
	GroupID   int64     `json:"group_id"`
	ChannelID int64     `json:"channel_id"`
	Level     int       `json:"level"`
	Scope     Scope     `json:"scope"`
	Total     int64     `json:"total_experience"`
	At        time.Time `json:"at"`
}

// Transaction describes a currency transfer between two users.
type Transaction struct {
	MessageID  int64     `json:"message_id"`
	ChannelID  int64     `json:"channel_id"`
	ReceiverID int64     `json:"receiver_id"`
	SenderID   int64     `json:"sender_id"`
	Amount     int64     `json:"amount"`
	At         time.Time `json:"at"`
}

// Observer is notified of level transitions.
type Observer interface {
	ID() string
	OnLevelUp(ctx context.Context, event LevelUp) error
}

// TransactionObserver is implemented by observers that also want transfers.
type TransactionObserver interface {
	OnTransaction(ctx context.Context, event Transaction) error
}

type envelope struct {
	levelUp     *LevelUp
	transaction *Transaction
}

// Notifier fans events out to registered observers in registration order.
// Events are queued and delivered by Run, so the caller never waits on an
// observer. When the queue is full the event is dropped.
type Notifier struct {
	mu        sync.RWMutex
	observers []Observer
	ids       map[string]struct{}

	queue   chan envelope
	timeout time.Duration

	dropped   atomic.Int64
	delivered atomic.Int64
}

// NewNotifier creates a notifier with a queue of queueSize events. Each
// observer call is bounded by timeout.
func NewNotifier(queueSize int, timeout time.Duration) *Notifier {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Notifier{
		ids:     make(map[string]struct{}),
		queue:   make(chan envelope, queueSize),
		timeout: timeout,
	}
}

// Register appends an observer. Observers are invoked in the order they were
// registered.
func (n *Notifier) Register(o Observer) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.ids[o.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrObserverExists, o.ID())
	}
	n.ids[o.ID()] = struct{}{}
	n.observers = append(n.observers, o)

	logrus.Infof("registered level-up observer %s", o.ID())
	return nil
}

// Observers returns the registered observer ids in invocation order.
func (n *Notifier) Observers() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.observers))
	for _, o := range n.observers {
		ids = append(ids, o.ID())
	}
	return ids
}

// NotifyLevelUp queues a level transition for delivery.
func (n *Notifier) NotifyLevelUp(event LevelUp) error {
	return n.enqueue(envelope{levelUp: &event})
}

// NotifyTransaction queues a transfer for delivery.
func (n *Notifier) NotifyTransaction(event Transaction) error {
	return n.enqueue(envelope{transaction: &event})
}

func (n *Notifier) enqueue(e envelope) error {
	select {
	case n.queue <- e:
		return nil
	default:
		n.dropped.Add(1)
		logrus.Warnf("notification queue full, dropping event (dropped so far: %d)", n.dropped.Load())
		return ErrQueueFull
	}
}

// Pending returns the number of queued events.
func (n *Notifier) Pending() int {
	return len(n.queue)
}

// Dropped returns how many events were dropped because the queue was full.
func (n *Notifier) Dropped() int64 {
	return n.dropped.Load()
}

// Delivered returns how many events were handed to the observers.
func (n *Notifier) Delivered() int64 {
	return n.delivered.Load()
}

// Run delivers queued events until ctx is done. Events still queued at that
// point are delivered before Run returns.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			n.drain()
			return
		case e := <-n.queue:
			n.dispatch(ctx, e)
		}
	}
}

func (n *Notifier) drain() {
	for {
		select {
		case e := <-n.queue:
			n.dispatch(context.Background(), e)
		default:
			return
		}
	}
}

func (n *Notifier) dispatch(ctx context.Context, e envelope) {
	n.mu.RLock()
	observers := make([]Observer, len(n.observers))
	copy(observers, n.observers)
	n.mu.RUnlock()

	for _, o := range observers {
		n.deliver(ctx, o, e)
	}
	n.delivered.Add(1)
}

func (n *Notifier) deliver(ctx context.Context, o Observer, e envelope) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("observer %s panicked: %v", o.ID(), r)
		}
	}()

	var err error
	switch {
	case e.levelUp != nil:
		err = o.OnLevelUp(ctx, *e.levelUp)
	case e.transaction != nil:
		if to, ok := o.(TransactionObserver); ok {
			err = to.OnTransaction(ctx, *e.transaction)
		}
	}
	if err != nil {
		logrus.Errorf("observer %s failed: %v", o.ID(), err)
	}
}
