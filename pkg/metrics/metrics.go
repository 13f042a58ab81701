// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"context"
	"time"

	"github.com/AccelByte/extend-experience-tracker/pkg/notify"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "experience"

// Message outcomes recorded by the tracker.
const (
	ResultGranted  = "granted"
	ResultCooldown = "cooldown"
	ResultIgnored  = "ignored"
	ResultError    = "error"
)

// Metrics holds the service collectors. It also observes level-ups and
// flushes so the counters follow the core without the core importing
// prometheus.
type Metrics struct {
	LevelUps       *prometheus.CounterVec
	Messages       *prometheus.CounterVec
	Flushes        *prometheus.CounterVec
	FlushBatchSize prometheus.Histogram
	FlushDuration  prometheus.Histogram
	Transactions   prometheus.Counter
}

// New creates the collectors. Call Register to expose them.
func New() *Metrics {
	return &Metrics{
		LevelUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "level_ups_total",
			Help:      "Level transitions by scope",
		}, []string{"scope"}),
		Messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Chat messages seen by the tracker, by outcome",
		}, []string{"result"}),
		Flushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flush_total",
			Help:      "Executed flushes by outcome",
		}, []string{"outcome"}),
		FlushBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flush_batch_size",
			Help:      "Number of users per flushed batch",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		FlushDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flush_duration_seconds",
			Help:      "Time spent persisting a batch",
			Buckets:   prometheus.DefBuckets,
		}),
		Transactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Logged currency transfers",
		}),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.LevelUps, m.Messages, m.Flushes, m.FlushBatchSize, m.FlushDuration, m.Transactions,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RegisterGauge exposes a value sampled on every scrape, such as the number
// of pending deltas.
func RegisterGauge(reg prometheus.Registerer, name, help string, sample func() float64) error {
	return reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, sample))
}

// ID implements notify.Observer.
func (m *Metrics) ID() string { return "metrics" }

// OnLevelUp implements notify.Observer.
func (m *Metrics) OnLevelUp(_ context.Context, event notify.LevelUp) error {
	m.LevelUps.WithLabelValues(string(event.Scope)).Inc()
	return nil
}

// OnTransaction implements notify.TransactionObserver.
func (m *Metrics) OnTransaction(context.Context, notify.Transaction) error {
	m.Transactions.Inc()
	return nil
}

// FlushCompleted implements flush.Observer.
func (m *Metrics) FlushCompleted(batchSize int, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.Flushes.WithLabelValues(outcome).Inc()
	m.FlushBatchSize.Observe(float64(batchSize))
	m.FlushDuration.Observe(duration.Seconds())
}

// MessageHandled records the outcome of one chat message.
func (m *Metrics) MessageHandled(result string) {
	m.Messages.WithLabelValues(result).Inc()
}
