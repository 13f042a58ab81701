// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/AccelByte/extend-experience-tracker/pkg/flush"
	"github.com/AccelByte/extend-experience-tracker/pkg/metrics"
	"github.com/AccelByte/extend-experience-tracker/pkg/notify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// InitMetrics registers the application collectors on reg together with
// gauges sampling the in-memory state of core and notifier.
func InitMetrics(reg prometheus.Registerer, m *metrics.Metrics, core *Core, notifier *notify.Notifier) error {
	if err := m.Register(reg); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	gauges := []struct {
		name   string
		help   string
		sample func() float64
	}{
		{"pending_users", "Users with experience waiting for the next flush", func() float64 {
			return float64(core.Buffer.Count())
		}},
		{"cooldown_users", "Users currently tracked by the cooldown gate", func() float64 {
			return float64(core.Gate.Len())
		}},
		{"notifications_pending", "Events queued for observers", func() float64 {
			return float64(notifier.Pending())
		}},
		{"notifications_dropped", "Events dropped because the queue was full", func() float64 {
			return float64(notifier.Dropped())
		}},
		{"notifications_delivered", "Events handed to every observer", func() float64 {
			return float64(notifier.Delivered())
		}},
		{"flush_in_progress", "1 while a flush is running", func() float64 {
			if core.Coordinator.State() == flush.Flushing {
				return 1
			}
			return 0
		}},
		{"last_flush_timestamp_seconds", "Start time of the last flush", func() float64 {
			return float64(core.Coordinator.LastFlush().Unix())
		}},
	}

	for _, g := range gauges {
		if err := metrics.RegisterGauge(reg, g.name, g.help, g.sample); err != nil {
			return fmt.Errorf("failed to register gauge %s: %w", g.name, err)
		}
	}

	core.Coordinator.SetObserver(m)

	logrus.Infof("registered application metrics and %d gauges", len(gauges))

	return nil
}
