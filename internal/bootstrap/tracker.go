// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"github.com/AccelByte/extend-experience-tracker/internal/config"
	"github.com/AccelByte/extend-experience-tracker/pkg/buffer"
	"github.com/AccelByte/extend-experience-tracker/pkg/cooldown"
	"github.com/AccelByte/extend-experience-tracker/pkg/flush"
	"github.com/AccelByte/extend-experience-tracker/pkg/level"
	"github.com/AccelByte/extend-experience-tracker/pkg/tracker"
	"github.com/sirupsen/logrus"
)

// Core bundles the in-memory components shared by the tracker and the flush
// loop.
type Core struct {
	Gate        *cooldown.Gate
	Buffer      *buffer.Buffer
	Curve       level.Curve
	Coordinator *flush.Coordinator
}

// InitCore creates the cooldown gate, the pending buffer, the level curve and
// the flush coordinator that drains the buffer into persister. Batches dropped
// after a failed flush are handed to discarder when it is not nil.
//
// ============================================================
// DEVELOPER: Tuning experience accrual
// ============================================================
// All knobs come from the environment (see internal/config):
// - COOLDOWN_WINDOW / COOLDOWN_SWEEP_FACTOR: how often a user earns
// - LEVEL_BASE_COST / LEVEL_GROWTH: the level curve
// - FLUSH_*: how often pending experience reaches the database
//
// A flush that fails discards its batch unless
// FLUSH_RETAIN_ON_FAILURE is set.
// ============================================================
func InitCore(cfg *config.Config, persister flush.Persister, discarder flush.Discarder) *Core {
	core := &Core{
		Gate:   cooldown.NewGate(cfg.CooldownWindow, cfg.CooldownSweepFactor),
		Buffer: buffer.New(),
		Curve:  level.NewCurve(cfg.LevelBaseCost, cfg.LevelGrowth),
	}

	core.Coordinator = flush.NewCoordinator(core.Buffer, persister, flush.Config{
		Interval:        cfg.FlushInterval,
		CheckInterval:   cfg.FlushCheckInterval,
		Timeout:         cfg.FlushTimeout,
		RetainOnFailure: cfg.FlushRetainOnFailure,
	})
	if discarder != nil {
		core.Coordinator.SetDiscarder(discarder)
	}

	logrus.Infof("initialized core: cooldown %v, flush every %v (retain on failure: %v)",
		cfg.CooldownWindow, cfg.FlushInterval, cfg.FlushRetainOnFailure)

	return core
}

// InitTracker creates the tracker on top of core.
func InitTracker(
	cfg *config.Config,
	core *Core,
	counter tracker.Counter,
	groups tracker.GroupStore,
	notifier tracker.Notifier,
	recorder tracker.Recorder,
) *tracker.Tracker {
	t := tracker.New(tracker.Dependencies{
		Gate:     core.Gate,
		Buffer:   core.Buffer,
		Curve:    core.Curve,
		Counter:  counter,
		Groups:   groups,
		Notifier: notifier,
		Recorder: recorder,
	}, tracker.Config{
		ExperiencePerMessage: cfg.ExperiencePerMessage,
	})

	logrus.Infof("initialized tracker: %d experience per message", cfg.ExperiencePerMessage)

	return t
}
